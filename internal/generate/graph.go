package generate

import (
	"fmt"
	"sort"
)

// DependencyGraph orders stages so every stage runs after the stages that
// produce its inputs. Iteration is sorted to keep the order deterministic.
type DependencyGraph struct {
	stages map[string]*Stage
	order  []string
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		stages: make(map[string]*Stage),
	}
}

func (g *DependencyGraph) AddStage(stage *Stage) {
	g.stages[stage.Name] = stage
}

func (g *DependencyGraph) BuildRunOrder() ([]string, error) {
	for _, stage := range g.stages {
		for _, dep := range stage.Needs {
			if _, exists := g.stages[dep]; !exists {
				return nil, fmt.Errorf("stage %s needs %s, but no stage produces it", stage.Name, dep)
			}
		}
	}

	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []string

	var visit func(string) error
	visit = func(name string) error {
		if temp[name] {
			return fmt.Errorf("circular dependency detected involving stage: %s", name)
		}
		if visited[name] {
			return nil
		}

		temp[name] = true
		for _, dep := range g.stages[name].Needs {
			if err := visit(dep); err != nil {
				return err
			}
		}

		temp[name] = false
		visited[name] = true
		order = append(order, name)
		return nil
	}

	names := make([]string, 0, len(g.stages))
	for name := range g.stages {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !visited[name] {
			if err := visit(name); err != nil {
				return nil, err
			}
		}
	}

	g.order = order
	return order, nil
}

func (g *DependencyGraph) GetOrder() []string {
	return g.order
}
