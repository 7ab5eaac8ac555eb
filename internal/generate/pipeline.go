// Package generate implements the dependency-ordered generator pipeline.
// Each stage produces exactly one collection from the collections it
// declares as inputs; collections are write-once and every random draw comes
// from the explicitly threaded sources, so a seed reproduces the dataset.
package generate

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/fatih/color"

	"github.com/forgelabs/shopforge/internal/dataset"
	"github.com/forgelabs/shopforge/internal/synth"
)

// Params are the run-size knobs.
type Params struct {
	Users      int
	Chats      int
	Promotions int
}

// Context carries the random stream, the synthetic-value provider, the
// reference clock and the dataset under construction through every stage.
type Context struct {
	Params Params
	Rand   *rand.Rand
	Synth  *synth.Provider
	Anchor time.Time
	DS     *dataset.Dataset

	produced map[string]bool
}

// requires reports an error when a declared input has not been materialized
// yet. Stages are trusted to declare their inputs; this catches a stage list
// whose Needs went stale.
func (c *Context) requires(names ...string) error {
	for _, name := range names {
		if !c.produced[name] {
			return fmt.Errorf("input collection %s is not materialized yet", name)
		}
	}
	return nil
}

// Stage produces the collection it is named after.
type Stage struct {
	Name  string
	Needs []string
	Run   func(*Context) error
}

// Pipeline runs stages in topological order.
type Pipeline struct {
	stages []*Stage
}

func NewPipeline(stages []*Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

func (p *Pipeline) Run(ctx *Context) error {
	graph := NewDependencyGraph()
	byName := make(map[string]*Stage, len(p.stages))
	for _, stage := range p.stages {
		graph.AddStage(stage)
		byName[stage.Name] = stage
	}

	order, err := graph.BuildRunOrder()
	if err != nil {
		return fmt.Errorf("failed to build run order: %w", err)
	}

	ctx.produced = make(map[string]bool, len(order))

	for _, name := range order {
		stage := byName[name]
		if err := ctx.requires(stage.Needs...); err != nil {
			return fmt.Errorf("stage %s: %w", name, err)
		}

		color.Cyan("  📝 Generating %s...", name)
		if err := stage.Run(ctx); err != nil {
			return fmt.Errorf("stage %s: %w", name, err)
		}
		ctx.produced[name] = true
	}

	return nil
}

// Run is the one-call entrypoint: seeds both random sources once, runs every
// stage and returns the finished dataset.
func Run(params Params, seed int64, anchor time.Time) (*dataset.Dataset, error) {
	ctx := &Context{
		Params: params,
		Rand:   rand.New(rand.NewSource(seed)),
		Synth:  synth.New(seed),
		Anchor: anchor.UTC().Truncate(time.Second),
		DS:     &dataset.Dataset{},
	}

	if err := NewPipeline(Stages()).Run(ctx); err != nil {
		return nil, err
	}
	return ctx.DS, nil
}
