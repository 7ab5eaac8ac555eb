package generate

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"

	"github.com/forgelabs/shopforge/internal/dataset"
)

// reviewableStatuses are the fulfillment states eligible for a review.
var reviewableStatuses = map[string]bool{
	"Delivered": true,
	"Completed": true,
}

func genReviews(ctx *Context) error {
	var eligible []dataset.OrderItem
	for _, item := range ctx.DS.OrderItems {
		if reviewableStatuses[item.OrderStatus] {
			eligible = append(eligible, item)
		}
	}
	if len(eligible) == 0 {
		color.Yellow("  ⚠️  No delivered or completed order items; skipping reviews")
		return nil
	}

	productByVariant := make(map[int]int, len(ctx.DS.Variants))
	for _, v := range ctx.DS.Variants {
		productByVariant[v.VariantID] = v.ProductID
	}
	productSet := make(map[int]bool, len(ctx.DS.Products))
	for _, p := range ctx.DS.Products {
		productSet[p.ProductID] = true
	}

	// Resolve each eligible item to its product; drop anything that does not
	// resolve rather than emitting a dangling reference.
	type reviewable struct {
		item      dataset.OrderItem
		productID int
	}
	var resolved []reviewable
	dropped := 0
	for _, item := range eligible {
		productID, ok := productByVariant[item.VariantID]
		if !ok || !productSet[productID] {
			dropped++
			continue
		}
		resolved = append(resolved, reviewable{item: item, productID: productID})
	}
	if dropped > 0 {
		color.Yellow("  ⚠️  Dropped %d order items whose variant did not resolve to a product", dropped)
	}
	if len(resolved) == 0 {
		color.Yellow("  ⚠️  No order items resolved to a product; skipping reviews")
		return nil
	}

	reviewID := 1
	for _, rv := range resolved {
		if ctx.Rand.Float64() >= 0.5 {
			continue
		}

		reviewer := ctx.DS.Users[ctx.Rand.Intn(len(ctx.DS.Users))]

		mediaURLs := "[]"
		if ctx.Rand.Float64() < 0.3 {
			numMedia := randInt(ctx.Rand, 1, 3)
			urls := make([]string, numMedia)
			for i := range urls {
				urls[i] = fmt.Sprintf("https://ecommerce.com/reviews/%d/media/%d.jpg", reviewID, i+1)
			}
			encoded, err := json.Marshal(urls)
			if err != nil {
				return fmt.Errorf("encoding review media urls: %w", err)
			}
			mediaURLs = string(encoded)
		}

		ctx.DS.Reviews = append(ctx.DS.Reviews, dataset.Review{
			ReviewID:     reviewID,
			ProductID:    rv.productID,
			UserID:       reviewer.UserID,
			OrderItemID:  rv.item.OrderItemID,
			Rating:       randInt(ctx.Rand, 1, 5),
			Comment:      ctx.Synth.Paragraph(),
			ReviewDate:   ctx.Synth.DateTimeBetween(rv.item.StatusUpdated, rv.item.StatusUpdated.AddDate(0, 0, 14)),
			MediaURLs:    mediaURLs,
			HelpfulVotes: ctx.Rand.Intn(51),
		})
		reviewID++
	}

	// Referential re-check before the dataset leaves this stage; an
	// unresolved product here is a generator bug, not bad input.
	for _, review := range ctx.DS.Reviews {
		if !productSet[review.ProductID] {
			return fmt.Errorf("review %d references unknown product %d", review.ReviewID, review.ProductID)
		}
	}
	return nil
}
