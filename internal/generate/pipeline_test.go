package generate

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgelabs/shopforge/internal/dataset"
	"github.com/forgelabs/shopforge/internal/synth"
	"github.com/forgelabs/shopforge/internal/verify"
)

var testAnchor = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestRand() *rand.Rand { return rand.New(rand.NewSource(1)) }

func newTestSynth() *synth.Provider { return synth.New(1) }

func runPipeline(t *testing.T, users int, seed int64) *dataset.Dataset {
	t.Helper()
	ds, err := Run(Params{Users: users, Chats: 50, Promotions: 10}, seed, testAnchor)
	require.NoError(t, err)
	return ds
}

func TestRunProducesRequestedCounts(t *testing.T) {
	ds := runPipeline(t, 10, 42)

	assert.Len(t, ds.Users, 10)
	assert.Len(t, ds.Sellers, 4, "two in five users become sellers")
	assert.Len(t, ds.Buyers, 10, "every user is a buyer")
	assert.Len(t, ds.Carts, 10, "one cart per user")
	assert.GreaterOrEqual(t, len(ds.Addresses), 10, "at least one address per user")
	assert.Len(t, ds.Categories, 27)
	assert.Len(t, ds.Chats, 50)
	assert.Len(t, ds.Promotions, 10)
	assert.NotEmpty(t, ds.Products)
	assert.NotEmpty(t, ds.Variants)
}

func TestRunPassesIntegrityChecks(t *testing.T) {
	ds := runPipeline(t, 20, 42)
	require.NoError(t, verify.Check(ds))
}

func TestUserIDsAreStrictlyIncreasing(t *testing.T) {
	ds := runPipeline(t, 15, 7)

	for i := 1; i < len(ds.Users); i++ {
		assert.Greater(t, ds.Users[i].UserID, ds.Users[i-1].UserID)
	}
	assert.Equal(t, 1000, ds.Users[0].UserID)
}

func TestOrderTotalsAreConsistent(t *testing.T) {
	ds := runPipeline(t, 20, 42)
	require.NotEmpty(t, ds.Orders)

	for _, o := range ds.Orders {
		expected := o.Subtotal + o.ShippingFee + o.PlatformFee + o.Tax - o.Discount
		assert.Equal(t, expected, o.TotalAmount, "order %d", o.OrderID)

		// Every monetary component is rounded to the nearest thousand.
		for _, v := range []float64{o.Subtotal, o.ShippingFee, o.PlatformFee, o.Tax, o.Discount, o.TotalAmount} {
			assert.Zero(t, int64(v)%1000, "order %d has un-rounded amount %v", o.OrderID, v)
		}
	}
}

func TestPaymentDateFollowsStatus(t *testing.T) {
	ds := runPipeline(t, 20, 42)

	for _, o := range ds.Orders {
		switch o.PaymentStatus {
		case "Pending":
			assert.True(t, o.PaymentDate.Equal(dataset.Epoch), "pending order %d must carry the sentinel date", o.OrderID)
		default:
			assert.True(t, o.PaymentDate.After(o.OrderDate), "order %d payment date must follow the order date", o.OrderID)
		}
	}
}

func TestFailedOrdersHaveNoItems(t *testing.T) {
	ds := runPipeline(t, 20, 42)

	failed := make(map[int]bool)
	for _, o := range ds.Orders {
		if o.PaymentStatus == "Failed" {
			failed[o.OrderID] = true
		}
	}
	require.NotEmpty(t, failed, "seed should produce at least one failed order")

	for _, item := range ds.OrderItems {
		assert.False(t, failed[item.OrderID], "order item %d belongs to a failed order", item.OrderItemID)
	}
}

func TestShippingFieldsFollowOrderStatus(t *testing.T) {
	ds := runPipeline(t, 20, 42)

	for _, item := range ds.OrderItems {
		if shippedStatuses[item.OrderStatus] {
			assert.NotEmpty(t, item.TrackingNumber, "item %d (%s)", item.OrderItemID, item.OrderStatus)
			assert.NotEmpty(t, item.ShippingMethod, "item %d (%s)", item.OrderItemID, item.OrderStatus)
			assert.False(t, item.EstimatedDelivery.Equal(dataset.Epoch), "item %d (%s)", item.OrderItemID, item.OrderStatus)
		} else {
			assert.Empty(t, item.TrackingNumber, "item %d (%s)", item.OrderItemID, item.OrderStatus)
			assert.Empty(t, item.ShippingMethod, "item %d (%s)", item.OrderItemID, item.OrderStatus)
			assert.True(t, item.EstimatedDelivery.Equal(dataset.Epoch), "item %d (%s)", item.OrderItemID, item.OrderStatus)
		}
	}
}

func TestBuyersWithoutOrdersCarrySentinels(t *testing.T) {
	ds := runPipeline(t, 30, 42)

	sawNeverPurchased := false
	for _, b := range ds.Buyers {
		if b.OrdersCount == 0 {
			sawNeverPurchased = true
			assert.Zero(t, b.TotalSpent, "buyer %d", b.BuyerID)
			assert.True(t, b.LastPurchase.Equal(dataset.Epoch), "buyer %d", b.BuyerID)
		} else {
			assert.False(t, b.LastPurchase.Equal(dataset.Epoch), "buyer %d", b.BuyerID)
		}
	}
	assert.True(t, sawNeverPurchased, "seed should produce at least one never-purchased buyer")
}

func TestReviewsOnlyForDeliveredOrCompletedItems(t *testing.T) {
	ds := runPipeline(t, 30, 42)
	require.NotEmpty(t, ds.Reviews)

	itemsByID := make(map[int]dataset.OrderItem, len(ds.OrderItems))
	for _, item := range ds.OrderItems {
		itemsByID[item.OrderItemID] = item
	}
	productByVariant := make(map[int]int, len(ds.Variants))
	for _, v := range ds.Variants {
		productByVariant[v.VariantID] = v.ProductID
	}

	for _, r := range ds.Reviews {
		item, ok := itemsByID[r.OrderItemID]
		require.True(t, ok, "review %d references unknown order item %d", r.ReviewID, r.OrderItemID)
		assert.Contains(t, []string{"Delivered", "Completed"}, item.OrderStatus)
		assert.Equal(t, productByVariant[item.VariantID], r.ProductID,
			"review %d product must match its order item's variant", r.ReviewID)
		assert.False(t, r.ReviewDate.Before(item.StatusUpdated),
			"review %d predates the delivery it reviews", r.ReviewID)
	}
}

func TestSellersMapToDistinctUsers(t *testing.T) {
	ds := runPipeline(t, 30, 42)
	require.NotEmpty(t, ds.Sellers)

	seen := make(map[int]bool, len(ds.Sellers))
	for _, s := range ds.Sellers {
		assert.False(t, seen[s.UserID], "user %d backs two sellers", s.UserID)
		seen[s.UserID] = true
	}
}

func TestExactlyOneDefaultAddressPerUser(t *testing.T) {
	ds := runPipeline(t, 20, 42)

	defaults := make(map[int]int)
	for _, a := range ds.Addresses {
		defaults[a.UserID] += a.IsDefault
	}
	for _, u := range ds.Users {
		assert.Equal(t, 1, defaults[u.UserID], "user %d", u.UserID)
	}
}

func TestOrderItemSubtotalMatchesLine(t *testing.T) {
	ds := runPipeline(t, 20, 42)
	require.NotEmpty(t, ds.OrderItems)

	for _, item := range ds.OrderItems {
		assert.Equal(t, item.UnitPrice*float64(item.Quantity), item.Subtotal, "item %d", item.OrderItemID)
	}
}

func TestReviewsEmptyWhenNoEligibleItems(t *testing.T) {
	ds := runPipeline(t, 10, 42)

	// Rebuild a context whose order items are all ineligible; the stage must
	// produce an empty collection rather than fail.
	fixture := *ds
	fixture.Reviews = nil
	for i := range fixture.OrderItems {
		fixture.OrderItems[i].OrderStatus = "Cancelled"
	}

	ctx := &Context{
		Params: Params{Users: 10},
		Rand:   newTestRand(),
		Synth:  newTestSynth(),
		Anchor: testAnchor,
		DS:     &fixture,
	}
	require.NoError(t, genReviews(ctx))
	assert.Empty(t, fixture.Reviews)
}

func TestChatsSkippedWithSingleUser(t *testing.T) {
	ds, err := Run(Params{Users: 1, Chats: 50, Promotions: 5}, 42, testAnchor)
	require.NoError(t, err)

	assert.Empty(t, ds.Chats)
	assert.Len(t, ds.Users, 1)
}

func TestChatsNeverSelfAddressed(t *testing.T) {
	ds := runPipeline(t, 10, 42)

	for _, c := range ds.Chats {
		assert.NotEqual(t, c.SenderID, c.ReceiverID, "chat %d", c.ChatID)
	}
}

func TestSameSeedReproducesDataset(t *testing.T) {
	first := runPipeline(t, 15, 99)
	second := runPipeline(t, 15, 99)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("same seed and anchor must reproduce the dataset exactly")
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	first := runPipeline(t, 15, 1)
	second := runPipeline(t, 15, 2)

	assert.NotEqual(t, first.Users[0].Username, second.Users[0].Username)
}

func TestVariantSKUsDeriveFromProduct(t *testing.T) {
	ds := runPipeline(t, 10, 42)

	productsByID := make(map[int]dataset.Product, len(ds.Products))
	for _, p := range ds.Products {
		productsByID[p.ProductID] = p
	}

	for _, v := range ds.Variants {
		p := productsByID[v.ProductID]
		assert.Contains(t, v.SKU, p.SellerSKU, "variant %d", v.VariantID)
	}
}

func TestProductsAttachToLeafCategories(t *testing.T) {
	ds := runPipeline(t, 10, 42)

	parents := make(map[int]bool)
	for _, c := range ds.Categories {
		if c.ParentCategoryID != rootParent {
			parents[c.ParentCategoryID] = true
		}
	}

	for _, p := range ds.Products {
		assert.False(t, parents[p.CategoryID], "product %d attached to non-leaf category %d", p.ProductID, p.CategoryID)
	}
}

func TestFirstAddressIsDefault(t *testing.T) {
	ds := runPipeline(t, 10, 42)

	seen := make(map[int]bool)
	for _, a := range ds.Addresses {
		if !seen[a.UserID] {
			seen[a.UserID] = true
			assert.Equal(t, 1, a.IsDefault, "first address of user %d must be the default", a.UserID)
		}
	}
}
