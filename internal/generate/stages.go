package generate

import "github.com/forgelabs/shopforge/internal/dataset"

// Stages lists all 21 generators with the collections they read. The
// pipeline derives the run order from these declarations; nothing here is
// order-sensitive.
func Stages() []*Stage {
	return []*Stage{
		{Name: dataset.CollUsers, Run: genUsers},
		{Name: dataset.CollCategories, Run: genCategories},
		{Name: dataset.CollPromotions, Run: genPromotions},
		{Name: dataset.CollSellers, Needs: []string{dataset.CollUsers}, Run: genSellers},
		{Name: dataset.CollBuyers, Needs: []string{dataset.CollUsers}, Run: genBuyers},
		{Name: dataset.CollAddresses, Needs: []string{dataset.CollUsers}, Run: genAddresses},
		{Name: dataset.CollCarts, Needs: []string{dataset.CollUsers}, Run: genCarts},
		{Name: dataset.CollWishlists, Needs: []string{dataset.CollUsers}, Run: genWishlists},
		{Name: dataset.CollNotifications, Needs: []string{dataset.CollUsers}, Run: genNotifications},
		{Name: dataset.CollChats, Needs: []string{dataset.CollUsers}, Run: genChats},
		{Name: dataset.CollProducts, Needs: []string{dataset.CollSellers, dataset.CollCategories}, Run: genProducts},
		{Name: dataset.CollVariants, Needs: []string{dataset.CollProducts}, Run: genVariants},
		{Name: dataset.CollVariantOptions, Needs: []string{dataset.CollVariants}, Run: genVariantOptions},
		{Name: dataset.CollProductImages, Needs: []string{dataset.CollProducts}, Run: genProductImages},
		{Name: dataset.CollCartItems, Needs: []string{dataset.CollCarts, dataset.CollVariants}, Run: genCartItems},
		{Name: dataset.CollOrders, Needs: []string{dataset.CollBuyers}, Run: genOrders},
		{Name: dataset.CollOrderItems, Needs: []string{dataset.CollOrders, dataset.CollSellers, dataset.CollVariants}, Run: genOrderItems},
		{Name: dataset.CollVouchers, Needs: []string{dataset.CollSellers}, Run: genVouchers},
		{Name: dataset.CollUserVouchers, Needs: []string{dataset.CollUsers, dataset.CollVouchers}, Run: genUserVouchers},
		{Name: dataset.CollWishlistItems, Needs: []string{dataset.CollWishlists, dataset.CollProducts}, Run: genWishlistItems},
		{Name: dataset.CollReviews, Needs: []string{dataset.CollOrderItems, dataset.CollVariants, dataset.CollProducts, dataset.CollUsers}, Run: genReviews},
	}
}
