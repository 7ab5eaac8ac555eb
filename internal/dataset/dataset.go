// Package dataset holds the 21 entity collections and their tabular views.
// Collections are appended to exactly once by their generator and read-only
// afterwards; the tabular form feeds the verifier, the CSV exporter and the
// database loader with a fixed column order.
package dataset

import "fmt"

// Collection names, in generation/export order.
const (
	CollUsers          = "users"
	CollSellers        = "sellers"
	CollBuyers         = "buyers"
	CollAddresses      = "addresses"
	CollCategories     = "product_categories"
	CollProducts       = "products"
	CollVariants       = "product_variants"
	CollVariantOptions = "variant_options"
	CollProductImages  = "product_images"
	CollCarts          = "carts"
	CollCartItems      = "cart_items"
	CollOrders         = "orders"
	CollOrderItems     = "order_items"
	CollVouchers       = "vouchers"
	CollUserVouchers   = "user_vouchers"
	CollWishlists      = "wishlists"
	CollWishlistItems  = "wishlist_items"
	CollNotifications  = "notifications"
	CollChats          = "chats"
	CollPromotions     = "promotions"
	CollReviews        = "product_reviews"
)

// Part1 and Part2 are the two output groupings written as subdirectories.
var Part1 = []string{
	CollUsers, CollSellers, CollBuyers, CollAddresses, CollCategories,
	CollProducts, CollVariants, CollVariantOptions, CollProductImages, CollCarts,
}

var Part2 = []string{
	CollCartItems, CollOrders, CollOrderItems, CollVouchers, CollUserVouchers,
	CollWishlists, CollWishlistItems, CollNotifications, CollChats,
	CollPromotions, CollReviews,
}

// Dataset is the full generated output. Generators fill exactly one slice
// each; nothing mutates a slice after its generator has returned.
type Dataset struct {
	Users          []User
	Sellers        []Seller
	Buyers         []Buyer
	Addresses      []Address
	Categories     []Category
	Products       []Product
	Variants       []Variant
	VariantOptions []VariantOption
	ProductImages  []ProductImage
	Carts          []Cart
	CartItems      []CartItem
	Orders         []Order
	OrderItems     []OrderItem
	Vouchers       []Voucher
	UserVouchers   []UserVoucher
	Wishlists      []Wishlist
	WishlistItems  []WishlistItem
	Notifications  []Notification
	Chats          []Chat
	Promotions     []Promotion
	Reviews        []Review
}

// Table is the order-preserving tabular view of one collection.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

// ColumnIndex returns the position of a column, or -1 if absent.
func (t Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// FK declares that Table.Column must resolve to a RefTable.RefColumn value.
type FK struct {
	Table     string
	Column    string
	RefTable  string
	RefColumn string
}

// ForeignKeys lists every reference the verifier must resolve. Promotion
// reference_id is intentionally absent: promotions target identifier spaces
// independently of the generated rows.
var ForeignKeys = []FK{
	{CollSellers, "user_id", CollUsers, "user_id"},
	{CollBuyers, "user_id", CollUsers, "user_id"},
	{CollAddresses, "user_id", CollUsers, "user_id"},
	{CollProducts, "seller_id", CollSellers, "seller_id"},
	{CollProducts, "category_id", CollCategories, "category_id"},
	{CollVariants, "product_id", CollProducts, "product_id"},
	{CollVariantOptions, "variant_id", CollVariants, "variant_id"},
	{CollProductImages, "product_id", CollProducts, "product_id"},
	{CollCarts, "user_id", CollUsers, "user_id"},
	{CollCartItems, "cart_id", CollCarts, "cart_id"},
	{CollCartItems, "variant_id", CollVariants, "variant_id"},
	{CollOrders, "buyer_id", CollBuyers, "buyer_id"},
	{CollOrderItems, "order_id", CollOrders, "order_id"},
	{CollOrderItems, "seller_id", CollSellers, "seller_id"},
	{CollOrderItems, "variant_id", CollVariants, "variant_id"},
	{CollVouchers, "seller_id", CollSellers, "seller_id"},
	{CollUserVouchers, "user_id", CollUsers, "user_id"},
	{CollUserVouchers, "voucher_id", CollVouchers, "voucher_id"},
	{CollWishlists, "user_id", CollUsers, "user_id"},
	{CollWishlistItems, "wishlist_id", CollWishlists, "wishlist_id"},
	{CollWishlistItems, "product_id", CollProducts, "product_id"},
	{CollNotifications, "user_id", CollUsers, "user_id"},
	{CollChats, "sender_id", CollUsers, "user_id"},
	{CollChats, "receiver_id", CollUsers, "user_id"},
	{CollReviews, "product_id", CollProducts, "product_id"},
	{CollReviews, "user_id", CollUsers, "user_id"},
	{CollReviews, "order_item_id", CollOrderItems, "order_item_id"},
}

// Tables returns all collections in part1+part2 order.
func (d *Dataset) Tables() []Table {
	names := append(append([]string{}, Part1...), Part2...)
	tables := make([]Table, 0, len(names))
	for _, name := range names {
		t, err := d.Table(name)
		if err != nil {
			// Every Part1/Part2 name has a Table case; reaching this is a bug.
			panic(err)
		}
		tables = append(tables, t)
	}
	return tables
}

// Table builds the tabular view of one collection by name.
func (d *Dataset) Table(name string) (Table, error) {
	switch name {
	case CollUsers:
		return d.usersTable(), nil
	case CollSellers:
		return d.sellersTable(), nil
	case CollBuyers:
		return d.buyersTable(), nil
	case CollAddresses:
		return d.addressesTable(), nil
	case CollCategories:
		return d.categoriesTable(), nil
	case CollProducts:
		return d.productsTable(), nil
	case CollVariants:
		return d.variantsTable(), nil
	case CollVariantOptions:
		return d.variantOptionsTable(), nil
	case CollProductImages:
		return d.productImagesTable(), nil
	case CollCarts:
		return d.cartsTable(), nil
	case CollCartItems:
		return d.cartItemsTable(), nil
	case CollOrders:
		return d.ordersTable(), nil
	case CollOrderItems:
		return d.orderItemsTable(), nil
	case CollVouchers:
		return d.vouchersTable(), nil
	case CollUserVouchers:
		return d.userVouchersTable(), nil
	case CollWishlists:
		return d.wishlistsTable(), nil
	case CollWishlistItems:
		return d.wishlistItemsTable(), nil
	case CollNotifications:
		return d.notificationsTable(), nil
	case CollChats:
		return d.chatsTable(), nil
	case CollPromotions:
		return d.promotionsTable(), nil
	case CollReviews:
		return d.reviewsTable(), nil
	}
	return Table{}, fmt.Errorf("unknown collection: %s", name)
}

func (d *Dataset) usersTable() Table {
	t := Table{Name: CollUsers, Columns: []string{
		"user_id", "username", "email", "password_hash", "phone_number",
		"registration_date", "is_active", "last_login", "profile_picture",
		"is_verified", "wallet_balance",
	}}
	for _, u := range d.Users {
		t.Rows = append(t.Rows, []any{
			u.UserID, u.Username, u.Email, u.PasswordHash, u.PhoneNumber,
			u.RegistrationDate, u.IsActive, u.LastLogin, u.ProfilePicture,
			u.IsVerified, u.WalletBalance,
		})
	}
	return t
}

func (d *Dataset) sellersTable() Table {
	t := Table{Name: CollSellers, Columns: []string{
		"seller_id", "user_id", "shop_name", "description", "shop_banner",
		"shop_logo", "joined_date", "is_official", "rating", "total_products",
		"followers_count",
	}}
	for _, s := range d.Sellers {
		t.Rows = append(t.Rows, []any{
			s.SellerID, s.UserID, s.ShopName, s.Description, s.ShopBanner,
			s.ShopLogo, s.JoinedDate, s.IsOfficial, s.Rating, s.TotalProducts,
			s.FollowersCount,
		})
	}
	return t
}

func (d *Dataset) buyersTable() Table {
	t := Table{Name: CollBuyers, Columns: []string{
		"buyer_id", "user_id", "total_spent", "orders_count", "last_purchase",
	}}
	for _, b := range d.Buyers {
		t.Rows = append(t.Rows, []any{
			b.BuyerID, b.UserID, b.TotalSpent, b.OrdersCount, b.LastPurchase,
		})
	}
	return t
}

func (d *Dataset) addressesTable() Table {
	t := Table{Name: CollAddresses, Columns: []string{
		"address_id", "user_id", "recipient_name", "phone_number",
		"address_line1", "address_line2", "city", "postal_code", "province",
		"country", "is_default", "label",
	}}
	for _, a := range d.Addresses {
		t.Rows = append(t.Rows, []any{
			a.AddressID, a.UserID, a.RecipientName, a.PhoneNumber,
			a.AddressLine1, a.AddressLine2, a.City, a.PostalCode, a.Province,
			a.Country, a.IsDefault, a.Label,
		})
	}
	return t
}

func (d *Dataset) categoriesTable() Table {
	t := Table{Name: CollCategories, Columns: []string{
		"category_id", "parent_category_id", "category_name", "level",
		"display_order", "description", "icon_url",
	}}
	for _, c := range d.Categories {
		t.Rows = append(t.Rows, []any{
			c.CategoryID, c.ParentCategoryID, c.CategoryName, c.Level,
			c.DisplayOrder, c.Description, c.IconURL,
		})
	}
	return t
}

func (d *Dataset) productsTable() Table {
	t := Table{Name: CollProducts, Columns: []string{
		"product_id", "seller_id", "category_id", "product_name",
		"description", "long_description", "min_price", "max_price",
		"seller_sku", "total_stock", "rating", "sold_count", "views_count",
		"is_active", "created_at", "updated_at",
	}}
	for _, p := range d.Products {
		t.Rows = append(t.Rows, []any{
			p.ProductID, p.SellerID, p.CategoryID, p.ProductName,
			p.Description, p.LongDescription, p.MinPrice, p.MaxPrice,
			p.SellerSKU, p.TotalStock, p.Rating, p.SoldCount, p.ViewsCount,
			p.IsActive, p.CreatedAt, p.UpdatedAt,
		})
	}
	return t
}

func (d *Dataset) variantsTable() Table {
	t := Table{Name: CollVariants, Columns: []string{
		"variant_id", "product_id", "variant_name", "sku", "price", "stock",
		"image_url", "is_active",
	}}
	for _, v := range d.Variants {
		t.Rows = append(t.Rows, []any{
			v.VariantID, v.ProductID, v.VariantName, v.SKU, v.Price, v.Stock,
			v.ImageURL, v.IsActive,
		})
	}
	return t
}

func (d *Dataset) variantOptionsTable() Table {
	t := Table{Name: CollVariantOptions, Columns: []string{
		"option_id", "variant_id", "option_type", "option_value",
	}}
	for _, o := range d.VariantOptions {
		t.Rows = append(t.Rows, []any{
			o.OptionID, o.VariantID, o.OptionType, o.OptionValue,
		})
	}
	return t
}

func (d *Dataset) productImagesTable() Table {
	t := Table{Name: CollProductImages, Columns: []string{
		"image_id", "product_id", "image_url", "is_primary", "display_order",
	}}
	for _, img := range d.ProductImages {
		t.Rows = append(t.Rows, []any{
			img.ImageID, img.ProductID, img.ImageURL, img.IsPrimary,
			img.DisplayOrder,
		})
	}
	return t
}

func (d *Dataset) cartsTable() Table {
	t := Table{Name: CollCarts, Columns: []string{
		"cart_id", "user_id", "last_updated",
	}}
	for _, c := range d.Carts {
		t.Rows = append(t.Rows, []any{c.CartID, c.UserID, c.LastUpdated})
	}
	return t
}

func (d *Dataset) cartItemsTable() Table {
	t := Table{Name: CollCartItems, Columns: []string{
		"cart_item_id", "cart_id", "variant_id", "quantity",
		"price_at_addition", "added_at", "is_selected",
	}}
	for _, ci := range d.CartItems {
		t.Rows = append(t.Rows, []any{
			ci.CartItemID, ci.CartID, ci.VariantID, ci.Quantity,
			ci.PriceAtAddition, ci.AddedAt, ci.IsSelected,
		})
	}
	return t
}

func (d *Dataset) ordersTable() Table {
	t := Table{Name: CollOrders, Columns: []string{
		"order_id", "buyer_id", "order_number", "order_date", "subtotal",
		"shipping_fee", "platform_fee", "tax", "discount", "total_amount",
		"payment_method", "payment_status", "payment_date",
	}}
	for _, o := range d.Orders {
		t.Rows = append(t.Rows, []any{
			o.OrderID, o.BuyerID, o.OrderNumber, o.OrderDate, o.Subtotal,
			o.ShippingFee, o.PlatformFee, o.Tax, o.Discount, o.TotalAmount,
			o.PaymentMethod, o.PaymentStatus, o.PaymentDate,
		})
	}
	return t
}

func (d *Dataset) orderItemsTable() Table {
	t := Table{Name: CollOrderItems, Columns: []string{
		"order_item_id", "order_id", "seller_id", "variant_id", "quantity",
		"unit_price", "subtotal", "order_status", "status_updated",
		"tracking_number", "shipping_method", "estimated_delivery",
	}}
	for _, oi := range d.OrderItems {
		t.Rows = append(t.Rows, []any{
			oi.OrderItemID, oi.OrderID, oi.SellerID, oi.VariantID, oi.Quantity,
			oi.UnitPrice, oi.Subtotal, oi.OrderStatus, oi.StatusUpdated,
			oi.TrackingNumber, oi.ShippingMethod, oi.EstimatedDelivery,
		})
	}
	return t
}

func (d *Dataset) vouchersTable() Table {
	t := Table{Name: CollVouchers, Columns: []string{
		"voucher_id", "seller_id", "code", "description", "discount_amount",
		"minimum_purchase", "is_percentage", "is_free_shipping", "usage_limit",
		"times_used", "start_date", "end_date", "is_active",
	}}
	for _, v := range d.Vouchers {
		t.Rows = append(t.Rows, []any{
			v.VoucherID, v.SellerID, v.Code, v.Description, v.DiscountAmount,
			v.MinimumPurchase, v.IsPercentage, v.IsFreeShipping, v.UsageLimit,
			v.TimesUsed, v.StartDate, v.EndDate, v.IsActive,
		})
	}
	return t
}

func (d *Dataset) userVouchersTable() Table {
	t := Table{Name: CollUserVouchers, Columns: []string{
		"user_voucher_id", "user_id", "voucher_id", "is_used", "used_at",
		"expires_at",
	}}
	for _, uv := range d.UserVouchers {
		t.Rows = append(t.Rows, []any{
			uv.UserVoucherID, uv.UserID, uv.VoucherID, uv.IsUsed, uv.UsedAt,
			uv.ExpiresAt,
		})
	}
	return t
}

func (d *Dataset) wishlistsTable() Table {
	t := Table{Name: CollWishlists, Columns: []string{
		"wishlist_id", "user_id", "name", "is_public", "created_at",
	}}
	for _, w := range d.Wishlists {
		t.Rows = append(t.Rows, []any{
			w.WishlistID, w.UserID, w.Name, w.IsPublic, w.CreatedAt,
		})
	}
	return t
}

func (d *Dataset) wishlistItemsTable() Table {
	t := Table{Name: CollWishlistItems, Columns: []string{
		"wishlist_item_id", "wishlist_id", "product_id", "added_at",
	}}
	for _, wi := range d.WishlistItems {
		t.Rows = append(t.Rows, []any{
			wi.WishlistItemID, wi.WishlistID, wi.ProductID, wi.AddedAt,
		})
	}
	return t
}

func (d *Dataset) notificationsTable() Table {
	t := Table{Name: CollNotifications, Columns: []string{
		"notification_id", "user_id", "title", "message", "notification_type",
		"reference_id", "is_read", "created_at",
	}}
	for _, n := range d.Notifications {
		t.Rows = append(t.Rows, []any{
			n.NotificationID, n.UserID, n.Title, n.Message,
			n.NotificationType, n.ReferenceID, n.IsRead, n.CreatedAt,
		})
	}
	return t
}

func (d *Dataset) chatsTable() Table {
	t := Table{Name: CollChats, Columns: []string{
		"chat_id", "sender_id", "receiver_id", "message", "message_type",
		"is_read", "sent_at",
	}}
	for _, c := range d.Chats {
		t.Rows = append(t.Rows, []any{
			c.ChatID, c.SenderID, c.ReceiverID, c.Message, c.MessageType,
			c.IsRead, c.SentAt,
		})
	}
	return t
}

func (d *Dataset) promotionsTable() Table {
	t := Table{Name: CollPromotions, Columns: []string{
		"promotion_id", "title", "description", "banner_url", "start_date",
		"end_date", "target_type", "reference_id", "is_active",
	}}
	for _, p := range d.Promotions {
		t.Rows = append(t.Rows, []any{
			p.PromotionID, p.Title, p.Description, p.BannerURL, p.StartDate,
			p.EndDate, p.TargetType, p.ReferenceID, p.IsActive,
		})
	}
	return t
}

func (d *Dataset) reviewsTable() Table {
	t := Table{Name: CollReviews, Columns: []string{
		"review_id", "product_id", "user_id", "order_item_id", "rating",
		"comment", "review_date", "media_urls", "helpful_votes",
	}}
	for _, r := range d.Reviews {
		t.Rows = append(t.Rows, []any{
			r.ReviewID, r.ProductID, r.UserID, r.OrderItemID, r.Rating,
			r.Comment, r.ReviewDate, r.MediaURLs, r.HelpfulVotes,
		})
	}
	return t
}
