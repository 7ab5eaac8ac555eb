package dataset

import "time"

// Epoch is the sentinel timestamp for "no applicable date". Text fields use
// the empty string for the same purpose; nothing is ever null.
var Epoch = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

// Date is a day-granularity timestamp. It serializes as 2006-01-02 instead
// of a full datetime.
type Date struct {
	time.Time
}

func DateOf(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

type User struct {
	UserID           int
	Username         string
	Email            string
	PasswordHash     string
	PhoneNumber      string
	RegistrationDate time.Time
	IsActive         int
	LastLogin        time.Time
	ProfilePicture   string
	IsVerified       int
	WalletBalance    float64
}

type Seller struct {
	SellerID       int
	UserID         int
	ShopName       string
	Description    string
	ShopBanner     string
	ShopLogo       string
	JoinedDate     time.Time
	IsOfficial     int
	Rating         float64
	TotalProducts  int
	FollowersCount int
}

type Buyer struct {
	BuyerID      int
	UserID       int
	TotalSpent   float64
	OrdersCount  int
	LastPurchase time.Time
}

type Address struct {
	AddressID     int
	UserID        int
	RecipientName string
	PhoneNumber   string
	AddressLine1  string
	AddressLine2  string
	City          string
	PostalCode    string
	Province      string
	Country       string
	IsDefault     int
	Label         string
}

type Category struct {
	CategoryID       int
	ParentCategoryID int
	CategoryName     string
	Level            int
	DisplayOrder     int
	Description      string
	IconURL          string
}

type Product struct {
	ProductID       int
	SellerID        int
	CategoryID      int
	ProductName     string
	Description     string
	LongDescription string
	MinPrice        float64
	MaxPrice        float64
	SellerSKU       string
	TotalStock      int
	Rating          float64
	SoldCount       int
	ViewsCount      int
	IsActive        int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Variant struct {
	VariantID   int
	ProductID   int
	VariantName string
	SKU         string
	Price       float64
	Stock       int
	ImageURL    string
	IsActive    int
}

type VariantOption struct {
	OptionID    int
	VariantID   int
	OptionType  string
	OptionValue string
}

type ProductImage struct {
	ImageID      int
	ProductID    int
	ImageURL     string
	IsPrimary    int
	DisplayOrder int
}

type Cart struct {
	CartID      int
	UserID      int
	LastUpdated time.Time
}

type CartItem struct {
	CartItemID      int
	CartID          int
	VariantID       int
	Quantity        int
	PriceAtAddition float64
	AddedAt         time.Time
	IsSelected      int
}

type Order struct {
	OrderID       int
	BuyerID       int
	OrderNumber   string
	OrderDate     time.Time
	Subtotal      float64
	ShippingFee   float64
	PlatformFee   float64
	Tax           float64
	Discount      float64
	TotalAmount   float64
	PaymentMethod string
	PaymentStatus string
	PaymentDate   time.Time
}

type OrderItem struct {
	OrderItemID       int
	OrderID           int
	SellerID          int
	VariantID         int
	Quantity          int
	UnitPrice         float64
	Subtotal          float64
	OrderStatus       string
	StatusUpdated     time.Time
	TrackingNumber    string
	ShippingMethod    string
	EstimatedDelivery time.Time
}

type Voucher struct {
	VoucherID       int
	SellerID        int
	Code            string
	Description     string
	DiscountAmount  float64
	MinimumPurchase float64
	IsPercentage    int
	IsFreeShipping  int
	UsageLimit      int
	TimesUsed       int
	StartDate       Date
	EndDate         Date
	IsActive        int
}

type UserVoucher struct {
	UserVoucherID int
	UserID        int
	VoucherID     int
	IsUsed        int
	UsedAt        time.Time
	ExpiresAt     time.Time
}

type Wishlist struct {
	WishlistID int
	UserID     int
	Name       string
	IsPublic   int
	CreatedAt  time.Time
}

type WishlistItem struct {
	WishlistItemID int
	WishlistID     int
	ProductID      int
	AddedAt        time.Time
}

type Notification struct {
	NotificationID   int
	UserID           int
	Title            string
	Message          string
	NotificationType string
	ReferenceID      string
	IsRead           int
	CreatedAt        time.Time
}

type Chat struct {
	ChatID      int
	SenderID    int
	ReceiverID  int
	Message     string
	MessageType string
	IsRead      int
	SentAt      time.Time
}

type Promotion struct {
	PromotionID int
	Title       string
	Description string
	BannerURL   string
	StartDate   Date
	EndDate     Date
	TargetType  string
	ReferenceID string
	IsActive    int
}

type Review struct {
	ReviewID     int
	ProductID    int
	UserID       int
	OrderItemID  int
	Rating       int
	Comment      string
	ReviewDate   time.Time
	MediaURLs    string
	HelpfulVotes int
}
