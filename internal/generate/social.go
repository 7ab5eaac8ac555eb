package generate

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/forgelabs/shopforge/internal/dataset"
)

var notificationTitles = map[string]string{
	"order":    "Your Order",
	"promo":    "Special Promo",
	"payment":  "Payment",
	"shipping": "Shipping",
	"system":   "System Notice",
}

var notificationTypes = []string{"order", "promo", "payment", "shipping", "system"}

var (
	chatMessageTypes   = []string{"text", "image", "product"}
	chatMessageWeights = []float64{0.8, 0.15, 0.05}
)

var promotionTargets = []string{"category", "product", "seller", "all"}

func genWishlists(ctx *Context) error {
	wishlistID := 1

	for _, user := range ctx.DS.Users {
		numWishlists := ctx.Rand.Intn(3)

		for i := 0; i < numWishlists; i++ {
			name := "My Wishlist"
			if i > 0 {
				name = fmt.Sprintf("Wishlist %s", capitalize(ctx.Synth.Word()))
			}

			ctx.DS.Wishlists = append(ctx.DS.Wishlists, dataset.Wishlist{
				WishlistID: wishlistID,
				UserID:     user.UserID,
				Name:       name,
				IsPublic:   flag(ctx.Rand),
				CreatedAt:  ctx.Synth.DateTimeBetween(user.RegistrationDate, ctx.Anchor),
			})
			wishlistID++
		}
	}
	return nil
}

func genWishlistItems(ctx *Context) error {
	if len(ctx.DS.Products) == 0 {
		return nil
	}

	productIDs := make([]int, len(ctx.DS.Products))
	for i, p := range ctx.DS.Products {
		productIDs[i] = p.ProductID
	}

	wishlistItemID := 1

	for _, wishlist := range ctx.DS.Wishlists {
		numItems := randInt(ctx.Rand, 1, 10)

		// Distinct products within one wishlist.
		for _, productID := range sampleInts(ctx.Rand, productIDs, numItems) {
			ctx.DS.WishlistItems = append(ctx.DS.WishlistItems, dataset.WishlistItem{
				WishlistItemID: wishlistItemID,
				WishlistID:     wishlist.WishlistID,
				ProductID:      productID,
				AddedAt:        ctx.Synth.DateTimeBetween(wishlist.CreatedAt, ctx.Anchor),
			})
			wishlistItemID++
		}
	}
	return nil
}

func genNotifications(ctx *Context) error {
	notificationID := 1

	for _, user := range ctx.DS.Users {
		numNotifications := ctx.Rand.Intn(16)

		for i := 0; i < numNotifications; i++ {
			notificationType := choiceString(ctx.Rand, notificationTypes)

			ctx.DS.Notifications = append(ctx.DS.Notifications, dataset.Notification{
				NotificationID:   notificationID,
				UserID:           user.UserID,
				Title:            fmt.Sprintf("%s %s", notificationTitles[notificationType], capitalize(ctx.Synth.Word())),
				Message:          ctx.Synth.Sentence(),
				NotificationType: notificationType,
				ReferenceID:      ctx.Synth.Bothify("REF-#####"),
				IsRead:           flag(ctx.Rand),
				CreatedAt:        ctx.Synth.DateTimeBetween(user.RegistrationDate, ctx.Anchor),
			})
			notificationID++
		}
	}
	return nil
}

func genChats(ctx *Context) error {
	if len(ctx.DS.Users) < 2 {
		color.Yellow("  ⚠️  Skipping chats: fewer than two users")
		return nil
	}

	windowStart := ctx.Anchor.AddDate(0, -6, 0)

	for chatID := 1; chatID <= ctx.Params.Chats; chatID++ {
		sender := ctx.DS.Users[ctx.Rand.Intn(len(ctx.DS.Users))]

		receiver := sender
		for receiver.UserID == sender.UserID {
			receiver = ctx.DS.Users[ctx.Rand.Intn(len(ctx.DS.Users))]
		}

		messageType := weightedChoice(ctx.Rand, chatMessageTypes, chatMessageWeights)

		var message string
		switch messageType {
		case "text":
			message = ctx.Synth.Sentence()
		case "image":
			message = ctx.Synth.ImageURL()
		default:
			message = fmt.Sprintf("PRODUCT:%d", randInt(ctx.Rand, 1, 100))
		}

		ctx.DS.Chats = append(ctx.DS.Chats, dataset.Chat{
			ChatID:      chatID,
			SenderID:    sender.UserID,
			ReceiverID:  receiver.UserID,
			Message:     message,
			MessageType: messageType,
			IsRead:      flag(ctx.Rand),
			SentAt:      ctx.Synth.DateTimeBetween(windowStart, ctx.Anchor),
		})
	}
	return nil
}

func genPromotions(ctx *Context) error {
	for promotionID := 1; promotionID <= ctx.Params.Promotions; promotionID++ {
		targetType := choiceString(ctx.Rand, promotionTargets)

		var referenceID string
		switch targetType {
		case "category":
			referenceID = fmt.Sprintf("%d", randInt(ctx.Rand, 1, 20))
		case "product":
			referenceID = fmt.Sprintf("%d", randInt(ctx.Rand, 1, 100))
		case "seller":
			referenceID = fmt.Sprintf("%d", randInt(ctx.Rand, 1, 20))
		default:
			referenceID = "ALL"
		}

		start := ctx.Synth.DateBetween(ctx.Anchor.AddDate(0, -2, 0), ctx.Anchor.AddDate(0, 1, 0))
		end := ctx.Synth.DateBetween(start, start.AddDate(0, 0, 30))

		ctx.DS.Promotions = append(ctx.DS.Promotions, dataset.Promotion{
			PromotionID: promotionID,
			Title:       fmt.Sprintf("Promo %s", capitalize(ctx.Synth.Word())),
			Description: ctx.Synth.Paragraph(),
			BannerURL:   ctx.Synth.ImageURL(),
			StartDate:   dataset.DateOf(start),
			EndDate:     dataset.DateOf(end),
			TargetType:  targetType,
			ReferenceID: referenceID,
			IsActive:    flag(ctx.Rand),
		})
	}
	return nil
}
