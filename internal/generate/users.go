package generate

import (
	"fmt"
	"time"

	"github.com/forgelabs/shopforge/internal/dataset"
)

// userIDBase keeps user IDs in the 4-digit space the rest of the platform
// expects while staying strictly increasing.
const userIDBase = 1000

const sellerFraction = 0.4

var addressLabels = []string{"Home", "Office", "Boarding House", "Apartment", "Shipping Address"}

func genUsers(ctx *Context) error {
	decadeStart := time.Date(ctx.Anchor.Year()-ctx.Anchor.Year()%10, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < ctx.Params.Users; i++ {
		registration := ctx.Synth.DateTimeBetween(decadeStart, ctx.Anchor)
		lastLogin := ctx.Synth.DateTimeBetween(registration, ctx.Anchor)

		ctx.DS.Users = append(ctx.DS.Users, dataset.User{
			UserID:           userIDBase + i,
			Username:         ctx.Synth.Username(),
			Email:            ctx.Synth.Email(),
			PasswordHash:     ctx.Synth.PasswordHash(),
			PhoneNumber:      ctx.Synth.PhoneNumber(),
			RegistrationDate: registration,
			IsActive:         flag(ctx.Rand),
			LastLogin:        lastLogin,
			ProfilePicture:   ctx.Synth.ImageURL(),
			IsVerified:       flag(ctx.Rand),
			WalletBalance:    round2(uniform(ctx.Rand, 0, 10000)),
		})
	}
	return nil
}

func genSellers(ctx *Context) error {
	users := ctx.DS.Users
	byID := make(map[int]dataset.User, len(users))
	userIDs := make([]int, len(users))
	for i, u := range users {
		byID[u.UserID] = u
		userIDs[i] = u.UserID
	}

	numSellers := int(float64(len(users)) * sellerFraction)
	sampled := sampleInts(ctx.Rand, userIDs, numSellers)

	for i, userID := range sampled {
		user := byID[userID]
		joined := user.RegistrationDate.AddDate(0, 0, randInt(ctx.Rand, 1, 30))

		banner := ""
		if ctx.Rand.Float64() > 0.4 {
			banner = ctx.Synth.ImageURL()
		}
		logo := ""
		if ctx.Rand.Float64() > 0.3 {
			logo = ctx.Synth.ImageURL()
		}

		ctx.DS.Sellers = append(ctx.DS.Sellers, dataset.Seller{
			SellerID:       i + 1,
			UserID:         userID,
			ShopName:       ctx.Synth.Company(),
			Description:    ctx.Synth.Paragraph(),
			ShopBanner:     banner,
			ShopLogo:       logo,
			JoinedDate:     joined,
			IsOfficial:     flag(ctx.Rand),
			Rating:         round1(uniform(ctx.Rand, 3.0, 5.0)),
			TotalProducts:  randInt(ctx.Rand, 5, 150),
			FollowersCount: ctx.Rand.Intn(5001),
		})
	}
	return nil
}

func genBuyers(ctx *Context) error {
	for i, user := range ctx.DS.Users {
		ordersCount := 0
		if ctx.Rand.Float64() > 0.2 {
			ordersCount = ctx.Rand.Intn(21)
		}

		// A zero draw means this buyer never purchased: spent and purchase
		// date take the never-purchased shape.
		totalSpent := 0.0
		lastPurchase := dataset.Epoch
		if ordersCount > 0 {
			totalSpent = round2(uniform(ctx.Rand, 0, 10000000))
			lastPurchase = ctx.Synth.DateTimeBetween(user.RegistrationDate, ctx.Anchor)
		}

		ctx.DS.Buyers = append(ctx.DS.Buyers, dataset.Buyer{
			BuyerID:      i + 1,
			UserID:       user.UserID,
			TotalSpent:   totalSpent,
			OrdersCount:  ordersCount,
			LastPurchase: lastPurchase,
		})
	}
	return nil
}

func genAddresses(ctx *Context) error {
	addressID := 1

	for _, user := range ctx.DS.Users {
		numAddresses := randInt(ctx.Rand, 1, 3)

		for j := 0; j < numAddresses; j++ {
			line2 := ""
			if ctx.Rand.Float64() > 0.5 {
				line2 = fmt.Sprintf("RT %d/RW %d, %s",
					randInt(ctx.Rand, 1, 20), randInt(ctx.Rand, 1, 10), ctx.Synth.StreetAddress())
			}

			isDefault := 0
			if j == 0 {
				isDefault = 1
			}

			ctx.DS.Addresses = append(ctx.DS.Addresses, dataset.Address{
				AddressID:     addressID,
				UserID:        user.UserID,
				RecipientName: ctx.Synth.Name(),
				PhoneNumber:   ctx.Synth.PhoneNumber(),
				AddressLine1:  ctx.Synth.StreetAddress(),
				AddressLine2:  line2,
				City:          ctx.Synth.City(),
				PostalCode:    ctx.Synth.PostalCode(),
				Province:      ctx.Synth.Province(),
				Country:       "Indonesia",
				IsDefault:     isDefault,
				Label:         choiceString(ctx.Rand, addressLabels),
			})
			addressID++
		}
	}
	return nil
}

func genCarts(ctx *Context) error {
	for i, user := range ctx.DS.Users {
		ctx.DS.Carts = append(ctx.DS.Carts, dataset.Cart{
			CartID:      i + 1,
			UserID:      user.UserID,
			LastUpdated: ctx.Synth.DateTimeBetween(user.RegistrationDate, ctx.Anchor),
		})
	}
	return nil
}
