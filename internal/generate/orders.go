package generate

import (
	"fmt"
	"time"

	"github.com/forgelabs/shopforge/internal/dataset"
)

const activeCartFraction = 0.7

var (
	paymentMethods  = []string{"Credit Card", "Bank Transfer", "E-Wallet", "COD", "QRIS"}
	paymentStatuses = []string{"Pending", "Paid", "Failed", "Refunded"}
	shippingMethods = []string{"Regular", "Express", "Same Day", "Economy"}

	orderStatusFlow    = []string{"Processing", "Shipped", "Delivered", "Completed", "Cancelled", "Returned"}
	orderStatusWeights = []float64{0.1, 0.2, 0.3, 0.3, 0.05, 0.05}
)

// shippedStatuses are the states in which tracking fields are meaningful.
var shippedStatuses = map[string]bool{
	"Shipped":   true,
	"Delivered": true,
	"Completed": true,
}

func genCartItems(ctx *Context) error {
	cartIdx := make([]int, len(ctx.DS.Carts))
	for i := range cartIdx {
		cartIdx[i] = i
	}
	activeCarts := sampleInts(ctx.Rand, cartIdx, int(float64(len(ctx.DS.Carts))*activeCartFraction))

	variantIdx := make([]int, len(ctx.DS.Variants))
	for i := range variantIdx {
		variantIdx[i] = i
	}

	cartItemID := 1
	windowStart := ctx.Anchor.AddDate(0, 0, -30)

	for _, ci := range activeCarts {
		cart := ctx.DS.Carts[ci]
		numItems := randInt(ctx.Rand, 1, 5)

		// Distinct variants within one cart.
		for _, vi := range sampleInts(ctx.Rand, variantIdx, numItems) {
			variant := ctx.DS.Variants[vi]

			ctx.DS.CartItems = append(ctx.DS.CartItems, dataset.CartItem{
				CartItemID:      cartItemID,
				CartID:          cart.CartID,
				VariantID:       variant.VariantID,
				Quantity:        randInt(ctx.Rand, 1, 5),
				PriceAtAddition: variant.Price,
				AddedAt:         ctx.Synth.DateTimeBetween(windowStart, ctx.Anchor),
				IsSelected:      flag(ctx.Rand),
			})
			cartItemID++
		}
	}
	return nil
}

func genOrders(ctx *Context) error {
	orderID := 1
	windowStart := ctx.Anchor.AddDate(-2, 0, 0)

	for _, buyer := range ctx.DS.Buyers {
		for i := 0; i < buyer.OrdersCount; i++ {
			orderDate := ctx.Synth.DateTimeBetween(windowStart, ctx.Anchor)

			subtotal := roundThousand(uniform(ctx.Rand, 50000, 2000000))
			shippingFee := roundThousand(uniform(ctx.Rand, 10000, 50000))
			platformFee := roundThousand(subtotal * 0.05)
			tax := roundThousand(subtotal * 0.11)

			discount := 0.0
			if ctx.Rand.Float64() < 0.3 {
				discount = roundThousand(subtotal * uniform(ctx.Rand, 0.05, 0.2))
			}

			totalAmount := subtotal + shippingFee + platformFee + tax - discount

			paymentStatus := choiceString(ctx.Rand, paymentStatuses)
			paymentDate := dataset.Epoch
			switch paymentStatus {
			case "Paid":
				paymentDate = orderDate.Add(time.Duration(randInt(ctx.Rand, 1, 24)) * time.Hour)
			case "Failed":
				paymentDate = orderDate.Add(time.Duration(randInt(ctx.Rand, 24, 72)) * time.Hour)
			case "Refunded":
				paymentDate = orderDate.AddDate(0, 0, randInt(ctx.Rand, 1, 7))
			}

			suffix, err := ctx.Synth.UniqueInt(10000000, 99999999)
			if err != nil {
				return fmt.Errorf("order number issuance: %w", err)
			}

			ctx.DS.Orders = append(ctx.DS.Orders, dataset.Order{
				OrderID:       orderID,
				BuyerID:       buyer.BuyerID,
				OrderNumber:   fmt.Sprintf("ORD-%d", suffix),
				OrderDate:     orderDate,
				Subtotal:      subtotal,
				ShippingFee:   shippingFee,
				PlatformFee:   platformFee,
				Tax:           tax,
				Discount:      discount,
				TotalAmount:   totalAmount,
				PaymentMethod: choiceString(ctx.Rand, paymentMethods),
				PaymentStatus: paymentStatus,
				PaymentDate:   paymentDate,
			})
			orderID++
		}
	}
	return nil
}

func genOrderItems(ctx *Context) error {
	// Tiny runs can have no sellers (and therefore no variants) at all;
	// orders then simply have no fulfillment rows.
	if len(ctx.DS.Sellers) == 0 || len(ctx.DS.Variants) == 0 {
		return nil
	}

	sellerIDs := make([]int, len(ctx.DS.Sellers))
	for i, s := range ctx.DS.Sellers {
		sellerIDs[i] = s.SellerID
	}

	orderItemID := 1

	for _, order := range ctx.DS.Orders {
		// Failed payments never produce fulfillment rows.
		if order.PaymentStatus == "Failed" {
			continue
		}

		numItems := randInt(ctx.Rand, 1, 5)
		itemSellers := sampleInts(ctx.Rand, sellerIDs, numItems)

		for i := 0; i < numItems; i++ {
			sellerID := itemSellers[i%len(itemSellers)]
			variant := ctx.DS.Variants[ctx.Rand.Intn(len(ctx.DS.Variants))]

			quantity := randInt(ctx.Rand, 1, 3)
			unitPrice := variant.Price
			subtotal := unitPrice * float64(quantity)

			var orderStatus string
			switch order.PaymentStatus {
			case "Pending":
				orderStatus = "Processing"
			case "Refunded":
				orderStatus = choiceString(ctx.Rand, []string{"Returned", "Cancelled"})
			default:
				orderStatus = weightedChoice(ctx.Rand, orderStatusFlow, orderStatusWeights)
			}

			statusUpdated := order.OrderDate
			switch orderStatus {
			case "Shipped":
				statusUpdated = order.OrderDate.AddDate(0, 0, randInt(ctx.Rand, 1, 2))
			case "Delivered":
				statusUpdated = order.OrderDate.AddDate(0, 0, randInt(ctx.Rand, 3, 7))
			case "Completed":
				statusUpdated = order.OrderDate.AddDate(0, 0, randInt(ctx.Rand, 8, 14))
			}

			trackingNumber := ""
			shippingMethod := ""
			estimatedDelivery := dataset.Epoch
			if shippedStatuses[orderStatus] {
				trackingNumber = ctx.Synth.Bothify("TRK-########")
				shippingMethod = choiceString(ctx.Rand, shippingMethods)
				estimatedDelivery = order.OrderDate.AddDate(0, 0, randInt(ctx.Rand, 3, 10))
			}

			ctx.DS.OrderItems = append(ctx.DS.OrderItems, dataset.OrderItem{
				OrderItemID:       orderItemID,
				OrderID:           order.OrderID,
				SellerID:          sellerID,
				VariantID:         variant.VariantID,
				Quantity:          quantity,
				UnitPrice:         unitPrice,
				Subtotal:          subtotal,
				OrderStatus:       orderStatus,
				StatusUpdated:     statusUpdated,
				TrackingNumber:    trackingNumber,
				ShippingMethod:    shippingMethod,
				EstimatedDelivery: estimatedDelivery,
			})
			orderItemID++
		}
	}
	return nil
}
