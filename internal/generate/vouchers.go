package generate

import "github.com/forgelabs/shopforge/internal/dataset"

func genVouchers(ctx *Context) error {
	voucherID := 1

	for _, seller := range ctx.DS.Sellers {
		numVouchers := ctx.Rand.Intn(6)

		for v := 0; v < numVouchers; v++ {
			isPercentage := flag(ctx.Rand)

			var discount, minPurchase float64
			if isPercentage == 1 {
				discount = float64(randInt(ctx.Rand, 5, 50))
				minPurchase = roundThousand(uniform(ctx.Rand, 50000, 200000))
			} else {
				discount = roundThousand(uniform(ctx.Rand, 10000, 100000))
				minPurchase = roundThousand(discount * uniform(ctx.Rand, 2, 5))
			}

			start := ctx.Synth.DateBetween(ctx.Anchor.AddDate(-1, 0, 0), ctx.Anchor.AddDate(0, 3, 0))
			end := ctx.Synth.DateBetween(start, start.AddDate(0, 0, 90))

			ctx.DS.Vouchers = append(ctx.DS.Vouchers, dataset.Voucher{
				VoucherID:       voucherID,
				SellerID:        seller.SellerID,
				Code:            ctx.Synth.Bothify("???###"),
				Description:     ctx.Synth.Sentence(),
				DiscountAmount:  discount,
				MinimumPurchase: minPurchase,
				IsPercentage:    isPercentage,
				IsFreeShipping:  flag(ctx.Rand),
				UsageLimit:      randInt(ctx.Rand, 50, 1000),
				TimesUsed:       ctx.Rand.Intn(50),
				StartDate:       dataset.DateOf(start),
				EndDate:         dataset.DateOf(end),
				IsActive:        flag(ctx.Rand),
			})
			voucherID++
		}
	}
	return nil
}

func genUserVouchers(ctx *Context) error {
	if len(ctx.DS.Vouchers) == 0 {
		return nil
	}

	voucherIDs := make([]int, len(ctx.DS.Vouchers))
	for i, v := range ctx.DS.Vouchers {
		voucherIDs[i] = v.VoucherID
	}

	userVoucherID := 1
	usedWindowStart := ctx.Anchor.AddDate(0, 0, -30)

	for _, user := range ctx.DS.Users {
		numVouchers := ctx.Rand.Intn(4)

		// Each user holds distinct vouchers.
		for _, voucherID := range sampleInts(ctx.Rand, voucherIDs, numVouchers) {
			isUsed := flag(ctx.Rand)

			usedAt := dataset.Epoch
			if isUsed == 1 {
				usedAt = ctx.Synth.DateTimeBetween(usedWindowStart, ctx.Anchor)
			}

			ctx.DS.UserVouchers = append(ctx.DS.UserVouchers, dataset.UserVoucher{
				UserVoucherID: userVoucherID,
				UserID:        user.UserID,
				VoucherID:     voucherID,
				IsUsed:        isUsed,
				UsedAt:        usedAt,
				ExpiresAt:     ctx.Synth.DateTimeBetween(ctx.Anchor, ctx.Anchor.AddDate(0, 0, 30)),
			})
			userVoucherID++
		}
	}
	return nil
}
