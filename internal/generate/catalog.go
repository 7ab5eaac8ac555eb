package generate

import (
	"fmt"

	"github.com/forgelabs/shopforge/internal/dataset"
)

// rootParent marks a top-level category.
const rootParent = 0

type categorySeed struct {
	id, parent, level, order int
	name                     string
}

// Static three-level taxonomy. Products attach to leaf categories only.
var categorySeeds = []categorySeed{
	{1, rootParent, 1, 1, "Fashion"},
	{2, rootParent, 1, 2, "Electronics"},
	{3, rootParent, 1, 3, "Health & Beauty"},
	{4, rootParent, 1, 4, "Home & Living"},
	{5, rootParent, 1, 5, "Sports & Hobbies"},
	{6, 1, 2, 1, "Men's Clothing"},
	{7, 1, 2, 2, "Women's Clothing"},
	{8, 1, 2, 3, "Bags & Wallets"},
	{9, 1, 2, 4, "Shoes"},
	{10, 1, 2, 5, "Accessories"},
	{11, 2, 2, 1, "Phones & Tablets"},
	{12, 2, 2, 2, "Laptops & Computers"},
	{13, 2, 2, 3, "Audio & Video"},
	{14, 2, 2, 4, "Cameras"},
	{15, 2, 2, 5, "Electronic Accessories"},
	{16, 3, 2, 1, "Makeup"},
	{17, 3, 2, 2, "Skin Care"},
	{18, 3, 2, 3, "Hair Care"},
	{19, 3, 2, 4, "Body Care"},
	{20, 3, 2, 5, "Supplements & Vitamins"},
	{31, 6, 3, 1, "Men's Shirts"},
	{32, 6, 3, 2, "Men's T-Shirts"},
	{33, 6, 3, 3, "Men's Pants"},
	{34, 6, 3, 4, "Men's Jackets"},
	{35, 7, 3, 1, "Women's Tops"},
	{36, 7, 3, 2, "Women's Bottoms"},
	{37, 7, 3, 3, "Dresses"},
}

type optionVocabulary struct {
	optionType string
	values     []string
}

var optionVocabularies = []optionVocabulary{
	{"Color", []string{"Red", "Blue", "Black", "White", "Gray", "Brown", "Green", "Yellow", "Pink", "Purple"}},
	{"Size", []string{"S", "M", "L", "XL", "XXL", "36", "37", "38", "39", "40", "41", "42", "43"}},
	{"Capacity", []string{"32GB", "64GB", "128GB", "256GB", "512GB", "1TB"}},
	{"Kind", []string{"Regular", "Premium", "Deluxe", "Limited", "Special"}},
}

func genCategories(ctx *Context) error {
	for _, seed := range categorySeeds {
		ctx.DS.Categories = append(ctx.DS.Categories, dataset.Category{
			CategoryID:       seed.id,
			ParentCategoryID: seed.parent,
			CategoryName:     seed.name,
			Level:            seed.level,
			DisplayOrder:     seed.order,
			Description:      fmt.Sprintf("Category for %s products", seed.name),
			IconURL:          fmt.Sprintf("https://ecommerce.com/categories/icons/%d.png", seed.id),
		})
	}
	return nil
}

// leafCategoryIDs returns categories never referenced as a parent.
func leafCategoryIDs(categories []dataset.Category) []int {
	parents := make(map[int]bool)
	for _, c := range categories {
		if c.ParentCategoryID != rootParent {
			parents[c.ParentCategoryID] = true
		}
	}

	var leaves []int
	for _, c := range categories {
		if !parents[c.CategoryID] {
			leaves = append(leaves, c.CategoryID)
		}
	}
	return leaves
}

func genProducts(ctx *Context) error {
	leaves := leafCategoryIDs(ctx.DS.Categories)
	productID := 1

	for _, seller := range ctx.DS.Sellers {
		numProducts := randInt(ctx.Rand, 3, 10)
		if numProducts > seller.TotalProducts {
			numProducts = seller.TotalProducts
		}

		for i := 0; i < numProducts; i++ {
			createdAt := ctx.Synth.DateTimeBetween(seller.JoinedDate, ctx.Anchor)
			updatedAt := ctx.Synth.DateTimeBetween(createdAt, ctx.Anchor)

			minPrice := roundThousand(uniform(ctx.Rand, 10000, 5000000))
			maxPrice := minPrice * uniform(ctx.Rand, 1, 1.5)

			rating := 0.0
			if ctx.Rand.Float64() > 0.2 {
				rating = round1(uniform(ctx.Rand, 1.0, 5.0))
			}

			ctx.DS.Products = append(ctx.DS.Products, dataset.Product{
				ProductID:       productID,
				SellerID:        seller.SellerID,
				CategoryID:      leaves[ctx.Rand.Intn(len(leaves))],
				ProductName:     ctx.Synth.ProductName(),
				Description:     ctx.Synth.Paragraph(),
				LongDescription: ctx.Synth.Text(1000),
				MinPrice:        minPrice,
				MaxPrice:        maxPrice,
				SellerSKU:       ctx.Synth.Bothify("???-#####"),
				TotalStock:      ctx.Rand.Intn(1001),
				Rating:          rating,
				SoldCount:       ctx.Rand.Intn(501),
				ViewsCount:      randInt(ctx.Rand, 10, 5000),
				IsActive:        flag(ctx.Rand),
				CreatedAt:       createdAt,
				UpdatedAt:       updatedAt,
			})
			productID++
		}
	}
	return nil
}

func genVariants(ctx *Context) error {
	variantID := 1

	for _, product := range ctx.DS.Products {
		numVariants := randInt(ctx.Rand, 1, 5)

		for v := 0; v < numVariants; v++ {
			price := roundThousand(product.MinPrice * uniform(ctx.Rand, 0.9, 1.1))

			name := capitalize(ctx.Synth.Word())
			if numVariants > 1 {
				name = fmt.Sprintf("%s - Variant %d", name, v+1)
			}

			// Each variant is independently bounded by its share of the
			// product stock; sums are not reconciled.
			stockCap := product.TotalStock / numVariants

			ctx.DS.Variants = append(ctx.DS.Variants, dataset.Variant{
				VariantID:   variantID,
				ProductID:   product.ProductID,
				VariantName: name,
				SKU:         fmt.Sprintf("%s-%d", product.SellerSKU, v+1),
				Price:       price,
				Stock:       ctx.Rand.Intn(stockCap + 1),
				ImageURL:    ctx.Synth.ImageURL(),
				IsActive:    flag(ctx.Rand),
			})
			variantID++
		}
	}
	return nil
}

func genVariantOptions(ctx *Context) error {
	optionID := 1
	typeIdx := make([]int, len(optionVocabularies))
	for i := range typeIdx {
		typeIdx[i] = i
	}

	for _, variant := range ctx.DS.Variants {
		numOptions := randInt(ctx.Rand, 1, 3)

		for _, ti := range sampleInts(ctx.Rand, typeIdx, numOptions) {
			vocab := optionVocabularies[ti]

			ctx.DS.VariantOptions = append(ctx.DS.VariantOptions, dataset.VariantOption{
				OptionID:    optionID,
				VariantID:   variant.VariantID,
				OptionType:  vocab.optionType,
				OptionValue: choiceString(ctx.Rand, vocab.values),
			})
			optionID++
		}
	}
	return nil
}

func genProductImages(ctx *Context) error {
	imageID := 1

	for _, product := range ctx.DS.Products {
		numImages := randInt(ctx.Rand, 1, 5)

		for i := 0; i < numImages; i++ {
			isPrimary := 0
			if i == 0 {
				isPrimary = 1
			}

			ctx.DS.ProductImages = append(ctx.DS.ProductImages, dataset.ProductImage{
				ImageID:      imageID,
				ProductID:    product.ProductID,
				ImageURL:     ctx.Synth.ImageURL(),
				IsPrimary:    isPrimary,
				DisplayOrder: i + 1,
			})
			imageID++
		}
	}
	return nil
}
