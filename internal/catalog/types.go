package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Variant is a purchasable size/color combination of a product with its own
// price, stock and SKU.
type Variant struct {
	ID             string           `json:"id"`
	SKU            string           `json:"sku"`
	ProductID      string           `json:"product_id"`
	Size           string           `json:"size"`
	ColorCode      string           `json:"color_code"`
	ColorName      string           `json:"color_name"`
	Price          decimal.Decimal  `json:"price"`
	SalePrice      *decimal.Decimal `json:"sale_price,omitempty"`
	StockAvailable int              `json:"stock_available"`
	IsFlashSale    bool             `json:"is_flash_sale"`
	FlashSaleEnd   *time.Time       `json:"flash_sale_end,omitempty"`
}

// Purchasable reports whether the variant can be added to a cart.
func (v Variant) Purchasable() bool {
	return v.StockAvailable > 0
}

// EffectivePrice returns the sale price when present, otherwise the list price.
func (v Variant) EffectivePrice() decimal.Decimal {
	if v.SalePrice != nil {
		return *v.SalePrice
	}
	return v.Price
}

// ColorOption pairs a color code with its display name.
type ColorOption struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// PriceRange spans the cheapest and most expensive variants of a product.
type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// Product is the read-only catalog projection displayed by the storefront.
type Product struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Brand           string        `json:"brand"`
	Category        string        `json:"category"`
	Description     string        `json:"description"`
	Rating          float64       `json:"rating"`
	ReviewsCount    int           `json:"reviews_count"`
	PriceRange      PriceRange    `json:"price_range"`
	AvailableSizes  []string      `json:"available_sizes"`
	AvailableColors []ColorOption `json:"available_colors"`
	Variants        []Variant     `json:"variants"`
	Images          Images        `json:"images"`
	Materials       []string      `json:"materials,omitempty"`
	Technology      []string      `json:"technology,omitempty"`
	IsFeatured      bool          `json:"is_featured"`
}

// Images carries the catalog image URLs for a product.
type Images struct {
	Main    string   `json:"main"`
	Gallery []string `json:"gallery,omitempty"`
}

// Sneaker is the flattened listing row the catalog service returns, one row
// per in-stock SKU joined with its parent product.
type Sneaker struct {
	ID            string           `json:"id"`
	SKU           string           `json:"sku"`
	Name          string           `json:"name"`
	Brand         string           `json:"brand"`
	Price         decimal.Decimal  `json:"price"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty"`
	Description   string           `json:"description"`
	Category      string           `json:"category"`
	Sizes         []string         `json:"sizes"`
	Colors        []string         `json:"colors"`
	ImageURL      string           `json:"image_url"`
	StockQuantity int              `json:"stock_quantity"`
	Rating        float64          `json:"rating"`
	ReviewsCount  int              `json:"reviews_count"`
	IsFeatured    bool             `json:"is_featured"`
	IsFlashSale   bool             `json:"is_flash_sale"`
	FlashSaleEnd  *time.Time       `json:"flash_sale_end,omitempty"`
	CreatedAt     *time.Time       `json:"created_at,omitempty"`
}

// SneakerPage is one page of listing results.
type SneakerPage struct {
	Sneakers   []Sneaker `json:"sneakers"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
	TotalPages int       `json:"total_pages"`
}

// Listing is the stock-aware aggregation of a product's variants served to
// product pages. Only variants with stock enter AvailableVariants.
type Listing struct {
	Product           Product         `json:"product"`
	AvailableVariants []Variant       `json:"available_variants"`
	TotalStock        int             `json:"total_stock"`
	MinPrice          decimal.Decimal `json:"min_price"`
	VariantCount      int             `json:"variant_count"`
}

// Home groups the sections fetched together when the storefront loads.
type Home struct {
	FlashSales []Sneaker `json:"flash_sales"`
	Featured   []Sneaker `json:"featured"`
	Brands     []string  `json:"brands"`
	Categories []string  `json:"categories"`
}
