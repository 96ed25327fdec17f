package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Statuts de stock possibles pour un produit ou une variante
const (
	StockStatusInStock     = "in_stock"
	StockStatusOutOfStock  = "out_of_stock"
	StockStatusOnBackorder = "on_backorder"
	StockStatusPreorder    = "preorder"
)

// Seuil de stock faible par défaut quand la fiche produit n'en précise pas
const DefaultLowStockThreshold = 10

// Product est l'agrégat produit complet, hydraté par le loader avant
// l'assemblage du snapshot. Toutes les relations optionnelles sont des
// pointeurs explicites : rien n'est chargé paresseusement.
type Product struct {
	ID   gocql.UUID `json:"id" db:"product_id"`
	SKU  string     `json:"sku" db:"sku"`
	Slug string     `json:"slug" db:"slug"`
	Name string     `json:"name" db:"name"`

	ShortDescription string `json:"short_description" db:"short_description"`
	Description      string `json:"description" db:"description"`

	// Entrées de tarification
	Price           float64    `json:"price" db:"price"`
	Cost            float64    `json:"cost" db:"cost"`
	DiscountPercent *float64   `json:"discount_percent,omitempty" db:"discount_percent"`
	DiscountFixed   *float64   `json:"discount_fixed,omitempty" db:"discount_fixed"`
	DiscountStart   *time.Time `json:"discount_start,omitempty" db:"discount_start"`
	DiscountEnd     *time.Time `json:"discount_end,omitempty" db:"discount_end"`
	TaxRate         float64    `json:"tax_rate" db:"tax_rate"`
	TaxIncluded     bool       `json:"tax_included" db:"tax_included"`

	// Entrées d'inventaire
	Stock             int    `json:"stock" db:"stock"`
	LowStockThreshold int    `json:"low_stock_threshold" db:"low_stock_threshold"`
	StockStatus       string `json:"stock_status" db:"stock_status"`

	// Expédition / garantie
	Weight        float64 `json:"weight" db:"weight"`
	WidthMM       float64 `json:"width_mm" db:"width_mm"`
	HeightMM      float64 `json:"height_mm" db:"height_mm"`
	DepthMM       float64 `json:"depth_mm" db:"depth_mm"`
	ShippingClass string  `json:"shipping_class" db:"shipping_class"`
	WarrantyInfo  string  `json:"warranty_info" db:"warranty_info"`
	ReturnPolicy  string  `json:"return_policy" db:"return_policy"`

	// Badges stockés (is_new est recalculé à l'assemblage)
	IsNew            bool `json:"is_new" db:"is_new"`
	IsFeatured       bool `json:"is_featured" db:"is_featured"`
	IsTrending       bool `json:"is_trending" db:"is_trending"`
	IsBestseller     bool `json:"is_bestseller" db:"is_bestseller"`
	IsLimitedEdition bool `json:"is_limited_edition" db:"is_limited_edition"`
	IsExclusive      bool `json:"is_exclusive" db:"is_exclusive"`
	IsEcoFriendly    bool `json:"is_eco_friendly" db:"is_eco_friendly"`

	// Audit
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" db:"updated_at"`
	CreatedBy string     `json:"created_by" db:"created_by"`
	UpdatedBy string     `json:"updated_by" db:"updated_by"`

	// Sous-agrégats résolus par le loader
	Category         *Category            `json:"category,omitempty"`
	SubCategory      *Category            `json:"sub_category,omitempty"`
	ChildSubCategory *Category            `json:"child_sub_category,omitempty"`
	Brand            *Brand               `json:"brand,omitempty"`
	Supplier         *Supplier            `json:"supplier,omitempty"`
	Country          *Country             `json:"country,omitempty"`
	Tags             []string             `json:"tags,omitempty"`
	Variants         []ProductVariant     `json:"variants,omitempty"`
	Reviews          []Review             `json:"reviews,omitempty"`
	Analytics        *ProductAnalytics    `json:"analytics,omitempty"`
	PrimaryPhoto     *MediaItem           `json:"primary_photo,omitempty"`
	Gallery          []MediaItem          `json:"gallery,omitempty"`
	Specifications   []SpecificationGroup `json:"specifications,omitempty"`
	FAQs             []ProductFAQ         `json:"faqs,omitempty"`
	Related          []RelatedLink        `json:"related,omitempty"`
	SEO              *SEOMeta             `json:"seo,omitempty"`
}

// ProductVariant est un SKU concret sous un produit parent,
// différencié par sa combinaison d'attributs (taille, couleur...)
type ProductVariant struct {
	ID            gocql.UUID        `json:"id" db:"id"`
	ProductID     gocql.UUID        `json:"product_id" db:"product_id"`
	SKU           string            `json:"sku" db:"sku"`
	Attributes    map[string]string `json:"attributes" db:"attributes"`
	RegularPrice  float64           `json:"regular_price" db:"regular_price"`
	SalePrice     *float64          `json:"sale_price,omitempty" db:"sale_price"`
	StockQuantity int               `json:"stock_quantity" db:"stock_quantity"`
	StockStatus   string            `json:"stock_status" db:"stock_status"`
	Photo         *MediaItem        `json:"photo,omitempty"`
	WidthMM       float64           `json:"width_mm" db:"width_mm"`
	HeightMM      float64           `json:"height_mm" db:"height_mm"`
	DepthMM       float64           `json:"depth_mm" db:"depth_mm"`
}
