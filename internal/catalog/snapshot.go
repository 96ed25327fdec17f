package catalog

import (
	"time"
)

// ProductSnapshot est la représentation complète d'un produit servie aux
// clients. Les noms de champs et l'imbrication constituent le contrat
// avec le front : ne pas renommer sans coordonner.
type ProductSnapshot struct {
	Identity        IdentityBlock       `json:"identity"`
	Categorization  CategorizationBlock `json:"categorization"`
	Brand           *BrandBlock         `json:"brand,omitempty"`
	Pricing         PricingBlock        `json:"pricing"`
	Inventory       InventoryBlock      `json:"inventory"`
	Variations      []VariantView       `json:"variations"`
	Media           MediaBlock          `json:"media"`
	Specifications  []SpecGroupView     `json:"specifications"`
	Reviews         ReviewsBlock        `json:"reviews"`
	Shipping        ShippingBlock       `json:"shipping"`
	Badges          BadgesBlock         `json:"badges"`
	SEO             SEOBlock            `json:"seo"`
	FAQs            []FAQView           `json:"faqs"`
	RelatedProducts RelatedBlock        `json:"related_products"`
	Warranty        WarrantyBlock       `json:"warranty"`
	Supplier        *SupplierBlock      `json:"supplier,omitempty"`
	Audit           AuditBlock          `json:"audit"`
	Analytics       AnalyticsBlock      `json:"analytics"`
}

type IdentityBlock struct {
	ID   string `json:"id"`
	SKU  string `json:"sku"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// CategoryView est un niveau de la chaîne de catégories, avec sa
// profondeur (0 = catégorie racine)
type CategoryView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Depth int    `json:"depth"`
}

type CategorizationBlock struct {
	Category         *CategoryView `json:"category,omitempty"`
	SubCategory      *CategoryView `json:"sub_category,omitempty"`
	ChildSubCategory *CategoryView `json:"child_sub_category,omitempty"`
	Tags             []string      `json:"tags"`
}

type BrandBlock struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	LogoURL string `json:"logo_url,omitempty"`
}

type PricingBlock struct {
	BasePrice         float64      `json:"base_price"`
	FinalPrice        float64      `json:"final_price"`
	DiscountAmount    float64      `json:"discount_amount"`
	DiscountActive    bool         `json:"discount_active"`
	DiscountDaysLeft  *int         `json:"discount_days_left,omitempty"`
	TaxRate           float64      `json:"tax_rate"`
	TaxIncluded       bool         `json:"tax_included"`
	TaxAmount         float64      `json:"tax_amount"`
	Profit            ProfitMargin `json:"profit"`
	VariantPriceRange *PriceRange  `json:"variant_price_range,omitempty"`
}

type InventoryBlock struct {
	Stock             int    `json:"stock"`
	StockStatus       string `json:"stock_status"`
	LowStockThreshold int    `json:"low_stock_threshold"`
	IsLowStock        bool   `json:"is_low_stock"`
}

type VariantView struct {
	ID             string            `json:"id"`
	SKU            string            `json:"sku"`
	Attributes     map[string]string `json:"attributes"`
	RegularPrice   float64           `json:"regular_price"`
	SalePrice      *float64          `json:"sale_price,omitempty"`
	EffectivePrice float64           `json:"effective_price"`
	StockQuantity  int               `json:"stock_quantity"`
	StockStatus    string            `json:"stock_status"`
	Photo          *MediaView        `json:"photo,omitempty"`
	WidthMM        float64           `json:"width_mm"`
	HeightMM       float64           `json:"height_mm"`
	DepthMM        float64           `json:"depth_mm"`
}

type MediaView struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Alt          string `json:"alt,omitempty"`
	Width        int    `json:"width,omitempty"`
	Height       int    `json:"height,omitempty"`
}

type MediaBlock struct {
	Primary *MediaView  `json:"primary,omitempty"`
	Gallery []MediaView `json:"gallery"`
}

type SpecGroupView struct {
	Group string         `json:"group"`
	Items []SpecItemView `json:"items"`
}

type SpecItemView struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type ReviewView struct {
	ID                 string    `json:"id"`
	UserName           string    `json:"user_name"`
	Rating             int       `json:"rating"`
	Comment            string    `json:"comment"`
	IsVerifiedPurchase bool      `json:"is_verified_purchase"`
	IsRecommended      bool      `json:"is_recommended"`
	CreatedAt          time.Time `json:"created_at"`
}

type ReviewsBlock struct {
	Summary RatingSummary `json:"summary"`
	Items   []ReviewView  `json:"items"`
}

type ShippingBlock struct {
	Weight        float64 `json:"weight"`
	WidthMM       float64 `json:"width_mm"`
	HeightMM      float64 `json:"height_mm"`
	DepthMM       float64 `json:"depth_mm"`
	ShippingClass string  `json:"shipping_class"`
}

type BadgesBlock struct {
	IsNew            bool `json:"is_new"`
	IsOnSale         bool `json:"is_on_sale"`
	IsFeatured       bool `json:"is_featured"`
	IsTrending       bool `json:"is_trending"`
	IsBestseller     bool `json:"is_bestseller"`
	IsLimitedEdition bool `json:"is_limited_edition"`
	IsExclusive      bool `json:"is_exclusive"`
	IsEcoFriendly    bool `json:"is_eco_friendly"`
}

type SEOBlock struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	OGTitle       string `json:"og_title"`
	OGDescription string `json:"og_description"`
	OGImageURL    string `json:"og_image_url,omitempty"`
}

type FAQView struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type RelatedBlock struct {
	Similar                  []string `json:"similar"`
	FrequentlyBoughtTogether []string `json:"frequently_bought_together"`
	CustomersAlsoViewed      []string `json:"customers_also_viewed"`
	RecentlyViewed           []string `json:"recently_viewed"`
}

type WarrantyBlock struct {
	WarrantyInfo string `json:"warranty_info"`
	ReturnPolicy string `json:"return_policy"`
}

type SupplierBlock struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
}

type AuditBlock struct {
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	CreatedBy string     `json:"created_by,omitempty"`
	UpdatedBy string     `json:"updated_by,omitempty"`
}

type AnalyticsBlock struct {
	Views         int `json:"views"`
	Sales         int `json:"sales"`
	WishlistCount int `json:"wishlist_count"`
	CartCount     int `json:"cart_count"`
}
