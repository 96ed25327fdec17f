package catalog

import (
	"time"

	"vitrine_back_end/internal/models"
)

// Assembler compose le snapshot produit complet à partir d'un agrégat
// entièrement hydraté. Aucun I/O : le loader a déjà tout résolu, le
// resolver média est une pure transformation chemin → URL.
type Assembler struct {
	Media MediaResolver
}

// NewAssembler construit un assembleur. Un resolver nil dégrade en
// URLs vides plutôt que de planter.
func NewAssembler(media MediaResolver) *Assembler {
	if media == nil {
		media = func(string) string { return "" }
	}
	return &Assembler{Media: media}
}

// Assemble dérive le snapshot complet d'un produit à l'instant now.
// Déterministe : deux appels avec les mêmes entrées produisent des
// snapshots identiques. Un agrégat nil est une erreur de programmation
// et panique immédiatement.
func (a *Assembler) Assemble(p *models.Product, now time.Time) *ProductSnapshot {
	if p == nil {
		panic("catalog: agrégat produit nil")
	}

	price := ComputeEffectivePrice(p.Price, p.DiscountPercent, p.DiscountFixed, p.DiscountStart, p.DiscountEnd, now)

	threshold := p.LowStockThreshold
	if threshold == 0 {
		threshold = models.DefaultLowStockThreshold
	}

	snapshot := &ProductSnapshot{
		Identity: IdentityBlock{
			ID:   p.ID.String(),
			SKU:  p.SKU,
			Slug: p.Slug,
			Name: p.Name,
		},
		Categorization: a.categorization(p),
		Brand:          a.brand(p.Brand),
		Pricing: PricingBlock{
			BasePrice:         p.Price,
			FinalPrice:        price.FinalPrice,
			DiscountAmount:    price.DiscountAmount,
			DiscountActive:    price.IsActive,
			DiscountDaysLeft:  price.RemainingDays,
			TaxRate:           p.TaxRate,
			TaxIncluded:       p.TaxIncluded,
			TaxAmount:         ComputeTaxAmount(price.FinalPrice, p.TaxRate, p.TaxIncluded),
			Profit:            ComputeProfitMargin(price.FinalPrice, p.Cost),
			VariantPriceRange: ComputeVariantPriceRange(p.Variants),
		},
		Inventory: InventoryBlock{
			Stock:             p.Stock,
			StockStatus:       p.StockStatus,
			LowStockThreshold: threshold,
			IsLowStock:        IsLowStock(p.Stock, threshold),
		},
		Variations:     a.variants(p.Variants),
		Media:          a.media(p),
		Specifications: specGroupViews(p.Specifications),
		Reviews: ReviewsBlock{
			Summary: ComputeRatingSummary(p.Reviews),
			Items:   reviewViews(p.Reviews),
		},
		Shipping: ShippingBlock{
			Weight:        p.Weight,
			WidthMM:       p.WidthMM,
			HeightMM:      p.HeightMM,
			DepthMM:       p.DepthMM,
			ShippingClass: p.ShippingClass,
		},
		Badges: BadgesBlock{
			// is_new est recalculé et écrase le flag stocké
			IsNew:            IsFreshlyListed(p.CreatedAt, now, FreshnessWindowDays),
			IsOnSale:         price.IsActive,
			IsFeatured:       p.IsFeatured,
			IsTrending:       p.IsTrending,
			IsBestseller:     p.IsBestseller,
			IsLimitedEdition: p.IsLimitedEdition,
			IsExclusive:      p.IsExclusive,
			IsEcoFriendly:    p.IsEcoFriendly,
		},
		SEO:             a.seo(p),
		FAQs:            faqViews(p.FAQs),
		RelatedProducts: relatedBuckets(p.Related),
		Warranty: WarrantyBlock{
			WarrantyInfo: p.WarrantyInfo,
			ReturnPolicy: p.ReturnPolicy,
		},
		Supplier: supplierBlock(p),
		Audit: AuditBlock{
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
			CreatedBy: p.CreatedBy,
			UpdatedBy: p.UpdatedBy,
		},
	}

	if p.Analytics != nil {
		snapshot.Analytics = AnalyticsBlock{
			Views:         p.Analytics.Views,
			Sales:         p.Analytics.Sales,
			WishlistCount: p.Analytics.WishlistCount,
			CartCount:     p.Analytics.CartCount,
		}
	}

	return snapshot
}

// categorization projette la chaîne de catégories avec la profondeur
// de chaque niveau (0 = racine)
func (a *Assembler) categorization(p *models.Product) CategorizationBlock {
	block := CategorizationBlock{Tags: p.Tags}
	if block.Tags == nil {
		block.Tags = []string{}
	}
	block.Category = categoryView(p.Category, 0)
	block.SubCategory = categoryView(p.SubCategory, 1)
	block.ChildSubCategory = categoryView(p.ChildSubCategory, 2)
	return block
}

func categoryView(c *models.Category, depth int) *CategoryView {
	if c == nil {
		return nil
	}
	return &CategoryView{
		ID:    c.ID.String(),
		Name:  c.Name,
		Slug:  c.Slug,
		Depth: depth,
	}
}

func (a *Assembler) brand(b *models.Brand) *BrandBlock {
	if b == nil {
		return nil
	}
	block := &BrandBlock{
		ID:   b.ID.String(),
		Name: b.Name,
		Slug: b.Slug,
	}
	if b.LogoPath != "" {
		block.LogoURL = a.Media(b.LogoPath)
	}
	return block
}

func (a *Assembler) variants(variants []models.ProductVariant) []VariantView {
	views := make([]VariantView, 0, len(variants))
	for _, v := range variants {
		effective := v.RegularPrice
		if v.SalePrice != nil {
			effective = *v.SalePrice
		}
		view := VariantView{
			ID:             v.ID.String(),
			SKU:            v.SKU,
			Attributes:     v.Attributes,
			RegularPrice:   v.RegularPrice,
			SalePrice:      v.SalePrice,
			EffectivePrice: effective,
			StockQuantity:  v.StockQuantity,
			StockStatus:    v.StockStatus,
			WidthMM:        v.WidthMM,
			HeightMM:       v.HeightMM,
			DepthMM:        v.DepthMM,
		}
		if v.Photo != nil {
			mv := a.mediaView(*v.Photo)
			view.Photo = &mv
		}
		views = append(views, view)
	}
	return views
}

func (a *Assembler) media(p *models.Product) MediaBlock {
	block := MediaBlock{Gallery: make([]MediaView, 0, len(p.Gallery))}
	if p.PrimaryPhoto != nil {
		mv := a.mediaView(*p.PrimaryPhoto)
		block.Primary = &mv
	}
	for _, item := range p.Gallery {
		block.Gallery = append(block.Gallery, a.mediaView(item))
	}
	return block
}

func (a *Assembler) mediaView(item models.MediaItem) MediaView {
	view := MediaView{
		Alt:    item.Alt,
		Width:  item.Width,
		Height: item.Height,
	}
	if item.Path != "" {
		view.URL = a.Media(item.Path)
	}
	if item.ThumbnailPath != "" {
		view.ThumbnailURL = a.Media(item.ThumbnailPath)
	}
	return view
}

// seo applique les chaînes de repli : méta explicite → description
// courte → description → chaîne vide
func (a *Assembler) seo(p *models.Product) SEOBlock {
	var meta models.SEOMeta
	if p.SEO != nil {
		meta = *p.SEO
	}

	block := SEOBlock{
		Title:         firstNonEmpty(meta.MetaTitle, p.Name),
		Description:   firstNonEmpty(meta.MetaDescription, p.ShortDescription, p.Description),
		OGTitle:       firstNonEmpty(meta.OGTitle, meta.MetaTitle, p.Name),
		OGDescription: firstNonEmpty(meta.OGDescription, meta.MetaDescription, p.ShortDescription, p.Description),
	}

	ogImage := meta.OGImagePath
	if ogImage == "" && p.PrimaryPhoto != nil {
		ogImage = p.PrimaryPhoto.Path
	}
	if ogImage != "" {
		block.OGImageURL = a.Media(ogImage)
	}

	return block
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func reviewViews(reviews []models.Review) []ReviewView {
	views := make([]ReviewView, 0, len(reviews))
	for _, r := range reviews {
		views = append(views, ReviewView{
			ID:                 r.ID.String(),
			UserName:           r.UserName,
			Rating:             r.Rating,
			Comment:            r.Comment,
			IsVerifiedPurchase: r.IsVerifiedPurchase,
			IsRecommended:      r.IsRecommended,
			CreatedAt:          r.CreatedAt,
		})
	}
	return views
}

// specGroupViews projette les groupes de spécifications en conservant
// l'ordre des groupes et des paires
func specGroupViews(groups []models.SpecificationGroup) []SpecGroupView {
	views := make([]SpecGroupView, 0, len(groups))
	for _, g := range groups {
		view := SpecGroupView{Group: g.Group, Items: make([]SpecItemView, 0, len(g.Items))}
		for _, item := range g.Items {
			view.Items = append(view.Items, SpecItemView{Name: item.Name, Value: item.Value})
		}
		views = append(views, view)
	}
	return views
}

func faqViews(faqs []models.ProductFAQ) []FAQView {
	views := make([]FAQView, 0, len(faqs))
	for _, f := range faqs {
		views = append(views, FAQView{
			ID:       f.ID.String(),
			Question: f.Question,
			Answer:   f.Answer,
		})
	}
	return views
}

// relatedBuckets répartit les liens produits par type de relation,
// en conservant l'ordre d'entrée. Les types inconnus sont ignorés.
func relatedBuckets(links []models.RelatedLink) RelatedBlock {
	block := RelatedBlock{
		Similar:                  []string{},
		FrequentlyBoughtTogether: []string{},
		CustomersAlsoViewed:      []string{},
		RecentlyViewed:           []string{},
	}
	for _, link := range links {
		id := link.ProductID.String()
		switch link.Kind {
		case models.RelationSimilar:
			block.Similar = append(block.Similar, id)
		case models.RelationFrequentlyBought:
			block.FrequentlyBoughtTogether = append(block.FrequentlyBoughtTogether, id)
		case models.RelationCustomersAlsoView:
			block.CustomersAlsoViewed = append(block.CustomersAlsoViewed, id)
		case models.RelationRecentlyViewed:
			block.RecentlyViewed = append(block.RecentlyViewed, id)
		}
	}
	return block
}

func supplierBlock(p *models.Product) *SupplierBlock {
	if p.Supplier == nil {
		return nil
	}
	block := &SupplierBlock{
		ID:   p.Supplier.ID.String(),
		Name: p.Supplier.Name,
	}
	if p.Country != nil {
		block.Country = p.Country.Name
	}
	return block
}
