package loader

import (
	"fmt"
	"log"
	"time"

	"github.com/gocql/gocql"

	"vitrine_back_end/internal/database"
	"vitrine_back_end/internal/models"
)

// LoadProduct hydrate l'agrégat produit complet depuis ScyllaDB :
// la ligne produit, puis toutes les relations (catégories, marque,
// variantes, avis, médias, spécifications, FAQ, liens, compteurs).
// L'assembleur ne touche jamais la base : tout est résolu ici.
//
// Seule la ligne produit est obligatoire. Les sous-agrégats qui
// échouent sont logués et laissés vides, le snapshot dégrade proprement.
func LoadProduct(productID gocql.UUID) (*models.Product, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, fmt.Errorf("connexion catalogue: %v", err)
	}

	p, err := loadProductRow(productID)
	if err != nil {
		return nil, err
	}

	loadVariants(p)
	loadReviews(p)
	loadMedia(session, p)
	loadSpecifications(session, p)
	loadFAQs(session, p)
	loadSEO(session, p)
	loadRelated(p)
	loadAnalytics(session, p)

	return p, nil
}

// loadProductRow charge la ligne principale et résout les références
// catégorie/marque/fournisseur/pays
func loadProductRow(productID gocql.UUID) (*models.Product, error) {
	var p models.Product
	var (
		discountPercent, discountFixed        *float64
		discountStart, discountEnd, updatedAt *time.Time
		categoryID, subCategoryID             *gocql.UUID
		childSubCategoryID, brandID           *gocql.UUID
		supplierID                            *gocql.UUID
		countryCode                           string
	)

	query := database.GetPreparedGetProductByID()
	if query == nil {
		return nil, fmt.Errorf("prepared statements non initialisés")
	}

	err := query.Bind(productID).Scan(
		&p.ID, &p.SKU, &p.Slug, &p.Name, &p.ShortDescription, &p.Description,
		&p.Price, &p.Cost, &discountPercent, &discountFixed, &discountStart, &discountEnd,
		&p.TaxRate, &p.TaxIncluded,
		&p.Stock, &p.LowStockThreshold, &p.StockStatus,
		&p.Weight, &p.WidthMM, &p.HeightMM, &p.DepthMM, &p.ShippingClass,
		&p.WarrantyInfo, &p.ReturnPolicy,
		&p.IsNew, &p.IsFeatured, &p.IsTrending, &p.IsBestseller, &p.IsLimitedEdition,
		&p.IsExclusive, &p.IsEcoFriendly,
		&categoryID, &subCategoryID, &childSubCategoryID, &brandID,
		&supplierID, &countryCode, &p.Tags,
		&p.CreatedAt, &updatedAt, &p.CreatedBy, &p.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}

	p.DiscountPercent = discountPercent
	p.DiscountFixed = discountFixed
	p.DiscountStart = discountStart
	p.DiscountEnd = discountEnd
	p.UpdatedAt = updatedAt

	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	p.Category = loadCategory(session, categoryID)
	p.SubCategory = loadCategory(session, subCategoryID)
	p.ChildSubCategory = loadCategory(session, childSubCategoryID)
	p.Brand = loadBrand(session, brandID)
	p.Supplier = loadSupplier(session, supplierID)
	p.Country = loadCountry(session, countryCode)

	return &p, nil
}

func loadCategory(session *gocql.Session, id *gocql.UUID) *models.Category {
	if id == nil {
		return nil
	}
	var c models.Category
	err := session.Query(`SELECT category_id, name, slug FROM categories WHERE category_id = ?`, *id).
		Scan(&c.ID, &c.Name, &c.Slug)
	if err != nil {
		log.Printf("⚠️ Catégorie %s introuvable: %v", id, err)
		return nil
	}
	return &c
}

func loadBrand(session *gocql.Session, id *gocql.UUID) *models.Brand {
	if id == nil {
		return nil
	}
	var b models.Brand
	err := session.Query(`SELECT brand_id, name, slug, logo_path FROM brands WHERE brand_id = ?`, *id).
		Scan(&b.ID, &b.Name, &b.Slug, &b.LogoPath)
	if err != nil {
		log.Printf("⚠️ Marque %s introuvable: %v", id, err)
		return nil
	}
	return &b
}

func loadSupplier(session *gocql.Session, id *gocql.UUID) *models.Supplier {
	if id == nil {
		return nil
	}
	var s models.Supplier
	err := session.Query(`SELECT supplier_id, name FROM suppliers WHERE supplier_id = ?`, *id).
		Scan(&s.ID, &s.Name)
	if err != nil {
		log.Printf("⚠️ Fournisseur %s introuvable: %v", id, err)
		return nil
	}
	return &s
}

func loadCountry(session *gocql.Session, code string) *models.Country {
	if code == "" {
		return nil
	}
	var c models.Country
	err := session.Query(`SELECT code, name FROM countries WHERE code = ?`, code).
		Scan(&c.Code, &c.Name)
	if err != nil {
		log.Printf("⚠️ Pays %s introuvable: %v", code, err)
		return nil
	}
	return &c
}

func loadVariants(p *models.Product) {
	query := database.GetPreparedGetVariantsByProduct()
	if query == nil {
		return
	}

	iter := query.Bind(p.ID).Iter()
	var v models.ProductVariant
	var photoPath string

	for iter.Scan(&v.ID, &v.ProductID, &v.SKU, &v.Attributes, &v.RegularPrice, &v.SalePrice,
		&v.StockQuantity, &v.StockStatus, &photoPath, &v.WidthMM, &v.HeightMM, &v.DepthMM) {
		if photoPath != "" {
			v.Photo = &models.MediaItem{Path: photoPath}
		}
		p.Variants = append(p.Variants, v)
		v = models.ProductVariant{} // Reset pour la prochaine itération
		photoPath = ""
	}

	if err := iter.Close(); err != nil {
		log.Printf("⚠️ Erreur chargement variantes pour %s: %v", p.ID, err)
	}
}

func loadReviews(p *models.Product) {
	query := database.GetPreparedGetReviewsByProduct()
	if query == nil {
		return
	}

	iter := query.Bind(p.ID).Iter()
	var r models.Review

	for iter.Scan(&r.ID, &r.UserID, &r.UserName, &r.Rating, &r.Comment,
		&r.IsVerifiedPurchase, &r.IsRecommended, &r.CreatedAt) {
		r.ProductID = p.ID
		p.Reviews = append(p.Reviews, r)
		r = models.Review{}
	}

	if err := iter.Close(); err != nil {
		log.Printf("⚠️ Erreur chargement avis pour %s: %v", p.ID, err)
	}
}

func loadMedia(session *gocql.Session, p *models.Product) {
	iter := session.Query(`SELECT path, thumbnail_path, alt, width, height, is_primary
		FROM product_media WHERE product_id = ?`, p.ID).Iter()

	var item models.MediaItem
	var isPrimary bool

	for iter.Scan(&item.Path, &item.ThumbnailPath, &item.Alt, &item.Width, &item.Height, &isPrimary) {
		if isPrimary && p.PrimaryPhoto == nil {
			photo := item
			p.PrimaryPhoto = &photo
		} else {
			p.Gallery = append(p.Gallery, item)
		}
		item = models.MediaItem{}
		isPrimary = false
	}

	if err := iter.Close(); err != nil {
		log.Printf("⚠️ Erreur chargement médias pour %s: %v", p.ID, err)
	}
}

func loadSpecifications(session *gocql.Session, p *models.Product) {
	// Les spécifications sont stockées ordonnées par (groupe, position)
	iter := session.Query(`SELECT group_name, name, value
		FROM product_specifications WHERE product_id = ?`, p.ID).Iter()

	var groupName, name, value string
	groupIndex := map[string]int{}

	for iter.Scan(&groupName, &name, &value) {
		idx, exists := groupIndex[groupName]
		if !exists {
			idx = len(p.Specifications)
			groupIndex[groupName] = idx
			p.Specifications = append(p.Specifications, models.SpecificationGroup{Group: groupName})
		}
		p.Specifications[idx].Items = append(p.Specifications[idx].Items,
			models.SpecificationItem{Name: name, Value: value})
	}

	if err := iter.Close(); err != nil {
		log.Printf("⚠️ Erreur chargement spécifications pour %s: %v", p.ID, err)
	}
}

func loadFAQs(session *gocql.Session, p *models.Product) {
	iter := session.Query(`SELECT faq_id, question, answer
		FROM product_faqs WHERE product_id = ?`, p.ID).Iter()

	var f models.ProductFAQ
	for iter.Scan(&f.ID, &f.Question, &f.Answer) {
		p.FAQs = append(p.FAQs, f)
		f = models.ProductFAQ{}
	}

	if err := iter.Close(); err != nil {
		log.Printf("⚠️ Erreur chargement FAQ pour %s: %v", p.ID, err)
	}
}

func loadSEO(session *gocql.Session, p *models.Product) {
	var meta models.SEOMeta
	err := session.Query(`SELECT meta_title, meta_description, og_title, og_description, og_image_path
		FROM product_seo WHERE product_id = ?`, p.ID).
		Scan(&meta.MetaTitle, &meta.MetaDescription, &meta.OGTitle, &meta.OGDescription, &meta.OGImagePath)
	if err != nil {
		// Pas de méta SEO explicite, l'assembleur retombera sur les descriptions
		return
	}
	p.SEO = &meta
}

func loadRelated(p *models.Product) {
	query := database.GetPreparedGetRelatedByProduct()
	if query == nil {
		return
	}

	iter := query.Bind(p.ID).Iter()
	var link models.RelatedLink

	for iter.Scan(&link.ProductID, &link.Kind) {
		p.Related = append(p.Related, link)
		link = models.RelatedLink{}
	}

	if err := iter.Close(); err != nil {
		log.Printf("⚠️ Erreur chargement produits liés pour %s: %v", p.ID, err)
	}
}

func loadAnalytics(session *gocql.Session, p *models.Product) {
	var a models.ProductAnalytics
	err := session.Query(`SELECT views, sales, wishlist_count, cart_count
		FROM product_analytics WHERE product_id = ?`, p.ID).
		Scan(&a.Views, &a.Sales, &a.WishlistCount, &a.CartCount)
	if err != nil {
		// Pas encore de compteurs pour ce produit, rien de grave
		return
	}
	p.Analytics = &a
}
