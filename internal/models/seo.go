package models

// SEOMeta porte les méta-données SEO explicites d'un produit.
// Les champs vides retombent sur les descriptions produit à l'assemblage.
type SEOMeta struct {
	MetaTitle       string `json:"meta_title,omitempty" db:"meta_title"`
	MetaDescription string `json:"meta_description,omitempty" db:"meta_description"`
	OGTitle         string `json:"og_title,omitempty" db:"og_title"`
	OGDescription   string `json:"og_description,omitempty" db:"og_description"`
	OGImagePath     string `json:"og_image_path,omitempty" db:"og_image_path"`
}
