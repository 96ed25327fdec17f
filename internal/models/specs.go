package models

import (
	"github.com/gocql/gocql"
)

// SpecificationGroup regroupe des paires nom/valeur ordonnées
// (ex: "Dimensions" → largeur, hauteur, profondeur)
type SpecificationGroup struct {
	Group string              `json:"group"`
	Items []SpecificationItem `json:"items"`
}

type SpecificationItem struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type ProductFAQ struct {
	ID       gocql.UUID `json:"id"`
	Question string     `json:"question"`
	Answer   string     `json:"answer"`
}
