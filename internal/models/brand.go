package models

import (
	"github.com/gocql/gocql"
)

type Brand struct {
	ID       gocql.UUID `json:"id"`
	Name     string     `json:"name"`
	Slug     string     `json:"slug"`
	LogoPath string     `json:"logo_path,omitempty"` // chemin objet MinIO, résolu en URL signée à l'assemblage
}

type Supplier struct {
	ID   gocql.UUID `json:"id"`
	Name string     `json:"name"`
}

type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
