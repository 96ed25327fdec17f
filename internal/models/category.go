package models

import (
	"github.com/gocql/gocql"
)

type Category struct {
	ID   gocql.UUID `json:"id"`
	Name string     `json:"name"`
	Slug string     `json:"slug"`
}
