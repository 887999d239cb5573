package model

// Referencia is a reference-list entry (produto, origem or destino). The
// three lists share this shape and live in separate tables; see the
// ReferenciaTables slice for the table names.
type Referencia struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Nome string `json:"nome" gorm:"uniqueIndex;size:255;not null"`
}

// Reference-list table names, also used as route segments under /api.
const (
	TableProdutos = "produtos"
	TableOrigens  = "origens"
	TableDestinos = "destinos"
)

// ReferenciaTables lists every reference-list table for migration and seeding.
var ReferenciaTables = []string{TableProdutos, TableOrigens, TableDestinos}
