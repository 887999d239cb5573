package model

import "time"

// Role scopes what a user may see and mutate. Stored as plain text but only
// the values below are ever written; comparisons go through the authz package.
type Role string

const (
	RoleMaster    Role = "master"
	RoleMotorista Role = "motorista"
	RoleAuditor   Role = "auditor"
	// RoleVisualizador is a legacy read-only role kept for rows created by
	// older deployments. It is treated exactly like auditor.
	RoleVisualizador Role = "visualizador"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleMaster, RoleMotorista, RoleAuditor, RoleVisualizador:
		return true
	}
	return false
}

// ReadOnly reports whether r may never mutate lancamentos.
func (r Role) ReadOnly() bool {
	return r == RoleAuditor || r == RoleVisualizador
}

// User represents an authenticated user. Drivers ("motorista") own the
// lancamentos whose motorista column matches their NomeCompleto.
type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Username       string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash   string    `json:"-" gorm:"column:password;size:255;not null"` // never expose in JSON
	Role           Role      `json:"role" gorm:"size:20;not null;default:'motorista'"`
	NomeCompleto   string    `json:"nome_completo" gorm:"column:nome_completo;size:255"`
	CPF            string    `json:"cpf" gorm:"column:cpf;size:20"`
	CNH            string    `json:"cnh" gorm:"column:cnh;size:20"`
	PlacaCavalo    string    `json:"placa_cavalo" gorm:"column:placa_cavalo;size:20"`
	PlacasCarretas string    `json:"placas_carretas" gorm:"column:placas_carretas;size:255"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName keeps the table the dashboard already queries.
func (User) TableName() string { return "utilizadores" }
