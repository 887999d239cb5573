package model

import (
	"github.com/shopspring/decimal"
)

func init() {
	// The dashboard charts read pesoreal/valorfrete as bare JSON numbers,
	// matching what the old Postgres REAL columns produced.
	decimal.MarshalJSONWithoutQuotes = true
}

// Lancamento is a loading/weighing ticket. Column names are kept lowercase to
// stay compatible with the schema the dashboard was built against.
//
// Motorista and Produto are denormalized string copies, not foreign keys:
// deleting a reference-list row never cascades into lancamentos.
type Lancamento struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	Data            string          `json:"data" gorm:"column:data;size:32"`
	HoraPostada     string          `json:"horapostada" gorm:"column:horapostada;size:32"`
	Origem          string          `json:"origem" gorm:"column:origem;size:255"`
	Destino         string          `json:"destino" gorm:"column:destino;size:255"`
	InicioDescarga  string          `json:"iniciodescarga" gorm:"column:iniciodescarga;size:64"`
	TerminoDescarga string          `json:"terminodescarga" gorm:"column:terminodescarga;size:64"`
	TempoDescarga   string          `json:"tempodescarga" gorm:"column:tempodescarga;size:64"`
	Ticket          string          `json:"ticket" gorm:"column:ticket;size:64"`
	PesoReal        decimal.Decimal `json:"pesoreal" gorm:"column:pesoreal;type:decimal(12,2)"`
	Tarifa          decimal.Decimal `json:"tarifa" gorm:"column:tarifa;type:decimal(12,4)"`
	NF              string          `json:"nf" gorm:"column:nf;size:64"`
	Cavalo          string          `json:"cavalo" gorm:"column:cavalo;size:20"`
	Motorista       string          `json:"motorista" gorm:"column:motorista;size:255;index"`
	ValorFrete      decimal.Decimal `json:"valorfrete" gorm:"column:valorfrete;type:decimal(14,2)"`
	Obs             string          `json:"obs" gorm:"column:obs"`
	Produto         string          `json:"produto" gorm:"column:produto;size:255"`
	CaminhoNF       *string         `json:"caminhonf" gorm:"column:caminhonf;size:255"`
}

// TableName keeps the table the dashboard already queries.
func (Lancamento) TableName() string { return "lancamentos" }

// RecomputeValorFrete derives the freight value from weight and tariff.
// It is the only way ValorFrete is ever written.
func (l *Lancamento) RecomputeValorFrete() {
	l.ValorFrete = l.PesoReal.Mul(l.Tarifa).Round(2)
}

// PesoPorMotorista is one row of the weight-per-driver report.
type PesoPorMotorista struct {
	Motorista string          `json:"motorista"`
	TotalPeso decimal.Decimal `json:"total_peso"`
}

// ValorPorProduto is one row of the freight-value-per-product report.
type ValorPorProduto struct {
	Produto    string          `json:"produto"`
	TotalValor decimal.Decimal `json:"total_valor"`
}
