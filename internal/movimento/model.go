package movimento

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Movimento registra uma entrada ou saída avulsa de um caixa (sangria,
// troco, despesa paga na boca do caixa).
type Movimento struct {
	gorm.Model

	CaixaID uint `gorm:"not null;index" json:"caixaId"`

	TipoMovimento string          `gorm:"size:100;not null" json:"tipoMovimento"`
	Valor         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"valor"`
	DataHora      time.Time       `json:"dataHora"`
	Descricao     string          `gorm:"size:255" json:"descricao"`
}
