package opcredito

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OpCredito é o extrato de liquidação que uma operadora reporta para um
// caixa: totais de crédito e débito, pix e voucher.
type OpCredito struct {
	gorm.Model

	CaixaID     uint `gorm:"not null;index" json:"caixaId"`
	OperadoraID uint `gorm:"not null;index" json:"operadoraId"`

	DataExtrato  time.Time       `json:"dataExtrato"`
	TotalCredito decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"totalCredito"`
	TotalDebito  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"totalDebito"`
	ValorPix     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"valorPix"`
	ValorVoucher decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"valorVoucher"`
}
