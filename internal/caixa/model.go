package caixa

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Caixa representa uma abertura de caixa para uma data: saldo inicial,
// entradas por meio de pagamento e saídas, com o fechamento calculado.
type Caixa struct {
	gorm.Model

	CaixaAberto string    `gorm:"size:100;not null;uniqueIndex" json:"caixaAberto"`
	Data        time.Time `json:"data"`

	SaldoInicial       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"saldoInicial"`
	ValorCartaoCredito decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"valorCartaoCredito"`
	ValorCartaoDebito  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"valorCartaoDebito"`
	ValorIfood         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"valorIfood"`
	ValorDinheiro      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"valorDinheiro"`
	ValorFiado         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"valorFiado"`
	SaidasCaixa        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"saidasCaixa"`
	ValorAcrescimo     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"valorAcrescimo"`

	// FechamentoDoCaixa é sempre derivado dos demais campos; nunca vem
	// do cliente.
	FechamentoDoCaixa decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"fechamentoDoCaixa"`
}
