package operadora

import "gorm.io/gorm"

// OperadoraCredito é a operadora de cartão/pagamento que envia extratos
// de liquidação para os caixas.
type OperadoraCredito struct {
	gorm.Model
	NomeOperadora string `gorm:"size:100;not null;uniqueIndex" json:"nomeOperadora"`
}
