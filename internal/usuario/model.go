package usuario

import "gorm.io/gorm"

// Usuario é o operador que abre e fecha caixas.
type Usuario struct {
	gorm.Model
	Login string `gorm:"size:100;not null;uniqueIndex" json:"login"`
	Nome  string `gorm:"size:100" json:"nome"`
	Senha string `gorm:"not null" json:"-"`
}
