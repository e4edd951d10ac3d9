package caixa

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNomeDuplicado indica colisão no nome único do caixa aberto.
	ErrNomeDuplicado = errors.New("já existe um caixa com esse nome")
	// ErrPossuiDependentes bloqueia a remoção de um caixa que ainda tem
	// operações de crédito ou movimentos vinculados.
	ErrPossuiDependentes = errors.New("caixa possui operações ou movimentos vinculados")
)

type Repository interface {
	Criar(db *gorm.DB, c *Caixa) error
	ListarTodos(db *gorm.DB) ([]Caixa, error)
	BuscarPorID(db *gorm.DB, id uint) (*Caixa, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Caixa) (*Caixa, error)
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Caixa) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var existentes int64
		if err := tx.Model(&Caixa{}).
			Where("caixa_aberto = ?", c.CaixaAberto).
			Count(&existentes).Error; err != nil {
			return err
		}
		if existentes > 0 {
			return ErrNomeDuplicado
		}

		c.AtualizarFechamento()
		return tx.Create(c).Error
	})
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Caixa, error) {
	var caixas []Caixa
	err := db.Order("id").Find(&caixas).Error
	return caixas, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Caixa, error) {
	var c Caixa
	if err := db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Atualizar sobrescreve os campos do caixa e recalcula o fechamento na
// mesma transação, para que o valor persistido nunca fique defasado dos
// componentes.
func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Caixa) (*Caixa, error) {
	var atualizado Caixa
	err := db.Transaction(func(tx *gorm.DB) error {
		var existente Caixa
		if err := tx.First(&existente, id).Error; err != nil {
			return err
		}

		var colisoes int64
		if err := tx.Model(&Caixa{}).
			Where("caixa_aberto = ? AND id <> ?", novosDados.CaixaAberto, id).
			Count(&colisoes).Error; err != nil {
			return err
		}
		if colisoes > 0 {
			return ErrNomeDuplicado
		}

		existente.CaixaAberto = novosDados.CaixaAberto
		existente.Data = novosDados.Data
		existente.SaldoInicial = novosDados.SaldoInicial
		existente.ValorCartaoCredito = novosDados.ValorCartaoCredito
		existente.ValorCartaoDebito = novosDados.ValorCartaoDebito
		existente.ValorIfood = novosDados.ValorIfood
		existente.ValorDinheiro = novosDados.ValorDinheiro
		existente.ValorFiado = novosDados.ValorFiado
		existente.SaidasCaixa = novosDados.SaidasCaixa
		existente.ValorAcrescimo = novosDados.ValorAcrescimo
		existente.AtualizarFechamento()

		if err := tx.Save(&existente).Error; err != nil {
			return err
		}

		atualizado = existente
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &atualizado, nil
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	var c Caixa
	if err := db.First(&c, id).Error; err != nil {
		return err
	}

	var dependentes int64
	if err := db.Table("op_creditos").
		Where("caixa_id = ? AND deleted_at IS NULL", id).
		Count(&dependentes).Error; err != nil {
		return err
	}
	if dependentes == 0 {
		if err := db.Table("movimentos").
			Where("caixa_id = ? AND deleted_at IS NULL", id).
			Count(&dependentes).Error; err != nil {
			return err
		}
	}
	if dependentes > 0 {
		return ErrPossuiDependentes
	}

	// remoção definitiva: o nome do caixa volta a ficar livre para uma
	// nova abertura
	return db.Unscoped().Delete(&c).Error
}
