package opcredito

import (
	"errors"

	"github.com/fechamento-app/api-caixa/internal/caixa"
	"github.com/fechamento-app/api-caixa/internal/operadora"
	"gorm.io/gorm"
)

var (
	ErrCaixaNaoEncontrado     = errors.New("caixa informado não existe")
	ErrOperadoraNaoEncontrada = errors.New("operadora informada não existe")
)

type Repository interface {
	Criar(db *gorm.DB, op *OpCredito) error
	ListarTodos(db *gorm.DB) ([]OpCredito, error)
	ListarPorCaixa(db *gorm.DB, caixaID uint) ([]OpCredito, error)
	BuscarPorID(db *gorm.DB, id uint) (*OpCredito, error)
	Atualizar(db *gorm.DB, id uint, novosDados *OpCredito) (*OpCredito, error)
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// validarReferencias confirma que caixa e operadora apontados existem.
func validarReferencias(db *gorm.DB, caixaID, operadoraID uint) error {
	var n int64
	if err := db.Model(&caixa.Caixa{}).Where("id = ?", caixaID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrCaixaNaoEncontrado
	}

	if err := db.Model(&operadora.OperadoraCredito{}).Where("id = ?", operadoraID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrOperadoraNaoEncontrada
	}
	return nil
}

func (r *repositoryImpl) Criar(db *gorm.DB, op *OpCredito) error {
	if err := validarReferencias(db, op.CaixaID, op.OperadoraID); err != nil {
		return err
	}
	return db.Create(op).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]OpCredito, error) {
	var ops []OpCredito
	err := db.Order("id").Find(&ops).Error
	return ops, err
}

func (r *repositoryImpl) ListarPorCaixa(db *gorm.DB, caixaID uint) ([]OpCredito, error) {
	var ops []OpCredito
	err := db.Where("caixa_id = ?", caixaID).Order("id").Find(&ops).Error
	return ops, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*OpCredito, error) {
	var op OpCredito
	if err := db.First(&op, id).Error; err != nil {
		return nil, err
	}
	return &op, nil
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *OpCredito) (*OpCredito, error) {
	var existente OpCredito
	if err := db.First(&existente, id).Error; err != nil {
		return nil, err
	}

	if err := validarReferencias(db, novosDados.CaixaID, novosDados.OperadoraID); err != nil {
		return nil, err
	}

	existente.CaixaID = novosDados.CaixaID
	existente.OperadoraID = novosDados.OperadoraID
	existente.DataExtrato = novosDados.DataExtrato
	existente.TotalCredito = novosDados.TotalCredito
	existente.TotalDebito = novosDados.TotalDebito
	existente.ValorPix = novosDados.ValorPix
	existente.ValorVoucher = novosDados.ValorVoucher

	if err := db.Save(&existente).Error; err != nil {
		return nil, err
	}
	return &existente, nil
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	var op OpCredito
	if err := db.First(&op, id).Error; err != nil {
		return err
	}
	return db.Unscoped().Delete(&op).Error
}
