package movimento

import (
	"errors"

	"github.com/fechamento-app/api-caixa/internal/caixa"
	"gorm.io/gorm"
)

var ErrCaixaNaoEncontrado = errors.New("caixa informado não existe")

type Repository interface {
	Criar(db *gorm.DB, m *Movimento) error
	ListarTodos(db *gorm.DB) ([]Movimento, error)
	ListarPorCaixa(db *gorm.DB, caixaID uint) ([]Movimento, error)
	BuscarPorID(db *gorm.DB, id uint) (*Movimento, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Movimento) (*Movimento, error)
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func validarCaixa(db *gorm.DB, caixaID uint) error {
	var n int64
	if err := db.Model(&caixa.Caixa{}).Where("id = ?", caixaID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrCaixaNaoEncontrado
	}
	return nil
}

func (r *repositoryImpl) Criar(db *gorm.DB, m *Movimento) error {
	if err := validarCaixa(db, m.CaixaID); err != nil {
		return err
	}
	return db.Create(m).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Movimento, error) {
	var movimentos []Movimento
	err := db.Order("id").Find(&movimentos).Error
	return movimentos, err
}

func (r *repositoryImpl) ListarPorCaixa(db *gorm.DB, caixaID uint) ([]Movimento, error) {
	var movimentos []Movimento
	err := db.Where("caixa_id = ?", caixaID).Order("id").Find(&movimentos).Error
	return movimentos, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Movimento, error) {
	var m Movimento
	if err := db.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Movimento) (*Movimento, error) {
	var existente Movimento
	if err := db.First(&existente, id).Error; err != nil {
		return nil, err
	}

	if err := validarCaixa(db, novosDados.CaixaID); err != nil {
		return nil, err
	}

	existente.CaixaID = novosDados.CaixaID
	existente.TipoMovimento = novosDados.TipoMovimento
	existente.Valor = novosDados.Valor
	existente.DataHora = novosDados.DataHora
	existente.Descricao = novosDados.Descricao

	if err := db.Save(&existente).Error; err != nil {
		return nil, err
	}
	return &existente, nil
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	var m Movimento
	if err := db.First(&m, id).Error; err != nil {
		return err
	}
	return db.Unscoped().Delete(&m).Error
}
