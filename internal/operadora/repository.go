package operadora

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNomeDuplicado     = errors.New("já existe uma operadora com esse nome")
	ErrPossuiDependentes = errors.New("operadora possui operações de crédito vinculadas")
)

type Repository interface {
	Criar(db *gorm.DB, o *OperadoraCredito) error
	ListarTodas(db *gorm.DB) ([]OperadoraCredito, error)
	BuscarPorID(db *gorm.DB, id uint) (*OperadoraCredito, error)
	Atualizar(db *gorm.DB, id uint, novoNome string) (*OperadoraCredito, error)
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, o *OperadoraCredito) error {
	var existentes int64
	if err := db.Model(&OperadoraCredito{}).
		Where("nome_operadora = ?", o.NomeOperadora).
		Count(&existentes).Error; err != nil {
		return err
	}
	if existentes > 0 {
		return ErrNomeDuplicado
	}
	return db.Create(o).Error
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]OperadoraCredito, error) {
	var operadoras []OperadoraCredito
	err := db.Order("id").Find(&operadoras).Error
	return operadoras, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*OperadoraCredito, error) {
	var o OperadoraCredito
	if err := db.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novoNome string) (*OperadoraCredito, error) {
	var existente OperadoraCredito
	if err := db.First(&existente, id).Error; err != nil {
		return nil, err
	}

	var colisoes int64
	if err := db.Model(&OperadoraCredito{}).
		Where("nome_operadora = ? AND id <> ?", novoNome, id).
		Count(&colisoes).Error; err != nil {
		return nil, err
	}
	if colisoes > 0 {
		return nil, ErrNomeDuplicado
	}

	existente.NomeOperadora = novoNome
	if err := db.Save(&existente).Error; err != nil {
		return nil, err
	}
	return &existente, nil
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	var o OperadoraCredito
	if err := db.First(&o, id).Error; err != nil {
		return err
	}

	var dependentes int64
	if err := db.Table("op_creditos").
		Where("operadora_id = ? AND deleted_at IS NULL", id).
		Count(&dependentes).Error; err != nil {
		return err
	}
	if dependentes > 0 {
		return ErrPossuiDependentes
	}

	// remoção definitiva: o nome da operadora volta a ficar livre
	return db.Unscoped().Delete(&o).Error
}
