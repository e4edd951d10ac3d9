package usuario

import (
	"errors"

	"gorm.io/gorm"
)

var ErrLoginDuplicado = errors.New("já existe um usuário com esse login")

type Repository interface {
	Criar(db *gorm.DB, u *Usuario) error
	BuscarPorLogin(db *gorm.DB, login string) (*Usuario, error)
	BuscarPorID(db *gorm.DB, id uint) (*Usuario, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, u *Usuario) error {
	var existentes int64
	if err := db.Model(&Usuario{}).
		Where("login = ?", u.Login).
		Count(&existentes).Error; err != nil {
		return err
	}
	if existentes > 0 {
		return ErrLoginDuplicado
	}
	return db.Create(u).Error
}

func (r *repositoryImpl) BuscarPorLogin(db *gorm.DB, login string) (*Usuario, error) {
	var u Usuario
	if err := db.Where("login = ?", login).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Usuario, error) {
	var u Usuario
	if err := db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
