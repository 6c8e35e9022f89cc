package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/model"
)

// RegistroRepository bitácora de cambios (registro_de_cambio)
type RegistroRepository interface {
	Create(ctx context.Context, reg *model.RegistroCambio) error
	GetByID(ctx context.Context, id int64) (*model.RegistroCambio, error)
	List(ctx context.Context, idTutor *int64, limit int) ([]model.RegistroCambio, error)
	DeleteByTutor(ctx context.Context, tutorID int64) (int64, error)
}

type registroRepo struct {
	db *gorm.DB
}

// NewRegistroRepo crea la implementación gorm
func NewRegistroRepo(db *gorm.DB) RegistroRepository {
	return &registroRepo{db: db}
}

func (r *registroRepo) Create(ctx context.Context, reg *model.RegistroCambio) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *registroRepo) GetByID(ctx context.Context, id int64) (*model.RegistroCambio, error) {
	var reg model.RegistroCambio
	if err := r.db.WithContext(ctx).Where("id_registro = ?", id).First(&reg).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *registroRepo) List(ctx context.Context, idTutor *int64, limit int) ([]model.RegistroCambio, error) {
	var list []model.RegistroCambio
	db := r.db.WithContext(ctx)
	if idTutor != nil {
		db = db.Where("id_tutor = ?", *idTutor)
	}
	err := db.Order("fecha DESC").Order("id_registro DESC").Limit(limit).Find(&list).Error
	return list, err
}

func (r *registroRepo) DeleteByTutor(ctx context.Context, tutorID int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id_tutor = ?", tutorID).Delete(&model.RegistroCambio{})
	return res.RowsAffected, res.Error
}
