package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/model"
)

// InstitucionRepository acceso a datos de instituciones
type InstitucionRepository interface {
	Create(ctx context.Context, inst *model.Institucion) error
	GetByID(ctx context.Context, id int64) (*model.Institucion, error)
	List(ctx context.Context, limit int) ([]model.Institucion, error)
	Update(ctx context.Context, id int64, set *UpdateSet) error
	Delete(ctx context.Context, id int64) error
}

// NewInstitucionUpdate conjunto de columnas actualizables de institucion
func NewInstitucionUpdate() *UpdateSet {
	return NewUpdateSet("nombre", "jornada", "duracion_hora")
}

type institucionRepo struct {
	db *gorm.DB
}

// NewInstitucionRepo crea la implementación gorm
func NewInstitucionRepo(db *gorm.DB) InstitucionRepository {
	return &institucionRepo{db: db}
}

func (r *institucionRepo) Create(ctx context.Context, inst *model.Institucion) error {
	return r.db.WithContext(ctx).Create(inst).Error
}

func (r *institucionRepo) GetByID(ctx context.Context, id int64) (*model.Institucion, error) {
	var inst model.Institucion
	if err := r.db.WithContext(ctx).Where("id_institucion = ?", id).First(&inst).Error; err != nil {
		return nil, err
	}
	return &inst, nil
}

func (r *institucionRepo) List(ctx context.Context, limit int) ([]model.Institucion, error) {
	var list []model.Institucion
	err := r.db.WithContext(ctx).
		Order("id_institucion DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *institucionRepo) Update(ctx context.Context, id int64, set *UpdateSet) error {
	return updateByID(ctx, r.db, &model.Institucion{}, "id_institucion", id, set)
}

func (r *institucionRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &model.Institucion{}, "id_institucion", id)
}
