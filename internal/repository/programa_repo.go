package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/model"
)

// ProgramaRepository acceso a datos de programas
type ProgramaRepository interface {
	Create(ctx context.Context, p *model.Programa) error
	GetByID(ctx context.Context, id int64) (*model.Programa, error)
	// GetByIDForUpdate bloquea la fila del programa hasta el fin de la transacción
	GetByIDForUpdate(ctx context.Context, id int64) (*model.Programa, error)
	List(ctx context.Context, limit int) ([]model.Programa, error)
	Update(ctx context.Context, id int64, set *UpdateSet) error
	Delete(ctx context.Context, id int64) error
}

// NewProgramaUpdate columnas actualizables de programa
func NewProgramaUpdate() *UpdateSet {
	return NewUpdateSet("tipo")
}

type programaRepo struct {
	db *gorm.DB
}

// NewProgramaRepo crea la implementación gorm
func NewProgramaRepo(db *gorm.DB) ProgramaRepository {
	return &programaRepo{db: db}
}

func (r *programaRepo) Create(ctx context.Context, p *model.Programa) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *programaRepo) GetByID(ctx context.Context, id int64) (*model.Programa, error) {
	var p model.Programa
	if err := r.db.WithContext(ctx).Where("id_programa = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *programaRepo) GetByIDForUpdate(ctx context.Context, id int64) (*model.Programa, error) {
	var p model.Programa
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id_programa = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *programaRepo) List(ctx context.Context, limit int) ([]model.Programa, error) {
	var list []model.Programa
	err := r.db.WithContext(ctx).Order("id_programa ASC").Limit(limit).Find(&list).Error
	return list, err
}

func (r *programaRepo) Update(ctx context.Context, id int64, set *UpdateSet) error {
	return updateByID(ctx, r.db, &model.Programa{}, "id_programa", id, set)
}

func (r *programaRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &model.Programa{}, "id_programa", id)
}
