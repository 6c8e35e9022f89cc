package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/model"
)

// SedeRepository acceso a datos de sedes
type SedeRepository interface {
	Create(ctx context.Context, sede *model.Sede) error
	GetByID(ctx context.Context, id int64) (*model.Sede, error)
	// Exists comprueba el par (id_sede, id_institucion) al que apunta la FK compuesta de aula
	Exists(ctx context.Context, idSede, idInstitucion int64) (bool, error)
	List(ctx context.Context, idInstitucion *int64, limit int) ([]model.Sede, error)
	Update(ctx context.Context, id int64, set *UpdateSet) error
	Delete(ctx context.Context, id int64) error
}

// NewSedeUpdate columnas actualizables de sede
func NewSedeUpdate() *UpdateSet {
	return NewUpdateSet("nombre_sede", "direccion", "telefono")
}

type sedeRepo struct {
	db *gorm.DB
}

// NewSedeRepo crea la implementación gorm
func NewSedeRepo(db *gorm.DB) SedeRepository {
	return &sedeRepo{db: db}
}

func (r *sedeRepo) Create(ctx context.Context, sede *model.Sede) error {
	return r.db.WithContext(ctx).Create(sede).Error
}

func (r *sedeRepo) GetByID(ctx context.Context, id int64) (*model.Sede, error) {
	var sede model.Sede
	err := r.db.WithContext(ctx).
		Preload("Institucion").
		Where("id_sede = ?", id).
		First(&sede).Error
	if err != nil {
		return nil, err
	}
	return &sede, nil
}

func (r *sedeRepo) Exists(ctx context.Context, idSede, idInstitucion int64) (bool, error) {
	n, err := countWhere(ctx, r.db, &model.Sede{}, "id_sede = ? AND id_institucion = ?", idSede, idInstitucion)
	return n > 0, err
}

func (r *sedeRepo) List(ctx context.Context, idInstitucion *int64, limit int) ([]model.Sede, error) {
	var list []model.Sede
	db := r.db.WithContext(ctx)
	if idInstitucion != nil {
		db = db.Where("id_institucion = ?", *idInstitucion)
	}
	err := db.Order("id_sede ASC").Limit(limit).Find(&list).Error
	return list, err
}

func (r *sedeRepo) Update(ctx context.Context, id int64, set *UpdateSet) error {
	return updateByID(ctx, r.db, &model.Sede{}, "id_sede", id, set)
}

func (r *sedeRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &model.Sede{}, "id_sede", id)
}
