package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/model"
)

// EstudianteRepository acceso a datos de estudiantes
type EstudianteRepository interface {
	Create(ctx context.Context, e *model.Estudiante) error
	GetByID(ctx context.Context, id int64) (*model.Estudiante, error)
	List(ctx context.Context, idAula *int64, limit int) ([]model.Estudiante, error)
	Update(ctx context.Context, id int64, set *UpdateSet) error
	Delete(ctx context.Context, id int64) error
	CountReferencias(ctx context.Context, id int64) (model.EstudianteReferencias, error)
}

// NewEstudianteUpdate columnas actualizables de estudiante
func NewEstudianteUpdate() *UpdateSet {
	return NewUpdateSet("tipo_documento", "nombre", "grado", "score_inicial", "score_final",
		"id_aula", "id_sede", "id_institucion")
}

type estudianteRepo struct {
	db *gorm.DB
}

// NewEstudianteRepo crea la implementación gorm
func NewEstudianteRepo(db *gorm.DB) EstudianteRepository {
	return &estudianteRepo{db: db}
}

func (r *estudianteRepo) Create(ctx context.Context, e *model.Estudiante) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *estudianteRepo) GetByID(ctx context.Context, id int64) (*model.Estudiante, error) {
	var e model.Estudiante
	if err := r.db.WithContext(ctx).Where("id_estudiante = ?", id).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *estudianteRepo) List(ctx context.Context, idAula *int64, limit int) ([]model.Estudiante, error) {
	var list []model.Estudiante
	db := r.db.WithContext(ctx)
	if idAula != nil {
		db = db.Where("id_aula = ?", *idAula)
	}
	err := db.Order("id_estudiante ASC").Limit(limit).Find(&list).Error
	return list, err
}

func (r *estudianteRepo) Update(ctx context.Context, id int64, set *UpdateSet) error {
	return updateByID(ctx, r.db, &model.Estudiante{}, "id_estudiante", id, set)
}

func (r *estudianteRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &model.Estudiante{}, "id_estudiante", id)
}

func (r *estudianteRepo) CountReferencias(ctx context.Context, id int64) (model.EstudianteReferencias, error) {
	var refs model.EstudianteReferencias
	var err error

	if refs.Notas, err = countWhere(ctx, r.db, &model.Nota{}, "id_estudiante = ?", id); err != nil {
		return refs, err
	}
	if refs.Asistencias, err = countWhere(ctx, r.db, &model.AsistenciaEstudiante{}, "id_estudiante = ?", id); err != nil {
		return refs, err
	}
	return refs, nil
}
