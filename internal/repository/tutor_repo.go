package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/model"
)

// TutorRepository acceso a datos de tutores y su histórico de asignaciones
type TutorRepository interface {
	Create(ctx context.Context, t *model.Tutor) error
	GetByID(ctx context.Context, id int64) (*model.Tutor, error)
	List(ctx context.Context, limit int) ([]model.Tutor, error)
	Update(ctx context.Context, id int64, set *UpdateSet) error
	Delete(ctx context.Context, id int64) error

	// CountReferencias cuenta aulas, asistencias, asignaciones y registros que apuntan al tutor
	CountReferencias(ctx context.Context, id int64) (model.TutorReferencias, error)

	CreateAsignacion(ctx context.Context, a *model.AsignacionTutorAula) error
	DeleteAsignacionesByTutor(ctx context.Context, tutorID int64) (int64, error)
}

// NewTutorUpdate columnas actualizables de tutor
func NewTutorUpdate() *UpdateSet {
	return NewUpdateSet("id_persona", "fecha_contrato")
}

type tutorRepo struct {
	db *gorm.DB
}

// NewTutorRepo crea la implementación gorm
func NewTutorRepo(db *gorm.DB) TutorRepository {
	return &tutorRepo{db: db}
}

func (r *tutorRepo) Create(ctx context.Context, t *model.Tutor) error {
	return r.db.WithContext(ctx).Omit("Persona").Create(t).Error
}

func (r *tutorRepo) GetByID(ctx context.Context, id int64) (*model.Tutor, error) {
	var t model.Tutor
	err := r.db.WithContext(ctx).
		Preload("Persona").
		Where("id_tutor = ?", id).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tutorRepo) List(ctx context.Context, limit int) ([]model.Tutor, error) {
	var list []model.Tutor
	err := r.db.WithContext(ctx).
		Preload("Persona").
		Order("id_tutor ASC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *tutorRepo) Update(ctx context.Context, id int64, set *UpdateSet) error {
	return updateByID(ctx, r.db, &model.Tutor{}, "id_tutor", id, set)
}

func (r *tutorRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &model.Tutor{}, "id_tutor", id)
}

func (r *tutorRepo) CountReferencias(ctx context.Context, id int64) (model.TutorReferencias, error) {
	var refs model.TutorReferencias
	var err error

	if refs.Aulas, err = countWhere(ctx, r.db, &model.Aula{}, "id_tutor = ?", id); err != nil {
		return refs, err
	}
	if refs.Asistencias, err = countWhere(ctx, r.db, &model.AsistenciaTutor{}, "id_tutor = ?", id); err != nil {
		return refs, err
	}
	if refs.Asignaciones, err = countWhere(ctx, r.db, &model.AsignacionTutorAula{}, "id_tutor = ?", id); err != nil {
		return refs, err
	}
	if refs.Registros, err = countWhere(ctx, r.db, &model.RegistroCambio{}, "id_tutor = ?", id); err != nil {
		return refs, err
	}
	return refs, nil
}

func (r *tutorRepo) CreateAsignacion(ctx context.Context, a *model.AsignacionTutorAula) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *tutorRepo) DeleteAsignacionesByTutor(ctx context.Context, tutorID int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id_tutor = ?", tutorID).Delete(&model.AsignacionTutorAula{})
	return res.RowsAffected, res.Error
}
