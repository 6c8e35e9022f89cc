package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/model"
)

// ── Motivo ──

// MotivoRepository acceso a datos de motivos de inasistencia
type MotivoRepository interface {
	Create(ctx context.Context, m *model.Motivo) error
	GetByID(ctx context.Context, id int64) (*model.Motivo, error)
	List(ctx context.Context, limit int) ([]model.Motivo, error)
	Update(ctx context.Context, id int64, set *UpdateSet) error
	Delete(ctx context.Context, id int64) error
}

// NewMotivoUpdate columnas actualizables de motivo
func NewMotivoUpdate() *UpdateSet {
	return NewUpdateSet("descripcion")
}

type motivoRepo struct {
	db *gorm.DB
}

// NewMotivoRepo crea la implementación gorm
func NewMotivoRepo(db *gorm.DB) MotivoRepository {
	return &motivoRepo{db: db}
}

func (r *motivoRepo) Create(ctx context.Context, m *model.Motivo) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *motivoRepo) GetByID(ctx context.Context, id int64) (*model.Motivo, error) {
	var m model.Motivo
	if err := r.db.WithContext(ctx).Where("id_motivo = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *motivoRepo) List(ctx context.Context, limit int) ([]model.Motivo, error) {
	var list []model.Motivo
	err := r.db.WithContext(ctx).Order("id_motivo ASC").Limit(limit).Find(&list).Error
	return list, err
}

func (r *motivoRepo) Update(ctx context.Context, id int64, set *UpdateSet) error {
	return updateByID(ctx, r.db, &model.Motivo{}, "id_motivo", id, set)
}

func (r *motivoRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &model.Motivo{}, "id_motivo", id)
}

// ── Asistencias ──

// AsistenciaFilter filtros comunes de los dos listados de asistencia
type AsistenciaFilter struct {
	IDAula *int64
	Fecha  *time.Time
	Limit  int
}

// AsistenciaRepository asistencia de tutores y de estudiantes
type AsistenciaRepository interface {
	CreateTutor(ctx context.Context, a *model.AsistenciaTutor) error
	ListTutor(ctx context.Context, filter AsistenciaFilter) ([]model.AsistenciaTutor, error)
	DeleteTutor(ctx context.Context, id int64) error
	DeleteTutorByTutor(ctx context.Context, tutorID int64) (int64, error)

	CreateEstudiante(ctx context.Context, a *model.AsistenciaEstudiante) error
	ListEstudiante(ctx context.Context, filter AsistenciaFilter) ([]model.AsistenciaEstudiante, error)
	DeleteEstudiante(ctx context.Context, id int64) error
	DeleteEstudianteByEstudiante(ctx context.Context, idEstudiante int64) (int64, error)
}

type asistenciaRepo struct {
	db *gorm.DB
}

// NewAsistenciaRepo crea la implementación gorm
func NewAsistenciaRepo(db *gorm.DB) AsistenciaRepository {
	return &asistenciaRepo{db: db}
}

func (r *asistenciaRepo) scoped(ctx context.Context, filter AsistenciaFilter) *gorm.DB {
	db := r.db.WithContext(ctx)
	if filter.IDAula != nil {
		db = db.Where("id_aula = ?", *filter.IDAula)
	}
	if filter.Fecha != nil {
		db = db.Where("fecha = ?", filter.Fecha.Format(model.FormatoFecha))
	}
	return db.Order("fecha DESC").Order("id_asistencia DESC").Limit(filter.Limit)
}

func (r *asistenciaRepo) CreateTutor(ctx context.Context, a *model.AsistenciaTutor) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *asistenciaRepo) ListTutor(ctx context.Context, filter AsistenciaFilter) ([]model.AsistenciaTutor, error) {
	var list []model.AsistenciaTutor
	err := r.scoped(ctx, filter).Find(&list).Error
	return list, err
}

func (r *asistenciaRepo) DeleteTutor(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &model.AsistenciaTutor{}, "id_asistencia", id)
}

func (r *asistenciaRepo) DeleteTutorByTutor(ctx context.Context, tutorID int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id_tutor = ?", tutorID).Delete(&model.AsistenciaTutor{})
	return res.RowsAffected, res.Error
}

func (r *asistenciaRepo) CreateEstudiante(ctx context.Context, a *model.AsistenciaEstudiante) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *asistenciaRepo) ListEstudiante(ctx context.Context, filter AsistenciaFilter) ([]model.AsistenciaEstudiante, error) {
	var list []model.AsistenciaEstudiante
	err := r.scoped(ctx, filter).Find(&list).Error
	return list, err
}

func (r *asistenciaRepo) DeleteEstudiante(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &model.AsistenciaEstudiante{}, "id_asistencia", id)
}

func (r *asistenciaRepo) DeleteEstudianteByEstudiante(ctx context.Context, idEstudiante int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id_estudiante = ?", idEstudiante).Delete(&model.AsistenciaEstudiante{})
	return res.RowsAffected, res.Error
}
