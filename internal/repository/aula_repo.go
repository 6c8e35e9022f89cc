package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/model"
)

// AulaFilter filtros opcionales del listado de aulas
type AulaFilter struct {
	IDSede        *int64
	IDInstitucion *int64
	Grado         *int
	IDTutor       *int64
	Limit         int
}

// AulaRepository acceso a datos de aulas
type AulaRepository interface {
	Create(ctx context.Context, aula *model.Aula) error
	// GetByID carga también la institución (duracion_hora la usa el validador de horarios)
	GetByID(ctx context.Context, id int64) (*model.Aula, error)
	// GetByIDForUpdate igual que GetByID pero bloquea la fila hasta el fin de la transacción
	GetByIDForUpdate(ctx context.Context, id int64) (*model.Aula, error)
	List(ctx context.Context, filter AulaFilter) ([]model.Aula, error)
	Update(ctx context.Context, id int64, set *UpdateSet) error
	Delete(ctx context.Context, id int64) error
	// ClearTutor deja id_tutor en NULL en todas las aulas del tutor
	ClearTutor(ctx context.Context, tutorID int64) (int64, error)
}

// NewAulaUpdate columnas actualizables de aula
func NewAulaUpdate() *UpdateSet {
	return NewUpdateSet("nombre_aula", "grado", "id_sede", "id_institucion", "id_programa", "id_tutor")
}

type aulaRepo struct {
	db *gorm.DB
}

// NewAulaRepo crea la implementación gorm
func NewAulaRepo(db *gorm.DB) AulaRepository {
	return &aulaRepo{db: db}
}

func (r *aulaRepo) Create(ctx context.Context, aula *model.Aula) error {
	return r.db.WithContext(ctx).Omit("Institucion").Create(aula).Error
}

func (r *aulaRepo) GetByID(ctx context.Context, id int64) (*model.Aula, error) {
	var aula model.Aula
	err := r.db.WithContext(ctx).
		Preload("Institucion").
		Where("id_aula = ?", id).
		First(&aula).Error
	if err != nil {
		return nil, err
	}
	return &aula, nil
}

func (r *aulaRepo) GetByIDForUpdate(ctx context.Context, id int64) (*model.Aula, error) {
	var aula model.Aula
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Institucion").
		Where("id_aula = ?", id).
		First(&aula).Error
	if err != nil {
		return nil, err
	}
	return &aula, nil
}

func (r *aulaRepo) List(ctx context.Context, filter AulaFilter) ([]model.Aula, error) {
	var list []model.Aula
	db := r.db.WithContext(ctx)

	if filter.IDSede != nil {
		db = db.Where("id_sede = ?", *filter.IDSede)
	}
	if filter.IDInstitucion != nil {
		db = db.Where("id_institucion = ?", *filter.IDInstitucion)
	}
	if filter.Grado != nil {
		db = db.Where("grado = ?", *filter.Grado)
	}
	if filter.IDTutor != nil {
		db = db.Where("id_tutor = ?", *filter.IDTutor)
	}

	err := db.Order("id_aula ASC").Limit(filter.Limit).Find(&list).Error
	return list, err
}

func (r *aulaRepo) Update(ctx context.Context, id int64, set *UpdateSet) error {
	return updateByID(ctx, r.db, &model.Aula{}, "id_aula", id, set)
}

func (r *aulaRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &model.Aula{}, "id_aula", id)
}

func (r *aulaRepo) ClearTutor(ctx context.Context, tutorID int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Aula{}).
		Where("id_tutor = ?", tutorID).
		Update("id_tutor", nil)
	return res.RowsAffected, res.Error
}
