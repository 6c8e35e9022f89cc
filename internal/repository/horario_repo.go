package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/model"
)

// HorarioRepository acceso a datos de horarios
type HorarioRepository interface {
	Create(ctx context.Context, h *model.Horario) error
	GetByID(ctx context.Context, id int64) (*model.Horario, error)
	List(ctx context.Context, idAula *int64, limit int) ([]model.Horario, error)
	Update(ctx context.Context, id int64, set *UpdateSet) error
	Delete(ctx context.Context, id int64) error
	// CountByAula horarios del aula; excludeID omite la fila que se está editando
	CountByAula(ctx context.Context, aulaID int64, excludeID *int64) (int64, error)
}

// NewHorarioUpdate columnas actualizables de horario
func NewHorarioUpdate() *UpdateSet {
	return NewUpdateSet("dia", "hora_inicio", "hora_fin", "id_aula", "id_sede", "id_institucion")
}

// orden lunes..domingo; los días se guardan en forma canónica
const diaOrderExpr = "CASE dia " +
	"WHEN 'Lunes' THEN 1 WHEN 'Martes' THEN 2 WHEN 'Miércoles' THEN 3 " +
	"WHEN 'Jueves' THEN 4 WHEN 'Viernes' THEN 5 WHEN 'Sábado' THEN 6 ELSE 7 END"

type horarioRepo struct {
	db *gorm.DB
}

// NewHorarioRepo crea la implementación gorm
func NewHorarioRepo(db *gorm.DB) HorarioRepository {
	return &horarioRepo{db: db}
}

func (r *horarioRepo) Create(ctx context.Context, h *model.Horario) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *horarioRepo) GetByID(ctx context.Context, id int64) (*model.Horario, error) {
	var h model.Horario
	if err := r.db.WithContext(ctx).Where("id_horario = ?", id).First(&h).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *horarioRepo) List(ctx context.Context, idAula *int64, limit int) ([]model.Horario, error) {
	var list []model.Horario
	db := r.db.WithContext(ctx)
	if idAula != nil {
		db = db.Where("id_aula = ?", *idAula)
	}
	err := db.
		Order("id_aula ASC").
		Order(diaOrderExpr).
		Order("hora_inicio ASC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *horarioRepo) Update(ctx context.Context, id int64, set *UpdateSet) error {
	return updateByID(ctx, r.db, &model.Horario{}, "id_horario", id, set)
}

func (r *horarioRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &model.Horario{}, "id_horario", id)
}

func (r *horarioRepo) CountByAula(ctx context.Context, aulaID int64, excludeID *int64) (int64, error) {
	if excludeID != nil {
		return countWhere(ctx, r.db, &model.Horario{}, "id_aula = ? AND id_horario <> ?", aulaID, *excludeID)
	}
	return countWhere(ctx, r.db, &model.Horario{}, "id_aula = ?", aulaID)
}
