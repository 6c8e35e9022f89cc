package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/model"
)

// ── Periodo ──

// PeriodoRepository acceso a datos de periodos
type PeriodoRepository interface {
	Create(ctx context.Context, p *model.Periodo) error
	GetByID(ctx context.Context, id int64) (*model.Periodo, error)
	List(ctx context.Context, limit int) ([]model.Periodo, error)
	Update(ctx context.Context, id int64, set *UpdateSet) error
	Delete(ctx context.Context, id int64) error
}

// NewPeriodoUpdate columnas actualizables de periodo
func NewPeriodoUpdate() *UpdateSet {
	return NewUpdateSet("fecha_inicio", "fecha_fin", "id_programa")
}

type periodoRepo struct {
	db *gorm.DB
}

// NewPeriodoRepo crea la implementación gorm
func NewPeriodoRepo(db *gorm.DB) PeriodoRepository {
	return &periodoRepo{db: db}
}

func (r *periodoRepo) Create(ctx context.Context, p *model.Periodo) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *periodoRepo) GetByID(ctx context.Context, id int64) (*model.Periodo, error) {
	var p model.Periodo
	if err := r.db.WithContext(ctx).Where("id_periodo = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *periodoRepo) List(ctx context.Context, limit int) ([]model.Periodo, error) {
	var list []model.Periodo
	err := r.db.WithContext(ctx).Order("id_periodo ASC").Limit(limit).Find(&list).Error
	return list, err
}

func (r *periodoRepo) Update(ctx context.Context, id int64, set *UpdateSet) error {
	return updateByID(ctx, r.db, &model.Periodo{}, "id_periodo", id, set)
}

func (r *periodoRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &model.Periodo{}, "id_periodo", id)
}

// ── Componente ──

// ComponenteRepository acceso a datos de componentes de nota
type ComponenteRepository interface {
	Create(ctx context.Context, c *model.Componente) error
	GetByID(ctx context.Context, id int64) (*model.Componente, error)
	List(ctx context.Context, idPrograma *int64, limit int) ([]model.Componente, error)
	Update(ctx context.Context, id int64, set *UpdateSet) error
	Delete(ctx context.Context, id int64) error
	// SumPorcentaje suma de porcentajes del programa, sin contar excludeID
	SumPorcentaje(ctx context.Context, idPrograma int64, excludeID *int64) (float64, error)
}

// NewComponenteUpdate columnas actualizables de componente
func NewComponenteUpdate() *UpdateSet {
	return NewUpdateSet("nombre", "porcentaje", "id_programa")
}

type componenteRepo struct {
	db *gorm.DB
}

// NewComponenteRepo crea la implementación gorm
func NewComponenteRepo(db *gorm.DB) ComponenteRepository {
	return &componenteRepo{db: db}
}

func (r *componenteRepo) Create(ctx context.Context, c *model.Componente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *componenteRepo) GetByID(ctx context.Context, id int64) (*model.Componente, error) {
	var c model.Componente
	if err := r.db.WithContext(ctx).Where("id_componente = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *componenteRepo) List(ctx context.Context, idPrograma *int64, limit int) ([]model.Componente, error) {
	var list []model.Componente
	db := r.db.WithContext(ctx)
	if idPrograma != nil {
		db = db.Where("id_programa = ?", *idPrograma)
	}
	err := db.Order("id_componente ASC").Limit(limit).Find(&list).Error
	return list, err
}

func (r *componenteRepo) Update(ctx context.Context, id int64, set *UpdateSet) error {
	return updateByID(ctx, r.db, &model.Componente{}, "id_componente", id, set)
}

func (r *componenteRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &model.Componente{}, "id_componente", id)
}

func (r *componenteRepo) SumPorcentaje(ctx context.Context, idPrograma int64, excludeID *int64) (float64, error) {
	var total float64
	db := r.db.WithContext(ctx).
		Model(&model.Componente{}).
		Select("COALESCE(SUM(porcentaje), 0)").
		Where("id_programa = ?", idPrograma)
	if excludeID != nil {
		db = db.Where("id_componente <> ?", *excludeID)
	}
	err := db.Scan(&total).Error
	return total, err
}

// ── Nota ──

// NotaFilter filtros del listado de notas
type NotaFilter struct {
	IDEstudiante  *int64
	IDComponente  *int64
	IDEstudiantes []int64
	Limit         int
}

// NotaRepository acceso a datos de notas
type NotaRepository interface {
	Create(ctx context.Context, n *model.Nota) error
	GetByID(ctx context.Context, id int64) (*model.Nota, error)
	List(ctx context.Context, filter NotaFilter) ([]model.Nota, error)
	Update(ctx context.Context, id int64, set *UpdateSet) error
	Delete(ctx context.Context, id int64) error
	DeleteByEstudiante(ctx context.Context, idEstudiante int64) (int64, error)
}

// NewNotaUpdate columnas actualizables de nota
func NewNotaUpdate() *UpdateSet {
	return NewUpdateSet("id_estudiante", "id_componente", "calificacion")
}

type notaRepo struct {
	db *gorm.DB
}

// NewNotaRepo crea la implementación gorm
func NewNotaRepo(db *gorm.DB) NotaRepository {
	return &notaRepo{db: db}
}

func (r *notaRepo) Create(ctx context.Context, n *model.Nota) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notaRepo) GetByID(ctx context.Context, id int64) (*model.Nota, error) {
	var n model.Nota
	if err := r.db.WithContext(ctx).Where("id_nota = ?", id).First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *notaRepo) List(ctx context.Context, filter NotaFilter) ([]model.Nota, error) {
	var list []model.Nota
	db := r.db.WithContext(ctx)
	if filter.IDEstudiante != nil {
		db = db.Where("id_estudiante = ?", *filter.IDEstudiante)
	}
	if filter.IDComponente != nil {
		db = db.Where("id_componente = ?", *filter.IDComponente)
	}
	if len(filter.IDEstudiantes) > 0 {
		db = db.Where("id_estudiante IN ?", filter.IDEstudiantes)
	}
	err := db.Order("id_nota ASC").Limit(filter.Limit).Find(&list).Error
	return list, err
}

func (r *notaRepo) Update(ctx context.Context, id int64, set *UpdateSet) error {
	return updateByID(ctx, r.db, &model.Nota{}, "id_nota", id, set)
}

func (r *notaRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &model.Nota{}, "id_nota", id)
}

func (r *notaRepo) DeleteByEstudiante(ctx context.Context, idEstudiante int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id_estudiante = ?", idEstudiante).Delete(&model.Nota{})
	return res.RowsAffected, res.Error
}
