package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/dto"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/model"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/repository"
	apperrors "github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/errors"
)

// ── errores de periodos, componentes y notas ──

var (
	ErrPeriodoNotFound    = apperrors.Wrap(apperrors.ErrNotFound, "Periodo no encontrado")
	ErrComponenteNotFound = apperrors.Wrap(apperrors.ErrNotFound, "Componente no encontrado")
	ErrNotaNotFound       = apperrors.Wrap(apperrors.ErrNotFound, "Nota no encontrada")
	ErrPeriodoFechas      = apperrors.NewValidation("fecha_fin", "La fecha de fin no puede ser anterior a la fecha de inicio")
)

// porcentaje máximo acumulado por programa
const porcentajeTotal = 100.0

// ═══════════════════════════════════════════════════════════
// Periodo
// ═══════════════════════════════════════════════════════════

// PeriodoService periodos académicos de un programa
type PeriodoService interface {
	Create(ctx context.Context, req *dto.CreatePeriodoRequest) (*dto.PeriodoResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.PeriodoResponse, error)
	List(ctx context.Context, limit int) ([]dto.PeriodoResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdatePeriodoRequest) (*dto.PeriodoResponse, error)
	Delete(ctx context.Context, id int64) error
}

type periodoService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPeriodoService crea PeriodoService
func NewPeriodoService(repo *repository.Repository, logger *zap.Logger) PeriodoService {
	return &periodoService{repo: repo, logger: logger}
}

func (s *periodoService) Create(ctx context.Context, req *dto.CreatePeriodoRequest) (*dto.PeriodoResponse, error) {
	inicio, err := parseFechaOpcional("fecha_inicio", &req.FechaInicio)
	if err != nil {
		return nil, err
	}
	fin, err := parseFechaOpcional("fecha_fin", &req.FechaFin)
	if err != nil {
		return nil, err
	}
	if fin.Before(*inicio) {
		return nil, ErrPeriodoFechas
	}

	p := &model.Periodo{FechaInicio: *inicio, FechaFin: *fin, IDPrograma: req.IDPrograma}
	if err := s.repo.Periodo.Create(ctx, p); err != nil {
		return nil, dbError(s.logger, "crear periodo falló", err)
	}
	return toPeriodoResponse(p), nil
}

func (s *periodoService) GetByID(ctx context.Context, id int64) (*dto.PeriodoResponse, error) {
	p, err := s.repo.Periodo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(s.logger, err, ErrPeriodoNotFound, "consultar periodo falló", zap.Int64("id", id))
	}
	return toPeriodoResponse(p), nil
}

func (s *periodoService) List(ctx context.Context, limit int) ([]dto.PeriodoResponse, error) {
	if limit <= 0 {
		limit = LimitCatalogo
	}
	list, err := s.repo.Periodo.List(ctx, limit)
	if err != nil {
		return nil, dbError(s.logger, "listar periodos falló", err)
	}
	result := make([]dto.PeriodoResponse, 0, len(list))
	for i := range list {
		result = append(result, *toPeriodoResponse(&list[i]))
	}
	return result, nil
}

func (s *periodoService) Update(ctx context.Context, id int64, req *dto.UpdatePeriodoRequest) (*dto.PeriodoResponse, error) {
	if req.FechaInicio == nil && req.FechaFin == nil && req.IDPrograma == nil {
		return nil, ErrSinCambios
	}

	actual, err := s.repo.Periodo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(s.logger, err, ErrPeriodoNotFound, "consultar periodo falló", zap.Int64("id", id))
	}

	set := repository.NewPeriodoUpdate()
	inicio, fin := actual.FechaInicio, actual.FechaFin
	if req.FechaInicio != nil {
		t, err := parseFechaOpcional("fecha_inicio", req.FechaInicio)
		if err != nil {
			return nil, err
		}
		inicio = *t
		set.Set("fecha_inicio", inicio)
	}
	if req.FechaFin != nil {
		t, err := parseFechaOpcional("fecha_fin", req.FechaFin)
		if err != nil {
			return nil, err
		}
		fin = *t
		set.Set("fecha_fin", fin)
	}
	if fin.Before(inicio) {
		return nil, ErrPeriodoFechas
	}
	repository.SetIfPresent(set, "id_programa", req.IDPrograma)

	if err := s.repo.Periodo.Update(ctx, id, set); err != nil {
		return nil, notFoundOr(s.logger, err, ErrPeriodoNotFound, "actualizar periodo falló", zap.Int64("id", id))
	}
	return s.GetByID(ctx, id)
}

func (s *periodoService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Periodo.Delete(ctx, id); err != nil {
		return notFoundOr(s.logger, err, ErrPeriodoNotFound, "eliminar periodo falló", zap.Int64("id", id))
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// Componente
// ═══════════════════════════════════════════════════════════

// ComponenteService componentes ponderados de la nota de un programa
type ComponenteService interface {
	Create(ctx context.Context, req *dto.CreateComponenteRequest) (*dto.ComponenteResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ComponenteResponse, error)
	List(ctx context.Context, q *dto.ComponenteListQuery) ([]dto.ComponenteResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateComponenteRequest) (*dto.ComponenteResponse, error)
	Delete(ctx context.Context, id int64) error
}

type componenteService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewComponenteService crea ComponenteService
func NewComponenteService(repo *repository.Repository, logger *zap.Logger) ComponenteService {
	return &componenteService{repo: repo, logger: logger}
}

func (s *componenteService) Create(ctx context.Context, req *dto.CreateComponenteRequest) (*dto.ComponenteResponse, error) {
	c := &model.Componente{Nombre: req.Nombre, Porcentaje: req.Porcentaje, IDPrograma: req.IDPrograma}

	// la fila del programa serializa las altas concurrentes sobre la misma suma
	err := s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if err := s.checkPorcentaje(ctx, txRepo, req.IDPrograma, req.Porcentaje, nil); err != nil {
			return err
		}
		if err := txRepo.Componente.Create(ctx, c); err != nil {
			return dbError(s.logger, "crear componente falló", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toComponenteResponse(c), nil
}

func (s *componenteService) GetByID(ctx context.Context, id int64) (*dto.ComponenteResponse, error) {
	c, err := s.repo.Componente.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(s.logger, err, ErrComponenteNotFound, "consultar componente falló", zap.Int64("id", id))
	}
	return toComponenteResponse(c), nil
}

func (s *componenteService) List(ctx context.Context, q *dto.ComponenteListQuery) ([]dto.ComponenteResponse, error) {
	list, err := s.repo.Componente.List(ctx, q.IDPrograma, q.GetLimit(LimitCatalogo))
	if err != nil {
		return nil, dbError(s.logger, "listar componentes falló", err)
	}
	result := make([]dto.ComponenteResponse, 0, len(list))
	for i := range list {
		result = append(result, *toComponenteResponse(&list[i]))
	}
	return result, nil
}

func (s *componenteService) Update(ctx context.Context, id int64, req *dto.UpdateComponenteRequest) (*dto.ComponenteResponse, error) {
	set := repository.NewComponenteUpdate()
	repository.SetIfPresent(set, "nombre", req.Nombre)
	repository.SetIfPresent(set, "porcentaje", req.Porcentaje)
	repository.SetIfPresent(set, "id_programa", req.IDPrograma)
	if err := updateOrEmpty(set); err != nil {
		return nil, err
	}

	err := s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if req.Porcentaje != nil || req.IDPrograma != nil {
			actual, err := txRepo.Componente.GetByID(ctx, id)
			if err != nil {
				return notFoundOr(s.logger, err, ErrComponenteNotFound, "consultar componente falló", zap.Int64("id", id))
			}
			programa, porcentaje := actual.IDPrograma, actual.Porcentaje
			if req.IDPrograma != nil {
				programa = *req.IDPrograma
			}
			if req.Porcentaje != nil {
				porcentaje = *req.Porcentaje
			}
			if err := s.checkPorcentaje(ctx, txRepo, programa, porcentaje, &id); err != nil {
				return err
			}
		}

		if err := txRepo.Componente.Update(ctx, id, set); err != nil {
			return notFoundOr(s.logger, err, ErrComponenteNotFound, "actualizar componente falló", zap.Int64("id", id))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *componenteService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Componente.Delete(ctx, id); err != nil {
		return notFoundOr(s.logger, err, ErrComponenteNotFound, "eliminar componente falló", zap.Int64("id", id))
	}
	return nil
}

// checkPorcentaje los componentes de un programa no pueden sumar más de 100.
// Bloquea el programa; repo debe ser el de la transacción.
func (s *componenteService) checkPorcentaje(ctx context.Context, repo *repository.Repository, idPrograma int64, porcentaje float64, excludeID *int64) error {
	if _, err := repo.Programa.GetByIDForUpdate(ctx, idPrograma); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewValidation("id_programa", "El programa %d no existe", idPrograma)
		}
		return dbError(s.logger, "consultar programa falló", err, zap.Int64("id_programa", idPrograma))
	}

	suma, err := repo.Componente.SumPorcentaje(ctx, idPrograma, excludeID)
	if err != nil {
		return dbError(s.logger, "sumar porcentajes falló", err, zap.Int64("id_programa", idPrograma))
	}
	if suma+porcentaje > porcentajeTotal+1e-9 {
		return apperrors.NewValidation("porcentaje",
			"Los componentes del programa sumarían %.2f%%; el máximo es 100%% (disponible: %.2f%%)",
			suma+porcentaje, porcentajeTotal-suma)
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// Nota
// ═══════════════════════════════════════════════════════════

// NotaService calificaciones por estudiante y componente
type NotaService interface {
	Create(ctx context.Context, req *dto.CreateNotaRequest) (*dto.NotaResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.NotaResponse, error)
	List(ctx context.Context, q *dto.NotaListQuery) ([]dto.NotaResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateNotaRequest) (*dto.NotaResponse, error)
	Delete(ctx context.Context, id int64) error
}

type notaService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewNotaService crea NotaService
func NewNotaService(repo *repository.Repository, logger *zap.Logger) NotaService {
	return &notaService{repo: repo, logger: logger}
}

func (s *notaService) Create(ctx context.Context, req *dto.CreateNotaRequest) (*dto.NotaResponse, error) {
	n := &model.Nota{
		IDEstudiante: req.IDEstudiante,
		IDComponente: req.IDComponente,
		Calificacion: *req.Calificacion,
	}
	// estudiante y componente los garantiza la FK
	if err := s.repo.Nota.Create(ctx, n); err != nil {
		return nil, dbError(s.logger, "crear nota falló", err,
			zap.Int64("id_estudiante", req.IDEstudiante), zap.Int64("id_componente", req.IDComponente))
	}
	return toNotaResponse(n), nil
}

func (s *notaService) GetByID(ctx context.Context, id int64) (*dto.NotaResponse, error) {
	n, err := s.repo.Nota.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(s.logger, err, ErrNotaNotFound, "consultar nota falló", zap.Int64("id", id))
	}
	return toNotaResponse(n), nil
}

func (s *notaService) List(ctx context.Context, q *dto.NotaListQuery) ([]dto.NotaResponse, error) {
	list, err := s.repo.Nota.List(ctx, repository.NotaFilter{
		IDEstudiante: q.IDEstudiante,
		IDComponente: q.IDComponente,
		Limit:        q.GetLimit(LimitNotas),
	})
	if err != nil {
		return nil, dbError(s.logger, "listar notas falló", err)
	}
	result := make([]dto.NotaResponse, 0, len(list))
	for i := range list {
		result = append(result, *toNotaResponse(&list[i]))
	}
	return result, nil
}

func (s *notaService) Update(ctx context.Context, id int64, req *dto.UpdateNotaRequest) (*dto.NotaResponse, error) {
	set := repository.NewNotaUpdate()
	repository.SetIfPresent(set, "id_estudiante", req.IDEstudiante)
	repository.SetIfPresent(set, "id_componente", req.IDComponente)
	repository.SetIfPresent(set, "calificacion", req.Calificacion)
	if err := updateOrEmpty(set); err != nil {
		return nil, err
	}

	if err := s.repo.Nota.Update(ctx, id, set); err != nil {
		return nil, notFoundOr(s.logger, err, ErrNotaNotFound, "actualizar nota falló", zap.Int64("id", id))
	}
	return s.GetByID(ctx, id)
}

func (s *notaService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Nota.Delete(ctx, id); err != nil {
		return notFoundOr(s.logger, err, ErrNotaNotFound, "eliminar nota falló", zap.Int64("id", id))
	}
	return nil
}

// ── helpers ──

func toPeriodoResponse(p *model.Periodo) *dto.PeriodoResponse {
	return &dto.PeriodoResponse{
		IDPeriodo:   p.IDPeriodo,
		FechaInicio: model.FormatFecha(p.FechaInicio),
		FechaFin:    model.FormatFecha(p.FechaFin),
		IDPrograma:  p.IDPrograma,
	}
}

func toComponenteResponse(c *model.Componente) *dto.ComponenteResponse {
	return &dto.ComponenteResponse{
		IDComponente: c.IDComponente,
		Nombre:       c.Nombre,
		Porcentaje:   c.Porcentaje,
		IDPrograma:   c.IDPrograma,
	}
}

func toNotaResponse(n *model.Nota) *dto.NotaResponse {
	return &dto.NotaResponse{
		IDNota:       n.IDNota,
		IDEstudiante: n.IDEstudiante,
		IDComponente: n.IDComponente,
		Calificacion: n.Calificacion,
	}
}
