package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/dto"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/model"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/repository"
	apperrors "github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/errors"
)

// ── errores del módulo institución ──

var (
	ErrInstitucionNotFound = apperrors.Wrap(apperrors.ErrNotFound, "Institución no encontrada")
)

// InstitucionService operaciones sobre instituciones
type InstitucionService interface {
	Create(ctx context.Context, req *dto.CreateInstitucionRequest) (*dto.InstitucionResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.InstitucionResponse, error)
	List(ctx context.Context, limit int) ([]dto.InstitucionResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateInstitucionRequest) (*dto.InstitucionResponse, error)
	Delete(ctx context.Context, id int64) error
}

type institucionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewInstitucionService crea InstitucionService
func NewInstitucionService(repo *repository.Repository, logger *zap.Logger) InstitucionService {
	return &institucionService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *institucionService) Create(ctx context.Context, req *dto.CreateInstitucionRequest) (*dto.InstitucionResponse, error) {
	inst := &model.Institucion{
		Nombre:       req.Nombre,
		Jornada:      req.Jornada,
		DuracionHora: req.DuracionHora,
	}
	if err := s.repo.Institucion.Create(ctx, inst); err != nil {
		return nil, dbError(s.logger, "crear institución falló", err)
	}
	return toInstitucionResponse(inst), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *institucionService) GetByID(ctx context.Context, id int64) (*dto.InstitucionResponse, error) {
	inst, err := s.repo.Institucion.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(s.logger, err, ErrInstitucionNotFound, "consultar institución falló", zap.Int64("id", id))
	}
	return toInstitucionResponse(inst), nil
}

// ────────────────────── List ──────────────────────

func (s *institucionService) List(ctx context.Context, limit int) ([]dto.InstitucionResponse, error) {
	if limit <= 0 {
		limit = LimitInstituciones
	}
	list, err := s.repo.Institucion.List(ctx, limit)
	if err != nil {
		return nil, dbError(s.logger, "listar instituciones falló", err)
	}

	result := make([]dto.InstitucionResponse, 0, len(list))
	for i := range list {
		result = append(result, *toInstitucionResponse(&list[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *institucionService) Update(ctx context.Context, id int64, req *dto.UpdateInstitucionRequest) (*dto.InstitucionResponse, error) {
	set := repository.NewInstitucionUpdate()
	repository.SetIfPresent(set, "nombre", req.Nombre)
	repository.SetIfPresent(set, "jornada", req.Jornada)
	repository.SetIfPresent(set, "duracion_hora", req.DuracionHora)
	if err := updateOrEmpty(set); err != nil {
		return nil, err
	}

	if err := s.repo.Institucion.Update(ctx, id, set); err != nil {
		return nil, notFoundOr(s.logger, err, ErrInstitucionNotFound, "actualizar institución falló", zap.Int64("id", id))
	}
	return s.GetByID(ctx, id)
}

// ────────────────────── Delete ──────────────────────

func (s *institucionService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Institucion.Delete(ctx, id); err != nil {
		return notFoundOr(s.logger, err, ErrInstitucionNotFound, "eliminar institución falló", zap.Int64("id", id))
	}
	return nil
}

// ── helpers ──

func toInstitucionResponse(inst *model.Institucion) *dto.InstitucionResponse {
	return &dto.InstitucionResponse{
		IDInstitucion: inst.IDInstitucion,
		Nombre:        inst.Nombre,
		Jornada:       inst.Jornada,
		DuracionHora:  inst.DuracionHora,
	}
}
