package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/dto"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/model"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/repository"
	apperrors "github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/errors"
)

var ErrProgramaNotFound = apperrors.Wrap(apperrors.ErrNotFound, "Programa no encontrado")

// ProgramaService operaciones sobre programas
type ProgramaService interface {
	Create(ctx context.Context, req *dto.CreateProgramaRequest) (*dto.ProgramaResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ProgramaResponse, error)
	List(ctx context.Context, limit int) ([]dto.ProgramaResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateProgramaRequest) (*dto.ProgramaResponse, error)
	Delete(ctx context.Context, id int64) error
}

type programaService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProgramaService crea ProgramaService
func NewProgramaService(repo *repository.Repository, logger *zap.Logger) ProgramaService {
	return &programaService{repo: repo, logger: logger}
}

func (s *programaService) Create(ctx context.Context, req *dto.CreateProgramaRequest) (*dto.ProgramaResponse, error) {
	p := &model.Programa{Tipo: req.Tipo}
	if err := s.repo.Programa.Create(ctx, p); err != nil {
		return nil, dbError(s.logger, "crear programa falló", err)
	}
	return toProgramaResponse(p), nil
}

func (s *programaService) GetByID(ctx context.Context, id int64) (*dto.ProgramaResponse, error) {
	p, err := s.repo.Programa.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(s.logger, err, ErrProgramaNotFound, "consultar programa falló", zap.Int64("id", id))
	}
	return toProgramaResponse(p), nil
}

func (s *programaService) List(ctx context.Context, limit int) ([]dto.ProgramaResponse, error) {
	if limit <= 0 {
		limit = LimitCatalogo
	}
	list, err := s.repo.Programa.List(ctx, limit)
	if err != nil {
		return nil, dbError(s.logger, "listar programas falló", err)
	}
	result := make([]dto.ProgramaResponse, 0, len(list))
	for i := range list {
		result = append(result, *toProgramaResponse(&list[i]))
	}
	return result, nil
}

func (s *programaService) Update(ctx context.Context, id int64, req *dto.UpdateProgramaRequest) (*dto.ProgramaResponse, error) {
	set := repository.NewProgramaUpdate()
	repository.SetIfPresent(set, "tipo", req.Tipo)
	if err := updateOrEmpty(set); err != nil {
		return nil, err
	}
	if err := s.repo.Programa.Update(ctx, id, set); err != nil {
		return nil, notFoundOr(s.logger, err, ErrProgramaNotFound, "actualizar programa falló", zap.Int64("id", id))
	}
	return s.GetByID(ctx, id)
}

func (s *programaService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Programa.Delete(ctx, id); err != nil {
		return notFoundOr(s.logger, err, ErrProgramaNotFound, "eliminar programa falló", zap.Int64("id", id))
	}
	return nil
}

func toProgramaResponse(p *model.Programa) *dto.ProgramaResponse {
	return &dto.ProgramaResponse{IDPrograma: p.IDPrograma, Tipo: p.Tipo}
}
