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

var (
	ErrSedeNotFound = apperrors.Wrap(apperrors.ErrNotFound, "Sede no encontrada")
)

// SedeService operaciones sobre sedes
type SedeService interface {
	Create(ctx context.Context, req *dto.CreateSedeRequest) (*dto.SedeResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.SedeResponse, error)
	List(ctx context.Context, q *dto.SedeListQuery) ([]dto.SedeResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateSedeRequest) (*dto.SedeResponse, error)
	Delete(ctx context.Context, id int64) error
}

type sedeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSedeService crea SedeService
func NewSedeService(repo *repository.Repository, logger *zap.Logger) SedeService {
	return &sedeService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *sedeService) Create(ctx context.Context, req *dto.CreateSedeRequest) (*dto.SedeResponse, error) {
	if _, err := s.repo.Institucion.GetByID(ctx, req.IDInstitucion); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewValidation("id_institucion", "La institución %d no existe", req.IDInstitucion)
		}
		return nil, dbError(s.logger, "consultar institución falló", err)
	}

	sede := &model.Sede{
		IDInstitucion: req.IDInstitucion,
		NombreSede:    req.NombreSede,
		Direccion:     req.Direccion,
		Telefono:      req.Telefono,
	}
	if err := s.repo.Sede.Create(ctx, sede); err != nil {
		return nil, dbError(s.logger, "crear sede falló", err)
	}
	return toSedeResponse(sede), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *sedeService) GetByID(ctx context.Context, id int64) (*dto.SedeResponse, error) {
	sede, err := s.repo.Sede.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(s.logger, err, ErrSedeNotFound, "consultar sede falló", zap.Int64("id", id))
	}
	return toSedeResponse(sede), nil
}

// ────────────────────── List ──────────────────────

func (s *sedeService) List(ctx context.Context, q *dto.SedeListQuery) ([]dto.SedeResponse, error) {
	list, err := s.repo.Sede.List(ctx, q.IDInstitucion, q.GetLimit(LimitSedes))
	if err != nil {
		return nil, dbError(s.logger, "listar sedes falló", err)
	}

	result := make([]dto.SedeResponse, 0, len(list))
	for i := range list {
		result = append(result, *toSedeResponse(&list[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *sedeService) Update(ctx context.Context, id int64, req *dto.UpdateSedeRequest) (*dto.SedeResponse, error) {
	set := repository.NewSedeUpdate()
	repository.SetIfPresent(set, "nombre_sede", req.NombreSede)
	repository.SetIfPresent(set, "direccion", req.Direccion)
	repository.SetIfPresent(set, "telefono", req.Telefono)
	if err := updateOrEmpty(set); err != nil {
		return nil, err
	}

	if err := s.repo.Sede.Update(ctx, id, set); err != nil {
		return nil, notFoundOr(s.logger, err, ErrSedeNotFound, "actualizar sede falló", zap.Int64("id", id))
	}
	return s.GetByID(ctx, id)
}

// ────────────────────── Delete ──────────────────────

func (s *sedeService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Sede.Delete(ctx, id); err != nil {
		return notFoundOr(s.logger, err, ErrSedeNotFound, "eliminar sede falló", zap.Int64("id", id))
	}
	return nil
}

func toSedeResponse(sede *model.Sede) *dto.SedeResponse {
	resp := &dto.SedeResponse{
		IDSede:        sede.IDSede,
		IDInstitucion: sede.IDInstitucion,
		NombreSede:    sede.NombreSede,
		Direccion:     sede.Direccion,
		Telefono:      sede.Telefono,
	}
	if sede.Institucion != nil {
		resp.NombreInstitucion = &sede.Institucion.Nombre
	}
	return resp
}
