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
	ErrHorarioNotFound = apperrors.Wrap(apperrors.ErrNotFound, "Horario no encontrado")
)

// HorarioService horarios semanales de las aulas. Altas y cambios pasan por ValidateHorario.
type HorarioService interface {
	Create(ctx context.Context, req *dto.CreateHorarioRequest) (*dto.HorarioResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.HorarioResponse, error)
	List(ctx context.Context, q *dto.HorarioListQuery) ([]dto.HorarioResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateHorarioRequest) (*dto.HorarioResponse, error)
	Delete(ctx context.Context, id int64) error
}

type horarioService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewHorarioService crea HorarioService
func NewHorarioService(repo *repository.Repository, logger *zap.Logger) HorarioService {
	return &horarioService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *horarioService) Create(ctx context.Context, req *dto.CreateHorarioRequest) (*dto.HorarioResponse, error) {
	var h *model.Horario
	err := s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		var err error
		h, err = createHorario(ctx, txRepo, s.logger, req.IDAula, req.Dia, req.HoraInicio, req.HoraFin)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("horario creado",
		zap.Int64("id_horario", h.IDHorario),
		zap.Int64("id_aula", h.IDAula),
		zap.String("dia", h.Dia),
	)
	return toHorarioResponse(h), nil
}

// createHorario valida y guarda un horario. Debe ejecutarse dentro de una transacción:
// el bloqueo del aula serializa las altas concurrentes contra el máximo semanal.
func createHorario(ctx context.Context, txRepo *repository.Repository, logger *zap.Logger,
	idAula int64, dia, horaInicio, horaFin string) (*model.Horario, error) {

	aula, err := lockAula(ctx, txRepo, logger, idAula)
	if err != nil {
		return nil, err
	}
	duracion, err := duracionAula(ctx, txRepo, logger, aula)
	if err != nil {
		return nil, err
	}

	valido, err := ValidateHorario(ctx, txRepo.Horario, HorarioInput{
		Grado:      aula.Grado,
		Dia:        dia,
		HoraInicio: horaInicio,
		HoraFin:    horaFin,
		Duracion:   duracion,
		IDAula:     aula.IDAula,
	})
	if err != nil {
		return nil, validationOrDB(logger, "validar horario falló", err)
	}

	h := &model.Horario{
		Dia:           valido.Dia,
		HoraInicio:    valido.HoraInicio,
		HoraFin:       valido.HoraFin,
		IDAula:        aula.IDAula,
		IDSede:        aula.IDSede,
		IDInstitucion: aula.IDInstitucion,
	}
	if err := txRepo.Horario.Create(ctx, h); err != nil {
		return nil, dbError(logger, "crear horario falló", err, zap.Int64("id_aula", idAula))
	}
	return h, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *horarioService) GetByID(ctx context.Context, id int64) (*dto.HorarioResponse, error) {
	h, err := s.repo.Horario.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(s.logger, err, ErrHorarioNotFound, "consultar horario falló", zap.Int64("id", id))
	}
	return toHorarioResponse(h), nil
}

// ────────────────────── List ──────────────────────

func (s *horarioService) List(ctx context.Context, q *dto.HorarioListQuery) ([]dto.HorarioResponse, error) {
	list, err := s.repo.Horario.List(ctx, q.IDAula, q.GetLimit(LimitHorarios))
	if err != nil {
		return nil, dbError(s.logger, "listar horarios falló", err)
	}
	return toHorarioResponses(list), nil
}

// ────────────────────── Update ──────────────────────

// Update combina los campos enviados con los guardados y revalida el resultado completo
func (s *horarioService) Update(ctx context.Context, id int64, req *dto.UpdateHorarioRequest) (*dto.HorarioResponse, error) {
	if req.Dia == nil && req.HoraInicio == nil && req.HoraFin == nil && req.IDAula == nil {
		return nil, ErrSinCambios
	}

	var updated *model.Horario
	err := s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		actual, err := txRepo.Horario.GetByID(ctx, id)
		if err != nil {
			return notFoundOr(s.logger, err, ErrHorarioNotFound, "consultar horario falló", zap.Int64("id", id))
		}

		dia, inicio, fin, idAula := actual.Dia, actual.HoraInicio, actual.HoraFin, actual.IDAula
		if req.Dia != nil {
			dia = *req.Dia
		}
		if req.HoraInicio != nil {
			inicio = *req.HoraInicio
		}
		if req.HoraFin != nil {
			fin = *req.HoraFin
		}
		if req.IDAula != nil {
			idAula = *req.IDAula
		}

		aula, err := lockAula(ctx, txRepo, s.logger, idAula)
		if err != nil {
			return err
		}
		duracion, err := duracionAula(ctx, txRepo, s.logger, aula)
		if err != nil {
			return err
		}

		valido, err := ValidateHorario(ctx, txRepo.Horario, HorarioInput{
			Grado:      aula.Grado,
			Dia:        dia,
			HoraInicio: inicio,
			HoraFin:    fin,
			Duracion:   duracion,
			IDAula:     aula.IDAula,
			ExcludeID:  &id,
		})
		if err != nil {
			return validationOrDB(s.logger, "validar horario falló", err)
		}

		set := repository.NewHorarioUpdate().
			Set("dia", valido.Dia).
			Set("hora_inicio", valido.HoraInicio).
			Set("hora_fin", valido.HoraFin).
			Set("id_aula", aula.IDAula).
			Set("id_sede", aula.IDSede).
			Set("id_institucion", aula.IDInstitucion)
		if err := txRepo.Horario.Update(ctx, id, set); err != nil {
			return notFoundOr(s.logger, err, ErrHorarioNotFound, "actualizar horario falló", zap.Int64("id", id))
		}

		updated = &model.Horario{
			IDHorario:     id,
			Dia:           valido.Dia,
			HoraInicio:    valido.HoraInicio,
			HoraFin:       valido.HoraFin,
			IDAula:        aula.IDAula,
			IDSede:        aula.IDSede,
			IDInstitucion: aula.IDInstitucion,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toHorarioResponse(updated), nil
}

// ────────────────────── Delete ──────────────────────

func (s *horarioService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Horario.Delete(ctx, id); err != nil {
		return notFoundOr(s.logger, err, ErrHorarioNotFound, "eliminar horario falló", zap.Int64("id", id))
	}
	return nil
}

// ── helpers ──

// lockAula carga el aula bloqueando su fila; un aula inexistente es un error de validación
func lockAula(ctx context.Context, txRepo *repository.Repository, logger *zap.Logger, idAula int64) (*model.Aula, error) {
	aula, err := txRepo.Aula.GetByIDForUpdate(ctx, idAula)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewValidation("id_aula", "El aula %d no existe", idAula)
		}
		return nil, dbError(logger, "consultar aula falló", err, zap.Int64("id_aula", idAula))
	}
	return aula, nil
}

// duracionAula duracion_hora de la institución del aula
func duracionAula(ctx context.Context, repo *repository.Repository, logger *zap.Logger, aula *model.Aula) (int, error) {
	if aula.Institucion != nil {
		return aula.Institucion.DuracionHora, nil
	}
	inst, err := repo.Institucion.GetByID(ctx, aula.IDInstitucion)
	if err != nil {
		return 0, notFoundOr(logger, err, ErrInstitucionNotFound, "consultar institución falló",
			zap.Int64("id_institucion", aula.IDInstitucion))
	}
	return inst.DuracionHora, nil
}

// validationOrDB los errores de validación pasan tal cual; el resto viene del conteo
func validationOrDB(logger *zap.Logger, msg string, err error) error {
	if apperrors.IsValidation(err) {
		return err
	}
	return dbError(logger, msg, err)
}

func toHorarioResponse(h *model.Horario) *dto.HorarioResponse {
	return &dto.HorarioResponse{
		IDHorario:     h.IDHorario,
		Dia:           h.Dia,
		HoraInicio:    h.HoraInicio,
		HoraFin:       h.HoraFin,
		IDAula:        h.IDAula,
		IDSede:        h.IDSede,
		IDInstitucion: h.IDInstitucion,
	}
}

func toHorarioResponses(list []model.Horario) []dto.HorarioResponse {
	result := make([]dto.HorarioResponse, 0, len(list))
	for i := range list {
		result = append(result, *toHorarioResponse(&list[i]))
	}
	return result
}
