package service

import (
	"context"
	"errors"
	"slices"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/dto"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/model"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/repository"
	apperrors "github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/errors"
)

// ── errores del módulo aula ──

var (
	ErrAulaNotFound   = apperrors.Wrap(apperrors.ErrNotFound, "Aula no encontrada")
	ErrSedeParcial    = apperrors.NewValidation("id_sede", "Para cambiar sede, envía id_sede e id_institucion juntos.")
	ErrAulaSedeNoCoin = apperrors.NewValidation("id_aula", "El aula no pertenece a la sede e institución indicadas.")
)

// AulaService operaciones sobre aulas
type AulaService interface {
	Create(ctx context.Context, req *dto.CreateAulaRequest) (*dto.AulaResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.AulaResponse, error)
	List(ctx context.Context, q *dto.AulaListQuery) ([]dto.AulaResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateAulaRequest) (*dto.AulaResponse, error)
	Delete(ctx context.Context, id int64) error

	AsignarTutor(ctx context.Context, req *dto.AsignarTutorRequest) (*dto.AulaResponse, error)
	ListEstudiantes(ctx context.Context, id int64) ([]dto.EstudianteResponse, error)
	ListHorarios(ctx context.Context, id int64) ([]dto.HorarioResponse, error)
}

type aulaService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAulaService crea AulaService
func NewAulaService(repo *repository.Repository, logger *zap.Logger) AulaService {
	return &aulaService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *aulaService) Create(ctx context.Context, req *dto.CreateAulaRequest) (*dto.AulaResponse, error) {
	if err := s.checkSede(ctx, req.IDSede, req.IDInstitucion); err != nil {
		return nil, err
	}
	if req.IDTutor != nil {
		if err := s.checkTutor(ctx, *req.IDTutor); err != nil {
			return nil, err
		}
	}

	aula := &model.Aula{
		NombreAula:    req.NombreAula,
		Grado:         req.Grado,
		IDSede:        req.IDSede,
		IDInstitucion: req.IDInstitucion,
		IDPrograma:    req.IDPrograma,
		IDTutor:       req.IDTutor,
	}
	if err := s.repo.Aula.Create(ctx, aula); err != nil {
		return nil, dbError(s.logger, "crear aula falló", err)
	}

	s.logger.Info("aula creada", zap.Int64("id_aula", aula.IDAula), zap.Int("grado", aula.Grado))
	return toAulaResponse(aula), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *aulaService) GetByID(ctx context.Context, id int64) (*dto.AulaResponse, error) {
	aula, err := s.repo.Aula.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(s.logger, err, ErrAulaNotFound, "consultar aula falló", zap.Int64("id", id))
	}
	return toAulaResponse(aula), nil
}

// ────────────────────── List ──────────────────────

func (s *aulaService) List(ctx context.Context, q *dto.AulaListQuery) ([]dto.AulaResponse, error) {
	list, err := s.repo.Aula.List(ctx, repository.AulaFilter{
		IDSede:        q.IDSede,
		IDInstitucion: q.IDInstitucion,
		Grado:         q.Grado,
		IDTutor:       q.IDTutor,
		Limit:         q.GetLimit(LimitAulas),
	})
	if err != nil {
		return nil, dbError(s.logger, "listar aulas falló", err)
	}
	return toAulaResponses(list), nil
}

// ────────────────────── Update ──────────────────────

func (s *aulaService) Update(ctx context.Context, id int64, req *dto.UpdateAulaRequest) (*dto.AulaResponse, error) {
	if (req.IDSede == nil) != (req.IDInstitucion == nil) {
		return nil, ErrSedeParcial
	}

	set := repository.NewAulaUpdate()
	repository.SetIfPresent(set, "nombre_aula", req.NombreAula)
	repository.SetIfPresent(set, "grado", req.Grado)
	repository.SetIfPresent(set, "id_sede", req.IDSede)
	repository.SetIfPresent(set, "id_institucion", req.IDInstitucion)
	repository.SetIfPresent(set, "id_programa", req.IDPrograma)
	repository.SetIfPresent(set, "id_tutor", req.IDTutor)
	if err := updateOrEmpty(set); err != nil {
		return nil, err
	}

	err := s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		aula, err := txRepo.Aula.GetByIDForUpdate(ctx, id)
		if err != nil {
			return notFoundOr(s.logger, err, ErrAulaNotFound, "consultar aula falló", zap.Int64("id", id))
		}

		if req.IDSede != nil {
			if err := checkSedeWith(ctx, txRepo, s.logger, *req.IDSede, *req.IDInstitucion); err != nil {
				return err
			}
		}
		if req.IDTutor != nil {
			if err := checkTutorWith(ctx, txRepo, s.logger, *req.IDTutor); err != nil {
				return err
			}
		}

		// un cambio de grado no puede dejar el aula por encima de su nuevo máximo
		// semanal ni con horarios en días que el nuevo grado no admite
		if req.Grado != nil && *req.Grado != aula.Grado {
			existentes, err := txRepo.Horario.CountByAula(ctx, id, nil)
			if err != nil {
				return dbError(s.logger, "contar horarios falló", err, zap.Int64("id_aula", id))
			}
			if limite := CapSemanal(*req.Grado); existentes > int64(limite) {
				return apperrors.NewValidation("grado",
					"El aula tiene %d horario(s) semanales; el máximo para grado %d es %d", existentes, *req.Grado, limite)
			}

			horarios, err := txRepo.Horario.List(ctx, &id, LimitHorarios)
			if err != nil {
				return dbError(s.logger, "listar horarios falló", err, zap.Int64("id_aula", id))
			}
			permitidos := DiasPermitidos(*req.Grado)
			for _, h := range horarios {
				if !slices.Contains(permitidos, h.Dia) {
					return apperrors.NewValidation("grado",
						"El aula tiene un horario el %s; los días permitidos para grado %d son %s",
						h.Dia, *req.Grado, strings.Join(permitidos, ", "))
				}
			}
		}

		if err := txRepo.Aula.Update(ctx, id, set); err != nil {
			return notFoundOr(s.logger, err, ErrAulaNotFound, "actualizar aula falló", zap.Int64("id", id))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// ────────────────────── Delete ──────────────────────

func (s *aulaService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Aula.Delete(ctx, id); err != nil {
		return notFoundOr(s.logger, err, ErrAulaNotFound, "eliminar aula falló", zap.Int64("id", id))
	}
	return nil
}

// ────────────────────── AsignarTutor ──────────────────────

// AsignarTutor fija (o quita, con id_tutor nulo) el tutor actual del aula
func (s *aulaService) AsignarTutor(ctx context.Context, req *dto.AsignarTutorRequest) (*dto.AulaResponse, error) {
	aula, err := s.repo.Aula.GetByID(ctx, req.IDAula)
	if err != nil {
		return nil, notFoundOr(s.logger, err, ErrAulaNotFound, "consultar aula falló", zap.Int64("id", req.IDAula))
	}
	if aula.IDSede != req.IDSede || aula.IDInstitucion != req.IDInstitucion {
		return nil, ErrAulaSedeNoCoin
	}
	if req.IDTutor != nil {
		if err := s.checkTutor(ctx, *req.IDTutor); err != nil {
			return nil, err
		}
	}

	set := repository.NewAulaUpdate()
	set.Set("id_tutor", req.IDTutor)
	if err := s.repo.Aula.Update(ctx, req.IDAula, set); err != nil {
		return nil, notFoundOr(s.logger, err, ErrAulaNotFound, "asignar tutor falló", zap.Int64("id", req.IDAula))
	}

	aula.IDTutor = req.IDTutor
	return toAulaResponse(aula), nil
}

// ────────────────────── Relaciones ──────────────────────

func (s *aulaService) ListEstudiantes(ctx context.Context, id int64) ([]dto.EstudianteResponse, error) {
	if _, err := s.repo.Aula.GetByID(ctx, id); err != nil {
		return nil, notFoundOr(s.logger, err, ErrAulaNotFound, "consultar aula falló", zap.Int64("id", id))
	}
	list, err := s.repo.Estudiante.List(ctx, &id, LimitEstudiantes)
	if err != nil {
		return nil, dbError(s.logger, "listar estudiantes del aula falló", err, zap.Int64("id_aula", id))
	}

	result := make([]dto.EstudianteResponse, 0, len(list))
	for i := range list {
		result = append(result, *toEstudianteResponse(&list[i]))
	}
	return result, nil
}

func (s *aulaService) ListHorarios(ctx context.Context, id int64) ([]dto.HorarioResponse, error) {
	if _, err := s.repo.Aula.GetByID(ctx, id); err != nil {
		return nil, notFoundOr(s.logger, err, ErrAulaNotFound, "consultar aula falló", zap.Int64("id", id))
	}
	list, err := s.repo.Horario.List(ctx, &id, LimitHorarios)
	if err != nil {
		return nil, dbError(s.logger, "listar horarios del aula falló", err, zap.Int64("id_aula", id))
	}
	return toHorarioResponses(list), nil
}

// ── helpers ──

func (s *aulaService) checkSede(ctx context.Context, idSede, idInstitucion int64) error {
	return checkSedeWith(ctx, s.repo, s.logger, idSede, idInstitucion)
}

func (s *aulaService) checkTutor(ctx context.Context, idTutor int64) error {
	return checkTutorWith(ctx, s.repo, s.logger, idTutor)
}

// checkSedeWith la sede debe existir y pertenecer a la institución
func checkSedeWith(ctx context.Context, repo *repository.Repository, logger *zap.Logger, idSede, idInstitucion int64) error {
	ok, err := repo.Sede.Exists(ctx, idSede, idInstitucion)
	if err != nil {
		return dbError(logger, "consultar sede falló", err, zap.Int64("id_sede", idSede))
	}
	if !ok {
		return apperrors.NewValidation("id_sede",
			"La sede %d no existe en la institución %d", idSede, idInstitucion)
	}
	return nil
}

func checkTutorWith(ctx context.Context, repo *repository.Repository, logger *zap.Logger, idTutor int64) error {
	if _, err := repo.Tutor.GetByID(ctx, idTutor); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewValidation("id_tutor", "El tutor %d no existe", idTutor)
		}
		return dbError(logger, "consultar tutor falló", err, zap.Int64("id_tutor", idTutor))
	}
	return nil
}

func toAulaResponse(aula *model.Aula) *dto.AulaResponse {
	return &dto.AulaResponse{
		IDAula:        aula.IDAula,
		NombreAula:    aula.NombreAula,
		Grado:         aula.Grado,
		IDSede:        aula.IDSede,
		IDInstitucion: aula.IDInstitucion,
		IDPrograma:    aula.IDPrograma,
		IDTutor:       aula.IDTutor,
	}
}

func toAulaResponses(list []model.Aula) []dto.AulaResponse {
	result := make([]dto.AulaResponse, 0, len(list))
	for i := range list {
		result = append(result, *toAulaResponse(&list[i]))
	}
	return result
}
