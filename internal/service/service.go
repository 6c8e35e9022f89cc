package service

import (
	"go.uber.org/zap"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/config"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/repository"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/jwt"
)

// Service agrega todos los servicios
type Service struct {
	Auth        AuthService
	Institucion InstitucionService
	Sede        SedeService
	Programa    ProgramaService
	Aula        AulaService
	Persona     PersonaService
	Usuario     UsuarioService
	Tutor       TutorService
	Estudiante  EstudianteService
	Horario     HorarioService
	Periodo     PeriodoService
	Componente  ComponenteService
	Nota        NotaService
	Motivo      MotivoService
	Asistencia  AsistenciaService
	Registro    RegistroService
	Reporte     ReporteService
}

// NewService crea el agregado. blacklist puede ser nil (sin Redis).
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	blacklist TokenBlacklist,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:        NewAuthService(repo, jwtMgr, blacklist, logger),
		Institucion: NewInstitucionService(repo, logger),
		Sede:        NewSedeService(repo, logger),
		Programa:    NewProgramaService(repo, logger),
		Aula:        NewAulaService(repo, logger),
		Persona:     NewPersonaService(repo, logger),
		Usuario:     NewUsuarioService(repo, &cfg.Auth, logger),
		Tutor:       NewTutorService(repo, logger),
		Estudiante:  NewEstudianteService(repo, logger),
		Horario:     NewHorarioService(repo, logger),
		Periodo:     NewPeriodoService(repo, logger),
		Componente:  NewComponenteService(repo, logger),
		Nota:        NewNotaService(repo, logger),
		Motivo:      NewMotivoService(repo, logger),
		Asistencia:  NewAsistenciaService(repo, logger),
		Registro:    NewRegistroService(repo, logger),
		Reporte:     NewReporteService(repo, logger),
	}
}
