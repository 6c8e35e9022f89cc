package handler

import (
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/service"
)

// Handler agrupa los handlers de todos los recursos
type Handler struct {
	Auth        *AuthHandler
	Institucion *InstitucionHandler
	Sede        *SedeHandler
	Programa    *ProgramaHandler
	Aula        *AulaHandler
	Persona     *PersonaHandler
	Usuario     *UsuarioHandler
	Tutor       *TutorHandler
	Estudiante  *EstudianteHandler
	Horario     *HorarioHandler
	Periodo     *PeriodoHandler
	Componente  *ComponenteHandler
	Nota        *NotaHandler
	Motivo      *MotivoHandler
	Asistencia  *AsistenciaHandler
	Registro    *RegistroHandler
	Reporte     *ReporteHandler
	Health      *HealthHandler
}

// NewHandler crea el agregado. pinger comprueba la base de datos en /db-health.
func NewHandler(svc *service.Service, pinger Pinger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth),
		Institucion: NewInstitucionHandler(svc.Institucion),
		Sede:        NewSedeHandler(svc.Sede),
		Programa:    NewProgramaHandler(svc.Programa),
		Aula:        NewAulaHandler(svc.Aula),
		Persona:     NewPersonaHandler(svc.Persona),
		Usuario:     NewUsuarioHandler(svc.Usuario),
		Tutor:       NewTutorHandler(svc.Tutor),
		Estudiante:  NewEstudianteHandler(svc.Estudiante),
		Horario:     NewHorarioHandler(svc.Horario),
		Periodo:     NewPeriodoHandler(svc.Periodo),
		Componente:  NewComponenteHandler(svc.Componente),
		Nota:        NewNotaHandler(svc.Nota),
		Motivo:      NewMotivoHandler(svc.Motivo),
		Asistencia:  NewAsistenciaHandler(svc.Asistencia),
		Registro:    NewRegistroHandler(svc.Registro),
		Reporte:     NewReporteHandler(svc.Reporte),
		Health:      NewHealthHandler(pinger),
	}
}
