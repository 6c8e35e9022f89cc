package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/config"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/api/handler"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/api/middleware"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/api/validation"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/jwt"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/redis"
)

// tope del cuerpo en la importación de calendarios (archivo + multipart)
const maxUploadBytes = 2 << 20

// Setup inicializa y devuelve el motor de rutas. rdb puede ser nil.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	validation.Register()

	r := gin.New()

	// ── middleware global ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// un *redis.Client nil dentro de la interfaz no sería nil
	var blacklist middleware.BlacklistChecker
	var limiter middleware.RateChecker
	if rdb != nil {
		blacklist = rdb
		limiter = rdb
	}

	// ── públicas ──
	r.GET("/", h.Health.Root)
	r.GET("/health", h.Health.Health)
	r.GET("/db-health", h.Health.DBHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/auth/login",
		middleware.BodyLimit(cfg.Server.MaxBodyBytes),
		middleware.RateLimit(limiter, cfg.Auth.LoginRateLimit, cfg.Auth.LoginRateWindow),
		h.Auth.Login,
	)

	// ── autenticadas ──
	authed := r.Group("")
	authed.Use(middleware.JWTAuth(jwtMgr, blacklist))

	// importación .ics con su propio tope
	authed.POST("/aulas/:id/horarios/import", middleware.BodyLimit(maxUploadBytes), h.Reporte.ImportHorariosICS)

	api := authed.Group("")
	api.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))
	{
		api.POST("/auth/logout", h.Auth.Logout)
		api.GET("/auth/me", h.Auth.Me)

		instituciones := api.Group("/instituciones")
		{
			instituciones.POST("", h.Institucion.Create)
			instituciones.GET("", h.Institucion.List)
			instituciones.GET("/:id", h.Institucion.Get)
			instituciones.PUT("/:id", h.Institucion.Update)
			instituciones.DELETE("/:id", h.Institucion.Delete)
		}

		sedes := api.Group("/sedes")
		{
			sedes.POST("", h.Sede.Create)
			sedes.GET("", h.Sede.List)
			sedes.GET("/:id", h.Sede.Get)
			sedes.PUT("/:id", h.Sede.Update)
			sedes.DELETE("/:id", h.Sede.Delete)
		}

		programas := api.Group("/programas")
		{
			programas.POST("", h.Programa.Create)
			programas.GET("", h.Programa.List)
			programas.GET("/:id", h.Programa.Get)
			programas.PUT("/:id", h.Programa.Update)
			programas.DELETE("/:id", h.Programa.Delete)
		}

		aulas := api.Group("/aulas")
		{
			aulas.POST("", h.Aula.Create)
			aulas.GET("", h.Aula.List)
			// ruta estática antes de /:id
			aulas.PUT("/asignar-tutor", h.Aula.AsignarTutor)
			aulas.GET("/:id", h.Aula.Get)
			aulas.PUT("/:id", h.Aula.Update)
			aulas.DELETE("/:id", h.Aula.Delete)
			aulas.GET("/:id/estudiantes", h.Aula.ListEstudiantes)
			aulas.GET("/:id/horarios", h.Aula.ListHorarios)
			aulas.GET("/:id/horarios/ics", h.Reporte.ExportHorariosICS)
			aulas.GET("/:id/notas/export", h.Reporte.ExportNotas)
		}

		personas := api.Group("/personas")
		{
			personas.POST("", h.Persona.Create)
			personas.GET("", h.Persona.List)
			personas.GET("/:id", h.Persona.Get)
			personas.PUT("/:id", h.Persona.Update)
			personas.DELETE("/:id", h.Persona.Delete)
		}

		usuarios := api.Group("/usuarios")
		{
			usuarios.POST("", h.Usuario.Create)
			usuarios.GET("/:id", h.Usuario.Get)
			usuarios.PUT("/:id", h.Usuario.UpdateContrasena)
			usuarios.DELETE("/:id", h.Usuario.Delete)
		}

		tutores := api.Group("/tutores")
		{
			tutores.POST("", h.Tutor.Create)
			tutores.GET("", h.Tutor.List)
			tutores.POST("/asignar", h.Tutor.Asignar)
			tutores.GET("/:id", h.Tutor.Get)
			tutores.PUT("/:id", h.Tutor.Update)
			tutores.DELETE("/:id", h.Tutor.Delete)
			tutores.GET("/:id/aulas", h.Tutor.ListAulas)
		}

		estudiantes := api.Group("/estudiantes")
		{
			estudiantes.POST("", h.Estudiante.Create)
			estudiantes.GET("", h.Estudiante.List)
			estudiantes.GET("/:id", h.Estudiante.Get)
			estudiantes.PUT("/:id", h.Estudiante.Update)
			estudiantes.DELETE("/:id", h.Estudiante.Delete)
		}

		horarios := api.Group("/horarios")
		{
			horarios.POST("", h.Horario.Create)
			horarios.GET("", h.Horario.List)
			horarios.GET("/:id", h.Horario.Get)
			horarios.PUT("/:id", h.Horario.Update)
			horarios.DELETE("/:id", h.Horario.Delete)
		}

		periodos := api.Group("/periodos")
		{
			periodos.POST("", h.Periodo.Create)
			periodos.GET("", h.Periodo.List)
			periodos.GET("/:id", h.Periodo.Get)
			periodos.PUT("/:id", h.Periodo.Update)
			periodos.DELETE("/:id", h.Periodo.Delete)
		}

		componentes := api.Group("/componentes")
		{
			componentes.POST("", h.Componente.Create)
			componentes.GET("", h.Componente.List)
			componentes.GET("/:id", h.Componente.Get)
			componentes.PUT("/:id", h.Componente.Update)
			componentes.DELETE("/:id", h.Componente.Delete)
		}

		notas := api.Group("/notas")
		{
			notas.POST("", h.Nota.Create)
			notas.GET("", h.Nota.List)
			notas.GET("/:id", h.Nota.Get)
			notas.PUT("/:id", h.Nota.Update)
			notas.DELETE("/:id", h.Nota.Delete)
		}

		motivos := api.Group("/motivos")
		{
			motivos.POST("", h.Motivo.Create)
			motivos.GET("", h.Motivo.List)
			motivos.GET("/:id", h.Motivo.Get)
			motivos.PUT("/:id", h.Motivo.Update)
			motivos.DELETE("/:id", h.Motivo.Delete)
		}

		asistencias := api.Group("/asistencias")
		{
			asistencias.POST("/tutores", h.Asistencia.CreateTutor)
			asistencias.GET("/tutores", h.Asistencia.ListTutor)
			asistencias.DELETE("/tutores/:id", h.Asistencia.DeleteTutor)
			asistencias.POST("/estudiantes", h.Asistencia.CreateEstudiante)
			asistencias.GET("/estudiantes", h.Asistencia.ListEstudiante)
			asistencias.DELETE("/estudiantes/:id", h.Asistencia.DeleteEstudiante)
		}

		registros := api.Group("/registros")
		{
			registros.POST("", h.Registro.Create)
			registros.GET("", h.Registro.List)
			registros.GET("/:id", h.Registro.Get)
		}
	}

	return r
}
