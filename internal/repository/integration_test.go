//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/model"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/repository"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/database"
	apperrors "github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/errors"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=tutorias password=tutorias dbname=tutorias_test sslmode=disable TimeZone=America/Bogota"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "no se pudo conectar a la base de pruebas: %v\n", err)
		os.Exit(1)
	}

	sqlDB, err := testDB.DB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "obtener sql.DB: %v\n", err)
		os.Exit(1)
	}
	if err := database.RunMigrations(sqlDB, zap.NewNop()); err != nil {
		fmt.Fprintf(os.Stderr, "migraciones fallidas: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

type fixture struct {
	inst  *model.Institucion
	sede  *model.Sede
	aula  *model.Aula
	tutor *model.Tutor
}

func setupFixture(t *testing.T, repo *repository.Repository) (*fixture, func()) {
	t.Helper()
	ctx := context.Background()

	f := &fixture{}
	f.inst = &model.Institucion{Nombre: "IED Prueba", Jornada: model.JornadaMixta, DuracionHora: 45}
	if err := repo.Institucion.Create(ctx, f.inst); err != nil {
		t.Fatalf("crear institución: %v", err)
	}
	f.sede = &model.Sede{IDInstitucion: f.inst.IDInstitucion, NombreSede: "Principal"}
	if err := repo.Sede.Create(ctx, f.sede); err != nil {
		t.Fatalf("crear sede: %v", err)
	}
	f.tutor = &model.Tutor{}
	if err := repo.Tutor.Create(ctx, f.tutor); err != nil {
		t.Fatalf("crear tutor: %v", err)
	}
	f.aula = &model.Aula{
		NombreAula:    "4A",
		Grado:         4,
		IDSede:        f.sede.IDSede,
		IDInstitucion: f.inst.IDInstitucion,
		IDTutor:       &f.tutor.IDTutor,
	}
	if err := repo.Aula.Create(ctx, f.aula); err != nil {
		t.Fatalf("crear aula: %v", err)
	}

	cleanup := func() {
		testDB.Where("id_aula = ?", f.aula.IDAula).Delete(&model.Horario{})
		testDB.Where("id_tutor = ?", f.tutor.IDTutor).Delete(&model.AsignacionTutorAula{})
		testDB.Where("id_aula = ?", f.aula.IDAula).Delete(&model.Aula{})
		testDB.Where("id_tutor = ?", f.tutor.IDTutor).Delete(&model.Tutor{})
		testDB.Where("id_sede = ?", f.sede.IDSede).Delete(&model.Sede{})
		testDB.Where("id_institucion = ?", f.inst.IDInstitucion).Delete(&model.Institucion{})
	}
	return f, cleanup
}

// ═══════════════════════════════════════════════════════════
// Test: creación con RETURNING y lectura
// ═══════════════════════════════════════════════════════════

func TestAula_CreateAndGet(t *testing.T) {
	repo := repository.NewRepository(testDB)
	f, cleanup := setupFixture(t, repo)
	defer cleanup()

	if f.aula.IDAula == 0 {
		t.Fatal("el id debe venir de RETURNING")
	}

	got, err := repo.Aula.GetByID(context.Background(), f.aula.IDAula)
	if err != nil {
		t.Fatalf("GetByID falló: %v", err)
	}
	if got.NombreAula != "4A" || got.Grado != 4 {
		t.Errorf("campos inesperados: %+v", got)
	}
	if got.Institucion == nil || got.Institucion.DuracionHora != 45 {
		t.Error("debe precargar la institución")
	}
}

func TestAula_SedeInexistente(t *testing.T) {
	repo := repository.NewRepository(testDB)
	f, cleanup := setupFixture(t, repo)
	defer cleanup()

	aula := &model.Aula{NombreAula: "X", Grado: 5, IDSede: f.sede.IDSede, IDInstitucion: f.inst.IDInstitucion + 999}
	err := repo.Aula.Create(context.Background(), aula)
	if !errors.Is(apperrors.Classify(err), apperrors.ErrIntegrity) {
		t.Errorf("la FK compuesta debe fallar como integridad, se obtuvo %v", err)
	}
}

func TestUpdate_FilaInexistente(t *testing.T) {
	repo := repository.NewRepository(testDB)
	set := repository.NewMotivoUpdate().Set("descripcion", "x")

	err := repo.Motivo.Update(context.Background(), -1, set)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("se esperaba ErrRecordNotFound, se obtuvo %v", err)
	}
}

// ═══════════════════════════════════════════════════════════
// Test: conteo de horarios
// ═══════════════════════════════════════════════════════════

func TestHorario_CountByAula(t *testing.T) {
	repo := repository.NewRepository(testDB)
	f, cleanup := setupFixture(t, repo)
	defer cleanup()
	ctx := context.Background()

	h1 := &model.Horario{Dia: model.DiaLunes, HoraInicio: "08:00", HoraFin: "08:45",
		IDAula: f.aula.IDAula, IDSede: f.sede.IDSede, IDInstitucion: f.inst.IDInstitucion}
	h2 := &model.Horario{Dia: model.DiaMiercoles, HoraInicio: "08:00", HoraFin: "08:45",
		IDAula: f.aula.IDAula, IDSede: f.sede.IDSede, IDInstitucion: f.inst.IDInstitucion}
	for _, h := range []*model.Horario{h1, h2} {
		if err := repo.Horario.Create(ctx, h); err != nil {
			t.Fatalf("crear horario: %v", err)
		}
	}

	n, err := repo.Horario.CountByAula(ctx, f.aula.IDAula, nil)
	if err != nil || n != 2 {
		t.Errorf("se esperaban 2 horarios, se obtuvo %d (%v)", n, err)
	}
	n, err = repo.Horario.CountByAula(ctx, f.aula.IDAula, &h1.IDHorario)
	if err != nil || n != 1 {
		t.Errorf("excluyendo uno se esperaba 1, se obtuvo %d (%v)", n, err)
	}

	list, err := repo.Horario.List(ctx, &f.aula.IDAula, 10)
	if err != nil || len(list) != 2 || list[0].Dia != model.DiaLunes {
		t.Errorf("orden por día inesperado: %+v (%v)", list, err)
	}
}

// ═══════════════════════════════════════════════════════════
// Test: transacciones
// ═══════════════════════════════════════════════════════════

func TestTransaction_Rollback(t *testing.T) {
	repo := repository.NewRepository(testDB)
	f, cleanup := setupFixture(t, repo)
	defer cleanup()
	ctx := context.Background()

	tx, err := repo.BeginTx(ctx)
	if err != nil {
		t.Fatalf("BeginTx falló: %v", err)
	}
	txRepo := repo.WithTx(tx)

	if _, err := txRepo.Aula.ClearTutor(ctx, f.tutor.IDTutor); err != nil {
		tx.Rollback()
		t.Fatalf("ClearTutor falló: %v", err)
	}
	tx.Rollback()

	got, err := repo.Aula.GetByID(ctx, f.aula.IDAula)
	if err != nil {
		t.Fatalf("GetByID falló: %v", err)
	}
	if got.IDTutor == nil {
		t.Fatal("tras el rollback el aula debe conservar su tutor")
	}
}

func TestTransaction_BorradoForzadoDeTutor(t *testing.T) {
	repo := repository.NewRepository(testDB)
	f, cleanup := setupFixture(t, repo)
	defer cleanup()
	ctx := context.Background()

	asig := &model.AsignacionTutorAula{IDTutor: f.tutor.IDTutor, IDAula: f.aula.IDAula}
	if err := repo.Tutor.CreateAsignacion(ctx, asig); err != nil {
		t.Fatalf("crear asignación: %v", err)
	}

	refs, err := repo.Tutor.CountReferencias(ctx, f.tutor.IDTutor)
	if err != nil {
		t.Fatalf("CountReferencias falló: %v", err)
	}
	if refs.Aulas != 1 || refs.Asignaciones != 1 {
		t.Fatalf("referencias inesperadas: %+v", refs)
	}

	err = repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if _, err := txRepo.Asistencia.DeleteTutorByTutor(ctx, f.tutor.IDTutor); err != nil {
			return err
		}
		if _, err := txRepo.Tutor.DeleteAsignacionesByTutor(ctx, f.tutor.IDTutor); err != nil {
			return err
		}
		if _, err := txRepo.Registro.DeleteByTutor(ctx, f.tutor.IDTutor); err != nil {
			return err
		}
		if _, err := txRepo.Aula.ClearTutor(ctx, f.tutor.IDTutor); err != nil {
			return err
		}
		return txRepo.Tutor.Delete(ctx, f.tutor.IDTutor)
	})
	if err != nil {
		t.Fatalf("borrado forzado falló: %v", err)
	}

	got, _ := repo.Aula.GetByID(ctx, f.aula.IDAula)
	if got == nil || got.IDTutor != nil {
		t.Error("el aula debe quedar sin tutor")
	}
	if _, err := repo.Tutor.GetByID(ctx, f.tutor.IDTutor); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("el tutor debe haberse eliminado, se obtuvo %v", err)
	}
}

// ═══════════════════════════════════════════════════════════
// Test: credenciales
// ═══════════════════════════════════════════════════════════

func TestPersona_GetCredencial_SinDistinguirMayusculas(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	correo := "Ana.Perez@Ejemplo.org"
	rol := model.RolTutor
	p := &model.Persona{Nombre: "Ana Pérez", Correo: &correo, Rol: &rol}
	if err := repo.Persona.Create(ctx, p); err != nil {
		t.Fatalf("crear persona: %v", err)
	}
	defer testDB.Where("id_persona = ?", p.IDPersona).Delete(&model.Persona{})

	if err := repo.Usuario.Create(ctx, &model.Usuario{IDPersona: p.IDPersona, Contrasena: "secreto"}); err != nil {
		t.Fatalf("crear usuario: %v", err)
	}
	defer testDB.Where("id_persona = ?", p.IDPersona).Delete(&model.Usuario{})

	cred, err := repo.Persona.GetCredencial(ctx, "ana.perez@ejemplo.ORG")
	if err != nil {
		t.Fatalf("GetCredencial falló: %v", err)
	}
	if cred.IDPersona != p.IDPersona || cred.Contrasena != "secreto" {
		t.Errorf("credencial inesperada: %+v", cred)
	}

	if _, err := repo.Persona.GetCredencial(ctx, "nadie@ejemplo.org"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("se esperaba ErrRecordNotFound, se obtuvo %v", err)
	}
}
