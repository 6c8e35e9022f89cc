package service

import (
	"context"
	"errors"
	"testing"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/dto"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/model"
	apperrors "github.com/SDSANTOSYT/DB-ProyectoFinal/pkg/errors"
)

// seedProgramas crea n programas con ids 1..n
func seedProgramas(m *mockRepos, n int) {
	for i := 0; i < n; i++ {
		_ = m.programa.Create(context.Background(), &model.Programa{Tipo: model.ProgramaInsideClassroom})
	}
}

func TestComponente_SumaPorPrograma(t *testing.T) {
	repo, mocks := newMockRepository()
	svc := NewComponenteService(repo, testLogger())
	ctx := context.Background()
	seedProgramas(mocks, 2)

	oral, err := svc.Create(ctx, &dto.CreateComponenteRequest{Nombre: "Oral", Porcentaje: 60, IDPrograma: 1})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, &dto.CreateComponenteRequest{Nombre: "Escrito", Porcentaje: 40, IDPrograma: 1}); err != nil {
		t.Fatalf("completar 100%%: %v", err)
	}

	// programa lleno
	_, err = svc.Create(ctx, &dto.CreateComponenteRequest{Nombre: "Extra", Porcentaje: 0.5, IDPrograma: 1})
	var ve *apperrors.ValidationError
	if !errors.As(err, &ve) || ve.Field != "porcentaje" {
		t.Fatalf("se esperaba validación en porcentaje, se obtuvo %v", err)
	}

	// otro programa no cuenta
	if _, err := svc.Create(ctx, &dto.CreateComponenteRequest{Nombre: "Oral", Porcentaje: 100, IDPrograma: 2}); err != nil {
		t.Errorf("programa 2 es independiente: %v", err)
	}

	// el propio componente se excluye al editar
	resp, err := svc.Update(ctx, oral.IDComponente, &dto.UpdateComponenteRequest{Porcentaje: ptr(55.0)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if resp.Porcentaje != 55 {
		t.Errorf("porcentaje = %v", resp.Porcentaje)
	}
	if _, err := svc.Update(ctx, oral.IDComponente, &dto.UpdateComponenteRequest{Porcentaje: ptr(61.0)}); !apperrors.IsValidation(err) {
		t.Errorf("61 + 40 supera 100, se obtuvo %v", err)
	}

	list, err := svc.List(ctx, &dto.ComponenteListQuery{IDPrograma: ptr(int64(1))})
	if err != nil || len(list) != 2 {
		t.Errorf("List programa 1 = %d, %v", len(list), err)
	}
	if mocks.programa.locks == 0 {
		t.Error("la suma debe calcularse con la fila del programa bloqueada")
	}
}

func TestComponente_ProgramaInexistente(t *testing.T) {
	repo, mocks := newMockRepository()
	svc := NewComponenteService(repo, testLogger())

	_, err := svc.Create(context.Background(), &dto.CreateComponenteRequest{Nombre: "Oral", Porcentaje: 50, IDPrograma: 7})
	var ve *apperrors.ValidationError
	if !errors.As(err, &ve) || ve.Field != "id_programa" {
		t.Fatalf("se esperaba validación en id_programa, se obtuvo %v", err)
	}
	if len(mocks.componente.items) != 0 {
		t.Error("no debe guardarse el componente")
	}
}

func TestComponente_NotFound(t *testing.T) {
	repo, _ := newMockRepository()
	svc := NewComponenteService(repo, testLogger())
	ctx := context.Background()

	if _, err := svc.GetByID(ctx, 9); !errors.Is(err, ErrComponenteNotFound) {
		t.Errorf("GetByID: se esperaba ErrComponenteNotFound, se obtuvo %v", err)
	}
	if _, err := svc.Update(ctx, 9, &dto.UpdateComponenteRequest{Porcentaje: ptr(10.0)}); !errors.Is(err, ErrComponenteNotFound) {
		t.Errorf("Update: se esperaba ErrComponenteNotFound, se obtuvo %v", err)
	}
	if err := svc.Delete(ctx, 9); !errors.Is(err, ErrComponenteNotFound) {
		t.Errorf("Delete: se esperaba ErrComponenteNotFound, se obtuvo %v", err)
	}
}

func TestPeriodo_Fechas(t *testing.T) {
	repo, _ := newMockRepository()
	svc := NewPeriodoService(repo, testLogger())
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.CreatePeriodoRequest{FechaInicio: "2024-06-30", FechaFin: "2024-02-01", IDPrograma: 1})
	if !errors.Is(err, ErrPeriodoFechas) {
		t.Fatalf("se esperaba ErrPeriodoFechas, se obtuvo %v", err)
	}

	p, err := svc.Create(ctx, &dto.CreatePeriodoRequest{FechaInicio: "2024-02-01", FechaFin: "2024-06-30", IDPrograma: 1})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.FechaInicio != "2024-02-01" || p.FechaFin != "2024-06-30" {
		t.Errorf("fechas = %s / %s", p.FechaInicio, p.FechaFin)
	}

	// la fecha nueva se compara con la guardada
	if _, err := svc.Update(ctx, p.IDPeriodo, &dto.UpdatePeriodoRequest{FechaFin: ptr("2024-01-15")}); !errors.Is(err, ErrPeriodoFechas) {
		t.Errorf("se esperaba ErrPeriodoFechas, se obtuvo %v", err)
	}
	got, err := svc.Update(ctx, p.IDPeriodo, &dto.UpdatePeriodoRequest{FechaFin: ptr("2024-07-15")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.FechaFin != "2024-07-15" {
		t.Errorf("fecha_fin = %s", got.FechaFin)
	}
}

func TestInstitucion_CreateGet(t *testing.T) {
	repo, _ := newMockRepository()
	svc := NewInstitucionService(repo, testLogger())
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateInstitucionRequest{Nombre: "IED Norte", Jornada: "MIXTA", DuracionHora: 45})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := svc.GetByID(ctx, created.IDInstitucion)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if *got != *created {
		t.Errorf("GetByID = %+v, se esperaba %+v", got, created)
	}

	upd, err := svc.Update(ctx, created.IDInstitucion, &dto.UpdateInstitucionRequest{DuracionHora: ptr(50)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if upd.DuracionHora != 50 || upd.Nombre != "IED Norte" {
		t.Errorf("Update = %+v", upd)
	}

	if _, err := svc.Update(ctx, created.IDInstitucion, &dto.UpdateInstitucionRequest{}); !errors.Is(err, ErrSinCambios) {
		t.Errorf("se esperaba ErrSinCambios, se obtuvo %v", err)
	}
	if err := svc.Delete(ctx, created.IDInstitucion); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, created.IDInstitucion); !errors.Is(err, ErrInstitucionNotFound) {
		t.Errorf("se esperaba ErrInstitucionNotFound, se obtuvo %v", err)
	}
}

func TestSede_InstitucionInexistente(t *testing.T) {
	repo, _ := newMockRepository()
	svc := NewSedeService(repo, testLogger())

	_, err := svc.Create(context.Background(), &dto.CreateSedeRequest{IDInstitucion: 7, NombreSede: "Sur"})
	var ve *apperrors.ValidationError
	if !errors.As(err, &ve) || ve.Field != "id_institucion" {
		t.Errorf("se esperaba validación en id_institucion, se obtuvo %v", err)
	}
}
