package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/model"
	"github.com/SDSANTOSYT/DB-ProyectoFinal/internal/repository"
)

// ── agregado de mocks ──

type mockRepos struct {
	institucion *mockInstitucionRepo
	sede        *mockSedeRepo
	programa    *mockProgramaRepo
	aula        *mockAulaRepo
	persona     *mockPersonaRepo
	usuario     *mockUsuarioRepo
	tutor       *mockTutorRepo
	estudiante  *mockEstudianteRepo
	horario     *mockHorarioRepo
	periodo     *mockPeriodoRepo
	componente  *mockComponenteRepo
	nota        *mockNotaRepo
	motivo      *mockMotivoRepo
	asistencia  *mockAsistenciaRepo
	registro    *mockRegistroRepo
}

// newMockRepository agregado en memoria; Transaction llama a fn con el mismo agregado
func newMockRepository() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		institucion: &mockInstitucionRepo{items: map[int64]*model.Institucion{}},
		sede:        &mockSedeRepo{items: map[int64]*model.Sede{}},
		programa:    &mockProgramaRepo{items: map[int64]*model.Programa{}},
		persona:     &mockPersonaRepo{items: map[int64]*model.Persona{}},
		usuario:     &mockUsuarioRepo{items: map[int64]*model.Usuario{}},
		horario:     &mockHorarioRepo{items: map[int64]*model.Horario{}},
		periodo:     &mockPeriodoRepo{items: map[int64]*model.Periodo{}},
		componente:  &mockComponenteRepo{items: map[int64]*model.Componente{}},
		nota:        &mockNotaRepo{items: map[int64]*model.Nota{}},
		motivo:      &mockMotivoRepo{items: map[int64]*model.Motivo{}},
		asistencia: &mockAsistenciaRepo{
			tutores:     map[int64]*model.AsistenciaTutor{},
			estudiantes: map[int64]*model.AsistenciaEstudiante{},
		},
		registro: &mockRegistroRepo{items: map[int64]*model.RegistroCambio{}},
	}
	m.aula = &mockAulaRepo{items: map[int64]*model.Aula{}, inst: m.institucion}
	m.tutor = &mockTutorRepo{items: map[int64]*model.Tutor{}, asignaciones: map[int64]*model.AsignacionTutorAula{}, m: m}
	m.estudiante = &mockEstudianteRepo{items: map[int64]*model.Estudiante{}, m: m}
	m.persona.usuarios = m.usuario

	repo := &repository.Repository{
		Institucion: m.institucion,
		Sede:        m.sede,
		Programa:    m.programa,
		Aula:        m.aula,
		Persona:     m.persona,
		Usuario:     m.usuario,
		Tutor:       m.tutor,
		Estudiante:  m.estudiante,
		Horario:     m.horario,
		Periodo:     m.periodo,
		Componente:  m.componente,
		Nota:        m.nota,
		Motivo:      m.motivo,
		Asistencia:  m.asistencia,
		Registro:    m.registro,
	}
	return repo, m
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

// values aplica el UpdateSet; devuelve el mapa o el error del conjunto
func values(set *repository.UpdateSet) map[string]interface{} {
	v, err := set.Values()
	if err != nil {
		return map[string]interface{}{}
	}
	return v
}

func asInt64Ptr(v interface{}) *int64 {
	switch x := v.(type) {
	case int64:
		return &x
	case *int64:
		return x
	}
	return nil
}

// ── Institución ──

type mockInstitucionRepo struct {
	items  map[int64]*model.Institucion
	nextID int64
}

func (m *mockInstitucionRepo) Create(_ context.Context, inst *model.Institucion) error {
	m.nextID++
	inst.IDInstitucion = m.nextID
	cp := *inst
	m.items[inst.IDInstitucion] = &cp
	return nil
}

func (m *mockInstitucionRepo) GetByID(_ context.Context, id int64) (*model.Institucion, error) {
	if i, ok := m.items[id]; ok {
		cp := *i
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInstitucionRepo) List(_ context.Context, limit int) ([]model.Institucion, error) {
	var result []model.Institucion
	for _, i := range m.items {
		result = append(result, *i)
	}
	sort.Slice(result, func(a, b int) bool { return result[a].IDInstitucion > result[b].IDInstitucion })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockInstitucionRepo) Update(_ context.Context, id int64, set *repository.UpdateSet) error {
	i, ok := m.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range values(set) {
		switch k {
		case "nombre":
			i.Nombre = v.(string)
		case "jornada":
			i.Jornada = v.(string)
		case "duracion_hora":
			i.DuracionHora = v.(int)
		}
	}
	return nil
}

func (m *mockInstitucionRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.items, id)
	return nil
}

// ── Sede ──

type mockSedeRepo struct {
	items  map[int64]*model.Sede
	nextID int64
}

func (m *mockSedeRepo) Create(_ context.Context, sede *model.Sede) error {
	m.nextID++
	sede.IDSede = m.nextID
	cp := *sede
	m.items[sede.IDSede] = &cp
	return nil
}

func (m *mockSedeRepo) GetByID(_ context.Context, id int64) (*model.Sede, error) {
	if s, ok := m.items[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSedeRepo) Exists(_ context.Context, idSede, idInstitucion int64) (bool, error) {
	s, ok := m.items[idSede]
	return ok && s.IDInstitucion == idInstitucion, nil
}

func (m *mockSedeRepo) List(_ context.Context, idInstitucion *int64, limit int) ([]model.Sede, error) {
	var result []model.Sede
	for _, s := range m.items {
		if idInstitucion != nil && s.IDInstitucion != *idInstitucion {
			continue
		}
		result = append(result, *s)
	}
	sort.Slice(result, func(a, b int) bool { return result[a].IDSede < result[b].IDSede })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockSedeRepo) Update(_ context.Context, id int64, set *repository.UpdateSet) error {
	s, ok := m.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := set.Get("nombre_sede"); ok {
		s.NombreSede = v.(string)
	}
	return nil
}

func (m *mockSedeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.items, id)
	return nil
}

// ── Programa ──

type mockProgramaRepo struct {
	items  map[int64]*model.Programa
	nextID int64
	locks  int
}

func (m *mockProgramaRepo) Create(_ context.Context, p *model.Programa) error {
	m.nextID++
	p.IDPrograma = m.nextID
	cp := *p
	m.items[p.IDPrograma] = &cp
	return nil
}

func (m *mockProgramaRepo) GetByID(_ context.Context, id int64) (*model.Programa, error) {
	if p, ok := m.items[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProgramaRepo) GetByIDForUpdate(ctx context.Context, id int64) (*model.Programa, error) {
	m.locks++
	return m.GetByID(ctx, id)
}

func (m *mockProgramaRepo) List(_ context.Context, _ int) ([]model.Programa, error) {
	var result []model.Programa
	for _, p := range m.items {
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockProgramaRepo) Update(_ context.Context, id int64, set *repository.UpdateSet) error {
	p, ok := m.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := set.Get("tipo"); ok {
		p.Tipo = v.(string)
	}
	return nil
}

func (m *mockProgramaRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.items, id)
	return nil
}

// ── Aula ──

type mockAulaRepo struct {
	items  map[int64]*model.Aula
	inst   *mockInstitucionRepo
	nextID int64
	locks  int
}

func (m *mockAulaRepo) Create(_ context.Context, aula *model.Aula) error {
	m.nextID++
	aula.IDAula = m.nextID
	cp := *aula
	cp.Institucion = nil
	m.items[aula.IDAula] = &cp
	return nil
}

func (m *mockAulaRepo) GetByID(_ context.Context, id int64) (*model.Aula, error) {
	a, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	if inst, ok := m.inst.items[a.IDInstitucion]; ok {
		ic := *inst
		cp.Institucion = &ic
	}
	return &cp, nil
}

func (m *mockAulaRepo) GetByIDForUpdate(ctx context.Context, id int64) (*model.Aula, error) {
	m.locks++
	return m.GetByID(ctx, id)
}

func (m *mockAulaRepo) List(_ context.Context, filter repository.AulaFilter) ([]model.Aula, error) {
	var result []model.Aula
	for _, a := range m.items {
		if filter.IDSede != nil && a.IDSede != *filter.IDSede {
			continue
		}
		if filter.IDInstitucion != nil && a.IDInstitucion != *filter.IDInstitucion {
			continue
		}
		if filter.Grado != nil && a.Grado != *filter.Grado {
			continue
		}
		if filter.IDTutor != nil && (a.IDTutor == nil || *a.IDTutor != *filter.IDTutor) {
			continue
		}
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].IDAula < result[j].IDAula })
	return result, nil
}

func (m *mockAulaRepo) Update(_ context.Context, id int64, set *repository.UpdateSet) error {
	a, ok := m.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range values(set) {
		switch k {
		case "nombre_aula":
			a.NombreAula = v.(string)
		case "grado":
			a.Grado = v.(int)
		case "id_sede":
			a.IDSede = v.(int64)
		case "id_institucion":
			a.IDInstitucion = v.(int64)
		case "id_programa":
			a.IDPrograma = asInt64Ptr(v)
		case "id_tutor":
			a.IDTutor = asInt64Ptr(v)
		}
	}
	return nil
}

func (m *mockAulaRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *mockAulaRepo) ClearTutor(_ context.Context, tutorID int64) (int64, error) {
	var n int64
	for _, a := range m.items {
		if a.IDTutor != nil && *a.IDTutor == tutorID {
			a.IDTutor = nil
			n++
		}
	}
	return n, nil
}

// ── Persona / Usuario ──

type mockPersonaRepo struct {
	items    map[int64]*model.Persona
	usuarios *mockUsuarioRepo
	nextID   int64
}

func (m *mockPersonaRepo) Create(_ context.Context, p *model.Persona) error {
	m.nextID++
	p.IDPersona = m.nextID
	cp := *p
	m.items[p.IDPersona] = &cp
	return nil
}

func (m *mockPersonaRepo) GetByID(_ context.Context, id int64) (*model.Persona, error) {
	if p, ok := m.items[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPersonaRepo) List(_ context.Context, _ int) ([]model.Persona, error) {
	var result []model.Persona
	for _, p := range m.items {
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockPersonaRepo) Update(_ context.Context, id int64, set *repository.UpdateSet) error {
	p, ok := m.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := set.Get("nombre"); ok {
		p.Nombre = v.(string)
	}
	if v, ok := set.Get("correo"); ok {
		c := v.(string)
		p.Correo = &c
	}
	return nil
}

func (m *mockPersonaRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *mockPersonaRepo) GetCredencial(_ context.Context, correo string) (*model.Credencial, error) {
	for _, p := range m.items {
		if p.Correo == nil || !strings.EqualFold(*p.Correo, correo) {
			continue
		}
		u, ok := m.usuarios.items[p.IDPersona]
		if !ok {
			continue
		}
		return &model.Credencial{
			IDPersona:  p.IDPersona,
			Nombre:     p.Nombre,
			Correo:     p.Correo,
			Rol:        p.Rol,
			Contrasena: u.Contrasena,
		}, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type mockUsuarioRepo struct {
	items map[int64]*model.Usuario
}

func (m *mockUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	cp := *u
	m.items[u.IDPersona] = &cp
	return nil
}

func (m *mockUsuarioRepo) GetByID(_ context.Context, idPersona int64) (*model.Usuario, error) {
	if u, ok := m.items[idPersona]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUsuarioRepo) UpdateContrasena(_ context.Context, idPersona int64, contrasena string) error {
	u, ok := m.items[idPersona]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Contrasena = contrasena
	return nil
}

func (m *mockUsuarioRepo) Delete(_ context.Context, idPersona int64) error {
	if _, ok := m.items[idPersona]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.items, idPersona)
	return nil
}

// ── Tutor ──

type mockTutorRepo struct {
	items        map[int64]*model.Tutor
	asignaciones map[int64]*model.AsignacionTutorAula
	m            *mockRepos
	nextID       int64
	nextAsigID   int64
}

func (r *mockTutorRepo) Create(_ context.Context, t *model.Tutor) error {
	r.nextID++
	t.IDTutor = r.nextID
	cp := *t
	r.items[t.IDTutor] = &cp
	return nil
}

func (r *mockTutorRepo) GetByID(_ context.Context, id int64) (*model.Tutor, error) {
	if t, ok := r.items[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockTutorRepo) List(_ context.Context, _ int) ([]model.Tutor, error) {
	var result []model.Tutor
	for _, t := range r.items {
		result = append(result, *t)
	}
	return result, nil
}

func (r *mockTutorRepo) Update(_ context.Context, id int64, set *repository.UpdateSet) error {
	t, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := set.Get("id_persona"); ok {
		t.IDPersona = asInt64Ptr(v)
	}
	if v, ok := set.Get("fecha_contrato"); ok {
		f := v.(time.Time)
		t.FechaContrato = &f
	}
	return nil
}

func (r *mockTutorRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *mockTutorRepo) CountReferencias(_ context.Context, id int64) (model.TutorReferencias, error) {
	var refs model.TutorReferencias
	for _, a := range r.m.aula.items {
		if a.IDTutor != nil && *a.IDTutor == id {
			refs.Aulas++
		}
	}
	for _, a := range r.m.asistencia.tutores {
		if a.IDTutor == id {
			refs.Asistencias++
		}
	}
	for _, a := range r.asignaciones {
		if a.IDTutor == id {
			refs.Asignaciones++
		}
	}
	for _, reg := range r.m.registro.items {
		if reg.IDTutor != nil && *reg.IDTutor == id {
			refs.Registros++
		}
	}
	return refs, nil
}

func (r *mockTutorRepo) CreateAsignacion(_ context.Context, a *model.AsignacionTutorAula) error {
	r.nextAsigID++
	a.IDAsignacion = r.nextAsigID
	cp := *a
	r.asignaciones[a.IDAsignacion] = &cp
	return nil
}

func (r *mockTutorRepo) DeleteAsignacionesByTutor(_ context.Context, tutorID int64) (int64, error) {
	var n int64
	for id, a := range r.asignaciones {
		if a.IDTutor == tutorID {
			delete(r.asignaciones, id)
			n++
		}
	}
	return n, nil
}

// ── Estudiante ──

type mockEstudianteRepo struct {
	items map[int64]*model.Estudiante
	m     *mockRepos
}

func (r *mockEstudianteRepo) Create(_ context.Context, e *model.Estudiante) error {
	cp := *e
	r.items[e.IDEstudiante] = &cp
	return nil
}

func (r *mockEstudianteRepo) GetByID(_ context.Context, id int64) (*model.Estudiante, error) {
	if e, ok := r.items[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockEstudianteRepo) List(_ context.Context, idAula *int64, _ int) ([]model.Estudiante, error) {
	var result []model.Estudiante
	for _, e := range r.items {
		if idAula != nil && e.IDAula != *idAula {
			continue
		}
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].IDEstudiante < result[j].IDEstudiante })
	return result, nil
}

func (r *mockEstudianteRepo) Update(_ context.Context, id int64, set *repository.UpdateSet) error {
	e, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range values(set) {
		switch k {
		case "nombre":
			e.Nombre = v.(string)
		case "id_aula":
			e.IDAula = v.(int64)
		case "id_sede":
			e.IDSede = v.(int64)
		case "id_institucion":
			e.IDInstitucion = v.(int64)
		}
	}
	return nil
}

func (r *mockEstudianteRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *mockEstudianteRepo) CountReferencias(_ context.Context, id int64) (model.EstudianteReferencias, error) {
	var refs model.EstudianteReferencias
	for _, n := range r.m.nota.items {
		if n.IDEstudiante == id {
			refs.Notas++
		}
	}
	for _, a := range r.m.asistencia.estudiantes {
		if a.IDEstudiante == id {
			refs.Asistencias++
		}
	}
	return refs, nil
}

// ── Horario ──

type mockHorarioRepo struct {
	items    map[int64]*model.Horario
	nextID   int64
	countErr error
}

func (m *mockHorarioRepo) Create(_ context.Context, h *model.Horario) error {
	m.nextID++
	h.IDHorario = m.nextID
	cp := *h
	m.items[h.IDHorario] = &cp
	return nil
}

func (m *mockHorarioRepo) GetByID(_ context.Context, id int64) (*model.Horario, error) {
	if h, ok := m.items[id]; ok {
		cp := *h
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockHorarioRepo) List(_ context.Context, idAula *int64, _ int) ([]model.Horario, error) {
	var result []model.Horario
	for _, h := range m.items {
		if idAula != nil && h.IDAula != *idAula {
			continue
		}
		result = append(result, *h)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].IDAula != result[j].IDAula {
			return result[i].IDAula < result[j].IDAula
		}
		if di, dj := diaOffset(result[i].Dia), diaOffset(result[j].Dia); di != dj {
			return di < dj
		}
		return result[i].HoraInicio < result[j].HoraInicio
	})
	return result, nil
}

func (m *mockHorarioRepo) Update(_ context.Context, id int64, set *repository.UpdateSet) error {
	h, ok := m.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range values(set) {
		switch k {
		case "dia":
			h.Dia = v.(string)
		case "hora_inicio":
			h.HoraInicio = v.(string)
		case "hora_fin":
			h.HoraFin = v.(string)
		case "id_aula":
			h.IDAula = v.(int64)
		case "id_sede":
			h.IDSede = v.(int64)
		case "id_institucion":
			h.IDInstitucion = v.(int64)
		}
	}
	return nil
}

func (m *mockHorarioRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *mockHorarioRepo) CountByAula(_ context.Context, aulaID int64, excludeID *int64) (int64, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	var n int64
	for _, h := range m.items {
		if h.IDAula != aulaID {
			continue
		}
		if excludeID != nil && h.IDHorario == *excludeID {
			continue
		}
		n++
	}
	return n, nil
}

// ── Periodo / Componente / Nota ──

type mockPeriodoRepo struct {
	items  map[int64]*model.Periodo
	nextID int64
}

func (m *mockPeriodoRepo) Create(_ context.Context, p *model.Periodo) error {
	m.nextID++
	p.IDPeriodo = m.nextID
	cp := *p
	m.items[p.IDPeriodo] = &cp
	return nil
}

func (m *mockPeriodoRepo) GetByID(_ context.Context, id int64) (*model.Periodo, error) {
	if p, ok := m.items[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPeriodoRepo) List(_ context.Context, _ int) ([]model.Periodo, error) {
	var result []model.Periodo
	for _, p := range m.items {
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockPeriodoRepo) Update(_ context.Context, id int64, set *repository.UpdateSet) error {
	p, ok := m.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := set.Get("fecha_inicio"); ok {
		p.FechaInicio = v.(time.Time)
	}
	if v, ok := set.Get("fecha_fin"); ok {
		p.FechaFin = v.(time.Time)
	}
	return nil
}

func (m *mockPeriodoRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.items, id)
	return nil
}

type mockComponenteRepo struct {
	items  map[int64]*model.Componente
	nextID int64
}

func (m *mockComponenteRepo) Create(_ context.Context, c *model.Componente) error {
	m.nextID++
	c.IDComponente = m.nextID
	cp := *c
	m.items[c.IDComponente] = &cp
	return nil
}

func (m *mockComponenteRepo) GetByID(_ context.Context, id int64) (*model.Componente, error) {
	if c, ok := m.items[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockComponenteRepo) List(_ context.Context, idPrograma *int64, _ int) ([]model.Componente, error) {
	var result []model.Componente
	for _, c := range m.items {
		if idPrograma != nil && c.IDPrograma != *idPrograma {
			continue
		}
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].IDComponente < result[j].IDComponente })
	return result, nil
}

func (m *mockComponenteRepo) Update(_ context.Context, id int64, set *repository.UpdateSet) error {
	c, ok := m.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := set.Get("nombre"); ok {
		c.Nombre = v.(string)
	}
	if v, ok := set.Get("porcentaje"); ok {
		c.Porcentaje = v.(float64)
	}
	if v, ok := set.Get("id_programa"); ok {
		c.IDPrograma = v.(int64)
	}
	return nil
}

func (m *mockComponenteRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *mockComponenteRepo) SumPorcentaje(_ context.Context, idPrograma int64, excludeID *int64) (float64, error) {
	total := 0.0
	for _, c := range m.items {
		if c.IDPrograma != idPrograma || (excludeID != nil && c.IDComponente == *excludeID) {
			continue
		}
		total += c.Porcentaje
	}
	return total, nil
}

type mockNotaRepo struct {
	items  map[int64]*model.Nota
	nextID int64
}

func (m *mockNotaRepo) Create(_ context.Context, n *model.Nota) error {
	m.nextID++
	n.IDNota = m.nextID
	cp := *n
	m.items[n.IDNota] = &cp
	return nil
}

func (m *mockNotaRepo) GetByID(_ context.Context, id int64) (*model.Nota, error) {
	if n, ok := m.items[id]; ok {
		cp := *n
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockNotaRepo) List(_ context.Context, filter repository.NotaFilter) ([]model.Nota, error) {
	ids := make(map[int64]bool, len(filter.IDEstudiantes))
	for _, id := range filter.IDEstudiantes {
		ids[id] = true
	}
	var result []model.Nota
	for _, n := range m.items {
		if filter.IDEstudiante != nil && n.IDEstudiante != *filter.IDEstudiante {
			continue
		}
		if filter.IDComponente != nil && n.IDComponente != *filter.IDComponente {
			continue
		}
		if len(ids) > 0 && !ids[n.IDEstudiante] {
			continue
		}
		result = append(result, *n)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].IDNota < result[j].IDNota })
	return result, nil
}

func (m *mockNotaRepo) Update(_ context.Context, id int64, set *repository.UpdateSet) error {
	n, ok := m.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := set.Get("calificacion"); ok {
		n.Calificacion = v.(float64)
	}
	return nil
}

func (m *mockNotaRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *mockNotaRepo) DeleteByEstudiante(_ context.Context, idEstudiante int64) (int64, error) {
	var n int64
	for id, nota := range m.items {
		if nota.IDEstudiante == idEstudiante {
			delete(m.items, id)
			n++
		}
	}
	return n, nil
}

// ── Motivo / Asistencia / Registro ──

type mockMotivoRepo struct {
	items  map[int64]*model.Motivo
	nextID int64
}

func (m *mockMotivoRepo) Create(_ context.Context, mot *model.Motivo) error {
	m.nextID++
	mot.IDMotivo = m.nextID
	cp := *mot
	m.items[mot.IDMotivo] = &cp
	return nil
}

func (m *mockMotivoRepo) GetByID(_ context.Context, id int64) (*model.Motivo, error) {
	if mot, ok := m.items[id]; ok {
		cp := *mot
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMotivoRepo) List(_ context.Context, _ int) ([]model.Motivo, error) {
	var result []model.Motivo
	for _, mot := range m.items {
		result = append(result, *mot)
	}
	return result, nil
}

func (m *mockMotivoRepo) Update(_ context.Context, id int64, set *repository.UpdateSet) error {
	mot, ok := m.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := set.Get("descripcion"); ok {
		mot.Descripcion = v.(string)
	}
	return nil
}

func (m *mockMotivoRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.items, id)
	return nil
}

type mockAsistenciaRepo struct {
	tutores     map[int64]*model.AsistenciaTutor
	estudiantes map[int64]*model.AsistenciaEstudiante
	nextID      int64
}

func (m *mockAsistenciaRepo) CreateTutor(_ context.Context, a *model.AsistenciaTutor) error {
	m.nextID++
	a.IDAsistencia = m.nextID
	cp := *a
	m.tutores[a.IDAsistencia] = &cp
	return nil
}

func (m *mockAsistenciaRepo) ListTutor(_ context.Context, filter repository.AsistenciaFilter) ([]model.AsistenciaTutor, error) {
	var result []model.AsistenciaTutor
	for _, a := range m.tutores {
		if filter.IDAula != nil && a.IDAula != *filter.IDAula {
			continue
		}
		if filter.Fecha != nil && !a.Fecha.Equal(*filter.Fecha) {
			continue
		}
		result = append(result, *a)
	}
	return result, nil
}

func (m *mockAsistenciaRepo) DeleteTutor(_ context.Context, id int64) error {
	if _, ok := m.tutores[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.tutores, id)
	return nil
}

func (m *mockAsistenciaRepo) DeleteTutorByTutor(_ context.Context, tutorID int64) (int64, error) {
	var n int64
	for id, a := range m.tutores {
		if a.IDTutor == tutorID {
			delete(m.tutores, id)
			n++
		}
	}
	return n, nil
}

func (m *mockAsistenciaRepo) CreateEstudiante(_ context.Context, a *model.AsistenciaEstudiante) error {
	m.nextID++
	a.IDAsistencia = m.nextID
	cp := *a
	m.estudiantes[a.IDAsistencia] = &cp
	return nil
}

func (m *mockAsistenciaRepo) ListEstudiante(_ context.Context, filter repository.AsistenciaFilter) ([]model.AsistenciaEstudiante, error) {
	var result []model.AsistenciaEstudiante
	for _, a := range m.estudiantes {
		if filter.IDAula != nil && a.IDAula != *filter.IDAula {
			continue
		}
		if filter.Fecha != nil && !a.Fecha.Equal(*filter.Fecha) {
			continue
		}
		result = append(result, *a)
	}
	return result, nil
}

func (m *mockAsistenciaRepo) DeleteEstudiante(_ context.Context, id int64) error {
	if _, ok := m.estudiantes[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.estudiantes, id)
	return nil
}

func (m *mockAsistenciaRepo) DeleteEstudianteByEstudiante(_ context.Context, idEstudiante int64) (int64, error) {
	var n int64
	for id, a := range m.estudiantes {
		if a.IDEstudiante == idEstudiante {
			delete(m.estudiantes, id)
			n++
		}
	}
	return n, nil
}

type mockRegistroRepo struct {
	items  map[int64]*model.RegistroCambio
	nextID int64
}

func (m *mockRegistroRepo) Create(_ context.Context, reg *model.RegistroCambio) error {
	m.nextID++
	reg.IDRegistro = m.nextID
	cp := *reg
	m.items[reg.IDRegistro] = &cp
	return nil
}

func (m *mockRegistroRepo) GetByID(_ context.Context, id int64) (*model.RegistroCambio, error) {
	if reg, ok := m.items[id]; ok {
		cp := *reg
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRegistroRepo) List(_ context.Context, idTutor *int64, _ int) ([]model.RegistroCambio, error) {
	var result []model.RegistroCambio
	for _, reg := range m.items {
		if idTutor != nil && (reg.IDTutor == nil || *reg.IDTutor != *idTutor) {
			continue
		}
		result = append(result, *reg)
	}
	return result, nil
}

func (m *mockRegistroRepo) DeleteByTutor(_ context.Context, tutorID int64) (int64, error) {
	var n int64
	for id, reg := range m.items {
		if reg.IDTutor != nil && *reg.IDTutor == tutorID {
			delete(m.items, id)
			n++
		}
	}
	return n, nil
}

// ── fixtures ──

// seedAula institución (duracion 60) + sede + aula del grado indicado
func seedAula(m *mockRepos, grado int) *model.Aula {
	ctx := context.Background()
	inst := &model.Institucion{Nombre: "IED Test", Jornada: model.JornadaMixta, DuracionHora: 60}
	_ = m.institucion.Create(ctx, inst)
	sede := &model.Sede{IDInstitucion: inst.IDInstitucion, NombreSede: "Principal"}
	_ = m.sede.Create(ctx, sede)
	aula := &model.Aula{
		NombreAula:    "Aula " + string(rune('A'+len(m.aula.items))),
		Grado:         grado,
		IDSede:        sede.IDSede,
		IDInstitucion: inst.IDInstitucion,
	}
	_ = m.aula.Create(ctx, aula)
	return aula
}
