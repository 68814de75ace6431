package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"campusplan/backend/internal/model"
)

// ── mock LecturerRepository ──

type mockLecturerRepo struct {
	nextID    int
	lecturers map[int]*model.Lecturer
	listErr   error
}

func newMockLecturerRepo() *mockLecturerRepo {
	return &mockLecturerRepo{nextID: 1, lecturers: make(map[int]*model.Lecturer)}
}

func (m *mockLecturerRepo) Create(_ context.Context, lecturer *model.Lecturer) error {
	if lecturer.ID == 0 {
		lecturer.ID = m.nextID
		m.nextID++
	}
	m.lecturers[lecturer.ID] = lecturer
	return nil
}

func (m *mockLecturerRepo) GetByID(_ context.Context, id int) (*model.Lecturer, error) {
	if l, ok := m.lecturers[id]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLecturerRepo) List(_ context.Context) ([]model.Lecturer, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []model.Lecturer
	for _, l := range m.lecturers {
		result = append(result, *l)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockLecturerRepo) Update(_ context.Context, lecturer *model.Lecturer) error {
	m.lecturers[lecturer.ID] = lecturer
	return nil
}

func (m *mockLecturerRepo) Delete(_ context.Context, id int) error {
	delete(m.lecturers, id)
	return nil
}

// ── mock GroupRepository ──

type mockGroupRepo struct {
	nextID int
	groups map[int]*model.Group
}

func newMockGroupRepo() *mockGroupRepo {
	return &mockGroupRepo{nextID: 1, groups: make(map[int]*model.Group)}
}

func (m *mockGroupRepo) Create(_ context.Context, group *model.Group) error {
	if group.ID == 0 {
		group.ID = m.nextID
		m.nextID++
	}
	m.groups[group.ID] = group
	return nil
}

func (m *mockGroupRepo) GetByID(_ context.Context, id int) (*model.Group, error) {
	if g, ok := m.groups[id]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGroupRepo) List(_ context.Context) ([]model.Group, error) {
	var result []model.Group
	for _, g := range m.groups {
		result = append(result, *g)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockGroupRepo) Update(_ context.Context, group *model.Group) error {
	m.groups[group.ID] = group
	return nil
}

func (m *mockGroupRepo) Delete(_ context.Context, id int) error {
	delete(m.groups, id)
	return nil
}

// ── mock ModuleRepository ──

type mockModuleRepo struct {
	modules map[string]*model.Module
}

func newMockModuleRepo() *mockModuleRepo {
	return &mockModuleRepo{modules: make(map[string]*model.Module)}
}

func (m *mockModuleRepo) Create(_ context.Context, module *model.Module) error {
	m.modules[module.ModuleCode] = module
	return nil
}

func (m *mockModuleRepo) GetByCode(_ context.Context, code string) (*model.Module, error) {
	if mod, ok := m.modules[code]; ok {
		return mod, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockModuleRepo) List(_ context.Context) ([]model.Module, error) {
	var result []model.Module
	for _, mod := range m.modules {
		result = append(result, *mod)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ModuleCode < result[j].ModuleCode })
	return result, nil
}

func (m *mockModuleRepo) Update(_ context.Context, module *model.Module) error {
	m.modules[module.ModuleCode] = module
	return nil
}

func (m *mockModuleRepo) Delete(_ context.Context, code string) error {
	delete(m.modules, code)
	return nil
}

// ── mock RoomRepository ──

type mockRoomRepo struct {
	nextID int
	rooms  map[int]*model.Room
}

func newMockRoomRepo() *mockRoomRepo {
	return &mockRoomRepo{nextID: 1, rooms: make(map[int]*model.Room)}
}

func (m *mockRoomRepo) Create(_ context.Context, room *model.Room) error {
	if room.ID == 0 {
		room.ID = m.nextID
		m.nextID++
	}
	m.rooms[room.ID] = room
	return nil
}

func (m *mockRoomRepo) GetByID(_ context.Context, id int) (*model.Room, error) {
	if r, ok := m.rooms[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoomRepo) List(_ context.Context) ([]model.Room, error) {
	var result []model.Room
	for _, r := range m.rooms {
		result = append(result, *r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockRoomRepo) Update(_ context.Context, room *model.Room) error {
	m.rooms[room.ID] = room
	return nil
}

func (m *mockRoomRepo) Delete(_ context.Context, id int) error {
	delete(m.rooms, id)
	return nil
}

// ── mock ProgramRepository ──

type mockProgramRepo struct {
	nextID   int
	programs map[int]*model.StudyProgram
}

func newMockProgramRepo() *mockProgramRepo {
	return &mockProgramRepo{nextID: 1, programs: make(map[int]*model.StudyProgram)}
}

func (m *mockProgramRepo) Create(_ context.Context, program *model.StudyProgram) error {
	if program.ID == 0 {
		program.ID = m.nextID
		m.nextID++
	}
	m.programs[program.ID] = program
	return nil
}

func (m *mockProgramRepo) GetByID(_ context.Context, id int) (*model.StudyProgram, error) {
	if p, ok := m.programs[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProgramRepo) List(_ context.Context) ([]model.StudyProgram, error) {
	var result []model.StudyProgram
	for _, p := range m.programs {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockProgramRepo) Update(_ context.Context, program *model.StudyProgram) error {
	m.programs[program.ID] = program
	return nil
}

func (m *mockProgramRepo) Delete(_ context.Context, id int) error {
	delete(m.programs, id)
	return nil
}

// ── mock SpecializationRepository ──

type mockSpecializationRepo struct {
	nextID int
	specs  map[int]*model.Specialization
}

func newMockSpecializationRepo() *mockSpecializationRepo {
	return &mockSpecializationRepo{nextID: 1, specs: make(map[int]*model.Specialization)}
}

func (m *mockSpecializationRepo) Create(_ context.Context, spec *model.Specialization) error {
	if spec.ID == 0 {
		spec.ID = m.nextID
		m.nextID++
	}
	m.specs[spec.ID] = spec
	return nil
}

func (m *mockSpecializationRepo) GetByID(_ context.Context, id int) (*model.Specialization, error) {
	if sp, ok := m.specs[id]; ok {
		return sp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSpecializationRepo) List(_ context.Context) ([]model.Specialization, error) {
	var result []model.Specialization
	for _, sp := range m.specs {
		result = append(result, *sp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockSpecializationRepo) Update(_ context.Context, spec *model.Specialization) error {
	m.specs[spec.ID] = spec
	return nil
}

func (m *mockSpecializationRepo) Delete(_ context.Context, id int) error {
	delete(m.specs, id)
	return nil
}

// ── mock ConstraintRepository ──

type mockConstraintRepo struct {
	nextID      int
	constraints map[int]*model.SchedulerConstraint
	createErr   error
}

func newMockConstraintRepo() *mockConstraintRepo {
	return &mockConstraintRepo{nextID: 1, constraints: make(map[int]*model.SchedulerConstraint)}
}

func (m *mockConstraintRepo) Create(_ context.Context, constraint *model.SchedulerConstraint) error {
	if m.createErr != nil {
		return m.createErr
	}
	if constraint.ID == 0 {
		constraint.ID = m.nextID
		m.nextID++
	}
	if constraint.CreatedAt.IsZero() {
		constraint.CreatedAt = time.Now()
	}
	m.constraints[constraint.ID] = constraint
	return nil
}

func (m *mockConstraintRepo) GetByID(_ context.Context, id int) (*model.SchedulerConstraint, error) {
	if c, ok := m.constraints[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockConstraintRepo) List(_ context.Context) ([]model.SchedulerConstraint, error) {
	var result []model.SchedulerConstraint
	for _, c := range m.constraints {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockConstraintRepo) Update(_ context.Context, constraint *model.SchedulerConstraint) error {
	m.constraints[constraint.ID] = constraint
	return nil
}

func (m *mockConstraintRepo) Delete(_ context.Context, id int) error {
	delete(m.constraints, id)
	return nil
}

// ── mock AvailabilityRepository ──

type mockAvailabilityRepo struct {
	nextID         int
	availabilities map[int]*model.LecturerAvailability // keyed by lecturer id
}

func newMockAvailabilityRepo() *mockAvailabilityRepo {
	return &mockAvailabilityRepo{nextID: 1, availabilities: make(map[int]*model.LecturerAvailability)}
}

func (m *mockAvailabilityRepo) GetByLecturer(_ context.Context, lecturerID int) (*model.LecturerAvailability, error) {
	if a, ok := m.availabilities[lecturerID]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAvailabilityRepo) Upsert(_ context.Context, availability *model.LecturerAvailability) error {
	if existing, ok := m.availabilities[availability.LecturerID]; ok {
		existing.ScheduleData = availability.ScheduleData
		*availability = *existing
		return nil
	}
	availability.ID = m.nextID
	m.nextID++
	m.availabilities[availability.LecturerID] = availability
	return nil
}

func (m *mockAvailabilityRepo) Delete(_ context.Context, lecturerID int) error {
	delete(m.availabilities, lecturerID)
	return nil
}
