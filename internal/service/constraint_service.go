package service

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"campusplan/backend/internal/dto"
	"campusplan/backend/internal/model"
	"campusplan/backend/internal/repository"
	"campusplan/backend/internal/rulebuilder"
)

// ── constraint module business errors ──

var (
	ErrConstraintNotFound = errors.New("scheduler constraint not found")
	ErrDeleteNotConfirmed = errors.New("deletion requires the confirmation phrase DELETE")
	ErrInvalidDate        = errors.New("dates must use the YYYY-MM-DD format")
)

// DeleteConfirmation is the literal phrase a caller must echo back before
// a constraint is removed.
const DeleteConfirmation = "DELETE"

// ConstraintService covers scheduler-constraint CRUD plus the rule
// builder surface: target directory, category catalog and sentence
// preview.
type ConstraintService interface {
	Create(ctx context.Context, req *dto.ConstraintRequest) (*dto.ConstraintResponse, error)
	GetByID(ctx context.Context, id int) (*dto.ConstraintResponse, error)
	List(ctx context.Context) ([]dto.ConstraintResponse, error)
	Update(ctx context.Context, id int, req *dto.ConstraintRequest) (*dto.ConstraintResponse, error)
	Delete(ctx context.Context, id int, confirmation string) error
	Targets(ctx context.Context, scope string) (*dto.TargetsResponse, error)
	Categories(scope string) *dto.CategoriesResponse
	Preview(ctx context.Context, req *dto.PreviewRequest) (*dto.PreviewResponse, error)
}

type constraintService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewConstraintService creates a ConstraintService instance.
func NewConstraintService(repo *repository.Repository, logger *zap.Logger) ConstraintService {
	return &constraintService{repo: repo, logger: logger}
}

// ────────────────────── target directory ──────────────────────

// buildDirectory fetches the five target resources concurrently and
// assembles the per-scope directory. A failed fetch degrades to an empty
// list for that resource only; the directory as a whole is always built.
func (s *constraintService) buildDirectory(ctx context.Context) rulebuilder.Directory {
	var (
		wg        sync.WaitGroup
		lecturers []model.Lecturer
		groups    []model.Group
		modules   []model.Module
		rooms     []model.Room
		programs  []model.StudyProgram
	)

	fetch := func(name string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				s.logger.Warn("target directory fetch failed, scope degrades to empty",
					zap.String("resource", name), zap.Error(err))
			}
		}()
	}

	fetch("lecturers", func() (err error) { lecturers, err = s.repo.Lecturer.List(ctx); return })
	fetch("groups", func() (err error) { groups, err = s.repo.Group.List(ctx); return })
	fetch("modules", func() (err error) { modules, err = s.repo.Module.List(ctx); return })
	fetch("rooms", func() (err error) { rooms, err = s.repo.Room.List(ctx); return })
	fetch("study programs", func() (err error) { programs, err = s.repo.Program.List(ctx); return })
	wg.Wait()

	programNames := make(map[int]string, len(programs))
	for _, p := range programs {
		programNames[p.ID] = p.Name
	}

	lecturerEntries := make([]rulebuilder.NamedEntry, 0, len(lecturers))
	for i := range lecturers {
		lecturerEntries = append(lecturerEntries, rulebuilder.NamedEntry{
			ID:   lecturers[i].ID,
			Name: lecturers[i].FullName(),
		})
	}

	groupEntries := make([]rulebuilder.NamedEntry, 0, len(groups))
	for _, g := range groups {
		groupEntries = append(groupEntries, rulebuilder.NamedEntry{ID: g.ID, Name: g.Name})
	}

	moduleEntries := make([]rulebuilder.ModuleEntry, 0, len(modules))
	for _, m := range modules {
		programName := ""
		if m.ProgramID != nil {
			programName = programNames[*m.ProgramID]
		}
		moduleEntries = append(moduleEntries, rulebuilder.ModuleEntry{
			Code:        m.ModuleCode,
			Name:        m.Name,
			ProgramName: programName,
		})
	}

	roomEntries := make([]rulebuilder.RoomEntry, 0, len(rooms))
	for _, r := range rooms {
		roomEntries = append(roomEntries, rulebuilder.RoomEntry{ID: r.ID, Name: r.Name, Location: r.Location})
	}

	programEntries := make([]rulebuilder.ProgramEntry, 0, len(programs))
	for _, p := range programs {
		programEntries = append(programEntries, rulebuilder.ProgramEntry{
			ID:         p.ID,
			Name:       p.Name,
			DegreeType: p.DegreeType,
		})
	}

	return rulebuilder.BuildDirectory(lecturerEntries, groupEntries, moduleEntries, roomEntries, programEntries)
}

func (s *constraintService) Targets(ctx context.Context, scope string) (*dto.TargetsResponse, error) {
	sc := rulebuilder.Scope(scope)
	if !sc.Valid() {
		return nil, rulebuilder.ErrInvalidScope
	}
	dir := s.buildDirectory(ctx)
	targets := dir[sc]
	if targets == nil {
		targets = []rulebuilder.Target{}
	}
	return &dto.TargetsResponse{Scope: scope, Targets: targets}, nil
}

func (s *constraintService) Categories(scope string) *dto.CategoriesResponse {
	sc := rulebuilder.Scope(scope)
	return &dto.CategoriesResponse{Scope: string(sc), Categories: rulebuilder.Categories(sc)}
}

// ────────────────────── Preview ──────────────────────

func (s *constraintService) Preview(ctx context.Context, req *dto.PreviewRequest) (*dto.PreviewResponse, error) {
	sc := rulebuilder.Scope(req.Scope)
	if !sc.Valid() {
		return nil, rulebuilder.ErrInvalidScope
	}
	if !rulebuilder.CategoryAllowed(sc, req.Category) {
		return nil, rulebuilder.ErrCategoryNotInScope
	}
	if _, err := dto.ParseDate(req.ValidFrom); err != nil {
		return nil, ErrInvalidDate
	}
	if _, err := dto.ParseDate(req.ValidTo); err != nil {
		return nil, ErrInvalidDate
	}

	targetID := req.TargetID
	if targetID == "" {
		targetID = rulebuilder.GlobalTargetID
	}
	dir := s.buildDirectory(ctx)
	target, ok := dir.Resolve(sc, targetID)
	if !ok {
		return nil, rulebuilder.ErrTargetNotInScope
	}

	params := rulebuilder.DefaultBuilderParams()
	if req.Params != nil {
		params = *req.Params
		params.SelectedDays = rulebuilder.SortDays(params.SelectedDays)
	}

	text, generated := rulebuilder.Generate(sc, targetID, target.Name, req.Category, req.ValidFrom, req.ValidTo, params)
	return &dto.PreviewResponse{RuleText: text, Generated: generated}, nil
}

// ────────────────────── Create ──────────────────────

func (s *constraintService) Create(ctx context.Context, req *dto.ConstraintRequest) (*dto.ConstraintResponse, error) {
	dir := s.buildDirectory(ctx)

	draft := rulebuilder.OpenAdd(dir)
	if err := s.applyRequest(draft, req); err != nil {
		return nil, err
	}

	fields, err := draft.Save()
	if err != nil {
		return nil, err
	}

	constraint, err := s.toModel(fields)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Constraint.Create(ctx, constraint); err != nil {
		draft.SaveFailed()
		s.logger.Error("create constraint failed", zap.Error(err))
		return nil, err
	}

	resp := dto.ToConstraintResponse(constraint)
	return &resp, nil
}

// ────────────────────── GetByID / List ──────────────────────

func (s *constraintService) GetByID(ctx context.Context, id int) (*dto.ConstraintResponse, error) {
	constraint, err := s.repo.Constraint.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConstraintNotFound
		}
		s.logger.Error("load constraint failed", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	resp := dto.ToConstraintResponse(constraint)
	return &resp, nil
}

func (s *constraintService) List(ctx context.Context) ([]dto.ConstraintResponse, error) {
	constraints, err := s.repo.Constraint.List(ctx)
	if err != nil {
		s.logger.Error("list constraints failed", zap.Error(err))
		return nil, err
	}
	return dto.ToConstraintResponses(constraints), nil
}

// ────────────────────── Update ──────────────────────

func (s *constraintService) Update(ctx context.Context, id int, req *dto.ConstraintRequest) (*dto.ConstraintResponse, error) {
	existing, err := s.repo.Constraint.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConstraintNotFound
		}
		s.logger.Error("load constraint failed", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	dir := s.buildDirectory(ctx)
	stored := dto.ToConstraintResponse(existing)

	draft := rulebuilder.OpenEdit(dir, rulebuilder.RuleFields{
		ID:        stored.ID,
		Name:      stored.Name,
		Scope:     rulebuilder.Scope(stored.Scope),
		TargetID:  stored.TargetID,
		Category:  stored.Category,
		ValidFrom: stored.ValidFrom,
		ValidTo:   stored.ValidTo,
		RuleText:  stored.RuleText,
		IsEnabled: stored.IsEnabled,
	})
	if err := s.applyRequest(draft, req); err != nil {
		return nil, err
	}

	fields, err := draft.Save()
	if err != nil {
		return nil, err
	}

	updated, err := s.toModel(fields)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := s.repo.Constraint.Update(ctx, updated); err != nil {
		draft.SaveFailed()
		s.logger.Error("update constraint failed", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	resp := dto.ToConstraintResponse(updated)
	return &resp, nil
}

// ────────────────────── Delete ──────────────────────

// Delete removes a constraint only when the caller echoes the literal
// confirmation phrase. Any other value, including lowercase variants,
// leaves the row untouched.
func (s *constraintService) Delete(ctx context.Context, id int, confirmation string) error {
	if confirmation != DeleteConfirmation {
		return ErrDeleteNotConfirmed
	}

	if _, err := s.repo.Constraint.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrConstraintNotFound
		}
		s.logger.Error("load constraint failed", zap.Int("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Constraint.Delete(ctx, id); err != nil {
		s.logger.Error("delete constraint failed", zap.Int("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── internal helpers ──

// applyRequest replays a create/update payload onto a draft. Scope and
// category transitions run through the draft so their reset cascades
// apply; the text is set last so a client-sent override survives.
func (s *constraintService) applyRequest(draft *rulebuilder.Draft, req *dto.ConstraintRequest) error {
	sc := rulebuilder.Scope(req.Scope)
	if !sc.Valid() {
		return rulebuilder.ErrInvalidScope
	}

	if sc != draft.Fields().Scope {
		draft.SetScope(sc)
	}
	if req.Category != draft.Fields().Category {
		draft.SetCategory(req.Category)
	}
	targetID := req.TargetID
	if targetID == "" {
		targetID = rulebuilder.GlobalTargetID
	}
	if targetID != draft.Fields().TargetID {
		draft.SetTarget(targetID)
	}

	if _, err := dto.ParseDate(req.ValidFrom); err != nil {
		return ErrInvalidDate
	}
	if _, err := dto.ParseDate(req.ValidTo); err != nil {
		return ErrInvalidDate
	}
	draft.SetValidity(req.ValidFrom, req.ValidTo)

	draft.SetName(req.Name)
	if req.IsEnabled != nil {
		draft.SetEnabled(*req.IsEnabled)
	}
	if req.RuleText != "" && req.RuleText != draft.RuleText() {
		draft.SetRuleText(req.RuleText)
	}
	return nil
}

func (s *constraintService) toModel(fields rulebuilder.RuleFields) (*model.SchedulerConstraint, error) {
	validFrom, err := dto.ParseDate(fields.ValidFrom)
	if err != nil {
		return nil, ErrInvalidDate
	}
	validTo, err := dto.ParseDate(fields.ValidTo)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &model.SchedulerConstraint{
		ID:        fields.ID,
		Name:      fields.Name,
		Scope:     string(fields.Scope),
		TargetID:  fields.TargetID,
		Category:  fields.Category,
		RuleText:  fields.RuleText,
		ValidFrom: validFrom,
		ValidTo:   validTo,
		IsEnabled: fields.IsEnabled,
	}, nil
}
