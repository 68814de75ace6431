package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"campusplan/backend/internal/dto"
	"campusplan/backend/internal/model"
	"campusplan/backend/internal/repository"
)

// ── group module business errors ──

var ErrGroupNotFound = errors.New("group not found")

// GroupService is the student-group business interface.
type GroupService interface {
	Create(ctx context.Context, req *dto.GroupRequest) (*model.Group, error)
	GetByID(ctx context.Context, id int) (*model.Group, error)
	List(ctx context.Context) ([]model.Group, error)
	Update(ctx context.Context, id int, req *dto.GroupRequest) (*model.Group, error)
	Delete(ctx context.Context, id int) error
}

type groupService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewGroupService creates a GroupService instance.
func NewGroupService(repo *repository.Repository, logger *zap.Logger) GroupService {
	return &groupService{repo: repo, logger: logger}
}

func (s *groupService) Create(ctx context.Context, req *dto.GroupRequest) (*model.Group, error) {
	group := &model.Group{
		Name:        req.Name,
		Size:        req.Size,
		Description: req.Description,
		Email:       req.Email,
		Program:     req.Program,
		ParentGroup: req.ParentGroup,
	}
	if err := s.repo.Group.Create(ctx, group); err != nil {
		s.logger.Error("create group failed", zap.Error(err))
		return nil, err
	}
	return group, nil
}

func (s *groupService) GetByID(ctx context.Context, id int) (*model.Group, error) {
	group, err := s.repo.Group.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		s.logger.Error("load group failed", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return group, nil
}

func (s *groupService) List(ctx context.Context) ([]model.Group, error) {
	groups, err := s.repo.Group.List(ctx)
	if err != nil {
		s.logger.Error("list groups failed", zap.Error(err))
		return nil, err
	}
	return groups, nil
}

func (s *groupService) Update(ctx context.Context, id int, req *dto.GroupRequest) (*model.Group, error) {
	group, err := s.repo.Group.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		s.logger.Error("load group failed", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	group.Name = req.Name
	group.Size = req.Size
	group.Description = req.Description
	group.Email = req.Email
	group.Program = req.Program
	group.ParentGroup = req.ParentGroup

	if err := s.repo.Group.Update(ctx, group); err != nil {
		s.logger.Error("update group failed", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return group, nil
}

func (s *groupService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.Group.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGroupNotFound
		}
		s.logger.Error("load group failed", zap.Int("id", id), zap.Error(err))
		return err
	}
	if err := s.repo.Group.Delete(ctx, id); err != nil {
		s.logger.Error("delete group failed", zap.Int("id", id), zap.Error(err))
		return err
	}
	return nil
}
