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

// ── room module business errors ──

var ErrRoomNotFound = errors.New("room not found")

// RoomService is the room business interface.
type RoomService interface {
	Create(ctx context.Context, req *dto.RoomRequest) (*model.Room, error)
	GetByID(ctx context.Context, id int) (*model.Room, error)
	List(ctx context.Context) ([]model.Room, error)
	Update(ctx context.Context, id int, req *dto.RoomRequest) (*model.Room, error)
	Delete(ctx context.Context, id int) error
}

type roomService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRoomService creates a RoomService instance.
func NewRoomService(repo *repository.Repository, logger *zap.Logger) RoomService {
	return &roomService{repo: repo, logger: logger}
}

func (s *roomService) Create(ctx context.Context, req *dto.RoomRequest) (*model.Room, error) {
	status := true
	if req.Status != nil {
		status = *req.Status
	}
	room := &model.Room{
		Name:      req.Name,
		Capacity:  req.Capacity,
		Type:      req.Type,
		Status:    status,
		Equipment: req.Equipment,
		Location:  req.Location,
	}
	if err := s.repo.Room.Create(ctx, room); err != nil {
		s.logger.Error("create room failed", zap.Error(err))
		return nil, err
	}
	return room, nil
}

func (s *roomService) GetByID(ctx context.Context, id int) (*model.Room, error) {
	room, err := s.repo.Room.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("load room failed", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return room, nil
}

func (s *roomService) List(ctx context.Context) ([]model.Room, error) {
	rooms, err := s.repo.Room.List(ctx)
	if err != nil {
		s.logger.Error("list rooms failed", zap.Error(err))
		return nil, err
	}
	return rooms, nil
}

func (s *roomService) Update(ctx context.Context, id int, req *dto.RoomRequest) (*model.Room, error) {
	room, err := s.repo.Room.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("load room failed", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	room.Name = req.Name
	room.Capacity = req.Capacity
	room.Type = req.Type
	if req.Status != nil {
		room.Status = *req.Status
	}
	room.Equipment = req.Equipment
	room.Location = req.Location

	if err := s.repo.Room.Update(ctx, room); err != nil {
		s.logger.Error("update room failed", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return room, nil
}

func (s *roomService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.Room.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		s.logger.Error("load room failed", zap.Int("id", id), zap.Error(err))
		return err
	}
	if err := s.repo.Room.Delete(ctx, id); err != nil {
		s.logger.Error("delete room failed", zap.Int("id", id), zap.Error(err))
		return err
	}
	return nil
}
