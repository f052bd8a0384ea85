package service

import (
	"sped_lesson_backend/internal/model"
	"sped_lesson_backend/internal/repository"
	"sped_lesson_backend/internal/util"
)

type UserService struct {
	UserRepo       *repository.UserRepository
	LessonPlanRepo *repository.LessonPlanRepository
}

func NewUserService(userRepo *repository.UserRepository, planRepo *repository.LessonPlanRepository) *UserService {
	return &UserService{
		UserRepo:       userRepo,
		LessonPlanRepo: planRepo,
	}
}

// Profile 프로필과 작성한 지도안 수
type Profile struct {
	User            *model.User `json:"user"`
	LessonPlanCount int64       `json:"lessonPlanCount"`
}

func (s *UserService) GetProfile(userID uint) (*Profile, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	count, err := s.LessonPlanRepo.CountByAuthor(userID)
	if err != nil {
		return nil, err
	}

	return &Profile{User: user, LessonPlanCount: count}, nil
}

type UpdateProfileInput struct {
	Name   string `json:"name"`
	School string `json:"school"`
}

func (s *UserService) UpdateProfile(userID uint, input UpdateProfileInput) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.School != "" {
		user.School = input.School
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateLastSeen(userID uint) error {
	return s.UserRepo.UpdateLastSeen(userID)
}

func (s *UserService) ListUsers(page, limit int) ([]model.User, int64, error) {
	return s.UserRepo.List(page, limit)
}

func (s *UserService) SetDisabled(userID uint, disabled bool) error {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		return util.ErrUserNotFound
	}
	return s.UserRepo.SetDisabled(userID, disabled)
}
