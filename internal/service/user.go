package service

import (
	"github.com/templui/goalboard/internal/model"
	"github.com/templui/goalboard/internal/repository"
)

type UserService struct {
	userRepository repository.UserRepository
}

func NewUserService(userRepository repository.UserRepository) *UserService {
	return &UserService{userRepository: userRepository}
}

func (s *UserService) ByID(id string) (*model.User, error) {
	return s.userRepository.ByID(id)
}

func (s *UserService) Users() ([]*model.User, error) {
	return s.userRepository.All()
}

func (s *UserService) Delete(id string) error {
	return s.userRepository.Delete(id)
}
