package services

import (
	"errors"

	"planousoapi/models"
	"planousoapi/pkg/apperr"
	"planousoapi/repository"

	"gorm.io/gorm"
)

// CommunityTypeService serves the community-type lookup list.
type CommunityTypeService interface {
	GetAllCommunityTypes() ([]models.CommunityType, error)
	GetCommunityTypeByID(id uint) (*models.CommunityType, error)
	GetCommunityTypeByValue(value string) (*models.CommunityType, error)
}

type communityTypeService struct {
	communityTypeRepo repository.CommunityTypeRepository
}

// NewCommunityTypeService creates a community-type service with the
// default repository.
func NewCommunityTypeService() CommunityTypeService {
	return &communityTypeService{communityTypeRepo: repository.NewCommunityTypeRepository()}
}

// NewCommunityTypeServiceWithDeps creates a community-type service with an
// injected repository, used by tests.
func NewCommunityTypeServiceWithDeps(communityTypeRepo repository.CommunityTypeRepository) CommunityTypeService {
	return &communityTypeService{communityTypeRepo: communityTypeRepo}
}

func (s *communityTypeService) GetAllCommunityTypes() ([]models.CommunityType, error) {
	return s.communityTypeRepo.FindAllActive(nil)
}

func (s *communityTypeService) GetCommunityTypeByID(id uint) (*models.CommunityType, error) {
	communityType, err := s.communityTypeRepo.GetByID(nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Tipo de comunidade")
		}
		return nil, err
	}
	return communityType, nil
}

func (s *communityTypeService) GetCommunityTypeByValue(value string) (*models.CommunityType, error) {
	communityType, err := s.communityTypeRepo.GetByValue(nil, value)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Tipo de comunidade")
		}
		return nil, err
	}
	return communityType, nil
}
