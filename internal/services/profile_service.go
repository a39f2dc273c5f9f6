package services

import (
	"errors"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// ProfileService - профиль соискателя, у пользователя он один.
type ProfileService interface {
	Create(userID string, req *dto.CreateProfileRequest) (*models.Profile, error)
	GetByUserID(userID string) (*models.Profile, error)
	Update(userID string, req *dto.UpdateProfileRequest) (*models.Profile, error)
	Delete(userID string) error
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo}
}

func (s *ProfileServiceImpl) Create(userID string, req *dto.CreateProfileRequest) (*models.Profile, error) {
	profile := &models.Profile{
		UserID:          userID,
		Headline:        req.Headline,
		Bio:             req.Bio,
		ExperienceYears: req.ExperienceYears,
		Location:        req.Location,
		ResumeURL:       req.ResumeURL,
		Website:         req.Website,
	}
	profile.SetSkills(req.Skills)

	if err := s.profileRepo.Create(profile); err != nil {
		if errors.Is(err, repositories.ErrProfileAlreadyExists) {
			return nil, apperrors.ErrProfileAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return profile, nil
}

func (s *ProfileServiceImpl) GetByUserID(userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) Update(userID string, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	if req.Headline != nil {
		profile.Headline = *req.Headline
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Skills != nil {
		profile.SetSkills(req.Skills)
	}
	if req.ExperienceYears != nil {
		profile.ExperienceYears = *req.ExperienceYears
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.ResumeURL != nil {
		profile.ResumeURL = *req.ResumeURL
	}
	if req.Website != nil {
		profile.Website = *req.Website
	}

	if err := s.profileRepo.Update(profile); err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return profile, nil
}

func (s *ProfileServiceImpl) Delete(userID string) error {
	if err := s.profileRepo.DeleteByUserID(userID); err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrProfileNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
