package service

import (
	"context"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type profileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) CreateProfile(ctx context.Context, profile *domain.VolunteerProfile) error {
	if profile.AccountID == 0 {
		return domain.InvalidArgumentError("account id is required")
	}
	if profile.IsBloodDonor && profile.BloodGroup == nil {
		return domain.InvalidArgumentError("blood group is required for blood donors")
	}
	return s.profileRepo.Create(ctx, profile)
}

func (s *profileService) GetProfile(ctx context.Context, accountID int32) (*domain.VolunteerProfile, error) {
	return s.profileRepo.GetByAccount(ctx, accountID)
}

func (s *profileService) UpdateProfile(ctx context.Context, profile *domain.VolunteerProfile) error {
	if profile.IsBloodDonor && profile.BloodGroup == nil {
		return domain.InvalidArgumentError("blood group is required for blood donors")
	}
	return s.profileRepo.Update(ctx, profile)
}
