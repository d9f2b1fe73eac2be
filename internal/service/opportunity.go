package service

import (
	"context"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type opportunityService struct {
	oppRepo repository.OpportunityRepository
}

func NewOpportunityService(oppRepo repository.OpportunityRepository) OpportunityService {
	return &opportunityService{oppRepo: oppRepo}
}

func (s *opportunityService) CreateOpportunity(ctx context.Context, opp *domain.Opportunity) error {
	if opp.Title == "" {
		return domain.InvalidArgumentError("title is required")
	}
	if len(opp.Slots) == 0 {
		return domain.InvalidArgumentError("at least one time slot is required")
	}
	if opp.Location != nil {
		if opp.Location.Longitude < -180 || opp.Location.Longitude > 180 {
			return domain.InvalidArgumentError("longitude must be between -180 and 180")
		}
		if opp.Location.Latitude < -90 || opp.Location.Latitude > 90 {
			return domain.InvalidArgumentError("latitude must be between -90 and 90")
		}
	}
	if opp.Kind == "" {
		opp.Kind = domain.OpportunityKindInPerson
	}

	// New opportunities await moderation before they become recommendable
	opp.Status = domain.OpportunityStatusPending
	return s.oppRepo.Create(ctx, opp)
}

func (s *opportunityService) GetOpportunity(ctx context.Context, id int32) (*domain.Opportunity, error) {
	return s.oppRepo.GetByID(ctx, id)
}

func (s *opportunityService) ListByOrganization(ctx context.Context, orgID int32, page, pageSize int32) ([]domain.Opportunity, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return s.oppRepo.ListByOrganization(ctx, orgID, page, pageSize)
}
