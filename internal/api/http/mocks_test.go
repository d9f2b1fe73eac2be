package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/service"
)

// MockRegistrationService
type MockRegistrationService struct {
	mock.Mock
}

func (m *MockRegistrationService) Apply(ctx context.Context, volunteerID, opportunityID int32, status domain.RegistrationStatus) (*domain.Registration, error) {
	args := m.Called(ctx, volunteerID, opportunityID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Registration), args.Error(1)
}
func (m *MockRegistrationService) UpdateStatus(ctx context.Context, callerID int32, isAdmin bool, registrationID int32, status domain.RegistrationStatus) (*domain.Registration, error) {
	args := m.Called(ctx, callerID, isAdmin, registrationID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Registration), args.Error(1)
}
func (m *MockRegistrationService) Withdraw(ctx context.Context, volunteerID, opportunityID int32) error {
	args := m.Called(ctx, volunteerID, opportunityID)
	return args.Error(0)
}
func (m *MockRegistrationService) ListByVolunteer(ctx context.Context, volunteerID int32) ([]domain.Registration, error) {
	args := m.Called(ctx, volunteerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Registration), args.Error(1)
}
func (m *MockRegistrationService) IsRegistered(ctx context.Context, volunteerID, opportunityID int32) (bool, error) {
	args := m.Called(ctx, volunteerID, opportunityID)
	return args.Bool(0), args.Error(1)
}

// MockRecommendationService
type MockRecommendationService struct {
	mock.Mock
}

func (m *MockRecommendationService) RecommendOpportunities(ctx context.Context, volunteerID int32, opts service.RecommendationOptions) ([]domain.OpportunityRecommendation, domain.Pagination, error) {
	args := m.Called(ctx, volunteerID, opts)
	if args.Get(0) == nil {
		return nil, args.Get(1).(domain.Pagination), args.Error(2)
	}
	return args.Get(0).([]domain.OpportunityRecommendation), args.Get(1).(domain.Pagination), args.Error(2)
}
func (m *MockRecommendationService) RecommendVolunteers(ctx context.Context, opportunityID int32, opts service.RecommendationOptions) ([]domain.VolunteerRecommendation, domain.Pagination, error) {
	args := m.Called(ctx, opportunityID, opts)
	if args.Get(0) == nil {
		return nil, args.Get(1).(domain.Pagination), args.Error(2)
	}
	return args.Get(0).([]domain.VolunteerRecommendation), args.Get(1).(domain.Pagination), args.Error(2)
}

// MockOpportunityService
type MockOpportunityService struct {
	mock.Mock
}

func (m *MockOpportunityService) CreateOpportunity(ctx context.Context, opp *domain.Opportunity) error {
	args := m.Called(ctx, opp)
	return args.Error(0)
}
func (m *MockOpportunityService) GetOpportunity(ctx context.Context, id int32) (*domain.Opportunity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Opportunity), args.Error(1)
}
func (m *MockOpportunityService) ListByOrganization(ctx context.Context, orgID int32, page, pageSize int32) ([]domain.Opportunity, int32, error) {
	args := m.Called(ctx, orgID, page, pageSize)
	if args.Get(0) == nil {
		return nil, int32(args.Int(1)), args.Error(2)
	}
	return args.Get(0).([]domain.Opportunity), int32(args.Int(1)), args.Error(2)
}
