package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"volunteerhub-backend/internal/domain"
)

// MockAccountRepo
type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}
func (m *MockAccountRepo) GetByID(ctx context.Context, id int32) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountRepo) UpdatePushToken(ctx context.Context, id int32, token string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}

// MockProfileRepo
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Create(ctx context.Context, profile *domain.VolunteerProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}
func (m *MockProfileRepo) GetByAccount(ctx context.Context, accountID int32) (*domain.VolunteerProfile, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VolunteerProfile), args.Error(1)
}
func (m *MockProfileRepo) List(ctx context.Context) ([]domain.VolunteerProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VolunteerProfile), args.Error(1)
}
func (m *MockProfileRepo) Update(ctx context.Context, profile *domain.VolunteerProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// MockOpportunityRepo
type MockOpportunityRepo struct {
	mock.Mock
}

func (m *MockOpportunityRepo) Create(ctx context.Context, opp *domain.Opportunity) error {
	args := m.Called(ctx, opp)
	return args.Error(0)
}
func (m *MockOpportunityRepo) GetByID(ctx context.Context, id int32) (*domain.Opportunity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Opportunity), args.Error(1)
}
func (m *MockOpportunityRepo) ListActive(ctx context.Context, statuses []domain.OpportunityStatus, now time.Time) ([]domain.Opportunity, error) {
	args := m.Called(ctx, statuses, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Opportunity), args.Error(1)
}
func (m *MockOpportunityRepo) ListByOrganization(ctx context.Context, orgID int32, page, pageSize int32) ([]domain.Opportunity, int32, error) {
	args := m.Called(ctx, orgID, page, pageSize)
	if args.Get(0) == nil {
		return nil, int32(args.Int(1)), args.Error(2)
	}
	return args.Get(0).([]domain.Opportunity), int32(args.Int(1)), args.Error(2)
}
func (m *MockOpportunityRepo) UpdateStatus(ctx context.Context, id int32, status domain.OpportunityStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockOpportunityRepo) MarkStarted(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return int64(args.Int(0)), args.Error(1)
}
func (m *MockOpportunityRepo) MarkEnded(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return int64(args.Int(0)), args.Error(1)
}

// MockRegistrationRepo
type MockRegistrationRepo struct {
	mock.Mock
}

func (m *MockRegistrationRepo) Create(ctx context.Context, reg *domain.Registration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}
func (m *MockRegistrationRepo) GetByID(ctx context.Context, id int32) (*domain.Registration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Registration), args.Error(1)
}
func (m *MockRegistrationRepo) GetByPair(ctx context.Context, volunteerID, opportunityID int32) (*domain.Registration, error) {
	args := m.Called(ctx, volunteerID, opportunityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Registration), args.Error(1)
}
func (m *MockRegistrationRepo) Exists(ctx context.Context, volunteerID, opportunityID int32) (bool, error) {
	args := m.Called(ctx, volunteerID, opportunityID)
	return args.Bool(0), args.Error(1)
}
func (m *MockRegistrationRepo) ListByVolunteer(ctx context.Context, volunteerID int32) ([]domain.Registration, error) {
	args := m.Called(ctx, volunteerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Registration), args.Error(1)
}
func (m *MockRegistrationRepo) ListByOpportunity(ctx context.Context, opportunityID int32) ([]domain.Registration, error) {
	args := m.Called(ctx, opportunityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Registration), args.Error(1)
}
func (m *MockRegistrationRepo) UpdateStatusIf(ctx context.Context, id int32, to domain.RegistrationStatus, from ...domain.RegistrationStatus) (bool, error) {
	callArgs := []interface{}{ctx, id, to}
	for _, f := range from {
		callArgs = append(callArgs, f)
	}
	args := m.Called(callArgs...)
	return args.Bool(0), args.Error(1)
}
func (m *MockRegistrationRepo) Delete(ctx context.Context, volunteerID, opportunityID int32) (bool, error) {
	args := m.Called(ctx, volunteerID, opportunityID)
	return args.Bool(0), args.Error(1)
}

// MockConversationRepo
type MockConversationRepo struct {
	mock.Mock
}

func (m *MockConversationRepo) Create(ctx context.Context, conv *domain.Conversation) error {
	args := m.Called(ctx, conv)
	return args.Error(0)
}
func (m *MockConversationRepo) GetByOpportunity(ctx context.Context, opportunityID int32) (*domain.Conversation, error) {
	args := m.Called(ctx, opportunityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversation), args.Error(1)
}
func (m *MockConversationRepo) AddParticipant(ctx context.Context, conversationID, accountID int32) error {
	args := m.Called(ctx, conversationID, accountID)
	return args.Error(0)
}
func (m *MockConversationRepo) RemoveParticipant(ctx context.Context, conversationID, accountID int32) error {
	args := m.Called(ctx, conversationID, accountID)
	return args.Error(0)
}
func (m *MockConversationRepo) ListParticipants(ctx context.Context, conversationID int32) ([]int32, error) {
	args := m.Called(ctx, conversationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int32), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, accountID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, accountID, limit, offset)
	if args.Get(0) == nil {
		return nil, int32(args.Int(1)), args.Error(2)
	}
	return args.Get(0).([]domain.Notification), int32(args.Int(1)), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, accountID int32) error {
	args := m.Called(ctx, id, accountID)
	return args.Error(0)
}

// MockGroupChatService
type MockGroupChatService struct {
	mock.Mock
}

func (m *MockGroupChatService) CreateOpportunityChat(ctx context.Context, callerID int32, isAdmin bool, opportunityID int32, name string) (*domain.Conversation, error) {
	args := m.Called(ctx, callerID, isAdmin, opportunityID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversation), args.Error(1)
}
func (m *MockGroupChatService) AddParticipant(ctx context.Context, opportunityID, accountID int32) (*domain.Conversation, error) {
	args := m.Called(ctx, opportunityID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversation), args.Error(1)
}
func (m *MockGroupChatService) RemoveParticipant(ctx context.Context, opportunityID, accountID int32) (*domain.Conversation, error) {
	args := m.Called(ctx, opportunityID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversation), args.Error(1)
}

// MockPushService
type MockPushService struct {
	mock.Mock
}

func (m *MockPushService) SendPushNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	args := m.Called(ctx, token, title, body, data)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRegistrationAcceptedNotification(ctx context.Context, email, name, opportunityTitle string) error {
	args := m.Called(ctx, email, name, opportunityTitle)
	return args.Error(0)
}
func (m *MockEmailService) SendRegistrationRejectedNotification(ctx context.Context, email, name, opportunityTitle string) error {
	args := m.Called(ctx, email, name, opportunityTitle)
	return args.Error(0)
}

// MockBroadcaster
type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) BroadcastMembership(event domain.MembershipEvent) {
	m.Called(event)
}
