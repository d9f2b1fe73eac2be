package service

import (
	"context"

	"volunteerhub-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, password string, role domain.AccountRole) (*domain.Account, string, string, error) // account, access, refresh
	Login(ctx context.Context, email, password string) (*domain.Account, string, string, error)
	RegisterPushToken(ctx context.Context, accountID int32, token string) error
}

type ProfileService interface {
	CreateProfile(ctx context.Context, profile *domain.VolunteerProfile) error
	GetProfile(ctx context.Context, accountID int32) (*domain.VolunteerProfile, error)
	UpdateProfile(ctx context.Context, profile *domain.VolunteerProfile) error
}

type OpportunityService interface {
	CreateOpportunity(ctx context.Context, opp *domain.Opportunity) error
	GetOpportunity(ctx context.Context, id int32) (*domain.Opportunity, error)
	ListByOrganization(ctx context.Context, orgID int32, page, pageSize int32) ([]domain.Opportunity, int32, error)
}

// RecommendationOptions control filtering and pagination of a
// recommendation query. Zero values fall back to the defaults of the
// operation (limit 10 volunteer-side, 20 organization-side, page 1,
// minScore 0).
type RecommendationOptions struct {
	Limit    int
	Page     int
	MinScore int
}

type RecommendationService interface {
	// RecommendOpportunities scores active opportunities against one
	// volunteer's profile ("what should I apply to").
	RecommendOpportunities(ctx context.Context, volunteerID int32, opts RecommendationOptions) ([]domain.OpportunityRecommendation, domain.Pagination, error)
	// RecommendVolunteers scores registered-free volunteers against one
	// opportunity ("who should I accept").
	RecommendVolunteers(ctx context.Context, opportunityID int32, opts RecommendationOptions) ([]domain.VolunteerRecommendation, domain.Pagination, error)
}

type RegistrationService interface {
	Apply(ctx context.Context, volunteerID, opportunityID int32, status domain.RegistrationStatus) (*domain.Registration, error)
	UpdateStatus(ctx context.Context, callerID int32, isAdmin bool, registrationID int32, status domain.RegistrationStatus) (*domain.Registration, error)
	Withdraw(ctx context.Context, volunteerID, opportunityID int32) error
	ListByVolunteer(ctx context.Context, volunteerID int32) ([]domain.Registration, error)
	IsRegistered(ctx context.Context, volunteerID, opportunityID int32) (bool, error)
}

type GroupChatService interface {
	CreateOpportunityChat(ctx context.Context, callerID int32, isAdmin bool, opportunityID int32, name string) (*domain.Conversation, error)
	// AddParticipant and RemoveParticipant return (nil, nil) when the
	// opportunity has no group conversation.
	AddParticipant(ctx context.Context, opportunityID, accountID int32) (*domain.Conversation, error)
	RemoveParticipant(ctx context.Context, opportunityID, accountID int32) (*domain.Conversation, error)
}

type PushService interface {
	SendPushNotification(ctx context.Context, token, title, body string, data map[string]string) error
}

type EmailService interface {
	SendRegistrationAcceptedNotification(ctx context.Context, email, name, opportunityTitle string) error
	SendRegistrationRejectedNotification(ctx context.Context, email, name, opportunityTitle string) error
}

type NotificationService interface {
	GetNotifications(ctx context.Context, accountID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, accountID, notificationID int32) error
}

// MembershipBroadcaster pushes conversation membership changes onto the
// realtime channel. Implementations must not block.
type MembershipBroadcaster interface {
	BroadcastMembership(event domain.MembershipEvent)
}
