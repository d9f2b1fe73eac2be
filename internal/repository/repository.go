package repository

import (
	"context"
	"time"

	"volunteerhub-backend/internal/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id int32) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	UpdatePushToken(ctx context.Context, id int32, token string) error
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.VolunteerProfile) error
	GetByAccount(ctx context.Context, accountID int32) (*domain.VolunteerProfile, error)
	List(ctx context.Context) ([]domain.VolunteerProfile, error)
	Update(ctx context.Context, profile *domain.VolunteerProfile) error
}

type OpportunityRepository interface {
	Create(ctx context.Context, opp *domain.Opportunity) error
	GetByID(ctx context.Context, id int32) (*domain.Opportunity, error)
	// ListActive returns opportunities whose status is in statuses and which
	// have at least one slot dated strictly after now.
	ListActive(ctx context.Context, statuses []domain.OpportunityStatus, now time.Time) ([]domain.Opportunity, error)
	ListByOrganization(ctx context.Context, orgID int32, page, pageSize int32) ([]domain.Opportunity, int32, error)
	UpdateStatus(ctx context.Context, id int32, status domain.OpportunityStatus) error
	// MarkStarted moves upcoming opportunities with a slot dated on or before
	// now to started; MarkEnded moves started opportunities with no remaining
	// slot on or after now to ended. Both return the number of rows changed.
	MarkStarted(ctx context.Context, now time.Time) (int64, error)
	MarkEnded(ctx context.Context, now time.Time) (int64, error)
}

type RegistrationRepository interface {
	Create(ctx context.Context, reg *domain.Registration) error
	GetByID(ctx context.Context, id int32) (*domain.Registration, error)
	GetByPair(ctx context.Context, volunteerID, opportunityID int32) (*domain.Registration, error)
	Exists(ctx context.Context, volunteerID, opportunityID int32) (bool, error)
	ListByVolunteer(ctx context.Context, volunteerID int32) ([]domain.Registration, error)
	ListByOpportunity(ctx context.Context, opportunityID int32) ([]domain.Registration, error)
	// UpdateStatusIf performs a compare-and-swap on status: the update applies
	// only when the stored status is one of from. Returns false when the row
	// exists but the guard did not match.
	UpdateStatusIf(ctx context.Context, id int32, to domain.RegistrationStatus, from ...domain.RegistrationStatus) (bool, error)
	Delete(ctx context.Context, volunteerID, opportunityID int32) (bool, error)
}

type ConversationRepository interface {
	Create(ctx context.Context, conv *domain.Conversation) error
	GetByOpportunity(ctx context.Context, opportunityID int32) (*domain.Conversation, error)
	// AddParticipant and RemoveParticipant are atomic single-statement
	// mutations; adding an existing participant is a no-op.
	AddParticipant(ctx context.Context, conversationID, accountID int32) error
	RemoveParticipant(ctx context.Context, conversationID, accountID int32) error
	ListParticipants(ctx context.Context, conversationID int32) ([]int32, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, accountID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, accountID int32) error
}
