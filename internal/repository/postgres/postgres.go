package postgres

import (
	"database/sql"

	"volunteerhub-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.AccountRepository
	repository.ProfileRepository
	repository.OpportunityRepository
	repository.RegistrationRepository
	repository.ConversationRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		AccountRepository:      NewAccountRepository(db),
		ProfileRepository:      NewProfileRepository(db),
		OpportunityRepository:  NewOpportunityRepository(db),
		RegistrationRepository: NewRegistrationRepository(db),
		ConversationRepository: NewConversationRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
