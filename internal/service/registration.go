package service

import (
	"context"
	"fmt"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/logger"
	"volunteerhub-backend/internal/repository"
)

type registrationService struct {
	regRepo     repository.RegistrationRepository
	oppRepo     repository.OpportunityRepository
	accountRepo repository.AccountRepository
	noteRepo    repository.NotificationRepository
	chatSvc     GroupChatService
	pushSvc     PushService
	emailSvc    EmailService
}

func NewRegistrationService(
	regRepo repository.RegistrationRepository,
	oppRepo repository.OpportunityRepository,
	accountRepo repository.AccountRepository,
	noteRepo repository.NotificationRepository,
	chatSvc GroupChatService,
	pushSvc PushService,
	emailSvc EmailService,
) RegistrationService {
	return &registrationService{
		regRepo:     regRepo,
		oppRepo:     oppRepo,
		accountRepo: accountRepo,
		noteRepo:    noteRepo,
		chatSvc:     chatSvc,
		pushSvc:     pushSvc,
		emailSvc:    emailSvc,
	}
}

func (s *registrationService) Apply(ctx context.Context, volunteerID, opportunityID int32, status domain.RegistrationStatus) (*domain.Registration, error) {
	if status == "" {
		status = domain.RegistrationStatusPending
	}
	if !domain.ValidRegistrationStatus(status) {
		return nil, domain.InvalidArgumentError(fmt.Sprintf("invalid registration status %q", status))
	}

	if _, err := s.oppRepo.GetByID(ctx, opportunityID); err != nil {
		return nil, err
	}

	reg := &domain.Registration{
		VolunteerID:   volunteerID,
		OpportunityID: opportunityID,
		Status:        status,
	}
	if err := s.regRepo.Create(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func (s *registrationService) UpdateStatus(ctx context.Context, callerID int32, isAdmin bool, registrationID int32, status domain.RegistrationStatus) (*domain.Registration, error) {
	if !domain.ValidRegistrationStatus(status) {
		return nil, domain.InvalidArgumentError(fmt.Sprintf("invalid registration status %q", status))
	}

	reg, err := s.regRepo.GetByID(ctx, registrationID)
	if err != nil {
		return nil, err
	}

	opp, err := s.oppRepo.GetByID(ctx, reg.OpportunityID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && opp.OrganizationID != callerID {
		return nil, domain.ErrUnauthorized
	}

	// Conditional update on the prior status: a lost race or an illegal
	// transition shows up as a guard miss, never a silent overwrite.
	switch status {
	case domain.RegistrationStatusAccepted:
		ok, err := s.regRepo.UpdateStatusIf(ctx, reg.ID, status, domain.RegistrationStatusPending)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ConflictError(fmt.Sprintf("registration %d is not pending", reg.ID))
		}
	case domain.RegistrationStatusRejected:
		ok, err := s.regRepo.UpdateStatusIf(ctx, reg.ID, status, domain.RegistrationStatusPending, domain.RegistrationStatusAccepted)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ConflictError(fmt.Sprintf("registration %d is already rejected", reg.ID))
		}
	default:
		return nil, domain.InvalidArgumentError("registration cannot return to pending")
	}
	reg.Status = status

	// Side effects run only after the status persisted; their failures are
	// logged and never surfaced to the caller.
	switch status {
	case domain.RegistrationStatusAccepted:
		s.onAccepted(ctx, reg, opp)
	case domain.RegistrationStatusRejected:
		s.onRejected(ctx, reg, opp)
	}

	return reg, nil
}

func (s *registrationService) onAccepted(ctx context.Context, reg *domain.Registration, opp *domain.Opportunity) {
	conv, err := s.chatSvc.AddParticipant(ctx, reg.OpportunityID, reg.VolunteerID)
	if err != nil {
		logger.Error("Failed to add volunteer to group chat", "registration_id", reg.ID, "opportunity_id", reg.OpportunityID, "error", err)
	}

	volunteer, err := s.accountRepo.GetByID(ctx, reg.VolunteerID)
	if err != nil {
		logger.Error("Failed to load volunteer for acceptance notifications", "volunteer_id", reg.VolunteerID, "error", err)
		return
	}

	notif := &domain.Notification{
		AccountID: volunteer.ID,
		Title:     "Application Accepted",
		Message:   fmt.Sprintf("You were accepted for %s", opp.Title),
		Attributes: map[string]string{
			"type":            "REGISTRATION_ACCEPTED",
			"registration_id": fmt.Sprintf("%d", reg.ID),
			"opportunity_id":  fmt.Sprintf("%d", reg.OpportunityID),
		},
	}
	if err := s.noteRepo.Create(ctx, notif); err != nil {
		logger.Error("Failed to record acceptance notification", "volunteer_id", volunteer.ID, "error", err)
	}

	_ = s.emailSvc.SendRegistrationAcceptedNotification(ctx, volunteer.Email, volunteer.Name, opp.Title)

	// Push announces the group-chat addition: fire-and-forget, never awaited
	// by the caller's response path.
	if conv != nil && volunteer.PushToken != "" {
		token := volunteer.PushToken
		data := map[string]string{
			"type":            "group_chat_added",
			"conversation_id": fmt.Sprintf("%d", conv.ID),
			"opportunity_id":  fmt.Sprintf("%d", opp.ID),
		}
		go func() {
			if err := s.pushSvc.SendPushNotification(context.Background(), token,
				"Added to group chat", fmt.Sprintf("You joined the group chat for %s", opp.Title), data); err != nil {
				logger.Error("Failed to send acceptance push notification", "volunteer_id", reg.VolunteerID, "error", err)
			}
		}()
	}
}

func (s *registrationService) onRejected(ctx context.Context, reg *domain.Registration, opp *domain.Opportunity) {
	if _, err := s.chatSvc.RemoveParticipant(ctx, reg.OpportunityID, reg.VolunteerID); err != nil {
		logger.Error("Failed to remove volunteer from group chat", "registration_id", reg.ID, "opportunity_id", reg.OpportunityID, "error", err)
	}

	volunteer, err := s.accountRepo.GetByID(ctx, reg.VolunteerID)
	if err != nil {
		logger.Error("Failed to load volunteer for rejection notifications", "volunteer_id", reg.VolunteerID, "error", err)
		return
	}

	notif := &domain.Notification{
		AccountID: volunteer.ID,
		Title:     "Application Rejected",
		Message:   fmt.Sprintf("Your application for %s was rejected", opp.Title),
		Attributes: map[string]string{
			"type":            "REGISTRATION_REJECTED",
			"registration_id": fmt.Sprintf("%d", reg.ID),
			"opportunity_id":  fmt.Sprintf("%d", reg.OpportunityID),
		},
	}
	if err := s.noteRepo.Create(ctx, notif); err != nil {
		logger.Error("Failed to record rejection notification", "volunteer_id", volunteer.ID, "error", err)
	}

	_ = s.emailSvc.SendRegistrationRejectedNotification(ctx, volunteer.Email, volunteer.Name, opp.Title)
}

func (s *registrationService) Withdraw(ctx context.Context, volunteerID, opportunityID int32) error {
	deleted, err := s.regRepo.Delete(ctx, volunteerID, opportunityID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("no registration found to delete: %w", domain.ErrNotFound)
	}

	// Unconditional cleanup; the volunteer may never have been a member
	if _, err := s.chatSvc.RemoveParticipant(ctx, opportunityID, volunteerID); err != nil {
		logger.Error("Failed to remove withdrawn volunteer from group chat", "volunteer_id", volunteerID, "opportunity_id", opportunityID, "error", err)
	}
	return nil
}

func (s *registrationService) ListByVolunteer(ctx context.Context, volunteerID int32) ([]domain.Registration, error) {
	regs, err := s.regRepo.ListByVolunteer(ctx, volunteerID)
	if err != nil {
		return nil, err
	}
	for i := range regs {
		opp, err := s.oppRepo.GetByID(ctx, regs[i].OpportunityID)
		if err != nil {
			logger.Warn("Failed to load opportunity for registration", "registration_id", regs[i].ID, "error", err)
			continue
		}
		regs[i].Opportunity = opp
	}
	return regs, nil
}

func (s *registrationService) IsRegistered(ctx context.Context, volunteerID, opportunityID int32) (bool, error) {
	return s.regRepo.Exists(ctx, volunteerID, opportunityID)
}
