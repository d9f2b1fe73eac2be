package service

import (
	"context"
	"fmt"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/logger"
	"volunteerhub-backend/internal/repository"
)

type groupChatService struct {
	convRepo    repository.ConversationRepository
	oppRepo     repository.OpportunityRepository
	broadcaster MembershipBroadcaster
}

func NewGroupChatService(convRepo repository.ConversationRepository, oppRepo repository.OpportunityRepository, broadcaster MembershipBroadcaster) GroupChatService {
	return &groupChatService{
		convRepo:    convRepo,
		oppRepo:     oppRepo,
		broadcaster: broadcaster,
	}
}

func (s *groupChatService) CreateOpportunityChat(ctx context.Context, callerID int32, isAdmin bool, opportunityID int32, name string) (*domain.Conversation, error) {
	opp, err := s.oppRepo.GetByID(ctx, opportunityID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && opp.OrganizationID != callerID {
		return nil, domain.ErrUnauthorized
	}

	existing, err := s.convRepo.GetByOpportunity(ctx, opportunityID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ConflictError(fmt.Sprintf("opportunity %d already has a conversation", opportunityID))
	}

	if name == "" {
		name = opp.Title
	}
	conv := &domain.Conversation{
		OpportunityID: opportunityID,
		Name:          name,
		CreatedBy:     callerID,
	}
	if err := s.convRepo.Create(ctx, conv); err != nil {
		return nil, err
	}
	return conv, nil
}

// AddParticipant returns (nil, nil) when the opportunity has no conversation,
// so callers can treat a chat-less opportunity as a no-op.
func (s *groupChatService) AddParticipant(ctx context.Context, opportunityID, volunteerID int32) (*domain.Conversation, error) {
	conv, err := s.convRepo.GetByOpportunity(ctx, opportunityID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, nil
	}

	if err := s.convRepo.AddParticipant(ctx, conv.ID, volunteerID); err != nil {
		return nil, err
	}
	s.broadcast(ctx, domain.MembershipEventAdded, conv, volunteerID)
	return conv, nil
}

func (s *groupChatService) RemoveParticipant(ctx context.Context, opportunityID, volunteerID int32) (*domain.Conversation, error) {
	conv, err := s.convRepo.GetByOpportunity(ctx, opportunityID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, nil
	}

	if err := s.convRepo.RemoveParticipant(ctx, conv.ID, volunteerID); err != nil {
		return nil, err
	}
	s.broadcast(ctx, domain.MembershipEventRemoved, conv, volunteerID)
	return conv, nil
}

func (s *groupChatService) broadcast(ctx context.Context, eventType domain.MembershipEventType, conv *domain.Conversation, volunteerID int32) {
	if s.broadcaster == nil {
		return
	}
	participants, err := s.convRepo.ListParticipants(ctx, conv.ID)
	if err != nil {
		logger.Warn("Failed to list participants for membership event", "conversation_id", conv.ID, "error", err)
		participants = nil
	}
	s.broadcaster.BroadcastMembership(domain.MembershipEvent{
		Type:           eventType,
		ConversationID: conv.ID,
		OpportunityID:  conv.OpportunityID,
		VolunteerID:    volunteerID,
		Participants:   participants,
	})
}
