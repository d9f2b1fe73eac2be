package domain

// Conversation is the group chat bound to one opportunity. Membership is
// driven by registration status; message delivery lives outside this core.
type Conversation struct {
	ID            int32   `json:"id"`
	OpportunityID int32   `json:"opportunity_id"`
	Name          string  `json:"name"`
	CreatedBy     int32   `json:"created_by"`
	Participants  []int32 `json:"participants"`
	CreatedOn     string  `json:"created_on"`
}

// MembershipEventType identifies a conversation membership change
type MembershipEventType string

const (
	MembershipEventAdded   MembershipEventType = "participant_added"
	MembershipEventRemoved MembershipEventType = "participant_removed"
)

// MembershipEvent is broadcast over the realtime channel when a
// conversation's participant set changes
type MembershipEvent struct {
	Type           MembershipEventType `json:"type"`
	ConversationID int32               `json:"conversation_id"`
	OpportunityID  int32               `json:"opportunity_id"`
	VolunteerID    int32               `json:"volunteer_id"`
	Participants   []int32             `json:"participants"`
}
