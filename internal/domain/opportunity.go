package domain

import "time"

type OpportunityStatus string

const (
	OpportunityStatusPending   OpportunityStatus = "pending"
	OpportunityStatusUpcoming  OpportunityStatus = "upcoming"
	OpportunityStatusStarted   OpportunityStatus = "started"
	OpportunityStatusEnded     OpportunityStatus = "ended"
	OpportunityStatusCancelled OpportunityStatus = "cancelled"
	OpportunityStatusRejected  OpportunityStatus = "rejected"
)

type OpportunityKind string

const (
	OpportunityKindInPerson OpportunityKind = "InPerson"
	OpportunityKindVirtual  OpportunityKind = "Virtual"
)

// GeoPoint is a WGS84 coordinate pair in decimal degrees
type GeoPoint struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// TimeSlot is one scheduled date with a start/end time of day
type TimeSlot struct {
	Date      time.Time `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

type Opportunity struct {
	ID             int32             `json:"id"`
	OrganizationID int32             `json:"organization_id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Purpose        string            `json:"purpose"`
	Role           string            `json:"role"`
	Details        string            `json:"details"`
	Location       *GeoPoint         `json:"location,omitempty"`
	Address        string            `json:"address,omitempty"`
	SkillsRequired []string          `json:"skills_required"`
	Tags           []string          `json:"tags"`
	Kind           OpportunityKind   `json:"kind"`
	Slots          []TimeSlot        `json:"slots"`
	Status         OpportunityStatus `json:"status"`
	Flagged        bool              `json:"flagged"`
	FlagReason     string            `json:"flag_reason,omitempty"`
	CreatedOn      string            `json:"created_on"`
	UpdatedOn      string            `json:"updated_on"`
}

// HasFutureSlot reports whether any slot date is strictly after now
func (o *Opportunity) HasFutureSlot(now time.Time) bool {
	for _, slot := range o.Slots {
		if slot.Date.After(now) {
			return true
		}
	}
	return false
}

// ValidOpportunityStatus reports whether s is a member of the status enum
func ValidOpportunityStatus(s OpportunityStatus) bool {
	switch s {
	case OpportunityStatusPending, OpportunityStatusUpcoming, OpportunityStatusStarted,
		OpportunityStatusEnded, OpportunityStatusCancelled, OpportunityStatusRejected:
		return true
	}
	return false
}
