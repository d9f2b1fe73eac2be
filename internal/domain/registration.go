package domain

type RegistrationStatus string

const (
	RegistrationStatusPending  RegistrationStatus = "pending"
	RegistrationStatusAccepted RegistrationStatus = "accepted"
	RegistrationStatusRejected RegistrationStatus = "rejected"
)

// Registration is a volunteer's application to one opportunity.
// The (volunteer, opportunity) pair is unique.
type Registration struct {
	ID            int32              `json:"id"`
	VolunteerID   int32              `json:"volunteer_id"`
	OpportunityID int32              `json:"opportunity_id"`
	Status        RegistrationStatus `json:"status"`
	Opportunity   *Opportunity       `json:"opportunity,omitempty"`
	CreatedOn     string             `json:"created_on"`
	UpdatedOn     string             `json:"updated_on"`
}

// ValidRegistrationStatus reports whether s is a member of the status enum
func ValidRegistrationStatus(s RegistrationStatus) bool {
	switch s {
	case RegistrationStatusPending, RegistrationStatusAccepted, RegistrationStatusRejected:
		return true
	}
	return false
}
