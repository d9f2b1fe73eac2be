package domain

type AccountRole string

const (
	AccountRoleVolunteer    AccountRole = "VOLUNTEER"
	AccountRoleOrganization AccountRole = "ORGANIZATION"
	AccountRoleAdmin        AccountRole = "ADMIN"
)

// ValidAccountRole reports whether r is a member of the role enum
func ValidAccountRole(r AccountRole) bool {
	switch r {
	case AccountRoleVolunteer, AccountRoleOrganization, AccountRoleAdmin:
		return true
	}
	return false
}

type Account struct {
	ID           int32       `json:"id"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Name         string      `json:"name"`
	Role         AccountRole `json:"role"`
	PushToken    string      `json:"-"`

	// Lifetime volunteering stats, used for recommendation enrichment
	CompletedOpportunities int32   `json:"completed_opportunities"`
	AverageRating          float64 `json:"average_rating"`
	TotalHours             int32   `json:"total_hours"`

	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}
