package domain

type BloodGroup string

const (
	BloodGroupAPos  BloodGroup = "A+"
	BloodGroupANeg  BloodGroup = "A-"
	BloodGroupBPos  BloodGroup = "B+"
	BloodGroupBNeg  BloodGroup = "B-"
	BloodGroupOPos  BloodGroup = "O+"
	BloodGroupONeg  BloodGroup = "O-"
	BloodGroupABPos BloodGroup = "AB+"
	BloodGroupABNeg BloodGroup = "AB-"
)

// VolunteerProfile is the volunteer-facing profile attached to an account.
// Skills and interests compare case-insensitively.
type VolunteerProfile struct {
	ID           int32       `json:"id"`
	AccountID    int32       `json:"account_id"`
	Name         string      `json:"name"`
	Bio          string      `json:"bio"`
	Skills       []string    `json:"skills"`
	Interests    []string    `json:"interests"`
	IsBloodDonor bool        `json:"is_blood_donor"`
	BloodGroup   *BloodGroup `json:"blood_group,omitempty"`
	CreatedOn    string      `json:"created_on"`
	UpdatedOn    string      `json:"updated_on"`
}
