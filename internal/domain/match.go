package domain

import "math"

// ScoreBreakdown carries the weighted sub-scores of a match. The fields sum
// to the total score before rounding; maxima are 40/30/20/10.
type ScoreBreakdown struct {
	Skills       float64 `json:"skills"`
	Interests    float64 `json:"interests"`
	Location     float64 `json:"location"`
	Availability float64 `json:"availability"`
}

// Total returns the rounded 0-100 score for the breakdown
func (b ScoreBreakdown) Total() int {
	return int(math.Round(b.Skills + b.Interests + b.Location + b.Availability))
}

// MatchResult is a scored volunteer-opportunity pair. Computed on demand,
// never persisted.
type MatchResult struct {
	Score     int            `json:"score"`
	Breakdown ScoreBreakdown `json:"breakdown"`
	Reasons   []string       `json:"reasons"`
}

// OpportunityRecommendation annotates an opportunity with its match against
// one volunteer
type OpportunityRecommendation struct {
	OpportunityID int32          `json:"opportunity_id"`
	Opportunity   *Opportunity   `json:"opportunity"`
	MatchScore    int            `json:"match_score"`
	MatchReasons  []string       `json:"match_reasons"`
	Breakdown     ScoreBreakdown `json:"breakdown"`
}

// VolunteerStats are lifetime stats sourced from the volunteer's account
type VolunteerStats struct {
	CompletedOpportunities int32   `json:"completed_opportunities"`
	AverageRating          float64 `json:"average_rating"`
	TotalHours             int32   `json:"total_hours"`
}

// VolunteerRecommendation annotates a volunteer with their match against one
// opportunity
type VolunteerRecommendation struct {
	VolunteerID  int32             `json:"volunteer_id"`
	Volunteer    *VolunteerProfile `json:"volunteer"`
	MatchScore   int               `json:"match_score"`
	MatchReasons []string          `json:"match_reasons"`
	Breakdown    ScoreBreakdown    `json:"breakdown"`
	Stats        VolunteerStats    `json:"stats"`
}

// Pagination describes one page of a recommendation result set
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalCount  int `json:"totalCount"`
}
