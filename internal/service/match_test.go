package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"volunteerhub-backend/internal/domain"
)

func futureSlot(now time.Time) domain.TimeSlot {
	return domain.TimeSlot{Date: now.Add(48 * time.Hour), StartTime: "09:00", EndTime: "17:00"}
}

func TestCalculateMatchScore_PartialMatch(t *testing.T) {
	now := time.Now()
	profile := &domain.VolunteerProfile{
		AccountID: 1,
		Skills:    []string{"cleaning", "teamwork"},
		Interests: []string{"environment"},
	}
	// Opportunity roughly 8.9 km north of the volunteer
	opp := &domain.Opportunity{
		ID:             7,
		SkillsRequired: []string{"cleaning", "teamwork", "painting"},
		Tags:           []string{"environment", "community"},
		Location:       &domain.GeoPoint{Longitude: 0, Latitude: 0.08},
		Slots:          []domain.TimeSlot{futureSlot(now)},
	}
	volunteerLoc := &domain.GeoPoint{Longitude: 0, Latitude: 0}

	result := CalculateMatchScore(profile, opp, volunteerLoc, now)

	assert.InDelta(t, 26.67, result.Breakdown.Skills, 0.01)     // 2 of 3 required
	assert.InDelta(t, 15.0, result.Breakdown.Interests, 0.001)  // 1 of max(2,1)
	assert.Equal(t, 15.0, result.Breakdown.Location)            // 5-10 km band
	assert.Equal(t, 10.0, result.Breakdown.Availability)
	assert.Equal(t, 67, result.Score)

	assert.Contains(t, result.Reasons, "Skills match: cleaning, teamwork")
	assert.Contains(t, result.Reasons, "Interests match: environment")
	assert.Contains(t, result.Reasons, "Location: Nearby")
	assert.Contains(t, result.Reasons, "Available during opportunity dates")
}

func TestCalculateMatchScore_PerfectMatch(t *testing.T) {
	now := time.Now()
	profile := &domain.VolunteerProfile{
		Skills:    []string{"first aid", "driving"},
		Interests: []string{"health", "elderly"},
	}
	opp := &domain.Opportunity{
		SkillsRequired: []string{"First Aid", "Driving"},
		Tags:           []string{"Health", "Elderly"},
		Location:       &domain.GeoPoint{Longitude: 90.4125, Latitude: 23.8103},
		Slots:          []domain.TimeSlot{futureSlot(now)},
	}
	loc := &domain.GeoPoint{Longitude: 90.4125, Latitude: 23.8103}

	result := CalculateMatchScore(profile, opp, loc, now)
	assert.Equal(t, 100, result.Score)
}

func TestCalculateMatchScore_NoOverlap(t *testing.T) {
	now := time.Now()
	profile := &domain.VolunteerProfile{
		Skills:    []string{"cooking"},
		Interests: []string{"animals"},
	}
	opp := &domain.Opportunity{
		SkillsRequired: []string{"plumbing"},
		Tags:           []string{"construction"},
		// Slot already in the past
		Slots: []domain.TimeSlot{{Date: now.Add(-24 * time.Hour)}},
	}

	result := CalculateMatchScore(profile, opp, nil, now)
	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.Reasons)
}

func TestCalculateMatchScore_EmptyProfileLists(t *testing.T) {
	now := time.Now()
	profile := &domain.VolunteerProfile{}
	opp := &domain.Opportunity{
		SkillsRequired: []string{"cleaning"},
		Tags:           []string{"environment"},
		Slots:          []domain.TimeSlot{futureSlot(now)},
	}

	result := CalculateMatchScore(profile, opp, nil, now)
	assert.Equal(t, 0.0, result.Breakdown.Skills)
	assert.Equal(t, 0.0, result.Breakdown.Interests)
	assert.Equal(t, 10, result.Score) // availability only
}

func TestCalculateMatchScore_SlotExactlyNowIsNotFuture(t *testing.T) {
	now := time.Now()
	profile := &domain.VolunteerProfile{}
	opp := &domain.Opportunity{
		Slots: []domain.TimeSlot{{Date: now}},
	}

	result := CalculateMatchScore(profile, opp, nil, now)
	assert.Equal(t, 0.0, result.Breakdown.Availability)
}

func TestLocationPoints_Steps(t *testing.T) {
	assert.Equal(t, 20.0, locationPoints(0))
	assert.Equal(t, 20.0, locationPoints(5))
	assert.Equal(t, 15.0, locationPoints(5.01))
	assert.Equal(t, 15.0, locationPoints(10))
	assert.Equal(t, 10.0, locationPoints(25))
	assert.Equal(t, 5.0, locationPoints(50))
	assert.Equal(t, 0.0, locationPoints(50.01))
}

func TestMatchingTags_CaseInsensitive(t *testing.T) {
	matched := matchingTags([]string{"Cleaning", "Teamwork"}, []string{"cleaning", "TEAMWORK", "extra"})
	assert.Equal(t, []string{"Cleaning", "Teamwork"}, matched)
}

func TestCalculateMatchScore_ScoreAlwaysInRange(t *testing.T) {
	now := time.Now()
	profiles := []*domain.VolunteerProfile{
		{},
		{Skills: []string{"a", "b", "c", "d"}, Interests: []string{"x"}},
		{Skills: []string{"a"}, Interests: []string{"x", "y", "z"}},
	}
	opps := []*domain.Opportunity{
		{},
		{SkillsRequired: []string{"a"}, Tags: []string{"x", "y"}, Slots: []domain.TimeSlot{futureSlot(now)}},
		{SkillsRequired: []string{"q", "r"}, Tags: []string{"z"}},
	}

	for _, p := range profiles {
		for _, o := range opps {
			result := CalculateMatchScore(p, o, nil, now)
			assert.GreaterOrEqual(t, result.Score, 0)
			assert.LessOrEqual(t, result.Score, 100)
		}
	}
}
