package service

import (
	"fmt"
	"strings"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/geo"
)

// Match scoring weights. The four components sum to 100.
const (
	skillsWeight       = 40.0
	interestsWeight    = 30.0
	availabilityWeight = 10.0
)

// CalculateMatchScore computes the compatibility of a volunteer profile with
// an opportunity. volunteerLocation may be nil, in which case the location
// component contributes 0. The function has no failure mode: missing optional
// data degrades sub-scores to zero.
func CalculateMatchScore(profile *domain.VolunteerProfile, opp *domain.Opportunity, volunteerLocation *domain.GeoPoint, now time.Time) domain.MatchResult {
	var breakdown domain.ScoreBreakdown

	// 1. Skills (40 points): fraction of required skills the volunteer has
	if len(opp.SkillsRequired) > 0 && len(profile.Skills) > 0 {
		matching := matchingTags(opp.SkillsRequired, profile.Skills)
		breakdown.Skills = float64(len(matching)) / float64(len(opp.SkillsRequired)) * skillsWeight
	}

	// 2. Interests (30 points): overlap normalized by the larger list, which
	// penalizes very broad interest lists against narrowly tagged opportunities
	if len(opp.Tags) > 0 && len(profile.Interests) > 0 {
		matching := matchingTags(opp.Tags, profile.Interests)
		larger := len(opp.Tags)
		if len(profile.Interests) > larger {
			larger = len(profile.Interests)
		}
		breakdown.Interests = float64(len(matching)) / float64(larger) * interestsWeight
	}

	// 3. Location (20 points, stepped)
	if volunteerLocation != nil && opp.Location != nil {
		distance := geo.Distance(
			[2]float64{volunteerLocation.Longitude, volunteerLocation.Latitude},
			[2]float64{opp.Location.Longitude, opp.Location.Latitude},
		)
		breakdown.Location = locationPoints(distance)
	}

	// 4. Availability (10 points, binary): the opportunity has a slot whose
	// date is still ahead. The volunteer's own calendar is not consulted.
	if opp.HasFutureSlot(now) {
		breakdown.Availability = availabilityWeight
	}

	return domain.MatchResult{
		Score:     breakdown.Total(),
		Breakdown: breakdown,
		Reasons:   matchReasons(breakdown, profile, opp),
	}
}

// locationPoints maps a distance in kilometers onto the stepped location
// sub-score. Boundaries are inclusive of the lower step.
func locationPoints(distanceKm float64) float64 {
	switch {
	case distanceKm <= 5:
		return 20
	case distanceKm <= 10:
		return 15
	case distanceKm <= 25:
		return 10
	case distanceKm <= 50:
		return 5
	default:
		return 0
	}
}

// matchingTags returns the members of want that appear in have, compared
// case-insensitively, preserving want's order and casing
func matchingTags(want, have []string) []string {
	var matched []string
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(w, h) {
				matched = append(matched, w)
				break
			}
		}
	}
	return matched
}

// matchReasons generates display reasons for the nonzero components of a
// breakdown
func matchReasons(b domain.ScoreBreakdown, profile *domain.VolunteerProfile, opp *domain.Opportunity) []string {
	var reasons []string

	if b.Skills > 0 {
		if matching := matchingTags(opp.SkillsRequired, profile.Skills); len(matching) > 0 {
			reasons = append(reasons, fmt.Sprintf("Skills match: %s", strings.Join(matching, ", ")))
		}
	}

	if b.Interests > 0 {
		if matching := matchingTags(opp.Tags, profile.Interests); len(matching) > 0 {
			reasons = append(reasons, fmt.Sprintf("Interests match: %s", strings.Join(matching, ", ")))
		}
	}

	if b.Location >= 15 {
		reasons = append(reasons, "Location: Nearby")
	} else if b.Location > 0 {
		reasons = append(reasons, "Location: Within range")
	}

	if b.Availability > 0 {
		reasons = append(reasons, "Available during opportunity dates")
	}

	return reasons
}
