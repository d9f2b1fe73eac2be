package service

import (
	"context"
	"sort"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/logger"
	"volunteerhub-backend/internal/repository"
)

const (
	defaultVolunteerRecommendationLimit    = 10
	defaultOrganizationRecommendationLimit = 20
)

type recommendationService struct {
	profileRepo repository.ProfileRepository
	oppRepo     repository.OpportunityRepository
	regRepo     repository.RegistrationRepository
	accountRepo repository.AccountRepository
}

func NewRecommendationService(
	profileRepo repository.ProfileRepository,
	oppRepo repository.OpportunityRepository,
	regRepo repository.RegistrationRepository,
	accountRepo repository.AccountRepository,
) RecommendationService {
	return &recommendationService{
		profileRepo: profileRepo,
		oppRepo:     oppRepo,
		regRepo:     regRepo,
		accountRepo: accountRepo,
	}
}

func (s *recommendationService) RecommendOpportunities(ctx context.Context, volunteerID int32, opts RecommendationOptions) ([]domain.OpportunityRecommendation, domain.Pagination, error) {
	opts = opts.normalize(defaultVolunteerRecommendationLimit)

	profile, err := s.profileRepo.GetByAccount(ctx, volunteerID)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	// Volunteer location is not tracked on the profile yet, so the location
	// component stays inert for this direction.
	var volunteerLocation *domain.GeoPoint

	now := time.Now()
	opportunities, err := s.oppRepo.ListActive(ctx,
		[]domain.OpportunityStatus{domain.OpportunityStatusUpcoming, domain.OpportunityStatusStarted}, now)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	recommendations := make([]domain.OpportunityRecommendation, 0, len(opportunities))
	for i := range opportunities {
		opp := &opportunities[i]
		result := CalculateMatchScore(profile, opp, volunteerLocation, now)
		if result.Score < opts.MinScore {
			continue
		}
		recommendations = append(recommendations, domain.OpportunityRecommendation{
			OpportunityID: opp.ID,
			Opportunity:   opp,
			MatchScore:    result.Score,
			MatchReasons:  result.Reasons,
			Breakdown:     result.Breakdown,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		if recommendations[i].MatchScore != recommendations[j].MatchScore {
			return recommendations[i].MatchScore > recommendations[j].MatchScore
		}
		return recommendations[i].OpportunityID < recommendations[j].OpportunityID
	})

	page, pagination := paginate(len(recommendations), opts)
	return recommendations[page.start:page.end], pagination, nil
}

func (s *recommendationService) RecommendVolunteers(ctx context.Context, opportunityID int32, opts RecommendationOptions) ([]domain.VolunteerRecommendation, domain.Pagination, error) {
	opts = opts.normalize(defaultOrganizationRecommendationLimit)

	opportunity, err := s.oppRepo.GetByID(ctx, opportunityID)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	registrations, err := s.regRepo.ListByOpportunity(ctx, opportunityID)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	applied := make(map[int32]bool, len(registrations))
	for _, reg := range registrations {
		applied[reg.VolunteerID] = true
	}

	now := time.Now()
	recommendations := make([]domain.VolunteerRecommendation, 0, len(profiles))
	for i := range profiles {
		profile := &profiles[i]
		if applied[profile.AccountID] {
			continue
		}

		// Location scoring is deliberately inert for this direction
		result := CalculateMatchScore(profile, opportunity, nil, now)
		if result.Score < opts.MinScore {
			continue
		}

		recommendations = append(recommendations, domain.VolunteerRecommendation{
			VolunteerID:  profile.AccountID,
			Volunteer:    profile,
			MatchScore:   result.Score,
			MatchReasons: result.Reasons,
			Breakdown:    result.Breakdown,
			Stats:        s.volunteerStats(ctx, profile.AccountID),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		if recommendations[i].MatchScore != recommendations[j].MatchScore {
			return recommendations[i].MatchScore > recommendations[j].MatchScore
		}
		return recommendations[i].VolunteerID < recommendations[j].VolunteerID
	})

	page, pagination := paginate(len(recommendations), opts)
	return recommendations[page.start:page.end], pagination, nil
}

// volunteerStats loads lifetime stats from the account record; a missing or
// unreadable account degrades to zero stats rather than failing the query
func (s *recommendationService) volunteerStats(ctx context.Context, accountID int32) domain.VolunteerStats {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		logger.Warn("Failed to load volunteer stats", "account_id", accountID, "error", err)
		return domain.VolunteerStats{}
	}
	return domain.VolunteerStats{
		CompletedOpportunities: account.CompletedOpportunities,
		AverageRating:          account.AverageRating,
		TotalHours:             account.TotalHours,
	}
}

func (o RecommendationOptions) normalize(defaultLimit int) RecommendationOptions {
	if o.Limit <= 0 {
		o.Limit = defaultLimit
	}
	if o.Page <= 0 {
		o.Page = 1
	}
	if o.MinScore < 0 {
		o.MinScore = 0
	}
	return o
}

type pageBounds struct {
	start, end int
}

// paginate computes 1-indexed page bounds and metadata for a result set of
// the given size
func paginate(total int, opts RecommendationOptions) (pageBounds, domain.Pagination) {
	totalPages := (total + opts.Limit - 1) / opts.Limit

	start := (opts.Page - 1) * opts.Limit
	if start > total {
		start = total
	}
	end := start + opts.Limit
	if end > total {
		end = total
	}

	return pageBounds{start: start, end: end}, domain.Pagination{
		CurrentPage: opts.Page,
		TotalPages:  totalPages,
		TotalCount:  total,
	}
}
