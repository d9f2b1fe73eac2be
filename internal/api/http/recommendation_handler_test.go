package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/service"
)

func TestRecommendationHandler_RecommendOpportunities(t *testing.T) {
	t.Run("Self Query Succeeds", func(t *testing.T) {
		recSvc := new(MockRecommendationService)
		oppSvc := new(MockOpportunityService)
		handler := NewRecommendationHandler(recSvc, oppSvc)

		recSvc.On("RecommendOpportunities", mock.Anything, int32(1), service.RecommendationOptions{}).
			Return([]domain.OpportunityRecommendation{}, domain.Pagination{CurrentPage: 1}, nil)

		req := authedRequest(http.MethodGet, "/api/v1/recommendations/volunteer/1", "", volunteerClaims(1))
		req = mux.SetURLVars(req, map[string]string{"volunteerId": "1"})
		rec := httptest.NewRecorder()
		handler.RecommendOpportunities(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Other Volunteer Is Forbidden", func(t *testing.T) {
		recSvc := new(MockRecommendationService)
		oppSvc := new(MockOpportunityService)
		handler := NewRecommendationHandler(recSvc, oppSvc)

		req := authedRequest(http.MethodGet, "/api/v1/recommendations/volunteer/7", "", volunteerClaims(1))
		req = mux.SetURLVars(req, map[string]string{"volunteerId": "7"})
		rec := httptest.NewRecorder()
		handler.RecommendOpportunities(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		recSvc.AssertNotCalled(t, "RecommendOpportunities", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Bad Query Params Fall Back To Defaults", func(t *testing.T) {
		recSvc := new(MockRecommendationService)
		oppSvc := new(MockOpportunityService)
		handler := NewRecommendationHandler(recSvc, oppSvc)

		// Unparseable values coerce to zero and the service applies defaults
		recSvc.On("RecommendOpportunities", mock.Anything, int32(1), service.RecommendationOptions{}).
			Return([]domain.OpportunityRecommendation{}, domain.Pagination{}, nil)

		req := authedRequest(http.MethodGet, "/api/v1/recommendations/volunteer/1?limit=abc&page=-3&minScore=x", "", volunteerClaims(1))
		req = mux.SetURLVars(req, map[string]string{"volunteerId": "1"})
		rec := httptest.NewRecorder()
		handler.RecommendOpportunities(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		recSvc.AssertExpectations(t)
	})
}

func TestRecommendationHandler_RecommendVolunteers(t *testing.T) {
	opp := &domain.Opportunity{ID: 5, OrganizationID: 2}

	t.Run("Owner Query Succeeds", func(t *testing.T) {
		recSvc := new(MockRecommendationService)
		oppSvc := new(MockOpportunityService)
		handler := NewRecommendationHandler(recSvc, oppSvc)

		oppSvc.On("GetOpportunity", mock.Anything, int32(5)).Return(opp, nil)
		recSvc.On("RecommendVolunteers", mock.Anything, int32(5), service.RecommendationOptions{}).
			Return([]domain.VolunteerRecommendation{}, domain.Pagination{}, nil)

		req := authedRequest(http.MethodGet, "/api/v1/recommendations/opportunity/5", "", orgClaims(2))
		req = mux.SetURLVars(req, map[string]string{"opportunityId": "5"})
		rec := httptest.NewRecorder()
		handler.RecommendVolunteers(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Non Owner Is Forbidden", func(t *testing.T) {
		recSvc := new(MockRecommendationService)
		oppSvc := new(MockOpportunityService)
		handler := NewRecommendationHandler(recSvc, oppSvc)

		oppSvc.On("GetOpportunity", mock.Anything, int32(5)).Return(opp, nil)

		req := authedRequest(http.MethodGet, "/api/v1/recommendations/opportunity/5", "", orgClaims(99))
		req = mux.SetURLVars(req, map[string]string{"opportunityId": "5"})
		rec := httptest.NewRecorder()
		handler.RecommendVolunteers(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		recSvc.AssertNotCalled(t, "RecommendVolunteers", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing Opportunity Maps To 404", func(t *testing.T) {
		recSvc := new(MockRecommendationService)
		oppSvc := new(MockOpportunityService)
		handler := NewRecommendationHandler(recSvc, oppSvc)

		oppSvc.On("GetOpportunity", mock.Anything, int32(5)).Return(nil, domain.NotFoundError("opportunity", 5))

		req := authedRequest(http.MethodGet, "/api/v1/recommendations/opportunity/5", "", orgClaims(2))
		req = mux.SetURLVars(req, map[string]string{"opportunityId": "5"})
		rec := httptest.NewRecorder()
		handler.RecommendVolunteers(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
