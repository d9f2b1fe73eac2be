package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/service"
)

type RecommendationHandler struct {
	recSvc service.RecommendationService
	oppSvc service.OpportunityService
}

func NewRecommendationHandler(recSvc service.RecommendationService, oppSvc service.OpportunityService) *RecommendationHandler {
	return &RecommendationHandler{
		recSvc: recSvc,
		oppSvc: oppSvc,
	}
}

// RecommendOpportunities serves GET /recommendations/volunteer/{volunteerId}.
// Volunteers may only query their own recommendations; admins see anyone's.
func (h *RecommendationHandler) RecommendOpportunities(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)

	volunteerID, err := pathID(r, "volunteerId")
	if err != nil {
		writeError(w, err)
		return
	}
	if !claims.IsAdmin() && claims.AccountID != volunteerID {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	recs, pagination, err := h.recSvc.RecommendOpportunities(r.Context(), volunteerID, parseRecommendationOptions(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"recommendations": recs,
		"pagination":      pagination,
	})
}

// RecommendVolunteers serves GET /recommendations/opportunity/{opportunityId}.
// Only the owning organization or an admin may query.
func (h *RecommendationHandler) RecommendVolunteers(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)

	opportunityID, err := pathID(r, "opportunityId")
	if err != nil {
		writeError(w, err)
		return
	}

	opp, err := h.oppSvc.GetOpportunity(r.Context(), opportunityID)
	if err != nil {
		writeError(w, err)
		return
	}
	if !claims.IsAdmin() && opp.OrganizationID != claims.AccountID {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	recs, pagination, err := h.recSvc.RecommendVolunteers(r.Context(), opportunityID, parseRecommendationOptions(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"recommendations": recs,
		"pagination":      pagination,
	})
}

// parseRecommendationOptions reads limit, page and minScore query params
// leniently: absent or unparseable values fall back to the operation
// defaults instead of failing the request.
func parseRecommendationOptions(r *http.Request) service.RecommendationOptions {
	return service.RecommendationOptions{
		Limit:    queryInt(r, "limit"),
		Page:     queryInt(r, "page"),
		MinScore: queryInt(r, "minScore"),
	}
}

func queryInt(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return 0
	}
	return val
}

// pathID extracts a positive int32 path variable
func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	val, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || val <= 0 {
		return 0, domain.InvalidArgumentError("invalid " + name)
	}
	return int32(val), nil
}
