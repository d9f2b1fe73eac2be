package http

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/service"
)

type OpportunityHandler struct {
	oppSvc   service.OpportunityService
	validate *validator.Validate
}

func NewOpportunityHandler(oppSvc service.OpportunityService) *OpportunityHandler {
	return &OpportunityHandler{
		oppSvc:   oppSvc,
		validate: validator.New(),
	}
}

type slotRequest struct {
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type createOpportunityRequest struct {
	Title          string           `json:"title" validate:"required"`
	Description    string           `json:"description"`
	Purpose        string           `json:"purpose"`
	Role           string           `json:"role"`
	Details        string           `json:"details"`
	Longitude      *float64         `json:"longitude"`
	Latitude       *float64         `json:"latitude"`
	Address        string           `json:"address"`
	SkillsRequired []string         `json:"skills_required"`
	Tags           []string         `json:"tags"`
	Kind           string           `json:"kind" validate:"omitempty,oneof=InPerson Virtual"`
	Slots          []slotRequest    `json:"slots" validate:"required,min=1,dive"`
}

// Create serves POST /opportunities for organization accounts
func (h *OpportunityHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	if claims.Role != domain.AccountRoleOrganization && !claims.IsAdmin() {
		writeError(w, domain.ErrUnauthorized)
		return
	}

	var req createOpportunityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, domain.InvalidArgumentError(err.Error()))
		return
	}

	slots := make([]domain.TimeSlot, 0, len(req.Slots))
	for _, s := range req.Slots {
		date, err := time.Parse("2006-01-02", s.Date)
		if err != nil {
			writeError(w, domain.InvalidArgumentError("slot date must be YYYY-MM-DD"))
			return
		}
		slots = append(slots, domain.TimeSlot{Date: date, StartTime: s.StartTime, EndTime: s.EndTime})
	}

	var location *domain.GeoPoint
	if req.Longitude != nil && req.Latitude != nil {
		location = &domain.GeoPoint{Longitude: *req.Longitude, Latitude: *req.Latitude}
	}

	opp := &domain.Opportunity{
		OrganizationID: claims.AccountID,
		Title:          req.Title,
		Description:    req.Description,
		Purpose:        req.Purpose,
		Role:           req.Role,
		Details:        req.Details,
		Location:       location,
		Address:        req.Address,
		SkillsRequired: req.SkillsRequired,
		Tags:           req.Tags,
		Kind:           domain.OpportunityKind(req.Kind),
		Slots:          slots,
	}
	if err := h.oppSvc.CreateOpportunity(r.Context(), opp); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{"opportunity": opp})
}

// Get serves GET /opportunities/{id}
func (h *OpportunityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	opp, err := h.oppSvc.GetOpportunity(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"opportunity": opp})
}

// ListMine serves GET /opportunities and returns the caller's opportunities
func (h *OpportunityHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)

	page := int32(queryInt(r, "page"))
	pageSize := int32(queryInt(r, "pageSize"))

	opps, total, err := h.oppSvc.ListByOrganization(r.Context(), claims.AccountID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{
		"opportunities": opps,
		"totalCount":    total,
	})
}
