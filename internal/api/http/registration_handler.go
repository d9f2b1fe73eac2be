package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/service"
)

type RegistrationHandler struct {
	regSvc   service.RegistrationService
	validate *validator.Validate
}

func NewRegistrationHandler(regSvc service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		regSvc:   regSvc,
		validate: validator.New(),
	}
}

type applyRequest struct {
	OpportunityID int32  `json:"opportunity_id" validate:"required,gt=0"`
	Status        string `json:"status"`
}

// Apply serves POST /registrations; the volunteer is the authenticated caller
func (h *RegistrationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)

	var req applyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, domain.InvalidArgumentError(err.Error()))
		return
	}

	reg, err := h.regSvc.Apply(r.Context(), claims.AccountID, req.OpportunityID, domain.RegistrationStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{"registration": reg})
}

// ListByVolunteer serves GET /registrations/volunteer/{volunteerId}
func (h *RegistrationHandler) ListByVolunteer(w http.ResponseWriter, r *http.Request) {
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

	regs, err := h.regSvc.ListByVolunteer(r.Context(), volunteerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"registrations": regs})
}

type checkRequest struct {
	OpportunityID int32 `json:"opportunity_id" validate:"required,gt=0"`
}

// Check serves POST /registrations/check and reports whether the caller has
// a registration for the opportunity
func (h *RegistrationHandler) Check(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)

	var req checkRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, domain.InvalidArgumentError(err.Error()))
		return
	}

	registered, err := h.regSvc.IsRegistered(r.Context(), claims.AccountID, req.OpportunityID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"registered": registered})
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus serves PATCH /registrations/{id}; the caller must own the
// opportunity or be an admin
func (h *RegistrationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)

	registrationID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, domain.InvalidArgumentError(err.Error()))
		return
	}

	reg, err := h.regSvc.UpdateStatus(r.Context(), claims.AccountID, claims.IsAdmin(), registrationID, domain.RegistrationStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"registration": reg})
}

// Withdraw serves DELETE /registrations/opportunity/{opportunityId} for the
// authenticated volunteer
func (h *RegistrationHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)

	opportunityID, err := pathID(r, "opportunityId")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.regSvc.Withdraw(r.Context(), claims.AccountID, opportunityID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, nil)
}
