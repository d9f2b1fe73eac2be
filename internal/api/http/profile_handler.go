package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/service"
)

type ProfileHandler struct {
	profileSvc service.ProfileService
	validate   *validator.Validate
}

func NewProfileHandler(profileSvc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileSvc: profileSvc,
		validate:   validator.New(),
	}
}

type profileRequest struct {
	Name         string   `json:"name" validate:"required"`
	Bio          string   `json:"bio"`
	Skills       []string `json:"skills"`
	Interests    []string `json:"interests"`
	IsBloodDonor bool     `json:"is_blood_donor"`
	BloodGroup   string   `json:"blood_group" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
}

func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)

	var req profileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, domain.InvalidArgumentError(err.Error()))
		return
	}

	profile := req.toDomain(claims.AccountID)
	if err := h.profileSvc.CreateProfile(r.Context(), profile); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{"profile": profile})
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "accountId")
	if err != nil {
		writeError(w, err)
		return
	}

	profile, err := h.profileSvc.GetProfile(r.Context(), accountID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"profile": profile})
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)

	var req profileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, domain.InvalidArgumentError(err.Error()))
		return
	}

	profile := req.toDomain(claims.AccountID)
	if err := h.profileSvc.UpdateProfile(r.Context(), profile); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"profile": profile})
}

func (req *profileRequest) toDomain(accountID int32) *domain.VolunteerProfile {
	profile := &domain.VolunteerProfile{
		AccountID:    accountID,
		Name:         req.Name,
		Bio:          req.Bio,
		Skills:       req.Skills,
		Interests:    req.Interests,
		IsBloodDonor: req.IsBloodDonor,
	}
	if req.BloodGroup != "" {
		bg := domain.BloodGroup(req.BloodGroup)
		profile.BloodGroup = &bg
	}
	return profile
}
