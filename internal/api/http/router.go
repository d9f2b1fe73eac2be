package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"volunteerhub-backend/internal/realtime"
	"volunteerhub-backend/internal/security"
	"volunteerhub-backend/internal/service"
)

// Services bundles everything the HTTP layer depends on
type Services struct {
	Auth           service.AuthService
	Profile        service.ProfileService
	Opportunity    service.OpportunityService
	Recommendation service.RecommendationService
	Registration   service.RegistrationService
	GroupChat      service.GroupChatService
	Notification   service.NotificationService
}

// NewRouter wires all handlers onto a mux router under /api/v1
func NewRouter(svcs Services, tokens security.TokenManager, hub *realtime.Hub) *mux.Router {
	authHandler := NewAuthHandler(svcs.Auth)
	profileHandler := NewProfileHandler(svcs.Profile)
	oppHandler := NewOpportunityHandler(svcs.Opportunity)
	recHandler := NewRecommendationHandler(svcs.Recommendation, svcs.Opportunity)
	regHandler := NewRegistrationHandler(svcs.Registration)
	convHandler := NewConversationHandler(svcs.GroupChat)
	noteHandler := NewNotificationHandler(svcs.Notification)
	wsHandler := NewWebSocketHandler(hub)

	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, http.StatusOK, nil)
	}).Methods(http.MethodGet)

	// Authenticated routes
	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(tokens))

	authed.HandleFunc("/auth/push-token", authHandler.RegisterPushToken).Methods(http.MethodPost)

	authed.HandleFunc("/profiles", profileHandler.Create).Methods(http.MethodPost)
	authed.HandleFunc("/profiles", profileHandler.Update).Methods(http.MethodPut)
	authed.HandleFunc("/profiles/{accountId:[0-9]+}", profileHandler.Get).Methods(http.MethodGet)

	authed.HandleFunc("/opportunities", oppHandler.Create).Methods(http.MethodPost)
	authed.HandleFunc("/opportunities", oppHandler.ListMine).Methods(http.MethodGet)
	authed.HandleFunc("/opportunities/{id:[0-9]+}", oppHandler.Get).Methods(http.MethodGet)

	authed.HandleFunc("/recommendations/volunteer/{volunteerId:[0-9]+}", recHandler.RecommendOpportunities).Methods(http.MethodGet)
	authed.HandleFunc("/recommendations/opportunity/{opportunityId:[0-9]+}", recHandler.RecommendVolunteers).Methods(http.MethodGet)

	authed.HandleFunc("/registrations", regHandler.Apply).Methods(http.MethodPost)
	authed.HandleFunc("/registrations/check", regHandler.Check).Methods(http.MethodPost)
	authed.HandleFunc("/registrations/volunteer/{volunteerId:[0-9]+}", regHandler.ListByVolunteer).Methods(http.MethodGet)
	authed.HandleFunc("/registrations/{id:[0-9]+}", regHandler.UpdateStatus).Methods(http.MethodPatch)
	authed.HandleFunc("/registrations/opportunity/{opportunityId:[0-9]+}", regHandler.Withdraw).Methods(http.MethodDelete)

	authed.HandleFunc("/conversations", convHandler.Create).Methods(http.MethodPost)

	authed.HandleFunc("/notifications", noteHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/notifications/{id:[0-9]+}/read", noteHandler.MarkAsRead).Methods(http.MethodPost)

	authed.HandleFunc("/ws/membership", wsHandler.Serve).Methods(http.MethodGet)

	return router
}
