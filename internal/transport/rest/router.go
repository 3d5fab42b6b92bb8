package rest

import "net/http"

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health      *HealthHandler
	Session     *SessionHandler
	Animals     *AnimalHandler
	Goals       *GoalHandler
	Milestones  *MilestoneHandler
	Badges      *BadgeHandler
	Sharing     *SharingHandler
	Preferences *PreferenceHandler
}

// NewRouter builds the HTTP route table.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /api/v1/session/start", h.Session.Start)

	mux.HandleFunc("POST /api/v1/animals", h.Animals.Create)
	mux.HandleFunc("GET /api/v1/animals", h.Animals.List)
	mux.HandleFunc("GET /api/v1/animals/{animalID}", h.Animals.Get)

	mux.HandleFunc("POST /api/v1/goals", h.Goals.Create)
	mux.HandleFunc("GET /api/v1/goals/{goalID}", h.Goals.Get)
	mux.HandleFunc("PATCH /api/v1/goals/{goalID}", h.Goals.Update)
	mux.HandleFunc("DELETE /api/v1/goals/{goalID}", h.Goals.Delete)
	mux.HandleFunc("POST /api/v1/goals/{goalID}/completion", h.Goals.ToggleCompletion)
	mux.HandleFunc("POST /api/v1/goals/{goalID}/progress", h.Goals.RecomputeProgress)
	mux.HandleFunc("GET /api/v1/animals/{animalID}/goals", h.Goals.ListByAnimal)

	mux.HandleFunc("POST /api/v1/milestones", h.Milestones.Record)
	mux.HandleFunc("DELETE /api/v1/milestones/{milestoneID}", h.Milestones.Delete)
	mux.HandleFunc("GET /api/v1/animals/{animalID}/milestones", h.Milestones.ListByAnimal)

	mux.HandleFunc("POST /api/v1/badges", h.Badges.Grant)
	mux.HandleFunc("DELETE /api/v1/badges/{badgeID}", h.Badges.Delete)
	mux.HandleFunc("GET /api/v1/animals/{animalID}/badges", h.Badges.ListByAnimal)
	mux.HandleFunc("POST /api/v1/animals/{animalID}/badges/evaluate", h.Badges.Evaluate)

	mux.HandleFunc("POST /api/v1/sharing/invitations", h.Sharing.Invite)
	mux.HandleFunc("GET /api/v1/sharing/invitations", h.Sharing.ListCollaborators)
	mux.HandleFunc("GET /api/v1/sharing/granted", h.Sharing.ListGranted)
	mux.HandleFunc("DELETE /api/v1/sharing/invitations/{invitationID}", h.Sharing.Revoke)

	mux.HandleFunc("GET /api/v1/preferences/widgets", h.Preferences.List)
	mux.HandleFunc("PUT /api/v1/preferences/widgets/{widgetID}", h.Preferences.Set)

	return mux
}
