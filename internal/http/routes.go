package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	domainauth "github.com/moses-automall/intranet-api/internal/domain/auth"
	"github.com/moses-automall/intranet-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth      AuthServiceInterface
	Directory *service.DirectoryService
	Training  *service.TrainingService
	Events    *service.EventService
	Documents *service.DocumentService

	CookieDomain   string
	FrontendOrigin string
	Logger         *slog.Logger // optional
}

// NewRouter creates and configures the portal HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc:            services.Auth,
		Directory:      services.Directory,
		CookieDomain:   services.CookieDomain,
		FrontendOrigin: services.FrontendOrigin,
		Logger:         services.Logger,
	}
	userHandlers := &UserHandlers{Directory: services.Directory}
	trainingHandlers := &TrainingHandlers{Svc: services.Training}
	eventHandlers := &EventHandlers{Svc: services.Events}
	documentHandlers := &DocumentHandlers{Svc: services.Documents}
	adminHandlers := &AdminHandlers{Directory: services.Directory}

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	registerAuthRoutes(mux, authHandlers)
	registerAPIRoutes(mux, apiHandlers{
		auth:      services.Auth,
		users:     userHandlers,
		training:  trainingHandlers,
		events:    eventHandlers,
		documents: documentHandlers,
		admin:     adminHandlers,
	})

	// Everything unmatched gets a JSON 404 instead of the default plain text.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "not_found",
			Err:     errors.New("route not found: " + r.URL.Path),
		})
	})

	return mux
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("GET /auth/login", h.Login)
	mux.HandleFunc("GET /auth/callback", h.Callback)
	mux.HandleFunc("GET /auth/me", h.Me)
	mux.HandleFunc("POST /auth/auto-login", h.AutoLogin)
	mux.HandleFunc("POST /auth/logout", h.Logout)
}

// apiHandlers groups the handlers behind the session-protected /api tree.
type apiHandlers struct {
	auth      AuthServiceInterface
	users     *UserHandlers
	training  *TrainingHandlers
	events    *EventHandlers
	documents *DocumentHandlers
	admin     *AdminHandlers
}

func registerAPIRoutes(mux *http.ServeMux, h apiHandlers) {
	authed := RequireAuth(h.auth)
	adminOnly := RequireRole(h.auth, domainauth.RoleAdmin)

	handle := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, authed(fn))
	}
	handleAdmin := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, adminOnly(fn))
	}

	handle("GET /api/users/profile", h.users.GetProfile)
	handle("PUT /api/users/profile", h.users.UpdateProfile)

	handle("GET /api/training", h.training.List)
	handle("GET /api/training/progress/summary", h.training.Progress)
	handle("GET /api/training/{id}", h.training.Get)
	handle("POST /api/training/{id}/complete", h.training.Complete)

	handle("GET /api/events", h.events.List)
	handle("GET /api/events/{id}", h.events.Get)
	handle("POST /api/events/{id}/rsvp", h.events.RSVP)

	handle("GET /api/documents", h.documents.List)
	handle("GET /api/documents/folders", h.documents.ListFolders)
	handle("GET /api/documents/folders/{folderId}", h.documents.ListFolderDocuments)

	handleAdmin("GET /api/admin/users", h.admin.ListUsers)
	handleAdmin("GET /api/admin/users/{id}", h.admin.GetUser)
	handleAdmin("PUT /api/admin/users/{id}/roles", h.admin.UpdateUserRoles)
	handleAdmin("POST /api/admin/users/{id}/training", h.admin.AssignTraining)
	handleAdmin("GET /api/admin/stats", h.admin.Stats)
	handleAdmin("POST /api/admin/announcements", h.admin.PublishAnnouncement)
}
