package bootstrap

import (
	"context"
	"log/slog"

	"github.com/moses-automall/intranet-api/config"
	"github.com/moses-automall/intranet-api/internal/adapters/gdrive"
	"github.com/moses-automall/intranet-api/internal/data"
	"github.com/moses-automall/intranet-api/internal/ports"
	"github.com/moses-automall/intranet-api/internal/service"
)

// ServiceContainer holds the application services served over HTTP.
type ServiceContainer struct {
	Auth      *service.AuthService
	Directory *service.DirectoryService
	Training  *service.TrainingService
	Events    *service.EventService
	Documents *service.DocumentService
}

// ServiceDeps groups dependencies for NewServices.
type ServiceDeps struct {
	Config   *config.AppConfig
	Sessions ports.SessionStore
	Logger   *slog.Logger
}

// NewServices builds the service container over the seeded in-memory
// repositories and the configured document source.
func NewServices(ctx context.Context, deps *ServiceDeps) (ServiceContainer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	auth, err := BuildAuthService(AuthDeps{
		Auth:     deps.Config.Auth,
		Session:  deps.Config.Session,
		Sessions: deps.Sessions,
		Logger:   logger,
	})
	if err != nil {
		return ServiceContainer{}, err
	}

	trainings := data.NewTrainingRepo()

	return ServiceContainer{
		Auth: auth,
		Directory: service.NewDirectoryService(service.DirectoryServiceOptions{
			Users:         data.NewUserRepo(),
			Trainings:     trainings,
			Announcements: data.NewAnnouncementRepo(),
		}),
		Training: service.NewTrainingService(trainings),
		Events:   service.NewEventService(data.NewEventRepo(), nil),
		Documents: service.NewDocumentService(service.DocumentServiceOptions{
			Source: buildDocumentSource(ctx, deps.Config.Documents, logger),
			Logger: logger,
		}),
	}, nil
}

// buildDocumentSource connects the Drive client when credentials are
// configured. Failures degrade to the sample-data fallback rather than
// blocking startup: the rest of the portal works without documents.
func buildDocumentSource(ctx context.Context, cfg config.DocumentsConfig, logger *slog.Logger) ports.DocumentSource {
	if !cfg.Enabled() {
		logger.Info("Google Drive credentials not configured, documents will use sample data")
		return nil
	}

	source, err := gdrive.NewSource(ctx, gdrive.SourceOptions{
		CredentialsFile: cfg.CredentialsFile,
		RootFolderID:    cfg.RootFolderID,
	})
	if err != nil {
		logger.Warn("Google Drive client failed to initialize, documents will use sample data", "error", err)
		return nil
	}

	logger.Info("Google Drive connected", "rootFolder", cfg.RootFolderID)
	return source
}
