package service

import (
	"context"
	"log/slog"

	"github.com/moses-automall/intranet-api/internal/data"
	"github.com/moses-automall/intranet-api/internal/domain/model"
	apperrors "github.com/moses-automall/intranet-api/internal/errors"
	"github.com/moses-automall/intranet-api/internal/ports"
)

// mockDataNote is attached to listings served from bundled sample data.
const mockDataNote = "Using sample data - Google Drive is not connected"

// DocumentServiceOptions groups dependencies for DocumentService.
type DocumentServiceOptions struct {
	Source ports.DocumentSource // nil when no drive is configured
	Logger *slog.Logger
}

// DocumentService serves company documents from the cloud drive, falling
// back to bundled sample data when the drive is unconfigured or down.
// Folder browsing has no fallback: a wrong folder ID should surface as an
// error rather than silently show unrelated sample files.
type DocumentService struct {
	source ports.DocumentSource
	logger *slog.Logger
}

// NewDocumentService constructs a DocumentService.
func NewDocumentService(opts DocumentServiceOptions) *DocumentService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentService{source: opts.Source, logger: logger}
}

// ListDocuments returns the root folder's documents. The note is non-empty
// when sample data is served instead of live drive contents.
func (s *DocumentService) ListDocuments(ctx context.Context) (docs []model.Document, note string, err error) {
	if s.source == nil {
		return data.SeedDocuments(), mockDataNote, nil
	}

	docs, err = s.source.ListDocuments(ctx)
	if err != nil {
		s.logger.Warn("drive listing failed, serving sample documents", "error", err)
		return data.SeedDocuments(), mockDataNote, nil
	}
	return docs, "", nil
}

// ListFolders returns the root folder's sub-folders, with the same sample
// data fallback as ListDocuments.
func (s *DocumentService) ListFolders(ctx context.Context) (folders []model.Folder, note string, err error) {
	if s.source == nil {
		return data.SeedFolders(), mockDataNote, nil
	}

	folders, err = s.source.ListFolders(ctx)
	if err != nil {
		s.logger.Warn("drive folder listing failed, serving sample folders", "error", err)
		return data.SeedFolders(), mockDataNote, nil
	}
	return folders, "", nil
}

// ListFolderDocuments returns the documents inside a specific sub-folder.
func (s *DocumentService) ListFolderDocuments(ctx context.Context, folderID string) ([]model.Document, error) {
	if folderID == "" {
		return nil, apperrors.Validation("folder ID is required")
	}
	if s.source == nil {
		return nil, apperrors.Internal("document storage is not configured")
	}

	docs, err := s.source.ListFolderDocuments(ctx, folderID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "list folder documents")
	}
	return docs, nil
}
