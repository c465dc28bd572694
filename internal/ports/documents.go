package ports

import (
	"context"

	"github.com/moses-automall/intranet-api/internal/domain/model"
)

// DocumentSource lists documents mirrored from a cloud drive. The portal
// treats the drive as an external collaborator: read-only, listing only.
type DocumentSource interface {
	// ListDocuments lists files in the configured root folder.
	ListDocuments(ctx context.Context) ([]model.Document, error)
	// ListFolders lists sub-folders of the configured root folder.
	ListFolders(ctx context.Context) ([]model.Folder, error)
	// ListFolderDocuments lists files in a specific folder.
	ListFolderDocuments(ctx context.Context, folderID string) ([]model.Document, error)
}
