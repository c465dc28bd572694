// Package gdrive serves company documents from a shared Google Drive
// folder via a service account.
package gdrive

import (
	"context"
	"fmt"
	"strconv"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/moses-automall/intranet-api/internal/domain/model"
)

const folderMimeType = "application/vnd.google-apps.folder"

// listFields is the projection requested from the Drive API.
const listFields = "files(id, name, mimeType, modifiedTime, size, webViewLink)"

// Source implements ports.DocumentSource against the Drive v3 API.
type Source struct {
	service      *drive.Service
	rootFolderID string
}

// SourceOptions contains settings for creating a Source.
type SourceOptions struct {
	CredentialsFile string
	RootFolderID    string
}

// NewSource builds a Drive client from a service account key file.
func NewSource(ctx context.Context, opts SourceOptions) (*Source, error) {
	svc, err := drive.NewService(ctx,
		option.WithCredentialsFile(opts.CredentialsFile),
		option.WithScopes(drive.DriveReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}
	return &Source{service: svc, rootFolderID: opts.RootFolderID}, nil
}

// ListDocuments returns the non-folder files directly under the root folder.
func (s *Source) ListDocuments(ctx context.Context) ([]model.Document, error) {
	return s.listFiles(ctx, s.rootFolderID)
}

// ListFolders returns the sub-folders directly under the root folder.
func (s *Source) ListFolders(ctx context.Context) ([]model.Folder, error) {
	query := fmt.Sprintf("'%s' in parents and mimeType = '%s' and trashed = false",
		s.rootFolderID, folderMimeType)

	resp, err := s.service.Files.List().
		Q(query).
		Fields(listFields).
		OrderBy("name").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list drive folders: %w", err)
	}

	folders := make([]model.Folder, 0, len(resp.Files))
	for _, f := range resp.Files {
		folders = append(folders, mapFolder(f))
	}
	return folders, nil
}

// ListFolderDocuments returns the non-folder files inside a sub-folder.
func (s *Source) ListFolderDocuments(ctx context.Context, folderID string) ([]model.Document, error) {
	return s.listFiles(ctx, folderID)
}

func (s *Source) listFiles(ctx context.Context, folderID string) ([]model.Document, error) {
	query := fmt.Sprintf("'%s' in parents and mimeType != '%s' and trashed = false",
		folderID, folderMimeType)

	resp, err := s.service.Files.List().
		Q(query).
		Fields(listFields).
		OrderBy("modifiedTime desc").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list drive files: %w", err)
	}

	docs := make([]model.Document, 0, len(resp.Files))
	for _, f := range resp.Files {
		docs = append(docs, mapFile(f))
	}
	return docs, nil
}

// mapFile converts a Drive file to the portal document shape.
func mapFile(f *drive.File) model.Document {
	return model.Document{
		ID:           f.Id,
		Name:         f.Name,
		Type:         f.MimeType,
		LastModified: f.ModifiedTime,
		Size:         strconv.FormatInt(f.Size, 10),
		ViewLink:     f.WebViewLink,
	}
}

// mapFolder converts a Drive folder entry to the portal folder shape.
func mapFolder(f *drive.File) model.Folder {
	return model.Folder{
		ID:           f.Id,
		Name:         f.Name,
		LastModified: f.ModifiedTime,
	}
}
