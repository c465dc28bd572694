package gdrive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/drive/v3"
)

func TestMapFile(t *testing.T) {
	doc := mapFile(&drive.File{
		Id:           "file-1",
		Name:         "Employee Handbook.pdf",
		MimeType:     "application/pdf",
		ModifiedTime: "2025-07-01T10:00:00Z",
		Size:         2048000,
		WebViewLink:  "https://drive.google.com/file/d/file-1/view",
	})

	assert.Equal(t, "file-1", doc.ID)
	assert.Equal(t, "Employee Handbook.pdf", doc.Name)
	assert.Equal(t, "application/pdf", doc.Type)
	assert.Equal(t, "2025-07-01T10:00:00Z", doc.LastModified)
	assert.Equal(t, "2048000", doc.Size)
	assert.Equal(t, "https://drive.google.com/file/d/file-1/view", doc.ViewLink)
}

func TestMapFile_ZeroSize(t *testing.T) {
	// Google-native docs report no size.
	doc := mapFile(&drive.File{Id: "doc-1", Name: "Notes", MimeType: "application/vnd.google-apps.document"})
	assert.Equal(t, "0", doc.Size)
}

func TestMapFolder(t *testing.T) {
	folder := mapFolder(&drive.File{
		Id:           "folder-1",
		Name:         "HR Documents",
		MimeType:     "application/vnd.google-apps.folder",
		ModifiedTime: "2025-07-01T10:00:00Z",
	})

	assert.Equal(t, "folder-1", folder.ID)
	assert.Equal(t, "HR Documents", folder.Name)
	assert.Equal(t, "2025-07-01T10:00:00Z", folder.LastModified)
}
