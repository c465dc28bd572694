package model

// Document is a file mirrored from the cloud drive.
type Document struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"` // MIME type
	LastModified string `json:"lastModified"`
	Size         string `json:"size"`
	ViewLink     string `json:"viewLink"`
}

// Folder is a sub-folder of the mirrored drive root.
type Folder struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	LastModified string `json:"lastModified"`
}
