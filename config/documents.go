package config

// DocumentsConfig contains cloud drive document settings.
type DocumentsConfig struct {
	// CredentialsFile is the path to the Google service account JSON key.
	// When empty, document listings serve bundled mock data.
	CredentialsFile string `env:"GOOGLE_APPLICATION_CREDENTIALS" envDefault:""`

	// RootFolderID is the Drive folder mirrored by the documents API.
	RootFolderID string `env:"GOOGLE_DRIVE_FOLDER_ID" envDefault:"1akqWgdC9xM04iEkp2WW970_ZmEAmRVdX"`
}

// Enabled reports whether a real Drive client should be constructed.
func (d DocumentsConfig) Enabled() bool {
	return d.CredentialsFile != ""
}
