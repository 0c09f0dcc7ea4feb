package domain

// CVUpload holds metadata about the CV a user uploaded. The bytes live in
// the FileStore under StorageKey.
type CVUpload struct {
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	LastModified int64  `json:"lastModified"` // Unix milliseconds, as reported by the browser
	ContentType  string `json:"contentType,omitempty"`
	StorageKey   string `json:"storageKey,omitempty"`
}

// CVValueKey returns the value-store key holding a user's CV metadata.
func CVValueKey(email string) string {
	return "uploadedCV:" + email
}
