package domains

import "encoding/json"

// ServiceRecord is one catalog entry as served to clients: the category row
// joined to its content row, details already decoded.
type ServiceRecord struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	ImagePath   string           `json:"image_path"`
	Details     *DetailsDocument `json:"details"`
}

// ServiceRow is the storage-level shape of the same join, details still raw.
type ServiceRow struct {
	ID          int64
	Name        string
	Title       string
	Description string
	ImagePath   string
	Details     json.RawMessage
}

type ServiceCreate struct {
	Name        string          `json:"name"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Details     json.RawMessage `json:"details,omitempty"`
}

// ServiceUpdate carries only the fields the caller wants changed. A nil field
// keeps the stored value.
type ServiceUpdate struct {
	Name        *string         `json:"name,omitempty"`
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Details     json.RawMessage `json:"details,omitempty"`
}

// ServiceContentUpdate is what the provider applies to the content row after
// the service layer has normalized details to the canonical encoding.
type ServiceContentUpdate struct {
	Title       *string
	Description *string
	Details     []byte
}
