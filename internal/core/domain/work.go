package domain

import "time"

// Media kinds for portfolio items, inferred from the uploaded file's
// declared MIME type.
const (
	MediaImage = "image"
	MediaVideo = "video"
)

// Work is a public portfolio item shown in the gallery.
type Work struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	MediaURL    string    `json:"mediaUrl"`
	MediaType   string    `json:"mediaType,omitempty"`
	Owner       *User     `json:"owner,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}
