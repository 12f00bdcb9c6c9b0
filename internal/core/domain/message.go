package domain

import "time"

// Message is a direct message between two users.
type Message struct {
	ID        string    `json:"_id"`
	From      *User     `json:"from,omitempty"`
	To        *User     `json:"to,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
