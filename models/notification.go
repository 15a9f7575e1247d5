package models

import "time"

// Notification is one entry of the append-only notification log.
type Notification struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"datetime"`
	Message   string    `json:"message"`
}
