package models

import "time"

// MediaAsset is one uploaded file. URL is either a public object-storage
// URL or, when no bucket is configured, an inline data URI carrying the
// payload itself.
type MediaAsset struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Type      string    `json:"type"`
	Size      int64     `json:"size"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (m MediaAsset) Identity() int64 { return m.ID }
