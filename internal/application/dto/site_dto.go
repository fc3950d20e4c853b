package dto

import "time"

// CreateSiteRequest entrada para crear una sede.
type CreateSiteRequest struct {
	Name string `json:"name"`
}

// SiteResponse salida de una sede.
type SiteResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
