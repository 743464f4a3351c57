package model

import "time"

type Organization struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Domain         string    `json:"domain"`
	CreatedAt      time.Time `json:"created_at"`
	IsOrganization bool      `json:"is_organization"`
}
