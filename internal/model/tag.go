package model

import "time"

// Tag is organization-scoped; (organization, name) is unique within a run.
type Tag struct {
	ID             int64     `json:"id"`
	OrganizationID int64     `json:"organization_id"`
	Name           string    `json:"name"`
	Color          string    `json:"color"`
	CreatedAt      time.Time `json:"created_at"`
}

type TaskTag struct {
	ID        int64     `json:"id"`
	TaskID    int64     `json:"task_id"`
	TagID     int64     `json:"tag_id"`
	CreatedAt time.Time `json:"created_at"`
}
