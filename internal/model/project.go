package model

import "time"

// ProjectType parametrizes every downstream generator: section templates,
// custom field templates, task naming and the completion-rate band.
type ProjectType string

const (
	ProjectEngineeringSprint ProjectType = "engineering_sprint"
	ProjectBugTracking       ProjectType = "bug_tracking"
	ProjectMarketingCampaign ProjectType = "marketing_campaign"
	ProjectProductRoadmap    ProjectType = "product_roadmap"
	ProjectOperations        ProjectType = "operations"
	ProjectDesign            ProjectType = "design"
)

type Project struct {
	ID             int64       `json:"id"`
	OrganizationID int64       `json:"organization_id"`
	TeamID         *int64      `json:"team_id,omitempty"`
	Name           string      `json:"name"`
	Description    *string     `json:"description,omitempty"`
	Type           ProjectType `json:"type"`
	Color          string      `json:"color"`
	IsPublic       bool        `json:"is_public"`
	Archived       bool        `json:"archived"`
	CreatedAt      time.Time   `json:"created_at"`
	ModifiedAt     time.Time   `json:"modified_at"`
}
