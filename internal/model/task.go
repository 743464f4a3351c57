package model

import "time"

// Task invariants: created_at <= modified_at; if completed, created_at <=
// completed_at <= run end. A task with a non-nil ParentTaskID is a subtask
// and shares its parent's project and section; subtasks cannot themselves
// have subtasks.
//
// NumSubtasks and NumCompletedSubtasks are the only fields mutated after
// emission: recomputed once per parent when subtask generation for its
// project finishes.
type Task struct {
	ID                   int64      `json:"id"`
	ProjectID            int64      `json:"project_id"`
	SectionID            *int64     `json:"section_id,omitempty"`
	Name                 string     `json:"name"`
	Description          *string    `json:"description,omitempty"`
	AssigneeID           *int64     `json:"assignee_id,omitempty"`
	DueDate              *time.Time `json:"due_date,omitempty"`
	Completed            bool       `json:"completed"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	ModifiedAt           time.Time  `json:"modified_at"`
	ParentTaskID         *int64     `json:"parent_task_id,omitempty"`
	NumSubtasks          int        `json:"num_subtasks"`
	NumCompletedSubtasks int        `json:"num_completed_subtasks"`
}

func (t *Task) IsSubtask() bool {
	return t.ParentTaskID != nil
}
