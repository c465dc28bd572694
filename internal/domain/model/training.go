package model

// TrainingStatus is the completion state of a training assignment.
type TrainingStatus string

const (
	TrainingStatusPending   TrainingStatus = "pending"
	TrainingStatusCompleted TrainingStatus = "completed"
)

// Training is a training module assigned to an employee.
type Training struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	IsRequired  bool           `json:"isRequired"`
	DueDate     string         `json:"dueDate"` // ISO date (yyyy-mm-dd)
	Status      TrainingStatus `json:"status"`
}

// TrainingProgress summarizes an employee's training completion.
type TrainingProgress struct {
	Completed            int `json:"completed"`
	Total                int `json:"total"`
	PendingRequired      int `json:"pendingRequired"`
	CompletionPercentage int `json:"completionPercentage"`
}
