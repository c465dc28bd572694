package model

import (
	"time"

	domainauth "github.com/moses-automall/intranet-api/internal/domain/auth"
)

// DirectoryUser is an employee record in the admin directory.
type DirectoryUser struct {
	ID         string            `json:"id"`
	Email      string            `json:"email"`
	Name       string            `json:"name"`
	Department string            `json:"department"`
	Roles      []domainauth.Role `json:"roles"`
	LastLogin  time.Time         `json:"lastLogin"`
}

// TrainingAssignment records an admin assigning a training to a user.
type TrainingAssignment struct {
	UserID     string    `json:"userId"`
	TrainingID string    `json:"trainingId"`
	DueDate    string    `json:"dueDate"`
	AssignedAt time.Time `json:"assignedAt"`
}

// DirectoryStats is the admin dashboard summary.
type DirectoryStats struct {
	TotalUsers        int `json:"totalUsers"`
	ActiveUsers       int `json:"activeUsers"` // signed in within the last 30 days
	PendingTraining   int `json:"pendingTraining"`
	UpcomingEvents    int `json:"upcomingEvents"`
	DocumentsAccessed int `json:"documentsAccessed"`
}
