// Package data holds the in-process repositories backing the resource
// APIs. The portal intentionally runs without a database; records live in
// memory and reset on restart.
package data

import (
	"time"

	domainauth "github.com/moses-automall/intranet-api/internal/domain/auth"
	"github.com/moses-automall/intranet-api/internal/domain/model"
)

// SeedUsers returns the initial employee directory.
func SeedUsers() []model.DirectoryUser {
	return []model.DirectoryUser{
		{
			ID:         "1",
			Email:      "drewadkins@mosesautonet.com",
			Name:       "Drew Adkins",
			Department: "Management",
			Roles:      []domainauth.Role{domainauth.RoleAdmin, domainauth.RoleManager},
			LastLogin:  time.Date(2025, 7, 21, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:         "2",
			Email:      "john.doe@mosesautonet.com",
			Name:       "John Doe",
			Department: "Sales",
			Roles:      []domainauth.Role{domainauth.RoleEmployee},
			LastLogin:  time.Date(2025, 7, 20, 14, 30, 0, 0, time.UTC),
		},
	}
}

// SeedTrainings returns the initial training catalog.
func SeedTrainings() []model.Training {
	return []model.Training{
		{
			ID:          "1",
			Title:       "Safety Training Module 1",
			Description: "Basic workplace safety procedures",
			IsRequired:  true,
			DueDate:     "2025-08-01",
			Status:      model.TrainingStatusPending,
		},
		{
			ID:          "2",
			Title:       "Customer Service Excellence",
			Description: "Best practices for customer interactions",
			IsRequired:  false,
			DueDate:     "2025-09-01",
			Status:      model.TrainingStatusCompleted,
		},
	}
}

// SeedEvents returns the initial company calendar.
func SeedEvents() []model.Event {
	return []model.Event{
		{
			ID:          "1",
			Title:       "Monthly Team Meeting",
			Description: "Company-wide updates and announcements",
			Date:        "2025-08-15",
			Time:        "10:00 AM",
			Location:    "Conference Room A",
			Department:  "All",
			IsRequired:  true,
		},
		{
			ID:          "2",
			Title:       "Sales Training Workshop",
			Description: "Advanced sales techniques and strategies",
			Date:        "2025-08-22",
			Time:        "2:00 PM",
			Location:    "Training Center",
			Department:  "Sales",
			IsRequired:  false,
		},
	}
}

// SeedDocuments returns the placeholder document list served when the
// cloud drive is unreachable or unconfigured.
func SeedDocuments() []model.Document {
	return []model.Document{
		{
			ID:           "mock-1",
			Name:         "Employee Handbook.pdf",
			Type:         "application/pdf",
			LastModified: "2025-07-01T10:00:00Z",
			Size:         "2048000",
			ViewLink:     "#",
		},
		{
			ID:           "mock-2",
			Name:         "Safety Procedures.docx",
			Type:         "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			LastModified: "2025-07-15T14:30:00Z",
			Size:         "1024000",
			ViewLink:     "#",
		},
	}
}

// SeedFolders returns the placeholder folder list served when the cloud
// drive is unreachable or unconfigured.
func SeedFolders() []model.Folder {
	return []model.Folder{
		{ID: "mock-folder-1", Name: "HR Documents", LastModified: "2025-07-01T10:00:00Z"},
		{ID: "mock-folder-2", Name: "Training Materials", LastModified: "2025-07-10T15:00:00Z"},
		{ID: "mock-folder-3", Name: "Policies", LastModified: "2025-07-05T09:30:00Z"},
	}
}
