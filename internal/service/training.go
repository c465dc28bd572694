package service

import (
	"github.com/moses-automall/intranet-api/internal/data"
	"github.com/moses-automall/intranet-api/internal/domain/model"
)

// TrainingService serves the employee training catalog.
type TrainingService struct {
	trainings *data.TrainingRepo
}

// NewTrainingService constructs a TrainingService.
func NewTrainingService(trainings *data.TrainingRepo) *TrainingService {
	return &TrainingService{trainings: trainings}
}

// List returns all trainings.
func (s *TrainingService) List() []model.Training {
	return s.trainings.List()
}

// Get returns a single training by ID.
func (s *TrainingService) Get(id string) (model.Training, error) {
	return s.trainings.Get(id)
}

// Complete marks a training as completed and returns the updated record.
func (s *TrainingService) Complete(id string) (model.Training, error) {
	return s.trainings.MarkCompleted(id)
}

// Progress summarizes completion across the catalog.
func (s *TrainingService) Progress() model.TrainingProgress {
	all := s.trainings.List()

	completed := 0
	pendingRequired := 0
	for _, tr := range all {
		switch {
		case tr.Status == model.TrainingStatusCompleted:
			completed++
		case tr.IsRequired:
			pendingRequired++
		}
	}

	percentage := 0
	if len(all) > 0 {
		percentage = int(float64(completed)/float64(len(all))*100 + 0.5)
	}

	return model.TrainingProgress{
		Completed:            completed,
		Total:                len(all),
		PendingRequired:      pendingRequired,
		CompletionPercentage: percentage,
	}
}
