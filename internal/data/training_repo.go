package data

import (
	"sync"

	"github.com/moses-automall/intranet-api/internal/domain/model"
	apperrors "github.com/moses-automall/intranet-api/internal/errors"
)

// TrainingRepo stores the training catalog in memory.
type TrainingRepo struct {
	mu        sync.RWMutex
	trainings []model.Training
}

// NewTrainingRepo creates a repo pre-populated with the seed catalog.
func NewTrainingRepo() *TrainingRepo {
	return &TrainingRepo{trainings: SeedTrainings()}
}

// List returns a copy of all trainings.
func (r *TrainingRepo) List() []model.Training {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Training(nil), r.trainings...)
}

// Get returns the training with the given ID.
func (r *TrainingRepo) Get(id string) (model.Training, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, tr := range r.trainings {
		if tr.ID == id {
			return tr, nil
		}
	}
	return model.Training{}, apperrors.NotFoundf("training %s not found", id)
}

// MarkCompleted transitions a training to completed and returns the
// updated record. Completing an already-completed training is a no-op.
func (r *TrainingRepo) MarkCompleted(id string) (model.Training, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.trainings {
		if r.trainings[i].ID == id {
			r.trainings[i].Status = model.TrainingStatusCompleted
			return r.trainings[i], nil
		}
	}
	return model.Training{}, apperrors.NotFoundf("training %s not found", id)
}

// Add appends a new training to the catalog.
func (r *TrainingRepo) Add(tr model.Training) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trainings = append(r.trainings, tr)
}
