package data

import (
	"strings"
	"sync"
	"time"

	domainauth "github.com/moses-automall/intranet-api/internal/domain/auth"
	"github.com/moses-automall/intranet-api/internal/domain/model"
	apperrors "github.com/moses-automall/intranet-api/internal/errors"
)

// UserRepo stores the employee directory and training assignments in memory.
type UserRepo struct {
	mu          sync.RWMutex
	users       []model.DirectoryUser
	assignments []model.TrainingAssignment
}

// NewUserRepo creates a repo pre-populated with the seed directory.
func NewUserRepo() *UserRepo {
	return &UserRepo{users: SeedUsers()}
}

// List returns a copy of all directory users.
func (r *UserRepo) List() []model.DirectoryUser {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.DirectoryUser(nil), r.users...)
}

// Get returns the directory user with the given ID.
func (r *UserRepo) Get(id string) (model.DirectoryUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.DirectoryUser{}, apperrors.NotFoundf("user %s not found", id)
}

// GetByEmail returns the directory user with the given email address.
func (r *UserRepo) GetByEmail(email string) (model.DirectoryUser, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return model.DirectoryUser{}, false
}

// UpdateRoles replaces a user's role set and returns the updated record.
func (r *UserRepo) UpdateRoles(id string, roles []domainauth.Role) (model.DirectoryUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].Roles = append([]domainauth.Role(nil), roles...)
			return r.users[i], nil
		}
	}
	return model.DirectoryUser{}, apperrors.NotFoundf("user %s not found", id)
}

// UpdateProfile updates the mutable profile fields of a user found by
// email. Blank fields are left unchanged.
func (r *UserRepo) UpdateProfile(email, name, department string) (model.DirectoryUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, email) {
			if name != "" {
				r.users[i].Name = name
			}
			if department != "" {
				r.users[i].Department = department
			}
			return r.users[i], nil
		}
	}
	return model.DirectoryUser{}, apperrors.NotFoundf("user %s not found", email)
}

// RecordLogin stamps the user's last login time, keyed by email.
// Unknown emails are ignored; interactive logins may not be in the
// seed directory.
func (r *UserRepo) RecordLogin(email string, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, email) {
			r.users[i].LastLogin = at
			return
		}
	}
}

// AssignTraining records a training assignment for a user.
func (r *UserRepo) AssignTraining(a model.TrainingAssignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := false
	for _, u := range r.users {
		if u.ID == a.UserID {
			found = true
			break
		}
	}
	if !found {
		return apperrors.NotFoundf("user %s not found", a.UserID)
	}

	r.assignments = append(r.assignments, a)
	return nil
}

// Assignments returns a copy of all training assignments.
func (r *UserRepo) Assignments() []model.TrainingAssignment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.TrainingAssignment(nil), r.assignments...)
}
