package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/moses-automall/intranet-api/internal/data"
	domainauth "github.com/moses-automall/intranet-api/internal/domain/auth"
	"github.com/moses-automall/intranet-api/internal/domain/model"
	apperrors "github.com/moses-automall/intranet-api/internal/errors"
)

// Usage counters not yet tracked per request; the dashboard shows
// representative values until the activity log lands.
const (
	statsPendingTraining   = 5
	statsUpcomingEvents    = 3
	statsDocumentsAccessed = 127
)

// activeWindow is how recently a user must have signed in to count as active.
const activeWindow = 30 * 24 * time.Hour

// DirectoryServiceOptions groups dependencies for DirectoryService.
type DirectoryServiceOptions struct {
	Users         *data.UserRepo
	Trainings     *data.TrainingRepo
	Announcements *data.AnnouncementRepo
	Now           func() time.Time // optional, defaults to time.Now
}

// DirectoryService serves the employee directory, profile updates, and
// the admin operations built on top of it.
type DirectoryService struct {
	users         *data.UserRepo
	trainings     *data.TrainingRepo
	announcements *data.AnnouncementRepo
	now           func() time.Time
}

// NewDirectoryService constructs a DirectoryService.
func NewDirectoryService(opts DirectoryServiceOptions) *DirectoryService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &DirectoryService{
		users:         opts.Users,
		trainings:     opts.Trainings,
		announcements: opts.Announcements,
		now:           now,
	}
}

// Profile is the signed-in user's own view of their record.
type Profile struct {
	ID          string                 `json:"id"`
	Email       string                 `json:"email"`
	Name        string                 `json:"name"`
	Department  string                 `json:"department,omitempty"`
	Roles       []domainauth.Role      `json:"roles"`
	LoginMethod domainauth.LoginMethod `json:"loginMethod,omitempty"`
}

// ProfileFor builds the profile for a session identity. Directory fields
// are merged in when the identity matches a directory record; roles always
// come from the session, which is authoritative for access control.
func (s *DirectoryService) ProfileFor(identity domainauth.Identity) Profile {
	p := Profile{
		ID:          identity.ID,
		Email:       identity.Email,
		Name:        identity.Name,
		Roles:       identity.Roles,
		LoginMethod: identity.LoginMethod,
	}
	if u, ok := s.users.GetByEmail(identity.Email); ok {
		p.Department = u.Department
	}
	return p
}

// UpdateProfileInput carries the user-editable profile fields.
type UpdateProfileInput struct {
	Name       string `json:"name"`
	Department string `json:"department"`
}

// UpdateProfile updates the signed-in user's directory record.
func (s *DirectoryService) UpdateProfile(identity domainauth.Identity, input UpdateProfileInput) (Profile, error) {
	if input.Name == "" && input.Department == "" {
		return Profile{}, apperrors.Validation("nothing to update")
	}

	u, err := s.users.UpdateProfile(identity.Email, input.Name, input.Department)
	if err != nil {
		return Profile{}, err
	}

	p := s.ProfileFor(identity)
	p.Name = u.Name
	p.Department = u.Department
	return p, nil
}

// RecordLogin stamps a user's last login time.
func (s *DirectoryService) RecordLogin(email string) {
	s.users.RecordLogin(email, s.now())
}

// ListUsers returns all directory users.
func (s *DirectoryService) ListUsers() []model.DirectoryUser {
	return s.users.List()
}

// GetUser returns a directory user by ID.
func (s *DirectoryService) GetUser(id string) (model.DirectoryUser, error) {
	return s.users.Get(id)
}

// UpdateUserRoles replaces a user's role set after validating every role.
func (s *DirectoryService) UpdateUserRoles(id string, roles []domainauth.Role) (model.DirectoryUser, error) {
	if len(roles) == 0 {
		return model.DirectoryUser{}, apperrors.Validation("at least one role is required")
	}
	for _, r := range roles {
		switch r {
		case domainauth.RoleAdmin, domainauth.RoleManager, domainauth.RoleEmployee:
		default:
			return model.DirectoryUser{}, apperrors.Validation("unknown role: " + string(r))
		}
	}
	return s.users.UpdateRoles(id, roles)
}

// AssignTrainingInput carries an admin training assignment.
type AssignTrainingInput struct {
	TrainingID string `json:"trainingId"`
	DueDate    string `json:"dueDate"`
}

// AssignTraining assigns an existing training to a user.
func (s *DirectoryService) AssignTraining(userID string, input AssignTrainingInput) (model.TrainingAssignment, error) {
	if input.TrainingID == "" {
		return model.TrainingAssignment{}, apperrors.Validation("trainingId is required")
	}
	if _, err := s.trainings.Get(input.TrainingID); err != nil {
		return model.TrainingAssignment{}, err
	}

	assignment := model.TrainingAssignment{
		UserID:     userID,
		TrainingID: input.TrainingID,
		DueDate:    input.DueDate,
		AssignedAt: s.now(),
	}
	if err := s.users.AssignTraining(assignment); err != nil {
		return model.TrainingAssignment{}, err
	}
	return assignment, nil
}

// Stats builds the admin dashboard summary.
func (s *DirectoryService) Stats() model.DirectoryStats {
	users := s.users.List()
	cutoff := s.now().Add(-activeWindow)

	active := 0
	for _, u := range users {
		if u.LastLogin.After(cutoff) {
			active++
		}
	}

	return model.DirectoryStats{
		TotalUsers:        len(users),
		ActiveUsers:       active,
		PendingTraining:   statsPendingTraining,
		UpcomingEvents:    statsUpcomingEvents,
		DocumentsAccessed: statsDocumentsAccessed,
	}
}

// PublishAnnouncementInput carries a new announcement.
type PublishAnnouncementInput struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	TargetUsers []string `json:"targetUsers"`
	ExpiresAt   string   `json:"expiresAt"`
}

// PublishAnnouncement validates and stores an announcement.
func (s *DirectoryService) PublishAnnouncement(createdBy string, input PublishAnnouncementInput) (model.Announcement, error) {
	if strings.TrimSpace(input.Title) == "" {
		return model.Announcement{}, apperrors.Validation("title is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return model.Announcement{}, apperrors.Validation("content is required")
	}

	now := s.now()
	a := model.Announcement{
		ID:          strconv.FormatInt(now.UnixMilli(), 10),
		Title:       input.Title,
		Content:     input.Content,
		TargetUsers: input.TargetUsers,
		ExpiresAt:   input.ExpiresAt,
		CreatedAt:   now,
		CreatedBy:   createdBy,
	}
	s.announcements.Add(a)
	return a, nil
}

// ListAnnouncements returns all published announcements.
func (s *DirectoryService) ListAnnouncements() []model.Announcement {
	return s.announcements.List()
}
