package data

import (
	"sync"

	"github.com/moses-automall/intranet-api/internal/domain/model"
)

// AnnouncementRepo stores published announcements in memory.
type AnnouncementRepo struct {
	mu            sync.RWMutex
	announcements []model.Announcement
}

// NewAnnouncementRepo creates an empty announcement repo.
func NewAnnouncementRepo() *AnnouncementRepo {
	return &AnnouncementRepo{}
}

// Add stores a published announcement.
func (r *AnnouncementRepo) Add(a model.Announcement) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.announcements = append(r.announcements, a)
}

// List returns a copy of all announcements, oldest first.
func (r *AnnouncementRepo) List() []model.Announcement {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Announcement(nil), r.announcements...)
}
