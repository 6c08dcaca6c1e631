package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/GeyBee/skincare-saas/internal"
)

// MemoryStorage holds everything in process memory. State is lost on
// restart, which is the reference runtime for this app.
type MemoryStorage struct {
	users          map[string]*internal.User // id -> User
	usersByEmail   map[string]*internal.User
	profiles       map[string]*internal.SkinProfile // userID -> profile
	checkins       map[string]*internal.CheckIn     // id (userID_date) -> CheckIn
	userCheckIndex map[string][]*internal.CheckIn   // userID -> check-ins sorted by CreatedAt ascending
	photos         map[string]*internal.Photo       // id -> Photo
	userPhotoIndex map[string][]*internal.Photo     // userID -> photos, newest first
	mu             sync.RWMutex
	logger         internal.Logger
	onChange       func() // invoked after every mutation, with mu held
}

func NewMemoryStorage(logger internal.Logger) *MemoryStorage {
	return &MemoryStorage{
		users:          make(map[string]*internal.User),
		usersByEmail:   make(map[string]*internal.User),
		profiles:       make(map[string]*internal.SkinProfile),
		checkins:       make(map[string]*internal.CheckIn),
		userCheckIndex: make(map[string][]*internal.CheckIn),
		photos:         make(map[string]*internal.Photo),
		userPhotoIndex: make(map[string][]*internal.Photo),
		logger:         logger,
	}
}

// --- UserRepository ---

func (s *MemoryStorage) CreateUser(ctx context.Context, user *internal.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	s.usersByEmail[user.Email] = user
	s.dirty()
	return nil
}

func (s *MemoryStorage) GetUserByEmail(ctx context.Context, email string) (*internal.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.usersByEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *MemoryStorage) GetUserByID(ctx context.Context, id string) (*internal.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// --- ProfileRepository ---

func (s *MemoryStorage) SetProfile(ctx context.Context, profile *internal.SkinProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.UserID] = profile
	s.dirty()
	return nil
}

func (s *MemoryStorage) GetProfile(ctx context.Context, userID string) (*internal.SkinProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[userID]
	if !ok {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

// --- CheckInRepository ---

func (s *MemoryStorage) SaveCheckIn(ctx context.Context, checkin *internal.CheckIn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.checkins[checkin.ID]; ok {
		// Same user+date: replace in place, keeping index position.
		idx := s.userCheckIndex[checkin.UserID]
		for i, existing := range idx {
			if existing == old {
				idx[i] = checkin
				break
			}
		}
	} else {
		// Insert maintaining ascending CreatedAt order.
		idx := s.userCheckIndex[checkin.UserID]
		pos := sort.Search(len(idx), func(i int) bool {
			return idx[i].CreatedAt.After(checkin.CreatedAt)
		})
		idx = append(idx, nil)
		copy(idx[pos+1:], idx[pos:])
		idx[pos] = checkin
		s.userCheckIndex[checkin.UserID] = idx
	}
	s.checkins[checkin.ID] = checkin
	s.dirty()
	return nil
}

func (s *MemoryStorage) ListCheckIns(ctx context.Context, userID string) ([]internal.CheckIn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.userCheckIndex[userID]
	if !ok {
		return []internal.CheckIn{}, nil
	}
	checkins := make([]internal.CheckIn, len(idx))
	for i, c := range idx {
		checkins[i] = *c
	}
	return checkins, nil
}

// --- PhotoRepository ---

func (s *MemoryStorage) SavePhoto(ctx context.Context, photo *internal.Photo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.photos[photo.ID] = photo
	// Newest first.
	idx := s.userPhotoIndex[photo.UserID]
	pos := sort.Search(len(idx), func(i int) bool {
		return idx[i].UploadedAt.Before(photo.UploadedAt)
	})
	idx = append(idx, nil)
	copy(idx[pos+1:], idx[pos:])
	idx[pos] = photo
	s.userPhotoIndex[photo.UserID] = idx
	s.dirty()
	return nil
}

func (s *MemoryStorage) ListPhotos(ctx context.Context, userID string) ([]internal.Photo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.userPhotoIndex[userID]
	if !ok {
		return []internal.Photo{}, nil
	}
	photos := make([]internal.Photo, len(idx))
	for i, p := range idx {
		photos[i] = *p
	}
	return photos, nil
}

func (s *MemoryStorage) DeletePhoto(ctx context.Context, userID, photoID string) (*internal.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.photos[photoID]
	if !ok || p.UserID != userID {
		return nil, ErrPhotoNotFound
	}
	delete(s.photos, photoID)
	idx := s.userPhotoIndex[userID]
	for i, existing := range idx {
		if existing == p {
			s.userPhotoIndex[userID] = append(idx[:i], idx[i+1:]...)
			break
		}
	}
	s.dirty()
	return p, nil
}

func (s *MemoryStorage) Close() error { return nil }

// dirty lets persistence-backed wrappers react to mutations.
func (s *MemoryStorage) dirty() {
	if s.onChange != nil {
		s.onChange()
	}
}

var _ Repositories = (*MemoryStorage)(nil)
