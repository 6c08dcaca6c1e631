package storage

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/GeyBee/skincare-saas/internal"
)

// FileStorage keeps the in-memory semantics of MemoryStorage and persists
// snapshots to JSON files under a data directory. Writes are debounced so a
// burst of mutations costs one disk write.
type FileStorage struct {
	*MemoryStorage
	dataDir   string
	saveChan  chan struct{}
	shutdown  chan struct{}
	saveDelay time.Duration
	logger    internal.Logger
}

func NewFileStorage(dataDir string, logger internal.Logger) (*FileStorage, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}
	s := &FileStorage{
		MemoryStorage: NewMemoryStorage(logger),
		dataDir:       dataDir,
		saveChan:      make(chan struct{}, 1),
		shutdown:      make(chan struct{}),
		saveDelay:     500 * time.Millisecond,
		logger:        logger,
	}
	s.MemoryStorage.onChange = func() {
		select {
		case s.saveChan <- struct{}{}:
		default:
		}
	}

	if err := s.load(); err != nil {
		logger.Errorf("storage: failed to load data files: %v", err)
		return nil, err
	}

	go s.saveWorker()
	return s, nil
}

func (s *FileStorage) userFile() string    { return filepath.Join(s.dataDir, "users.json") }
func (s *FileStorage) profileFile() string { return filepath.Join(s.dataDir, "profiles.json") }
func (s *FileStorage) checkinFile() string { return filepath.Join(s.dataDir, "checkins.json") }
func (s *FileStorage) photoFile() string   { return filepath.Join(s.dataDir, "photos.json") }

func (s *FileStorage) load() error {
	var users []*internal.User
	if err := readFileJSON(s.userFile(), &users); err != nil {
		return err
	}
	var profiles []*internal.SkinProfile
	if err := readFileJSON(s.profileFile(), &profiles); err != nil {
		return err
	}
	var checkins []*internal.CheckIn
	if err := readFileJSON(s.checkinFile(), &checkins); err != nil {
		return err
	}
	var photos []*internal.Photo
	if err := readFileJSON(s.photoFile(), &photos); err != nil {
		return err
	}

	m := s.MemoryStorage
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range users {
		m.users[u.ID] = u
		m.usersByEmail[u.Email] = u
	}
	for _, p := range profiles {
		m.profiles[p.UserID] = p
	}
	for _, c := range checkins {
		m.checkins[c.ID] = c
		m.userCheckIndex[c.UserID] = append(m.userCheckIndex[c.UserID], c)
	}
	for userID := range m.userCheckIndex {
		idx := m.userCheckIndex[userID]
		sort.Slice(idx, func(i, j int) bool {
			return idx[i].CreatedAt.Before(idx[j].CreatedAt)
		})
	}
	for _, p := range photos {
		m.photos[p.ID] = p
		m.userPhotoIndex[p.UserID] = append(m.userPhotoIndex[p.UserID], p)
	}
	for userID := range m.userPhotoIndex {
		idx := m.userPhotoIndex[userID]
		sort.Slice(idx, func(i, j int) bool {
			return idx[i].UploadedAt.After(idx[j].UploadedAt)
		})
	}
	return nil
}

func readFileJSON(path string, out interface{}) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()
	if err := json.NewDecoder(file).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileStorage) saveAll() error {
	m := s.MemoryStorage
	m.mu.RLock()
	users := make([]*internal.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	profiles := make([]*internal.SkinProfile, 0, len(m.profiles))
	for _, p := range m.profiles {
		profiles = append(profiles, p)
	}
	checkins := make([]*internal.CheckIn, 0, len(m.checkins))
	for _, c := range m.checkins {
		checkins = append(checkins, c)
	}
	photos := make([]*internal.Photo, 0, len(m.photos))
	for _, p := range m.photos {
		photos = append(photos, p)
	}
	m.mu.RUnlock()

	if err := atomicWriteFileJSON(s.userFile(), users); err != nil {
		return err
	}
	if err := atomicWriteFileJSON(s.profileFile(), profiles); err != nil {
		return err
	}
	if err := atomicWriteFileJSON(s.checkinFile(), checkins); err != nil {
		return err
	}
	return atomicWriteFileJSON(s.photoFile(), photos)
}

// saveWorker batches save operations to avoid frequent disk writes.
func (s *FileStorage) saveWorker() {
	timer := time.NewTimer(s.saveDelay)
	defer timer.Stop()

	for {
		select {
		case <-s.saveChan:
			timer.Reset(s.saveDelay)
		case <-timer.C:
			if err := s.saveAll(); err != nil {
				s.logger.Errorf("storage: error saving data files: %v", err)
			}
		case <-s.shutdown:
			return
		}
	}
}

// Close stops the save worker and flushes pending data synchronously.
func (s *FileStorage) Close() error {
	close(s.shutdown)
	return s.saveAll()
}

var _ Repositories = (*FileStorage)(nil)
