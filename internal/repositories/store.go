package repositories

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/rendi001-code/projekrela/internal/models"
)

// Store persists the users and messages collections, each as one JSON array
// file rewritten whole on every change. A mutex serializes the
// read-modify-write cycles within this process; cross-process writers still
// race (last writer wins).
type Store struct {
	mu           sync.Mutex
	usersPath    string
	messagesPath string
}

func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return &Store{
		usersPath:    filepath.Join(dataDir, "users.json"),
		messagesPath: filepath.Join(dataDir, "messages.json"),
	}, nil
}

// readCollection loads a whole collection file. A missing, unreadable or
// corrupt file degrades to an empty collection; the cause is only logged.
func readCollection[T any](path string) []T {
	records := []T{}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading %s: %v", filepath.Base(path), err)
		return records
	}
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("Error parsing %s: %v", filepath.Base(path), err)
		return []T{}
	}
	return records
}

// writeCollection overwrites the whole collection file. Failures are logged,
// not returned: callers respond as if the write succeeded.
func writeCollection[T any](path string, records []T) {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		log.Printf("Error encoding %s: %v", filepath.Base(path), err)
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Printf("Error writing %s: %v", filepath.Base(path), err)
	}
}

// Users returns every stored user.
func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readCollection[models.User](s.usersPath)
}

// FindUserByEmail looks a user up by exact email match.
func (s *Store) FindUserByEmail(email string) (models.User, bool) {
	for _, u := range s.Users() {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

// FindUserByID looks a user up by id.
func (s *Store) FindUserByID(id string) (models.User, bool) {
	for _, u := range s.Users() {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// AddUser appends a user and rewrites the users file.
func (s *Store) AddUser(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := readCollection[models.User](s.usersPath)
	users = append(users, user)
	writeCollection(s.usersPath, users)
}

// Messages returns every stored message in insertion order.
func (s *Store) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readCollection[models.Message](s.messagesPath)
}

// AddMessage appends a message and rewrites the messages file.
func (s *Store) AddMessage(msg models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	messages := readCollection[models.Message](s.messagesPath)
	messages = append(messages, msg)
	writeCollection(s.messagesPath, messages)
}
