package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"presence-tracker/internal/config"
	"presence-tracker/internal/domain/presence"
)

// Session is the unit of persistence: one presence record plus audit fields.
type Session struct {
	// ID identifies the session across invocations for audit logging.
	ID string
	// Record is the current presence interval.
	Record presence.Record
	// UpdatedAt is when the session was last written.
	UpdatedAt time.Time
}

// NewSession starts a fresh session around the provided record.
func NewSession(record presence.Record, now time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Record:    record,
		UpdatedAt: now,
	}
}

// Repository defines persistence operations for the presence session.
type Repository interface {
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, s *Session) error
}

var (
	// ErrNotFound is returned when the session file does not exist yet.
	ErrNotFound = errors.New("session not found")
	// errCorruptSession is returned when the stored status tag is unknown.
	errCorruptSession = errors.New("corrupt session file")
)

// storedSession is the JSON layout of the session file. Timestamps are stored
// as RFC 3339 UTC; the zero time stands for the sentinel boundary.
type storedSession struct {
	SessionID  string          `json:"session_id"`
	Status     presence.Status `json:"status"`
	CheckInAt  time.Time       `json:"check_in_at"`
	CheckOutAt time.Time       `json:"check_out_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// FileRepository persists the presence session to a JSON file on disk.
type FileRepository struct {
	// path is the filesystem location of the session file.
	path string
	// mu protects concurrent access to the session file.
	mu sync.Mutex
}

// NewFileRepository creates a repository that reads/writes JSON at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Load reads the session from disk. The record inside was validated when it
// was written, so rehydration trusts the file apart from a status sanity
// check.
func (r *FileRepository) Load(_ context.Context) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read session file: %w", err)
	}

	var stored storedSession
	if err = json.Unmarshal(contents, &stored); err != nil {
		return nil, fmt.Errorf("decode session file: %w", err)
	}

	if !stored.Status.IsValid() {
		return nil, fmt.Errorf("%w: status %q", errCorruptSession, stored.Status)
	}

	return &Session{
		ID: stored.SessionID,
		Record: presence.Record{
			CheckInAt:  stored.CheckInAt.UTC(),
			CheckOutAt: stored.CheckOutAt.UTC(),
			Status:     stored.Status,
		},
		UpdatedAt: stored.UpdatedAt,
	}, nil
}

// Save writes the session to disk using JSON representation.
func (r *FileRepository) Save(_ context.Context, s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := storedSession{
		SessionID:  s.ID,
		Status:     s.Record.Status,
		CheckInAt:  s.Record.CheckInAt.UTC(),
		CheckOutAt: s.Record.CheckOutAt.UTC(),
		UpdatedAt:  s.UpdatedAt.UTC(),
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}
