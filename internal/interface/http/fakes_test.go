package handlers

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/VinaySonwane/note-App/internal/domain/entity"
	"github.com/VinaySonwane/note-App/internal/domain/repository"
	"github.com/VinaySonwane/note-App/pkg/identity"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type memUserRepo struct {
	mu   sync.Mutex
	seq  int
	byID map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: make(map[string]*entity.User)}
}

func (m *memUserRepo) Create(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	m.seq++
	u.ID = fmt.Sprintf("u%d", m.seq)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUserRepo) SetChallenge(_ context.Context, userID, code string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[userID]
	if !ok {
		return repository.ErrNotFound
	}
	u.OTPCode = &code
	u.OTPExpiresAt = &expiresAt
	return nil
}

func (m *memUserRepo) ConsumeChallenge(_ context.Context, userID, code string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[userID]
	if !ok {
		return false, repository.ErrNotFound
	}
	if u.OTPCode == nil || *u.OTPCode != code {
		return false, nil
	}
	u.OTPCode = nil
	u.OTPExpiresAt = nil
	return true, nil
}

func (m *memUserRepo) pendingCode(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email && u.OTPCode != nil {
			return *u.OTPCode
		}
	}
	return ""
}

type memNoteRepo struct {
	mu   sync.Mutex
	seq  int
	byID map[string]*entity.Note
}

func newMemNoteRepo() *memNoteRepo {
	return &memNoteRepo{byID: make(map[string]*entity.Note)}
}

func (m *memNoteRepo) Create(_ context.Context, n *entity.Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	n.ID = fmt.Sprintf("n%d", m.seq)
	n.CreatedAt = time.Now()
	n.UpdatedAt = n.CreatedAt
	cp := *n
	m.byID[n.ID] = &cp
	return nil
}

func (m *memNoteRepo) GetByID(_ context.Context, id string) (*entity.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *n
	return &cp, nil
}

func (m *memNoteRepo) ListByUser(_ context.Context, userID string) ([]*entity.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.Note, 0)
	for _, n := range m.byID {
		if n.UserID == userID {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memNoteRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type stubNotifier struct {
	mu   sync.Mutex
	fail bool
}

func (s *stubNotifier) Send(context.Context, string, string, string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return fmt.Errorf("mail gateway down")
	}
	return nil
}

type stubVerifier struct {
	profiles map[string]*identity.Profile
}

func (s *stubVerifier) Verify(_ context.Context, credential string) (*identity.Profile, error) {
	p, ok := s.profiles[credential]
	if !ok {
		return nil, identity.ErrInvalidAudience
	}
	return p, nil
}
