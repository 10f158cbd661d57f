package application

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/VinaySonwane/note-App/internal/domain/entity"
	"github.com/VinaySonwane/note-App/internal/domain/repository"
	"github.com/VinaySonwane/note-App/pkg/identity"
)

type fakeUserRepo struct {
	mu   sync.Mutex
	seq  int
	byID map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	f.seq++
	u.ID = fmt.Sprintf("u%d", f.seq)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) SetChallenge(_ context.Context, userID, code string, expiresAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[userID]
	if !ok {
		return repository.ErrNotFound
	}
	u.OTPCode = &code
	u.OTPExpiresAt = &expiresAt
	return nil
}

func (f *fakeUserRepo) ConsumeChallenge(_ context.Context, userID, code string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[userID]
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

// storedCode exposes the pending challenge for assertions; production code
// never reads OTPs back out this way.
func (f *fakeUserRepo) storedCode(email string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == email && u.OTPCode != nil {
			return *u.OTPCode
		}
	}
	return ""
}

func (f *fakeUserRepo) remove(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, id)
}

func (f *fakeUserRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byID)
}

type sentMail struct {
	To      string
	Subject string
	Text    string
}

type fakeNotifier struct {
	mu    sync.Mutex
	fail  bool
	sends []sentMail
}

func (f *fakeNotifier) Send(_ context.Context, to, subject, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return fmt.Errorf("smtp: connection refused")
	}
	f.sends = append(f.sends, sentMail{To: to, Subject: subject, Text: text})
	return nil
}

func (f *fakeNotifier) setFail(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail = v
}

func (f *fakeNotifier) sentTo(to string) []sentMail {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []sentMail
	for _, s := range f.sends {
		if s.To == to {
			out = append(out, s)
		}
	}
	return out
}

type fakeVerifier struct {
	profiles map[string]*identity.Profile
}

func newFakeVerifier() *fakeVerifier {
	return &fakeVerifier{profiles: make(map[string]*identity.Profile)}
}

func (f *fakeVerifier) Verify(_ context.Context, credential string) (*identity.Profile, error) {
	p, ok := f.profiles[credential]
	if !ok {
		return nil, identity.ErrInvalidAudience
	}
	return p, nil
}

type fakeNoteRepo struct {
	mu   sync.Mutex
	seq  int
	byID map[string]*entity.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{byID: make(map[string]*entity.Note)}
}

func (f *fakeNoteRepo) Create(_ context.Context, n *entity.Note) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	n.ID = fmt.Sprintf("n%d", f.seq)
	n.CreatedAt = time.Now()
	n.UpdatedAt = n.CreatedAt
	cp := *n
	f.byID[n.ID] = &cp
	return nil
}

func (f *fakeNoteRepo) GetByID(_ context.Context, id string) (*entity.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *n
	return &cp, nil
}

func (f *fakeNoteRepo) ListByUser(_ context.Context, userID string) ([]*entity.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Note, 0)
	for _, n := range f.byID {
		if n.UserID == userID {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeNoteRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func otpFromText(text string) string {
	idx := strings.LastIndex(text, ": ")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(text[idx+2:])
}
