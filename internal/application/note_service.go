package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/VinaySonwane/note-App/internal/domain/entity"
	repo "github.com/VinaySonwane/note-App/internal/domain/repository"
)

// NoteService owns note CRUD plus best-effort search indexing. Every
// operation is scoped to the acting user resolved by the auth middleware.
type NoteService struct {
	Notes      repo.NoteRepository
	Logger     *logrus.Logger
	ES         *elasticsearch.Client
	NotesIndex string
}

func NewNoteService(notes repo.NoteRepository, logger *logrus.Logger, es *elasticsearch.Client, notesIndex string) *NoteService {
	return &NoteService{Notes: notes, Logger: logger, ES: es, NotesIndex: notesIndex}
}

func (s *NoteService) List(ctx context.Context, userID string) ([]*entity.Note, error) {
	return s.Notes.ListByUser(ctx, userID)
}

func (s *NoteService) Create(ctx context.Context, userID, content string) (*entity.Note, error) {
	n := &entity.Note{UserID: userID, Content: content}
	if err := s.Notes.Create(ctx, n); err != nil {
		return nil, err
	}
	_ = s.indexNote(ctx, n)
	return n, nil
}

// Delete removes the note when it exists and belongs to userID.
func (s *NoteService) Delete(ctx context.Context, userID, noteID string) error {
	n, err := s.Notes.GetByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNoteNotFound
		}
		return err
	}
	if n.UserID != userID {
		return ErrNotOwner
	}
	if err := s.Notes.Delete(ctx, noteID); err != nil {
		return err
	}
	s.deleteNoteDoc(ctx, noteID)
	return nil
}

// Search runs a match query on note content in Elasticsearch, filtered to
// the caller's own notes. Returns an empty slice when search is not
// configured.
func (s *NoteService) Search(ctx context.Context, userID, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.NotesIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"match": map[string]any{"content": q},
				},
				"filter": map[string]any{
					"term": map[string]any{"user_id": userID},
				},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.NotesIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

func (s *NoteService) indexNote(ctx context.Context, n *entity.Note) error {
	if s.ES == nil || s.NotesIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":         n.ID,
		"user_id":    n.UserID,
		"content":    n.Content,
		"created_at": n.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.NotesIndex, DocumentID: n.ID, Body: strings.NewReader(string(b)), Refresh: "false"}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("note_id", n.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("note_id", n.ID).Warn("es index response error")
	}
	return nil
}

func (s *NoteService) deleteNoteDoc(ctx context.Context, noteID string) {
	if s.ES == nil || s.NotesIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.NotesIndex, DocumentID: noteID}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("note_id", noteID).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}
