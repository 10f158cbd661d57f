package repository

import (
	"context"

	"github.com/VinaySonwane/note-App/internal/domain/entity"
)

// NoteRepository defines note persistence. Ownership checks live in the
// application layer; the repository only scopes list queries.
type NoteRepository interface {
	Create(ctx context.Context, n *entity.Note) error
	GetByID(ctx context.Context, id string) (*entity.Note, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Note, error)
	Delete(ctx context.Context, id string) error
}
