package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/VinaySonwane/note-App/internal/domain/entity"
	"github.com/VinaySonwane/note-App/internal/domain/repository"
)

type NoteRepository struct {
	pool *pgxpool.Pool
}

func NewNoteRepository(pool *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{pool: pool}
}

func (r *NoteRepository) Create(ctx context.Context, n *entity.Note) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO notes (user_id, content)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, n.UserID, n.Content)

	return row.Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
}

func (r *NoteRepository) GetByID(ctx context.Context, id string) (*entity.Note, error) {
	n := &entity.Note{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, content, created_at, updated_at
		FROM notes
		WHERE id = $1
	`, id)

	if err := row.Scan(&n.ID, &n.UserID, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return n, nil
}

func (r *NoteRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Note, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, content, created_at, updated_at
		FROM notes
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make([]*entity.Note, 0)
	for rows.Next() {
		n := &entity.Note{}
		if err := rows.Scan(&n.ID, &n.UserID, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.NoteRepository = (*NoteRepository)(nil)
