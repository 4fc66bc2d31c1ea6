package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/grautech/leadpipe/internal/entity"
)

type TagRepository struct {
	DB *sql.DB
}

func NewTagRepository(db *sql.DB) *TagRepository {
	return &TagRepository{DB: db}
}

func (r *TagRepository) List(ctx context.Context) ([]entity.Tag, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, color FROM tags ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar tags: %w", err)
	}
	defer rows.Close()

	var tags []entity.Tag
	for rows.Next() {
		var t entity.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}

	return tags, rows.Err()
}

// FindOrCreate é idempotente: o nome é a chave natural. Duas ingestões
// simultâneas com a mesma tag caem no unique (23505) e a segunda relê.
func (r *TagRepository) FindOrCreate(ctx context.Context, name, color string) (*entity.Tag, error) {
	tag := &entity.Tag{Name: name, Color: color}
	if err := tag.Validate(); err != nil {
		return nil, err
	}

	if found, err := r.findByName(ctx, name); err == nil {
		return found, nil
	}

	tag.ID = uuid.New().String()
	query := `INSERT INTO tags (id, name, color) VALUES ($1, $2, $3)`

	_, err := r.DB.ExecContext(ctx, query, tag.ID, tag.Name, tag.Color)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return r.findByName(ctx, name)
		}
		return nil, fmt.Errorf("falha ao criar tag: %w", err)
	}

	return tag, nil
}

func (r *TagRepository) findByName(ctx context.Context, name string) (*entity.Tag, error) {
	var t entity.Tag
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, name, color FROM tags WHERE name = $1`, name,
	).Scan(&t.ID, &t.Name, &t.Color)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TagRepository) Update(ctx context.Context, tag *entity.Tag) error {
	if err := tag.Validate(); err != nil {
		return err
	}
	_, err := r.DB.ExecContext(ctx,
		`UPDATE tags SET name = $2, color = $3 WHERE id = $1`,
		tag.ID, tag.Name, tag.Color,
	)
	return err
}

// Delete é hard-delete. O que acontece com as linhas de lead_tags é regra
// de cascade do banco.
func (r *TagRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM tags WHERE id = $1`, id)
	return err
}

// ReplaceLeadTags troca o conjunto inteiro de associações do lead:
// delete-all e re-insert, sem diff.
func (r *TagRepository) ReplaceLeadTags(ctx context.Context, leadID string, tagIDs []string) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM lead_tags WHERE lead_id = $1`, leadID); err != nil {
		return fmt.Errorf("falha ao limpar tags do lead: %w", err)
	}

	for _, tagID := range tagIDs {
		_, err := r.DB.ExecContext(ctx,
			`INSERT INTO lead_tags (lead_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			leadID, tagID,
		)
		if err != nil {
			return fmt.Errorf("falha ao associar tag %s: %w", tagID, err)
		}
	}

	return nil
}
