package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/grautech/leadpipe/internal/entity"
)

type StageRepository struct {
	DB *sql.DB
}

func NewStageRepository(db *sql.DB) *StageRepository {
	return &StageRepository{DB: db}
}

// List retorna os estágios persistidos em ordem de exibição. Lista vazia é
// um resultado válido: quem decide cair no pipeline padrão é o use case.
func (r *StageRepository) List(ctx context.Context) ([]entity.PipelineStage, error) {
	query := `
		SELECT slug, title, color, order_index
		FROM pipeline_stages
		ORDER BY order_index ASC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar estágios: %w", err)
	}
	defer rows.Close()

	var stages []entity.PipelineStage
	for rows.Next() {
		var s entity.PipelineStage
		var slug sql.NullString
		var order sql.NullInt64
		if err := rows.Scan(&slug, &s.Title, &s.Color, &order); err != nil {
			return nil, err
		}
		s.Slug = slug.String
		s.OrderIndex = int(order.Int64)
		if s.Slug == "" {
			continue
		}
		stages = append(stages, s)
	}

	return stages, rows.Err()
}
