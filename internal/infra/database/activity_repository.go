package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/grautech/leadpipe/internal/entity"
)

// ActivityRepository só insere e lê. Atividade é trilha de auditoria:
// nunca é atualizada nem apagada pela aplicação.
type ActivityRepository struct {
	DB *sql.DB
}

func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) Append(ctx context.Context, a *entity.Activity) error {
	query := `
		INSERT INTO activities (id, lead_id, type, content, old_status, new_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.DB.ExecContext(ctx, query,
		a.ID,
		a.LeadID,
		a.Type,
		a.Content,
		nullString(a.OldStatus),
		nullString(a.NewStatus),
		a.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("falha ao registrar atividade: %w", err)
	}

	return nil
}

func (r *ActivityRepository) ListByLead(ctx context.Context, leadID string) ([]entity.Activity, error) {
	query := `
		SELECT id, lead_id, type, content, old_status, new_status, created_at
		FROM activities
		WHERE lead_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar atividades: %w", err)
	}
	defer rows.Close()

	var activities []entity.Activity
	for rows.Next() {
		var a entity.Activity
		var oldStatus, newStatus sql.NullString
		if err := rows.Scan(&a.ID, &a.LeadID, &a.Type, &a.Content, &oldStatus, &newStatus, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.OldStatus = oldStatus.String
		a.NewStatus = newStatus.String
		activities = append(activities, a)
	}

	return activities, rows.Err()
}
