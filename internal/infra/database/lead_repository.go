package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/grautech/leadpipe/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `
	id, name, email, phone, location, capital, profile, operation, interest,
	source, status, notes, meeting_date, meeting_time, meeting_link,
	submitted_at, created_at, updated_at
`

// List retorna todos os leads com tags e atividades resolvidas, do mais
// recente para o mais antigo (por data de submissão).
func (r *LeadRepository) List(ctx context.Context) ([]entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY submitted_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar leads: %w", err)
	}
	defer rows.Close()

	var leads []entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, *lead)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// O índice só pode ser montado depois do scan completo: append realoca
	// o backing array e invalidaria ponteiros guardados no meio do loop.
	index := make(map[string]*entity.Lead, len(leads))
	for i := range leads {
		index[leads[i].ID] = &leads[i]
	}

	if err := r.attachTags(ctx, index); err != nil {
		return nil, err
	}
	if err := r.attachActivities(ctx, index); err != nil {
		return nil, err
	}

	return leads, nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	return r.findOne(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id)
}

func (r *LeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	return r.findOne(ctx, `SELECT `+leadColumns+` FROM leads WHERE email = $1 LIMIT 1`, email)
}

func (r *LeadRepository) FindByPhone(ctx context.Context, phone string) (*entity.Lead, error) {
	return r.findOne(ctx, `SELECT `+leadColumns+` FROM leads WHERE phone = $1 LIMIT 1`, phone)
}

func (r *LeadRepository) findOne(ctx context.Context, query, arg string) (*entity.Lead, error) {
	row := r.DB.QueryRowContext(ctx, query, arg)
	lead, err := scanLead(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("lead não encontrado: %w", err)
	}
	if err != nil {
		return nil, err
	}

	index := map[string]*entity.Lead{lead.ID: lead}
	if err := r.attachTags(ctx, index); err != nil {
		return nil, err
	}
	if err := r.attachActivities(ctx, index); err != nil {
		return nil, err
	}

	return lead, nil
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (
			id, name, email, phone, location, capital, profile, operation,
			interest, source, status, notes,
			meeting_date, meeting_time, meeting_link,
			submitted_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW())
	`

	meetingDate, meetingTime, meetingLink := meetingFields(lead.Meeting)

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		nullString(lead.Email),
		nullString(lead.Phone),
		nullString(lead.Location),
		nullString(lead.Capital),
		lead.Profile,
		lead.Operation,
		nullString(lead.Interest),
		lead.Source,
		lead.Status,
		nullString(lead.Notes),
		meetingDate,
		meetingTime,
		meetingLink,
		lead.SubmittedAt,
	)

	if err != nil {
		return fmt.Errorf("falha ao criar lead: %w", err)
	}

	return nil
}

// Update sobrescreve todos os campos mutáveis e renova o updated_at.
// As associações de tag ficam na tabela lead_tags (TagRepository).
func (r *LeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	query := `
		UPDATE leads SET
			name = $2, email = $3, phone = $4, location = $5, capital = $6,
			profile = $7, operation = $8, interest = $9, source = $10,
			status = $11, notes = $12,
			meeting_date = $13, meeting_time = $14, meeting_link = $15,
			updated_at = NOW()
		WHERE id = $1
	`

	meetingDate, meetingTime, meetingLink := meetingFields(lead.Meeting)

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		nullString(lead.Email),
		nullString(lead.Phone),
		nullString(lead.Location),
		nullString(lead.Capital),
		lead.Profile,
		lead.Operation,
		nullString(lead.Interest),
		lead.Source,
		lead.Status,
		nullString(lead.Notes),
		meetingDate,
		meetingTime,
		meetingLink,
	)

	if err != nil {
		return fmt.Errorf("falha ao atualizar lead: %w", err)
	}

	return nil
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE leads SET status = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id, status)
	return err
}

// Touch renova o updated_at sem mexer em mais nada (usado pelo add-note).
func (r *LeadRepository) Touch(ctx context.Context, id string) error {
	query := `UPDATE leads SET updated_at = NOW() WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id)
	return err
}

// Delete remove o lead. O cascade das atividades é FK do banco, não daqui.
func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	return err
}

// --- scan helpers ---

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var email, phone, location, capital, interest, notes sql.NullString
	var meetingDate, meetingTime, meetingLink sql.NullString

	err := row.Scan(
		&lead.ID,
		&lead.Name,
		&email,
		&phone,
		&location,
		&capital,
		&lead.Profile,
		&lead.Operation,
		&interest,
		&lead.Source,
		&lead.Status,
		&notes,
		&meetingDate,
		&meetingTime,
		&meetingLink,
		&lead.SubmittedAt,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	lead.Email = email.String
	lead.Phone = phone.String
	lead.Location = location.String
	lead.Capital = capital.String
	lead.Interest = interest.String
	lead.Notes = notes.String
	lead.Tags = []entity.Tag{}

	if meetingDate.Valid && meetingDate.String != "" {
		lead.Meeting = &entity.Meeting{
			Date: meetingDate.String,
			Time: meetingTime.String,
			Link: meetingLink.String,
		}
	}

	return &lead, nil
}

func (r *LeadRepository) attachTags(ctx context.Context, index map[string]*entity.Lead) error {
	if len(index) == 0 {
		return nil
	}

	query := `
		SELECT lt.lead_id, t.id, t.name, t.color
		FROM lead_tags lt
		JOIN tags t ON t.id = lt.tag_id
		WHERE lt.lead_id = ANY($1)
		ORDER BY t.name ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, pq.Array(leadIDs(index)))
	if err != nil {
		return fmt.Errorf("falha ao carregar tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var leadID string
		var tag entity.Tag
		if err := rows.Scan(&leadID, &tag.ID, &tag.Name, &tag.Color); err != nil {
			return err
		}
		if lead, ok := index[leadID]; ok {
			lead.Tags = append(lead.Tags, tag)
		}
	}

	return rows.Err()
}

func (r *LeadRepository) attachActivities(ctx context.Context, index map[string]*entity.Lead) error {
	if len(index) == 0 {
		return nil
	}

	query := `
		SELECT id, lead_id, type, content, old_status, new_status, created_at
		FROM activities
		WHERE lead_id = ANY($1)
		ORDER BY created_at ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, pq.Array(leadIDs(index)))
	if err != nil {
		return fmt.Errorf("falha ao carregar atividades: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a entity.Activity
		var oldStatus, newStatus sql.NullString
		if err := rows.Scan(&a.ID, &a.LeadID, &a.Type, &a.Content, &oldStatus, &newStatus, &a.CreatedAt); err != nil {
			return err
		}
		a.OldStatus = oldStatus.String
		a.NewStatus = newStatus.String
		if lead, ok := index[a.LeadID]; ok {
			lead.Activities = append(lead.Activities, a)
		}
	}

	return rows.Err()
}

func leadIDs(index map[string]*entity.Lead) []string {
	ids := make([]string, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}
	return ids
}

func meetingFields(m *entity.Meeting) (*string, *string, *string) {
	if m == nil {
		return nil, nil, nil
	}
	return nullString(m.Date), nullString(m.Time), nullString(m.Link)
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
