package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	// IMPORTANTE: NÃO adicione imports de usecase ou infra aqui!
)

// Value Object: Meeting
// Reunião agendada com o lead. Presente apenas quando date está preenchido.
type Meeting struct {
	Date string `json:"date"`
	Time string `json:"time"`
	Link string `json:"link,omitempty"`
}

// Entidade: Lead
type Lead struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	// Qualificação
	Location  string `json:"location,omitempty"`
	Capital   string `json:"capital,omitempty"`
	Profile   string `json:"profile"`   // empresario, investidor, autonomo, assalariado, outro
	Operation string `json:"operation"` // investidor, operador, definindo, outro
	Interest  string `json:"interest,omitempty"`

	// Classificação
	Source string `json:"source"` // instagram, facebook, whatsapp, website, indicacao, outro
	Status string `json:"status"` // slug de um estágio do pipeline

	Meeting *Meeting `json:"meeting,omitempty"`
	Tags    []Tag    `json:"tags"`
	Notes   string   `json:"notes,omitempty"`

	Activities []Activity `json:"activities,omitempty"`

	SubmittedAt time.Time `json:"submitted_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Factory
func NewLead(name string) (*Lead, error) {
	lead := &Lead{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(name),
		SubmittedAt: time.Now(),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return errors.New("name is required")
	}
	if l.Meeting != nil && l.Meeting.Date == "" {
		return errors.New("meeting date is required when a meeting is set")
	}
	return nil
}

// NormalizeEmail descarta emails sem "@" em vez de rejeitar o lead.
// A ingestão nunca pode falhar só por texto livre mal preenchido.
func (l *Lead) NormalizeEmail() {
	l.Email = strings.TrimSpace(l.Email)
	if l.Email != "" && !strings.Contains(l.Email, "@") {
		l.Email = ""
	}
}

// TagIDs retorna os ids das tags associadas (para a tabela lead_tags).
func (l *Lead) TagIDs() []string {
	ids := make([]string, 0, len(l.Tags))
	for _, t := range l.Tags {
		ids = append(ids, t.ID)
	}
	return ids
}

// Clone copia todos os campos exceto id, timestamps e activities.
// Nome ganha o sufixo " (cópia)" e o status volta ao primeiro estágio.
func (l *Lead) Clone(firstStage string) *Lead {
	copied := &Lead{
		ID:          uuid.New().String(),
		Name:        l.Name + " (cópia)",
		Email:       l.Email,
		Phone:       l.Phone,
		Location:    l.Location,
		Capital:     l.Capital,
		Profile:     l.Profile,
		Operation:   l.Operation,
		Interest:    l.Interest,
		Source:      l.Source,
		Status:      firstStage,
		Notes:       l.Notes,
		SubmittedAt: time.Now(),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if l.Meeting != nil {
		m := *l.Meeting
		copied.Meeting = &m
	}

	copied.Tags = append(copied.Tags, l.Tags...)

	return copied
}
