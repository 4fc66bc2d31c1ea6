package usecase

import "github.com/grautech/leadpipe/internal/normalize"

type MeetingInput struct {
	Date string `json:"date"`
	Time string `json:"time"`
	Link string `json:"link"`
}

type CreateLeadInput struct {
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Location  string        `json:"location"`
	Capital   string        `json:"capital"`
	Profile   string        `json:"profile"`
	Operation string        `json:"operation"`
	Interest  string        `json:"interest"`
	Source    string        `json:"source"`
	Status    string        `json:"status"`
	Notes     string        `json:"notes"`
	Meeting   *MeetingInput `json:"meeting,omitempty"`
	TagIDs    []string      `json:"tag_ids"`
}

type UpdateLeadInput struct {
	ID string `json:"id"`
	CreateLeadInput
}

// IngestOptions diferencia as duas portas de entrada: o webhook atualiza
// leads repetidos, o import de CSV pula.
type IngestOptions struct {
	// UpdateExisting: true no webhook (upsert), false no CSV (skip).
	UpdateExisting bool
	// OriginLabel aparece na atividade de auditoria ("Webhook", "Importação CSV").
	OriginLabel string
	// ExtraTags complementa as tags derivadas das regras (CSV traz tags do
	// campo atracao).
	ExtraTags []normalize.TagSuggestion
	// Notes substitui o bloco de notas padrão quando preenchido.
	Notes string
}

type IngestOutput struct {
	LeadID  string `json:"leadId"`
	IsNew   bool   `json:"isNew"`
	Skipped bool   `json:"skipped,omitempty"`
}

type MoveStageOutput struct {
	LeadID    string `json:"lead_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
	Moved     bool   `json:"moved"`
}
