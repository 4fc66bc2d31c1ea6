package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tipos de atividade. Registro imutável: nunca é atualizado nem apagado,
// é a trilha de auditoria do lead.
const (
	ActivityNote         = "note"
	ActivityStatusChange = "status_change"
	ActivityCall         = "call"
	ActivityEmail        = "email"
	ActivityMeeting      = "meeting"
)

type Activity struct {
	ID        string    `json:"id"`
	LeadID    string    `json:"lead_id"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	OldStatus string    `json:"old_status,omitempty"`
	NewStatus string    `json:"new_status,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewNoteActivity(leadID, content string) *Activity {
	return &Activity{
		ID:        uuid.New().String(),
		LeadID:    leadID,
		Type:      ActivityNote,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

func NewStatusChangeActivity(leadID, oldStatus, newStatus string) *Activity {
	return &Activity{
		ID:        uuid.New().String(),
		LeadID:    leadID,
		Type:      ActivityStatusChange,
		Content:   "Status alterado de " + oldStatus + " para " + newStatus,
		OldStatus: oldStatus,
		NewStatus: newStatus,
		CreatedAt: time.Now(),
	}
}
