package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLeadRequiresName(t *testing.T) {
	_, err := NewLead("")
	assert.Error(t, err)

	_, err = NewLead("   ")
	assert.Error(t, err)

	lead, err := NewLead("Maria Souza")
	assert.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, "Maria Souza", lead.Name)
}

func TestValidateMeetingAllOrNothing(t *testing.T) {
	lead, _ := NewLead("João")

	lead.Meeting = &Meeting{Time: "14:00"}
	assert.Error(t, lead.Validate())

	lead.Meeting = &Meeting{Date: "2026-02-10", Time: "14:00"}
	assert.NoError(t, lead.Validate())
}

// Email sem "@" é tratado como ausente, não como erro.
func TestNormalizeEmail(t *testing.T) {
	lead, _ := NewLead("João")

	lead.Email = "joao[arroba]gmail.com"
	lead.NormalizeEmail()
	assert.Equal(t, "", lead.Email)

	lead.Email = "  joao@gmail.com "
	lead.NormalizeEmail()
	assert.Equal(t, "joao@gmail.com", lead.Email)
}

func TestCloneResetsIdentityAndStage(t *testing.T) {
	original, _ := NewLead("Maria Souza")
	original.Email = "maria@example.com"
	original.Status = "negociacao"
	original.Meeting = &Meeting{Date: "2026-02-10", Time: "10:00"}
	original.Tags = []Tag{{ID: "t1", Name: "Alto Valor", Color: "#10B981"}}
	original.Activities = []Activity{{ID: "a1", Type: ActivityNote, Content: "Lead criado"}}

	clone := original.Clone("novo")

	assert.NotEqual(t, original.ID, clone.ID)
	assert.Equal(t, "Maria Souza (cópia)", clone.Name)
	assert.Equal(t, "novo", clone.Status)
	assert.Equal(t, "maria@example.com", clone.Email)
	assert.Equal(t, original.Tags, clone.Tags)
	assert.Empty(t, clone.Activities)

	// Meeting é cópia, não o mesmo ponteiro.
	assert.NotSame(t, original.Meeting, clone.Meeting)
	assert.Equal(t, *original.Meeting, *clone.Meeting)
}
