package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tagNames(tags []TagSuggestion) []string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return names
}

// As regras são independentes e aditivas: capital e prazo geram tags
// distintas no mesmo payload.
func TestSuggestTagsAdditive(t *testing.T) {
	tags := SuggestTags(Submission{
		Capital: "Acima de R$ 500 mil",
		Prazo:   "nos próximos 3 meses",
	})

	names := tagNames(tags)
	assert.Contains(t, names, "Alto Valor")
	assert.Contains(t, names, "Urgente")
	assert.Len(t, tags, 2)
}

func TestSuggestTagsCapital(t *testing.T) {
	alto := SuggestTags(Submission{Capital: "Acima de R$ 500 mil"})
	assert.Equal(t, []TagSuggestion{{Name: "Alto Valor", Color: "#10B981"}}, alto)

	entrada := SuggestTags(Submission{Capital: "Até R$ 250 mil"})
	assert.Equal(t, []TagSuggestion{{Name: "Entrada", Color: "#9CA3AF"}}, entrada)
}

func TestSuggestTagsPrazo(t *testing.T) {
	urgente := SuggestTags(Submission{Prazo: "quero abrir nos próximos 3 meses"})
	assert.Equal(t, []TagSuggestion{{Name: "Urgente", Color: "#EF4444"}}, urgente)

	frio := SuggestTags(Submission{Prazo: "estou só pesquisando"})
	assert.Equal(t, []TagSuggestion{{Name: "Frio", Color: "#3B82F6"}}, frio)

	proximoAno := SuggestTags(Submission{Prazo: "talvez no próximo ano"})
	assert.Equal(t, []TagSuggestion{{Name: "Frio", Color: "#3B82F6"}}, proximoAno)
}

func TestSuggestTagsInvestidor(t *testing.T) {
	tags := SuggestTags(Submission{PerfilOperador: "Serei só INVESTIDOR"})
	assert.Equal(t, []TagSuggestion{{Name: "Investidor", Color: "#8B5CF6"}}, tags)
}

func TestSuggestTagsNone(t *testing.T) {
	assert.Empty(t, SuggestTags(Submission{}))
	assert.Empty(t, SuggestTags(Submission{Capital: "R$ 300 mil", Prazo: "sem pressa"}))
}
