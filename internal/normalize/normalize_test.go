package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ============ MAPEAMENTO DE ORIGEM ============

func TestMapSource(t *testing.T) {
	assert.Equal(t, "instagram", MapSource("Vim pelo Instagram"))
	assert.Equal(t, "facebook", MapSource("anúncio no FACEBOOK"))
	assert.Equal(t, "whatsapp", MapSource("grupo de WhatsApp"))
	assert.Equal(t, "website", MapSource("pelo site de vocês"))
	assert.Equal(t, "website", MapSource("página web"))
	assert.Equal(t, "indicacao", MapSource("Indicação de um amigo"))
	assert.Equal(t, "outro", MapSource("panfleto na rua"))
	assert.Equal(t, "outro", MapSource(""))
}

// Instagram ganha de facebook quando os dois aparecem (ordem de prioridade).
func TestMapSourcePriority(t *testing.T) {
	assert.Equal(t, "instagram", MapSource("instagram e facebook"))
}

func TestMapOperation(t *testing.T) {
	assert.Equal(t, "investidor", MapOperation("Quero ser apenas investidor"))
	assert.Equal(t, "operador", MapOperation("Pretendo operar o negócio"))
	assert.Equal(t, "operador", MapOperation("Eu mesmo vou tocar"))
	assert.Equal(t, "definindo", MapOperation("ainda não sei"))
	assert.Equal(t, "definindo", MapOperation(""))
}

// MapProfile e MapOperation leem o mesmo campo com semânticas diferentes:
// "operar"/"eu mesmo" vira empresario num e operador no outro. Divergência
// preservada de propósito.
func TestMapProfileDivergesFromOperation(t *testing.T) {
	input := "Pretendo operar eu mesmo"

	assert.Equal(t, "empresario", MapProfile(input))
	assert.Equal(t, "operador", MapOperation(input))
}

func TestMapProfile(t *testing.T) {
	assert.Equal(t, "investidor", MapProfile("perfil investidor"))
	assert.Equal(t, "outro", MapProfile("autônomo"))
	assert.Equal(t, "outro", MapProfile(""))
}

// Funções totais: qualquer string devolve um valor do conjunto fixo.
func TestMappersAreTotal(t *testing.T) {
	inputs := []string{"", " ", "ção!@#$", "\n\t", "12345", "INSTAGRAM FACEBOOK WEB"}

	sources := map[string]bool{"instagram": true, "facebook": true, "whatsapp": true,
		"website": true, "indicacao": true, "outro": true}
	operations := map[string]bool{"investidor": true, "operador": true, "definindo": true, "outro": true}
	profiles := map[string]bool{"empresario": true, "investidor": true, "autonomo": true,
		"assalariado": true, "outro": true}

	for _, in := range inputs {
		assert.True(t, sources[MapSource(in)], "MapSource(%q)", in)
		assert.True(t, operations[MapOperation(in)], "MapOperation(%q)", in)
		assert.True(t, profiles[MapProfile(in)], "MapProfile(%q)", in)
	}
}

// ============ NOTAS ============

func TestBuildNotes(t *testing.T) {
	sub := Submission{
		VisaoCliente: "Quero renda passiva",
		Atracao:      "Franquia X",
		Prazo:        "próximos 3 meses",
		Confirmacao:  "Confirmado",
	}

	notes := BuildNotes(sub)

	assert.Contains(t, notes, "Visão: Quero renda passiva")
	assert.Contains(t, notes, "Atração: Franquia X")
	assert.Contains(t, notes, "Prazo: próximos 3 meses")
	assert.Contains(t, notes, "Status Agendamento: Confirmado")
}

func TestBuildNotesEmpty(t *testing.T) {
	assert.Equal(t, "", BuildNotes(Submission{}))
}

func TestLocationFallsBackToOutra(t *testing.T) {
	assert.Equal(t, "São Paulo", Location(Submission{Localizacao: "São Paulo"}))
	assert.Equal(t, "Interior", Location(Submission{OutraLocalizacao: "Interior"}))
	assert.Equal(t, "SP", Location(Submission{Localizacao: "SP", OutraLocalizacao: "Interior"}))
}
