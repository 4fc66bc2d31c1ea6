package normalize

import "strings"

// TagSuggestion é uma tag derivada do formulário, ainda sem id (o id nasce
// no find-or-create do repositório).
type TagSuggestion struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// SuggestTags aplica a tabela de regras de classificação. As regras são
// independentes e aditivas: zero ou várias tags podem sair do mesmo payload.
func SuggestTags(sub Submission) []TagSuggestion {
	var tags []TagSuggestion

	// Capital declarado
	if sub.Capital != "" {
		if strings.Contains(sub.Capital, "Acima de R$ 500 mil") {
			tags = append(tags, TagSuggestion{Name: "Alto Valor", Color: "#10B981"})
		} else if strings.Contains(sub.Capital, "Até R$ 250 mil") {
			tags = append(tags, TagSuggestion{Name: "Entrada", Color: "#9CA3AF"})
		}
	}

	// Prazo de decisão
	if sub.Prazo != "" {
		if strings.Contains(sub.Prazo, "próximos 3 meses") {
			tags = append(tags, TagSuggestion{Name: "Urgente", Color: "#EF4444"})
		} else if strings.Contains(sub.Prazo, "só pesquisando") || strings.Contains(sub.Prazo, "próximo ano") {
			tags = append(tags, TagSuggestion{Name: "Frio", Color: "#3B82F6"})
		}
	}

	// Perfil de operação
	if sub.PerfilOperador != "" {
		if strings.Contains(strings.ToLower(sub.PerfilOperador), "investidor") {
			tags = append(tags, TagSuggestion{Name: "Investidor", Color: "#8B5CF6"})
		}
	}

	return tags
}
