// Package normalize transforma o texto livre dos formulários (Typebot, CSV)
// em campos canônicos do lead. Todas as funções são puras e totais: entrada
// irreconhecível vira default seguro, nunca erro — a ingestão não pode falhar
// só porque alguém escreveu "istagram".
package normalize

import "strings"

// Submission é o payload bruto de um formulário externo (chaves em português,
// como chegam do Typebot e do export CSV).
type Submission struct {
	Nome             string `json:"nome"`
	Email            string `json:"email"`
	Telefone         string `json:"telefone"`
	Localizacao      string `json:"localizacao"`
	OutraLocalizacao string `json:"outra_localizacao"`
	Capital          string `json:"capital"`
	PerfilOperador   string `json:"perfil_operador"`
	OrigemLead       string `json:"origem_lead"`
	Atracao          string `json:"atracao"`
	VisaoCliente     string `json:"visao_cliente"`
	Prazo            string `json:"prazo"`
	Confirmacao      string `json:"confirmacao"`
	SubmittedAt      string `json:"submitted_at"`
}

// MapSource: match por substring, em ordem de prioridade.
func MapSource(source string) string {
	if source == "" {
		return "outro"
	}
	s := strings.ToLower(source)
	switch {
	case strings.Contains(s, "instagram"):
		return "instagram"
	case strings.Contains(s, "facebook"):
		return "facebook"
	case strings.Contains(s, "whatsapp"):
		return "whatsapp"
	case strings.Contains(s, "site"), strings.Contains(s, "web"):
		return "website"
	case strings.Contains(s, "indica"):
		return "indicacao"
	}
	return "outro"
}

func MapOperation(op string) string {
	if op == "" {
		return "definindo"
	}
	o := strings.ToLower(op)
	switch {
	case strings.Contains(o, "investidor"):
		return "investidor"
	case strings.Contains(o, "operar"), strings.Contains(o, "eu mesmo"):
		return "operador"
	}
	return "definindo"
}

// MapProfile deriva do MESMO campo que MapOperation, com semântica diferente
// ("operar"/"eu mesmo" vira empresario aqui, operador lá). Divergência mantida
// de propósito; pendente de confirmação do produto.
func MapProfile(op string) string {
	if op == "" {
		return "outro"
	}
	o := strings.ToLower(op)
	switch {
	case strings.Contains(o, "investidor"):
		return "investidor"
	case strings.Contains(o, "operar"), strings.Contains(o, "eu mesmo"):
		return "empresario"
	}
	return "outro"
}

// BuildNotes concatena os campos descritivos do formulário no bloco de notas
// do lead, um por seção.
func BuildNotes(sub Submission) string {
	var parts []string
	if sub.VisaoCliente != "" {
		parts = append(parts, "Visão: "+sub.VisaoCliente)
	}
	if sub.Atracao != "" {
		parts = append(parts, "Atração: "+sub.Atracao)
	}
	if sub.Prazo != "" {
		parts = append(parts, "Prazo: "+sub.Prazo)
	}
	if sub.Confirmacao != "" {
		parts = append(parts, "Status Agendamento: "+sub.Confirmacao)
	}
	return strings.Join(parts, "\n\n")
}

// Location prefere o campo fechado e cai no campo aberto ("outra").
func Location(sub Submission) string {
	if sub.Localizacao != "" {
		return sub.Localizacao
	}
	return sub.OutraLocalizacao
}
