package entity

// Entidade: PipelineStage
// Slug é o id usado em lead.Status; OrderIndex define a ordem no kanban
// e a adjacência para "mover para esquerda/direita".
type PipelineStage struct {
	Slug       string `json:"id"`
	Title      string `json:"title"`
	Color      string `json:"color"`
	OrderIndex int    `json:"order_index"`
}

// DefaultStages é o pipeline fixo usado quando não existe configuração
// persistida (ou quando o banco está fora do ar). O sistema sempre precisa
// de um pipeline utilizável.
func DefaultStages() []PipelineStage {
	return []PipelineStage{
		{Slug: "novo", Title: "Novos", Color: "bg-lead-new", OrderIndex: 0},
		{Slug: "contato", Title: "Em Contato", Color: "bg-lead-contacted", OrderIndex: 1},
		{Slug: "qualificado", Title: "Qualificados", Color: "bg-lead-qualified", OrderIndex: 2},
		{Slug: "proposta", Title: "Proposta", Color: "bg-lead-proposal", OrderIndex: 3},
		{Slug: "negociacao", Title: "Negociação", Color: "bg-lead-negotiation", OrderIndex: 4},
		{Slug: "ganho", Title: "Ganhos", Color: "bg-lead-won", OrderIndex: 5},
		{Slug: "perdido", Title: "Perdidos", Color: "bg-lead-lost", OrderIndex: 6},
	}
}

// StageRegistry é a fonte de verdade dos estados válidos de um lead.
type StageRegistry struct {
	stages []PipelineStage
}

// NewStageRegistry assume que stages já vem ordenado por order_index.
// Uma lista vazia cai no pipeline padrão.
func NewStageRegistry(stages []PipelineStage) *StageRegistry {
	if len(stages) == 0 {
		stages = DefaultStages()
	}
	return &StageRegistry{stages: stages}
}

func (r *StageRegistry) Stages() []PipelineStage {
	out := make([]PipelineStage, len(r.stages))
	copy(out, r.stages)
	return out
}

// First retorna o slug do primeiro estágio (status default de lead novo).
func (r *StageRegistry) First() string {
	return r.stages[0].Slug
}

func (r *StageRegistry) Contains(slug string) bool {
	for _, s := range r.stages {
		if s.Slug == slug {
			return true
		}
	}
	return false
}

// Adjacent resolve "mover para esquerda/direita" no kanban: offset -1 ou +1.
// Fora do intervalo (ou slug desconhecido) devolve o próprio slug — no-op.
func (r *StageRegistry) Adjacent(slug string, offset int) string {
	for i, s := range r.stages {
		if s.Slug != slug {
			continue
		}
		j := i + offset
		if j < 0 || j >= len(r.stages) {
			return slug
		}
		return r.stages[j].Slug
	}
	return slug
}
