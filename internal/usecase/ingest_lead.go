package usecase

import (
	"context"
	"log"
	"time"

	"github.com/grautech/leadpipe/internal/entity"
	"github.com/grautech/leadpipe/internal/infra/queue"
	"github.com/grautech/leadpipe/internal/normalize"
)

// IngestLeadUseCase é o adaptador de ingestão: recebe o payload bruto de um
// formulário externo, normaliza e faz o upsert. Dedupe por email primeiro,
// depois telefone; o primeiro match ganha, sem merge de registros.
type IngestLeadUseCase struct {
	LeadRepo     LeadRepositoryInterface
	TagRepo      TagRepositoryInterface
	ActivityRepo ActivityRepositoryInterface
	Pipeline     *LoadPipelineUseCase
	Queue        QueueProducerInterface

	// Now é injetável para testar o parser de datas e a dedução de ano.
	Now func() time.Time
}

func NewIngestLeadUseCase(
	leadRepo LeadRepositoryInterface,
	tagRepo TagRepositoryInterface,
	activityRepo ActivityRepositoryInterface,
	pipeline *LoadPipelineUseCase,
	producer QueueProducerInterface,
) *IngestLeadUseCase {
	return &IngestLeadUseCase{
		LeadRepo:     leadRepo,
		TagRepo:      tagRepo,
		ActivityRepo: activityRepo,
		Pipeline:     pipeline,
		Queue:        producer,
		Now:          time.Now,
	}
}

func (uc *IngestLeadUseCase) Execute(ctx context.Context, sub normalize.Submission, opts IngestOptions) (*IngestOutput, error) {
	now := uc.Now()

	name := sub.Nome
	if name == "" {
		name = "Sem nome"
	}

	lead, err := entity.NewLead(name)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	lead.Email = sub.Email
	lead.Phone = sub.Telefone
	lead.Location = normalize.Location(sub)
	lead.Capital = sub.Capital
	lead.Profile = normalize.MapProfile(sub.PerfilOperador)
	lead.Operation = normalize.MapOperation(sub.PerfilOperador)
	lead.Interest = sub.Atracao
	lead.Source = normalize.MapSource(sub.OrigemLead)
	lead.SubmittedAt = normalize.ParseSubmittedAt(sub.SubmittedAt, now)
	lead.NormalizeEmail()

	lead.Notes = opts.Notes
	if lead.Notes == "" {
		lead.Notes = normalize.BuildNotes(sub)
	}

	registry := uc.Pipeline.Execute(ctx)
	lead.Status = registry.First()

	// Dedupe: email antes de telefone, primeiro match ganha.
	existing := uc.findExisting(ctx, lead.Email, lead.Phone)

	if existing != nil && !opts.UpdateExisting {
		// Caminho CSV: duplicado é pulado, não atualizado.
		return &IngestOutput{LeadID: existing.ID, IsNew: false, Skipped: true}, nil
	}

	isNew := existing == nil
	if isNew {
		if err := uc.LeadRepo.Create(ctx, lead); err != nil {
			return nil, &TechnicalError{
				Code:    "DATABASE_ERROR",
				Message: "falha ao criar lead: " + err.Error(),
			}
		}
	} else {
		// Update in place: o payload normalizado sobrescreve os campos
		// mutáveis, inclusive o status (volta para o primeiro estágio).
		lead.ID = existing.ID
		lead.CreatedAt = existing.CreatedAt
		if err := uc.LeadRepo.Update(ctx, lead); err != nil {
			return nil, &TechnicalError{
				Code:    "DATABASE_ERROR",
				Message: "falha ao atualizar lead: " + err.Error(),
			}
		}
	}

	// Tags: find-or-create por nome e troca completa da associação.
	// Best-effort — o lead já está salvo.
	uc.syncTags(ctx, lead.ID, append(normalize.SuggestTags(sub), opts.ExtraTags...))

	origin := opts.OriginLabel
	if origin == "" {
		origin = "Ingestão"
	}
	content := "Lead atualizado via " + origin
	if isNew {
		content = "Lead criado via " + origin
	}
	if err := uc.ActivityRepo.Append(ctx, entity.NewNoteActivity(lead.ID, content)); err != nil {
		log.Printf("⚠️ Lead %s ingerido, mas atividade não registrada: %v", lead.ID, err)
	}

	if uc.Queue != nil {
		eventType := queue.EventLeadUpdated
		if isNew {
			eventType = queue.EventLeadCreated
		}
		event := queue.LeadEvent{
			Type:       eventType,
			LeadID:     lead.ID,
			Name:       lead.Name,
			Email:      lead.Email,
			Source:     lead.Source,
			Origin:     origin,
			NewStatus:  lead.Status,
			OccurredAt: now,
		}
		if err := uc.Queue.PublishLeadEvent(ctx, event); err != nil {
			log.Printf("⚠️ Evento de ingestão não publicado: %v", err)
		}
	}

	return &IngestOutput{LeadID: lead.ID, IsNew: isNew}, nil
}

func (uc *IngestLeadUseCase) findExisting(ctx context.Context, email, phone string) *entity.Lead {
	if email != "" {
		if found, err := uc.LeadRepo.FindByEmail(ctx, email); err == nil && found != nil {
			return found
		}
	}
	if phone != "" {
		if found, err := uc.LeadRepo.FindByPhone(ctx, phone); err == nil && found != nil {
			return found
		}
	}
	return nil
}

func (uc *IngestLeadUseCase) syncTags(ctx context.Context, leadID string, suggestions []normalize.TagSuggestion) {
	var tagIDs []string
	for _, s := range suggestions {
		tag, err := uc.TagRepo.FindOrCreate(ctx, s.Name, s.Color)
		if err != nil {
			log.Printf("⚠️ Tag %q não resolvida: %v", s.Name, err)
			continue
		}
		tagIDs = append(tagIDs, tag.ID)
	}

	if len(tagIDs) == 0 {
		return
	}

	if err := uc.TagRepo.ReplaceLeadTags(ctx, leadID, tagIDs); err != nil {
		log.Printf("⚠️ Lead %s salvo, mas tags não associadas: %v", leadID, err)
	}
}
