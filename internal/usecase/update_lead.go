package usecase

import (
	"context"
	"log"
	"time"

	"github.com/grautech/leadpipe/internal/entity"
	"github.com/grautech/leadpipe/internal/infra/queue"
)

// UpdateLeadUseCase sobrescreve os campos mutáveis por inteiro e troca o
// conjunto de tags (delete-all + re-insert, sem diff), como o formulário de
// edição manda o lead completo.
type UpdateLeadUseCase struct {
	LeadRepo LeadRepositoryInterface
	TagRepo  TagRepositoryInterface
	Pipeline *LoadPipelineUseCase
	Queue    QueueProducerInterface
}

func NewUpdateLeadUseCase(
	leadRepo LeadRepositoryInterface,
	tagRepo TagRepositoryInterface,
	pipeline *LoadPipelineUseCase,
	producer QueueProducerInterface,
) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{LeadRepo: leadRepo, TagRepo: tagRepo, Pipeline: pipeline, Queue: producer}
}

func (uc *UpdateLeadUseCase) Execute(ctx context.Context, input UpdateLeadInput) (*entity.Lead, error) {
	current, err := uc.LeadRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, leadLookupError(input.ID, err)
	}

	lead := &entity.Lead{
		ID:          current.ID,
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Location:    input.Location,
		Capital:     input.Capital,
		Profile:     input.Profile,
		Operation:   input.Operation,
		Interest:    input.Interest,
		Source:      input.Source,
		Status:      input.Status,
		Notes:       input.Notes,
		SubmittedAt: current.SubmittedAt,
		CreatedAt:   current.CreatedAt,
	}
	if input.Meeting != nil && input.Meeting.Date != "" {
		lead.Meeting = &entity.Meeting{
			Date: input.Meeting.Date,
			Time: input.Meeting.Time,
			Link: input.Meeting.Link,
		}
	}

	if err := lead.Validate(); err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}
	lead.NormalizeEmail()

	registry := uc.Pipeline.Execute(ctx)
	if lead.Status == "" {
		lead.Status = current.Status
	}
	if !registry.Contains(lead.Status) {
		return nil, &DomainError{Code: "INVALID_STAGE", Message: "estágio desconhecido: " + lead.Status}
	}

	if err := uc.LeadRepo.Update(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "falha ao atualizar lead: " + err.Error(),
		}
	}

	if err := uc.TagRepo.ReplaceLeadTags(ctx, lead.ID, input.TagIDs); err != nil {
		log.Printf("⚠️ Lead %s atualizado, mas tags não sincronizadas: %v", lead.ID, err)
	}

	// Reunião recém-marcada gera evento (o worker avisa a caixa comercial).
	if uc.Queue != nil && lead.Meeting != nil && current.Meeting == nil {
		event := queue.LeadEvent{
			Type:        queue.EventMeetingScheduled,
			LeadID:      lead.ID,
			Name:        lead.Name,
			Email:       lead.Email,
			MeetingDate: lead.Meeting.Date,
			MeetingTime: lead.Meeting.Time,
			OccurredAt:  time.Now(),
		}
		if err := uc.Queue.PublishLeadEvent(ctx, event); err != nil {
			log.Printf("⚠️ Evento de reunião não publicado: %v", err)
		}
	}

	return lead, nil
}
