package usecase

import (
	"context"
	"log"
	"time"

	"github.com/grautech/leadpipe/internal/entity"
	"github.com/grautech/leadpipe/internal/infra/queue"
)

// MoveStageUseCase cobre o drag-and-drop do kanban. O chamador aplica o novo
// status na visão local antes de persistir; se isto aqui falhar, ele volta
// para OldStatus do retorno.
type MoveStageUseCase struct {
	LeadRepo     LeadRepositoryInterface
	ActivityRepo ActivityRepositoryInterface
	Pipeline     *LoadPipelineUseCase
	Queue        QueueProducerInterface
}

func NewMoveStageUseCase(
	leadRepo LeadRepositoryInterface,
	activityRepo ActivityRepositoryInterface,
	pipeline *LoadPipelineUseCase,
	producer QueueProducerInterface,
) *MoveStageUseCase {
	return &MoveStageUseCase{
		LeadRepo:     leadRepo,
		ActivityRepo: activityRepo,
		Pipeline:     pipeline,
		Queue:        producer,
	}
}

func (uc *MoveStageUseCase) Execute(ctx context.Context, leadID, newStatus string) (*MoveStageOutput, error) {
	lead, err := uc.LeadRepo.FindByID(ctx, leadID)
	if err != nil {
		return nil, leadLookupError(leadID, err)
	}

	// Mesmo status: no-op. Sem atividade, sem bump de updated_at.
	if lead.Status == newStatus {
		return &MoveStageOutput{
			LeadID:    leadID,
			OldStatus: lead.Status,
			NewStatus: newStatus,
			Moved:     false,
		}, nil
	}

	registry := uc.Pipeline.Execute(ctx)
	if !registry.Contains(newStatus) {
		return nil, &DomainError{Code: "INVALID_STAGE", Message: "estágio desconhecido: " + newStatus}
	}

	if err := uc.LeadRepo.UpdateStatus(ctx, leadID, newStatus); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "falha ao mover lead: " + err.Error(),
		}
	}

	if err := uc.ActivityRepo.Append(ctx, entity.NewStatusChangeActivity(leadID, lead.Status, newStatus)); err != nil {
		log.Printf("⚠️ Status de %s movido, mas atividade não registrada: %v", leadID, err)
	}

	if uc.Queue != nil {
		event := queue.LeadEvent{
			Type:       queue.EventStageMoved,
			LeadID:     leadID,
			Name:       lead.Name,
			Email:      lead.Email,
			OldStatus:  lead.Status,
			NewStatus:  newStatus,
			OccurredAt: time.Now(),
		}
		if err := uc.Queue.PublishLeadEvent(ctx, event); err != nil {
			log.Printf("⚠️ Evento de movimentação não publicado: %v", err)
		}
	}

	return &MoveStageOutput{
		LeadID:    leadID,
		OldStatus: lead.Status,
		NewStatus: newStatus,
		Moved:     true,
	}, nil
}

// MoveAdjacent resolve "mover para esquerda/direita": offset -1 ou +1 a
// partir do estágio atual. Fora do intervalo é no-op.
func (uc *MoveStageUseCase) MoveAdjacent(ctx context.Context, leadID string, offset int) (*MoveStageOutput, error) {
	lead, err := uc.LeadRepo.FindByID(ctx, leadID)
	if err != nil {
		return nil, leadLookupError(leadID, err)
	}

	registry := uc.Pipeline.Execute(ctx)
	target := registry.Adjacent(lead.Status, offset)
	if target == lead.Status {
		return &MoveStageOutput{
			LeadID:    leadID,
			OldStatus: lead.Status,
			NewStatus: lead.Status,
			Moved:     false,
		}, nil
	}

	return uc.Execute(ctx, leadID, target)
}
