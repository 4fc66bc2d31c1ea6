package usecase

import (
	"context"

	"github.com/grautech/leadpipe/internal/entity"
)

// AddNoteUseCase anexa uma anotação à trilha do lead e atualiza o
// updated_at. Nenhum outro campo muda.
type AddNoteUseCase struct {
	LeadRepo     LeadRepositoryInterface
	ActivityRepo ActivityRepositoryInterface
}

func NewAddNoteUseCase(leadRepo LeadRepositoryInterface, activityRepo ActivityRepositoryInterface) *AddNoteUseCase {
	return &AddNoteUseCase{LeadRepo: leadRepo, ActivityRepo: activityRepo}
}

func (uc *AddNoteUseCase) Execute(ctx context.Context, leadID, content string) (*entity.Activity, error) {
	if content == "" {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "conteúdo da nota é obrigatório"}
	}

	if _, err := uc.LeadRepo.FindByID(ctx, leadID); err != nil {
		return nil, leadLookupError(leadID, err)
	}

	activity := entity.NewNoteActivity(leadID, content)
	if err := uc.ActivityRepo.Append(ctx, activity); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "falha ao registrar nota: " + err.Error(),
		}
	}

	if err := uc.LeadRepo.Touch(ctx, leadID); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "falha ao atualizar lead: " + err.Error(),
		}
	}

	return activity, nil
}
