package usecase

import (
	"context"

	"github.com/grautech/leadpipe/internal/entity"
)

// DuplicateLeadUseCase clona um lead existente: tudo menos id, timestamps e
// atividades. O clone nasce no primeiro estágio com " (cópia)" no nome.
type DuplicateLeadUseCase struct {
	LeadRepo LeadRepositoryInterface
	Create   *CreateLeadUseCase
}

func NewDuplicateLeadUseCase(leadRepo LeadRepositoryInterface, create *CreateLeadUseCase) *DuplicateLeadUseCase {
	return &DuplicateLeadUseCase{LeadRepo: leadRepo, Create: create}
}

func (uc *DuplicateLeadUseCase) Execute(ctx context.Context, id string) (*entity.Lead, error) {
	original, err := uc.LeadRepo.FindByID(ctx, id)
	if err != nil {
		return nil, leadLookupError(id, err)
	}

	registry := uc.Create.Pipeline.Execute(ctx)
	clone := original.Clone(registry.First())

	if err := uc.Create.persist(ctx, clone, clone.TagIDs()); err != nil {
		return nil, err
	}

	return clone, nil
}
