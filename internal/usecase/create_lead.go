package usecase

import (
	"context"
	"log"

	"github.com/grautech/leadpipe/internal/entity"
)

type CreateLeadUseCase struct {
	LeadRepo     LeadRepositoryInterface
	TagRepo      TagRepositoryInterface
	ActivityRepo ActivityRepositoryInterface
	Pipeline     *LoadPipelineUseCase
}

func NewCreateLeadUseCase(
	leadRepo LeadRepositoryInterface,
	tagRepo TagRepositoryInterface,
	activityRepo ActivityRepositoryInterface,
	pipeline *LoadPipelineUseCase,
) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		LeadRepo:     leadRepo,
		TagRepo:      tagRepo,
		ActivityRepo: activityRepo,
		Pipeline:     pipeline,
	}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	lead, err := entity.NewLead(input.Name)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	registry := uc.Pipeline.Execute(ctx)

	lead.Email = input.Email
	lead.Phone = input.Phone
	lead.Location = input.Location
	lead.Capital = input.Capital
	lead.Profile = input.Profile
	lead.Operation = input.Operation
	lead.Interest = input.Interest
	lead.Source = input.Source
	lead.Notes = input.Notes
	lead.NormalizeEmail()

	if input.Meeting != nil && input.Meeting.Date != "" {
		lead.Meeting = &entity.Meeting{
			Date: input.Meeting.Date,
			Time: input.Meeting.Time,
			Link: input.Meeting.Link,
		}
	}

	// Status default: primeiro estágio do pipeline.
	switch {
	case input.Status == "":
		lead.Status = registry.First()
	case registry.Contains(input.Status):
		lead.Status = input.Status
	default:
		return nil, &DomainError{
			Code:    "INVALID_STAGE",
			Message: "estágio desconhecido: " + input.Status,
		}
	}

	if err := uc.persist(ctx, lead, input.TagIDs); err != nil {
		return nil, err
	}

	return lead, nil
}

// persist grava o lead e, em seguida, as associações de tag e a atividade
// inicial. Os passos secundários são best-effort: se falharem, o lead já
// existe e a operação é considerada um sucesso (falha só logada).
func (uc *CreateLeadUseCase) persist(ctx context.Context, lead *entity.Lead, tagIDs []string) error {
	if err := uc.LeadRepo.Create(ctx, lead); err != nil {
		return &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "falha ao criar lead: " + err.Error(),
		}
	}

	if len(tagIDs) > 0 {
		if err := uc.TagRepo.ReplaceLeadTags(ctx, lead.ID, tagIDs); err != nil {
			log.Printf("⚠️ Lead %s criado, mas tags não associadas: %v", lead.ID, err)
		}
	}

	if err := uc.ActivityRepo.Append(ctx, entity.NewNoteActivity(lead.ID, "Lead criado")); err != nil {
		log.Printf("⚠️ Lead %s criado, mas atividade inicial falhou: %v", lead.ID, err)
	}

	return nil
}
