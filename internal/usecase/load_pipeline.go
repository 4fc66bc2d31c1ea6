package usecase

import (
	"context"
	"log"

	"github.com/grautech/leadpipe/internal/entity"
)

// LoadPipelineUseCase carrega os estágios persistidos. Banco vazio ou fora
// do ar não é erro: o pipeline padrão entra no lugar, silenciosamente
// (logado, não reportado) — o sistema sempre tem um pipeline utilizável.
type LoadPipelineUseCase struct {
	StageRepo StageRepositoryInterface
}

func NewLoadPipelineUseCase(stageRepo StageRepositoryInterface) *LoadPipelineUseCase {
	return &LoadPipelineUseCase{StageRepo: stageRepo}
}

func (uc *LoadPipelineUseCase) Execute(ctx context.Context) *entity.StageRegistry {
	stages, err := uc.StageRepo.List(ctx)
	if err != nil {
		log.Printf("⚠️ Pipeline persistido indisponível, usando padrão: %v", err)
		return entity.NewStageRegistry(nil)
	}

	// Override persistido substitui o padrão por inteiro, sem merge.
	return entity.NewStageRegistry(stages)
}
