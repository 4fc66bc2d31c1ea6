package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/grautech/leadpipe/internal/entity"
	"github.com/grautech/leadpipe/internal/usecase"
)

func emptyStages() *MockStageRepository {
	m := new(MockStageRepository)
	m.On("List", mock.Anything).Return([]entity.PipelineStage{}, nil)
	return m
}

// TestCreateLeadDefaultsToFirstStage - lead sem status nasce no primeiro
// estágio e ganha a atividade "Lead criado"
func TestCreateLeadDefaultsToFirstStage(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockTagRepo := new(MockTagRepository)
	mockActivityRepo := new(MockActivityRepository)

	mockLeadRepo.On("Create", ctx, mock.Anything).Return(nil)
	mockActivityRepo.On("Append", ctx, mock.MatchedBy(func(a *entity.Activity) bool {
		return a.Type == entity.ActivityNote && a.Content == "Lead criado"
	})).Return(nil)

	uc := usecase.NewCreateLeadUseCase(
		mockLeadRepo, mockTagRepo, mockActivityRepo,
		usecase.NewLoadPipelineUseCase(emptyStages()),
	)

	lead, err := uc.Execute(ctx, usecase.CreateLeadInput{
		Name:   "Maria Souza",
		Email:  "maria@example.com",
		Source: "instagram",
	})

	assert.NoError(t, err)
	assert.Equal(t, "novo", lead.Status)
	assert.NotEmpty(t, lead.ID)

	mockLeadRepo.AssertCalled(t, "Create", ctx, mock.Anything)
	mockActivityRepo.AssertCalled(t, "Append", ctx, mock.Anything)
	// Sem tags no input, nenhuma associação é tentada.
	mockTagRepo.AssertNotCalled(t, "ReplaceLeadTags", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateLeadRejectsUnknownStage(t *testing.T) {
	ctx := context.Background()

	uc := usecase.NewCreateLeadUseCase(
		new(MockLeadRepository), new(MockTagRepository), new(MockActivityRepository),
		usecase.NewLoadPipelineUseCase(emptyStages()),
	)

	_, err := uc.Execute(ctx, usecase.CreateLeadInput{Name: "João", Status: "fantasma"})

	assert.Error(t, err)
	assert.True(t, usecase.IsDomainError(err))
}

func TestCreateLeadRejectsEmptyName(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	uc := usecase.NewCreateLeadUseCase(
		mockLeadRepo, new(MockTagRepository), new(MockActivityRepository),
		usecase.NewLoadPipelineUseCase(emptyStages()),
	)

	_, err := uc.Execute(ctx, usecase.CreateLeadInput{Name: "  "})

	assert.True(t, usecase.IsDomainError(err))
	// Validação barra antes de qualquer chamada ao banco.
	mockLeadRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// TestCreateLeadTagJoinBestEffort - falha no join de tags não desfaz o
// lead: a operação ainda é sucesso
func TestCreateLeadTagJoinBestEffort(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockTagRepo := new(MockTagRepository)
	mockActivityRepo := new(MockActivityRepository)

	mockLeadRepo.On("Create", ctx, mock.Anything).Return(nil)
	mockTagRepo.On("ReplaceLeadTags", ctx, mock.Anything, []string{"t1"}).
		Return(errors.New("join table indisponível"))
	mockActivityRepo.On("Append", ctx, mock.Anything).Return(nil)

	uc := usecase.NewCreateLeadUseCase(
		mockLeadRepo, mockTagRepo, mockActivityRepo,
		usecase.NewLoadPipelineUseCase(emptyStages()),
	)

	lead, err := uc.Execute(ctx, usecase.CreateLeadInput{
		Name:   "João",
		TagIDs: []string{"t1"},
	})

	assert.NoError(t, err)
	assert.NotNil(t, lead)
}

func TestCreateLeadStoreFailureSurfaces(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockLeadRepo.On("Create", ctx, mock.Anything).Return(errors.New("connection refused"))

	uc := usecase.NewCreateLeadUseCase(
		mockLeadRepo, new(MockTagRepository), new(MockActivityRepository),
		usecase.NewLoadPipelineUseCase(emptyStages()),
	)

	_, err := uc.Execute(ctx, usecase.CreateLeadInput{Name: "João"})

	assert.Error(t, err)
	assert.True(t, usecase.IsTechnicalError(err))
}

// TestDuplicateLead - clone mantém os dados, zera identidade e volta ao
// primeiro estágio com " (cópia)" no nome
func TestDuplicateLead(t *testing.T) {
	ctx := context.Background()

	original := &entity.Lead{
		ID:     "lead-1",
		Name:   "Maria Souza",
		Email:  "maria@example.com",
		Status: "negociacao",
		Tags:   []entity.Tag{{ID: "t1", Name: "Alto Valor", Color: "#10B981"}},
	}

	mockLeadRepo := new(MockLeadRepository)
	mockTagRepo := new(MockTagRepository)
	mockActivityRepo := new(MockActivityRepository)

	mockLeadRepo.On("FindByID", ctx, "lead-1").Return(original, nil)
	mockLeadRepo.On("Create", ctx, mock.MatchedBy(func(l *entity.Lead) bool {
		return l.Name == "Maria Souza (cópia)" && l.Status == "novo" && l.ID != "lead-1"
	})).Return(nil)
	mockTagRepo.On("ReplaceLeadTags", ctx, mock.Anything, []string{"t1"}).Return(nil)
	mockActivityRepo.On("Append", ctx, mock.Anything).Return(nil)

	create := usecase.NewCreateLeadUseCase(
		mockLeadRepo, mockTagRepo, mockActivityRepo,
		usecase.NewLoadPipelineUseCase(emptyStages()),
	)
	uc := usecase.NewDuplicateLeadUseCase(mockLeadRepo, create)

	clone, err := uc.Execute(ctx, "lead-1")

	assert.NoError(t, err)
	assert.Equal(t, "Maria Souza (cópia)", clone.Name)
	assert.Equal(t, "novo", clone.Status)
	mockLeadRepo.AssertExpectations(t)
}
