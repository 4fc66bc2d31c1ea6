package usecase

import (
	"context"

	"github.com/grautech/leadpipe/internal/entity"
	"github.com/grautech/leadpipe/internal/infra/queue"
)

type LeadRepositoryInterface interface {
	List(ctx context.Context) ([]entity.Lead, error)
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	FindByEmail(ctx context.Context, email string) (*entity.Lead, error)
	FindByPhone(ctx context.Context, phone string) (*entity.Lead, error)
	Create(ctx context.Context, lead *entity.Lead) error
	Update(ctx context.Context, lead *entity.Lead) error
	UpdateStatus(ctx context.Context, id, status string) error
	Touch(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type TagRepositoryInterface interface {
	List(ctx context.Context) ([]entity.Tag, error)
	FindOrCreate(ctx context.Context, name, color string) (*entity.Tag, error)
	Update(ctx context.Context, tag *entity.Tag) error
	Delete(ctx context.Context, id string) error
	ReplaceLeadTags(ctx context.Context, leadID string, tagIDs []string) error
}

type ActivityRepositoryInterface interface {
	Append(ctx context.Context, activity *entity.Activity) error
	ListByLead(ctx context.Context, leadID string) ([]entity.Activity, error)
}

type StageRepositoryInterface interface {
	List(ctx context.Context) ([]entity.PipelineStage, error)
}

type QueueProducerInterface interface {
	PublishLeadEvent(ctx context.Context, event queue.LeadEvent) error
}
