package batch

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/schedule"
)

var ErrNotFound = errors.New("batch not found")

type (
	Repository interface {
		CreateBatch(ctx context.Context, b Batch) (Batch, error)
		GetBatchByID(ctx context.Context, id string) (Batch, error)
		QueryAllBatches(ctx context.Context) ([]Batch, error)
		QueryCourseBatches(ctx context.Context, courseID string) ([]Batch, error)
		UpdateBatch(ctx context.Context, b Batch) (Batch, error)
		DeleteBatchesByID(ctx context.Context, ids ...string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nb NewBatch) (Batch, error) {
	now := time.Now().UTC()
	b := Batch{
		CourseID:  nb.CourseID,
		Name:      nb.Name,
		Days:      nb.Days,
		ClassTime: nb.ClassTime,
		Status:    schedule.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return svc.repo.CreateBatch(ctx, b)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Batch, error) {
	return svc.repo.GetBatchByID(ctx, id)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Batch, error) {
	return svc.repo.QueryAllBatches(ctx)
}

func (svc *Service) QueryByCourse(ctx context.Context, courseID string) ([]Batch, error) {
	return svc.repo.QueryCourseBatches(ctx, courseID)
}

func (svc *Service) Update(ctx context.Context, id string, ub UpdateBatch) (Batch, error) {
	b := Batch{
		ID:        id,
		Name:      ub.Name,
		Days:      ub.Days,
		ClassTime: ub.ClassTime,
		Status:    schedule.Status(ub.Status),
		UpdatedAt: time.Now().UTC(),
	}
	return svc.repo.UpdateBatch(ctx, b)
}

func (svc *Service) Delete(ctx context.Context, ids ...string) error {
	return svc.repo.DeleteBatchesByID(ctx, ids...)
}
