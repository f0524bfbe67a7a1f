package jobspec

import (
	"context"

	"github.com/Abraxas-365/sift/pkg/kernel"
)

// Repository persists job specs
type Repository interface {
	Create(ctx context.Context, spec *JobSpec) error
	GetByID(ctx context.Context, id kernel.JobSpecID) (*JobSpec, error)
	Update(ctx context.Context, spec *JobSpec) error
	Delete(ctx context.Context, id kernel.JobSpecID) error
	ListByOwner(ctx context.Context, ownerID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[JobSpec], error)
	ListPublished(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[JobSpec], error)
}
