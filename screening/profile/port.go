package profile

import (
	"context"

	"github.com/Abraxas-365/sift/pkg/kernel"
)

// Repository persists candidate profiles
type Repository interface {
	Create(ctx context.Context, profile *Profile) error
	GetByID(ctx context.Context, id kernel.ProfileID) (*Profile, error)
	GetByOwner(ctx context.Context, ownerID kernel.UserID) (*Profile, error)
	Update(ctx context.Context, profile *Profile) error
	Delete(ctx context.Context, id kernel.ProfileID) error
}
