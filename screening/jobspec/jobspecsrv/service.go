package jobspecsrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/sift/pkg/kernel"
	"github.com/Abraxas-365/sift/pkg/logx"
	"github.com/Abraxas-365/sift/screening/jobspec"
	"github.com/google/uuid"
)

// Service implements job spec use cases
type Service struct {
	repo jobspec.Repository
}

func New(repo jobspec.Repository) *Service {
	return &Service{repo: repo}
}

// CreateSpec creates a draft job spec
func (s *Service) CreateSpec(ctx context.Context, ownerID kernel.UserID, req jobspec.CreateSpecRequest) (*jobspec.JobSpec, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	spec := &jobspec.JobSpec{
		ID:              kernel.NewJobSpecID(uuid.NewString()),
		OwnerID:         ownerID,
		Title:           req.Title,
		Company:         req.Company,
		Description:     req.Description,
		RequiredSkills:  req.RequiredSkills,
		ExperienceLevel: req.ExperienceLevel,
		Education:       req.Education,
		Location:        req.Location,
		Status:          jobspec.StatusDraft,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, spec); err != nil {
		return nil, jobspec.ErrSpecCreateFailed().
			WithDetail("owner_id", ownerID).
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}

	logx.Infof("Job spec created: SpecID=%s, Owner=%s", spec.ID, ownerID)
	return spec, nil
}

// GetSpec fetches a spec; drafts and archived specs are owner-only,
// published specs are visible to everyone
func (s *Service) GetSpec(ctx context.Context, id kernel.JobSpecID, requesterID kernel.UserID) (*jobspec.JobSpec, error) {
	spec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, jobspec.ErrSpecNotFound().
			WithDetail("spec_id", id)
	}
	if !spec.IsPublished() && !spec.BelongsTo(requesterID) {
		return nil, jobspec.ErrOwnerMismatch().
			WithDetail("spec_id", id)
	}
	return spec, nil
}

// UpdateSpec applies a partial update to an owned, editable spec
func (s *Service) UpdateSpec(ctx context.Context, id kernel.JobSpecID, ownerID kernel.UserID, req jobspec.UpdateSpecRequest) (*jobspec.JobSpec, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	spec, err := s.ownedSpec(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if !spec.CanBeEdited() {
		return nil, jobspec.ErrSpecNotEditable().
			WithDetail("spec_id", id)
	}

	if req.Title != nil {
		spec.Title = *req.Title
	}
	if req.Company != nil {
		spec.Company = *req.Company
	}
	if req.Description != nil {
		spec.Description = *req.Description
	}
	if req.RequiredSkills != nil {
		spec.RequiredSkills = *req.RequiredSkills
	}
	if req.ExperienceLevel != nil {
		spec.ExperienceLevel = *req.ExperienceLevel
	}
	if req.Education != nil {
		spec.Education = *req.Education
	}
	if req.Location != nil {
		spec.Location = *req.Location
	}
	spec.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, spec); err != nil {
		return nil, jobspec.ErrSpecUpdateFailed().
			WithDetail("spec_id", id).
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}

	return spec, nil
}

// PublishSpec transitions a draft to published
func (s *Service) PublishSpec(ctx context.Context, id kernel.JobSpecID, ownerID kernel.UserID) (*jobspec.JobSpec, error) {
	spec, err := s.ownedSpec(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if err := spec.Publish(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, spec); err != nil {
		return nil, jobspec.ErrSpecUpdateFailed().
			WithDetail("spec_id", id).
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}

	logx.Infof("Job spec published: SpecID=%s", id)
	return spec, nil
}

// UnpublishSpec reverts a published spec to draft
func (s *Service) UnpublishSpec(ctx context.Context, id kernel.JobSpecID, ownerID kernel.UserID) (*jobspec.JobSpec, error) {
	spec, err := s.ownedSpec(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	spec.Unpublish()
	if err := s.repo.Update(ctx, spec); err != nil {
		return nil, jobspec.ErrSpecUpdateFailed().
			WithDetail("spec_id", id).
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}
	return spec, nil
}

// ArchiveSpec retires a spec
func (s *Service) ArchiveSpec(ctx context.Context, id kernel.JobSpecID, ownerID kernel.UserID) (*jobspec.JobSpec, error) {
	spec, err := s.ownedSpec(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if err := spec.Archive(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, spec); err != nil {
		return nil, jobspec.ErrSpecUpdateFailed().
			WithDetail("spec_id", id).
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}
	return spec, nil
}

// UnarchiveSpec returns an archived spec to draft
func (s *Service) UnarchiveSpec(ctx context.Context, id kernel.JobSpecID, ownerID kernel.UserID) (*jobspec.JobSpec, error) {
	spec, err := s.ownedSpec(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if err := spec.Unarchive(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, spec); err != nil {
		return nil, jobspec.ErrSpecUpdateFailed().
			WithDetail("spec_id", id).
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}
	return spec, nil
}

// DeleteSpec removes an owned spec
func (s *Service) DeleteSpec(ctx context.Context, id kernel.JobSpecID, ownerID kernel.UserID) error {
	if _, err := s.ownedSpec(ctx, id, ownerID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return jobspec.ErrSpecUpdateFailed().
			WithDetail("spec_id", id).
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}

	logx.Infof("Job spec deleted: SpecID=%s", id)
	return nil
}

// ListSpecs pages the owner's specs
func (s *Service) ListSpecs(ctx context.Context, ownerID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[jobspec.JobSpec], error) {
	page, err := s.repo.ListByOwner(ctx, ownerID, pagination)
	if err != nil {
		return nil, jobspec.ErrRegistry.NewWithCause(jobspec.CodeSpecNotFound, err).
			WithDetail("owner_id", ownerID)
	}
	return page, nil
}

// ListPublishedSpecs pages specs visible to every user
func (s *Service) ListPublishedSpecs(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[jobspec.JobSpec], error) {
	page, err := s.repo.ListPublished(ctx, pagination)
	if err != nil {
		return nil, jobspec.ErrRegistry.NewWithCause(jobspec.CodeSpecNotFound, err)
	}
	return page, nil
}

func (s *Service) ownedSpec(ctx context.Context, id kernel.JobSpecID, ownerID kernel.UserID) (*jobspec.JobSpec, error) {
	spec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, jobspec.ErrSpecNotFound().
			WithDetail("spec_id", id)
	}
	if !spec.BelongsTo(ownerID) {
		return nil, jobspec.ErrOwnerMismatch().
			WithDetail("spec_id", id)
	}
	return spec, nil
}
