package profilesrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/sift/pkg/kernel"
	"github.com/Abraxas-365/sift/pkg/logx"
	"github.com/Abraxas-365/sift/screening/objective"
	"github.com/Abraxas-365/sift/screening/profile"
	"github.com/google/uuid"
)

// Service implements candidate profile use cases, including career
// objective generation
type Service struct {
	repo      profile.Repository
	generator *objective.Generator
}

func New(repo profile.Repository, generator *objective.Generator) *Service {
	return &Service{
		repo:      repo,
		generator: generator,
	}
}

// CreateProfile creates the requester's profile; one per user
func (s *Service) CreateProfile(ctx context.Context, ownerID kernel.UserID, req profile.CreateProfileRequest) (*profile.Profile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetByOwner(ctx, ownerID); err == nil && existing != nil {
		return nil, profile.ErrProfileAlreadyExists().
			WithDetail("owner_id", ownerID).
			WithDetail("profile_id", existing.ID)
	}

	now := time.Now()
	p := &profile.Profile{
		ID:                  kernel.NewProfileID(uuid.NewString()),
		OwnerID:             ownerID,
		FullName:            req.FullName,
		Email:               req.Email,
		Phone:               req.Phone,
		Location:            req.Location,
		LinkedIn:            req.LinkedIn,
		GitHub:              req.GitHub,
		CareerObjective:     req.CareerObjective,
		ProfessionalSummary: req.ProfessionalSummary,
		TechnicalSkills:     req.TechnicalSkills,
		SoftSkills:          req.SoftSkills,
		Education:           req.Education,
		Experience:          req.Experience,
		Projects:            req.Projects,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, profile.ErrProfileCreateFailed().
			WithDetail("owner_id", ownerID).
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}

	logx.Infof("Profile created: ProfileID=%s, Owner=%s", p.ID, ownerID)
	return p, nil
}

// GetProfile fetches an owned profile by ID
func (s *Service) GetProfile(ctx context.Context, id kernel.ProfileID, requesterID kernel.UserID) (*profile.Profile, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, profile.ErrProfileNotFound().
			WithDetail("profile_id", id)
	}
	if !p.BelongsTo(requesterID) {
		return nil, profile.ErrOwnerMismatch().
			WithDetail("profile_id", id)
	}
	return p, nil
}

// GetOwnProfile fetches the requester's profile
func (s *Service) GetOwnProfile(ctx context.Context, ownerID kernel.UserID) (*profile.Profile, error) {
	p, err := s.repo.GetByOwner(ctx, ownerID)
	if err != nil || p == nil {
		return nil, profile.ErrProfileNotFound().
			WithDetail("owner_id", ownerID)
	}
	return p, nil
}

// UpdateProfile applies a partial update
func (s *Service) UpdateProfile(ctx context.Context, id kernel.ProfileID, ownerID kernel.UserID, req profile.UpdateProfileRequest) (*profile.Profile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.GetProfile(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		p.FullName = *req.FullName
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.Phone != nil {
		p.Phone = *req.Phone
	}
	if req.Location != nil {
		p.Location = *req.Location
	}
	if req.LinkedIn != nil {
		p.LinkedIn = *req.LinkedIn
	}
	if req.GitHub != nil {
		p.GitHub = *req.GitHub
	}
	if req.CareerObjective != nil {
		p.CareerObjective = *req.CareerObjective
	}
	if req.ProfessionalSummary != nil {
		p.ProfessionalSummary = *req.ProfessionalSummary
	}
	if req.TechnicalSkills != nil {
		p.TechnicalSkills = *req.TechnicalSkills
	}
	if req.SoftSkills != nil {
		p.SoftSkills = *req.SoftSkills
	}
	if req.Education != nil {
		p.Education = *req.Education
	}
	if req.Experience != nil {
		p.Experience = *req.Experience
	}
	if req.Projects != nil {
		p.Projects = *req.Projects
	}
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, profile.ErrProfileUpdateFailed().
			WithDetail("profile_id", id).
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}

	return p, nil
}

// DeleteProfile removes an owned profile
func (s *Service) DeleteProfile(ctx context.Context, id kernel.ProfileID, ownerID kernel.UserID) error {
	if _, err := s.GetProfile(ctx, id, ownerID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return profile.ErrProfileUpdateFailed().
			WithDetail("profile_id", id).
			WithDetails(map[string]any{
				"error": err.Error(),
			})
	}
	logx.Infof("Profile deleted: ProfileID=%s", id)
	return nil
}

// GenerateObjective runs the career objective generator against an
// owned profile, optionally persisting the result
func (s *Service) GenerateObjective(ctx context.Context, id kernel.ProfileID, ownerID kernel.UserID, req profile.GenerateObjectiveRequest) (*profile.GenerateObjectiveResponse, error) {
	p, err := s.GetProfile(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	input := p.GeneratorInput()
	text := s.generator.Generate(input, req.JobTitle, req.JobDescription)
	field := s.generator.DetectField(input, req.JobTitle, req.JobDescription)

	resp := &profile.GenerateObjectiveResponse{
		Objective: text,
		Field:     string(field),
	}

	if req.Save {
		p.CareerObjective = text
		p.UpdatedAt = time.Now()
		if err := s.repo.Update(ctx, p); err != nil {
			return nil, profile.ErrProfileUpdateFailed().
				WithDetail("profile_id", id).
				WithDetails(map[string]any{
					"error": err.Error(),
				})
		}
		resp.Saved = true
	}

	return resp, nil
}

// TrendingSkills returns the trend table for a field, or every skill
// when field is empty
func (s *Service) TrendingSkills(ctx context.Context, fieldName string) ([]objective.TrendingSkill, error) {
	if fieldName == "" {
		return objective.AllTrendingSkills(), nil
	}

	field, ok := objective.ParseField(fieldName)
	if !ok {
		return nil, profile.ErrInvalidField().
			WithDetail("field", fieldName)
	}
	return objective.TrendingSkillsForField(field), nil
}
