package profilesrv

import (
	"context"
	"errors"
	"testing"

	"github.com/Abraxas-365/sift/pkg/kernel"
	"github.com/Abraxas-365/sift/screening/objective"
	"github.com/Abraxas-365/sift/screening/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	store map[kernel.ProfileID]*profile.Profile
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{store: make(map[kernel.ProfileID]*profile.Profile)}
}

func (r *fakeRepo) Create(_ context.Context, p *profile.Profile) error {
	cp := *p
	r.store[p.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id kernel.ProfileID) (*profile.Profile, error) {
	p, ok := r.store[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *p
	return &cp, nil
}

func (r *fakeRepo) GetByOwner(_ context.Context, ownerID kernel.UserID) (*profile.Profile, error) {
	for _, p := range r.store {
		if p.OwnerID == ownerID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeRepo) Update(_ context.Context, p *profile.Profile) error {
	cp := *p
	r.store[p.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id kernel.ProfileID) error {
	delete(r.store, id)
	return nil
}

var owner = kernel.NewUserID("owner-1")

func newService() (*Service, *fakeRepo) {
	repo := newFakeRepo()
	return New(repo, objective.NewGenerator()), repo
}

func createProfile(t *testing.T, svc *Service) *profile.Profile {
	t.Helper()
	p, err := svc.CreateProfile(context.Background(), owner, profile.CreateProfileRequest{
		FullName:        "Jane Doe",
		TechnicalSkills: []string{"Python", "TensorFlow"},
		Experience: []profile.ExperienceEntry{
			{Title: "ML Engineer", Description: "trained deep learning models"},
		},
	})
	require.NoError(t, err)
	return p
}

func TestCreateProfile(t *testing.T) {
	svc, _ := newService()

	p := createProfile(t, svc)
	assert.Equal(t, "Jane Doe", p.FullName)
	assert.False(t, p.ID.IsEmpty())
}

func TestCreateProfile_OnePerUser(t *testing.T) {
	svc, _ := newService()
	createProfile(t, svc)

	_, err := svc.CreateProfile(context.Background(), owner, profile.CreateProfileRequest{
		FullName: "Jane Again",
	})
	require.Error(t, err)
}

func TestCreateProfile_RequiresFullName(t *testing.T) {
	svc, _ := newService()

	_, err := svc.CreateProfile(context.Background(), owner, profile.CreateProfileRequest{})
	require.Error(t, err)
}

func TestUpdateProfile_Partial(t *testing.T) {
	svc, _ := newService()
	p := createProfile(t, svc)

	location := "Bengaluru"
	updated, err := svc.UpdateProfile(context.Background(), p.ID, owner, profile.UpdateProfileRequest{
		Location: &location,
	})
	require.NoError(t, err)
	assert.Equal(t, "Bengaluru", updated.Location)
	assert.Equal(t, "Jane Doe", updated.FullName)
}

func TestOwnershipEnforced(t *testing.T) {
	svc, _ := newService()
	p := createProfile(t, svc)

	_, err := svc.GetProfile(context.Background(), p.ID, kernel.NewUserID("intruder"))
	require.Error(t, err)

	err = svc.DeleteProfile(context.Background(), p.ID, kernel.NewUserID("intruder"))
	require.Error(t, err)
}

func TestGenerateObjective(t *testing.T) {
	svc, _ := newService()
	p := createProfile(t, svc)

	resp, err := svc.GenerateObjective(context.Background(), p.ID, owner, profile.GenerateObjectiveRequest{
		JobTitle: "Machine Learning Engineer",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Objective)
	assert.Equal(t, string(objective.FieldAIML), resp.Field)
	assert.False(t, resp.Saved)
	assert.Contains(t, resp.Objective, "Python")
}

func TestGenerateObjective_SavePersists(t *testing.T) {
	svc, repo := newService()
	p := createProfile(t, svc)

	resp, err := svc.GenerateObjective(context.Background(), p.ID, owner, profile.GenerateObjectiveRequest{
		JobTitle: "Machine Learning Engineer",
		Save:     true,
	})
	require.NoError(t, err)
	assert.True(t, resp.Saved)

	stored, err := repo.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.Objective, stored.CareerObjective)
}

func TestTrendingSkills(t *testing.T) {
	svc, _ := newService()

	all, err := svc.TrendingSkills(context.Background(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, all)

	devops, err := svc.TrendingSkills(context.Background(), "devops-cloud")
	require.NoError(t, err)
	assert.NotEmpty(t, devops)
	assert.Less(t, len(devops), len(all))

	_, err = svc.TrendingSkills(context.Background(), "cooking")
	require.Error(t, err)
}
