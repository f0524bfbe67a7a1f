package jobspecsrv

import (
	"context"
	"errors"
	"testing"

	"github.com/Abraxas-365/sift/pkg/kernel"
	"github.com/Abraxas-365/sift/screening/jobspec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	store map[kernel.JobSpecID]*jobspec.JobSpec
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{store: make(map[kernel.JobSpecID]*jobspec.JobSpec)}
}

func (r *fakeRepo) Create(_ context.Context, spec *jobspec.JobSpec) error {
	cp := *spec
	r.store[spec.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id kernel.JobSpecID) (*jobspec.JobSpec, error) {
	spec, ok := r.store[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *spec
	return &cp, nil
}

func (r *fakeRepo) Update(_ context.Context, spec *jobspec.JobSpec) error {
	cp := *spec
	r.store[spec.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id kernel.JobSpecID) error {
	delete(r.store, id)
	return nil
}

func (r *fakeRepo) ListByOwner(_ context.Context, ownerID kernel.UserID, p kernel.PaginationOptions) (*kernel.Paginated[jobspec.JobSpec], error) {
	var items []jobspec.JobSpec
	for _, s := range r.store {
		if s.OwnerID == ownerID {
			items = append(items, *s)
		}
	}
	n := p.Normalize()
	return &kernel.Paginated[jobspec.JobSpec]{
		Items: items,
		Page:  kernel.PageInfo{Number: n.Page, Size: n.PageSize, Total: len(items)},
	}, nil
}

func (r *fakeRepo) ListPublished(_ context.Context, p kernel.PaginationOptions) (*kernel.Paginated[jobspec.JobSpec], error) {
	var items []jobspec.JobSpec
	for _, s := range r.store {
		if s.IsPublished() {
			items = append(items, *s)
		}
	}
	n := p.Normalize()
	return &kernel.Paginated[jobspec.JobSpec]{
		Items: items,
		Page:  kernel.PageInfo{Number: n.Page, Size: n.PageSize, Total: len(items)},
	}, nil
}

var owner = kernel.NewUserID("owner-1")

func createSpec(t *testing.T, svc *Service) *jobspec.JobSpec {
	t.Helper()
	spec, err := svc.CreateSpec(context.Background(), owner, jobspec.CreateSpecRequest{
		Title:           "Backend Engineer",
		Company:         "Initech",
		RequiredSkills:  []string{"Go", "PostgreSQL"},
		ExperienceLevel: "mid",
		Education:       "bachelor",
	})
	require.NoError(t, err)
	return spec
}

func TestCreateSpec(t *testing.T) {
	svc := New(newFakeRepo())

	spec := createSpec(t, svc)
	assert.Equal(t, jobspec.StatusDraft, spec.Status)
	assert.Equal(t, owner, spec.OwnerID)
	assert.False(t, spec.ID.IsEmpty())
}

func TestCreateSpec_RequiresTitle(t *testing.T) {
	svc := New(newFakeRepo())

	_, err := svc.CreateSpec(context.Background(), owner, jobspec.CreateSpecRequest{})
	require.Error(t, err)
}

func TestCreateSpec_RejectsUnknownExperienceLevel(t *testing.T) {
	svc := New(newFakeRepo())

	_, err := svc.CreateSpec(context.Background(), owner, jobspec.CreateSpecRequest{
		Title:           "Backend Engineer",
		ExperienceLevel: "wizard",
	})
	require.Error(t, err)
}

func TestPublishLifecycle(t *testing.T) {
	svc := New(newFakeRepo())
	spec := createSpec(t, svc)

	published, err := svc.PublishSpec(context.Background(), spec.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, jobspec.StatusPublished, published.Status)
	assert.NotNil(t, published.PublishedAt)

	// publishing twice is rejected
	_, err = svc.PublishSpec(context.Background(), spec.ID, owner)
	require.Error(t, err)

	reverted, err := svc.UnpublishSpec(context.Background(), spec.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, jobspec.StatusDraft, reverted.Status)
}

func TestArchiveBlocksEditing(t *testing.T) {
	svc := New(newFakeRepo())
	spec := createSpec(t, svc)

	archived, err := svc.ArchiveSpec(context.Background(), spec.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, jobspec.StatusArchived, archived.Status)

	title := "New Title"
	_, err = svc.UpdateSpec(context.Background(), spec.ID, owner, jobspec.UpdateSpecRequest{Title: &title})
	require.Error(t, err)
}

func TestUnarchiveRestoresDraft(t *testing.T) {
	svc := New(newFakeRepo())
	spec := createSpec(t, svc)

	// only archived specs can be unarchived
	_, err := svc.UnarchiveSpec(context.Background(), spec.ID, owner)
	require.Error(t, err)

	_, err = svc.ArchiveSpec(context.Background(), spec.ID, owner)
	require.NoError(t, err)

	restored, err := svc.UnarchiveSpec(context.Background(), spec.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, jobspec.StatusDraft, restored.Status)
	assert.Nil(t, restored.ArchivedAt)

	// editing works again
	title := "New Title"
	updated, err := svc.UpdateSpec(context.Background(), spec.ID, owner, jobspec.UpdateSpecRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
}

func TestUpdateSpec_PartialFields(t *testing.T) {
	svc := New(newFakeRepo())
	spec := createSpec(t, svc)

	skills := []string{"Go", "Kubernetes"}
	updated, err := svc.UpdateSpec(context.Background(), spec.ID, owner, jobspec.UpdateSpecRequest{
		RequiredSkills: &skills,
	})
	require.NoError(t, err)

	assert.Equal(t, skills, updated.RequiredSkills)
	// untouched fields survive
	assert.Equal(t, "Backend Engineer", updated.Title)
	assert.Equal(t, "Initech", updated.Company)
}

func TestOwnershipEnforced(t *testing.T) {
	svc := New(newFakeRepo())
	spec := createSpec(t, svc)
	intruder := kernel.NewUserID("intruder")

	_, err := svc.GetSpec(context.Background(), spec.ID, intruder)
	require.Error(t, err, "drafts are owner-only")

	_, err = svc.PublishSpec(context.Background(), spec.ID, intruder)
	require.Error(t, err)

	// once published anyone can read
	_, err = svc.PublishSpec(context.Background(), spec.ID, owner)
	require.NoError(t, err)
	got, err := svc.GetSpec(context.Background(), spec.ID, intruder)
	require.NoError(t, err)
	assert.Equal(t, spec.ID, got.ID)
}

func TestRequirementsConversion(t *testing.T) {
	svc := New(newFakeRepo())
	spec := createSpec(t, svc)

	req := spec.Requirements()
	assert.Equal(t, spec.Title, req.Title)
	assert.Equal(t, spec.RequiredSkills, req.RequiredSkills)
	assert.Equal(t, "mid", req.ExperienceLevel)
	assert.Equal(t, "bachelor", req.Education)
}
