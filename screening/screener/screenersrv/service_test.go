package screenersrv

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Abraxas-365/sift/pkg/kernel"
	"github.com/Abraxas-365/sift/screening/parser"
	"github.com/Abraxas-365/sift/screening/screener"
	"github.com/Abraxas-365/sift/screening/scoring"
	"github.com/Abraxas-365/sift/screening/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resumeText = `Jane Doe
jane.doe@example.com
+91 9876543210

SKILLS
Python (Advanced), SQL, Docker

EXPERIENCE
Senior Software Engineer at Initech
2019-2023
Built data pipelines.

EDUCATION
Bachelor of Technology in Computer Science, IIT Delhi, 2019
`

// ============================================================================
// Fakes
// ============================================================================

type fakeRepo struct {
	store     map[kernel.ScreeningID]*screener.Screening
	createErr error
	updateErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{store: make(map[kernel.ScreeningID]*screener.Screening)}
}

func (r *fakeRepo) Create(_ context.Context, s *screener.Screening) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *s
	r.store[s.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id kernel.ScreeningID) (*screener.Screening, error) {
	s, ok := r.store[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *s
	return &cp, nil
}

func (r *fakeRepo) Update(_ context.Context, s *screener.Screening) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	cp := *s
	r.store[s.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id kernel.ScreeningID) error {
	delete(r.store, id)
	return nil
}

func (r *fakeRepo) ListByRequester(_ context.Context, requesterID kernel.UserID, p kernel.PaginationOptions) (*kernel.Paginated[screener.Screening], error) {
	var items []screener.Screening
	for _, s := range r.store {
		if s.RequesterID == requesterID {
			items = append(items, *s)
		}
	}
	n := p.Normalize()
	return &kernel.Paginated[screener.Screening]{
		Items: items,
		Page:  kernel.PageInfo{Number: n.Page, Size: n.PageSize, Total: len(items)},
	}, nil
}

func (r *fakeRepo) ListByBatch(_ context.Context, batchID kernel.BatchID) ([]screener.Screening, error) {
	var items []screener.Screening
	for _, s := range r.store {
		if s.BatchID != nil && *s.BatchID == batchID {
			items = append(items, *s)
		}
	}
	return items, nil
}

type fakeQueue struct {
	ready      []*screener.ScreeningJob
	delayed    []*screener.ScreeningJob
	enqueueErr error
}

func (q *fakeQueue) Enqueue(_ context.Context, job *screener.ScreeningJob) error {
	if q.enqueueErr != nil {
		return q.enqueueErr
	}
	q.ready = append(q.ready, job)
	return nil
}

func (q *fakeQueue) Dequeue(_ context.Context, _ time.Duration) (*screener.ScreeningJob, error) {
	if len(q.ready) == 0 {
		return nil, nil
	}
	job := q.ready[0]
	q.ready = q.ready[1:]
	return job, nil
}

func (q *fakeQueue) EnqueueDelayed(_ context.Context, job *screener.ScreeningJob, _ time.Duration) error {
	if q.enqueueErr != nil {
		return q.enqueueErr
	}
	q.delayed = append(q.delayed, job)
	return nil
}

func (q *fakeQueue) MoveDelayedToReady(_ context.Context) (int, error) {
	moved := len(q.delayed)
	q.ready = append(q.ready, q.delayed...)
	q.delayed = nil
	return moved, nil
}

func (q *fakeQueue) QueueSize(_ context.Context) (int64, error)   { return int64(len(q.ready)), nil }
func (q *fakeQueue) DelayedSize(_ context.Context) (int64, error) { return int64(len(q.delayed)), nil }
func (q *fakeQueue) Ping(_ context.Context) error                 { return nil }

type fakeFileStore struct {
	files map[string][]byte
	err   error
}

func (f *fakeFileStore) ReadFile(_ context.Context, path string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, ok := f.files[path]
	if !ok {
		return nil, errors.New("file not found")
	}
	return data, nil
}

func (f *fakeFileStore) WriteFile(_ context.Context, path string, data []byte, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.files == nil {
		f.files = make(map[string][]byte)
	}
	f.files[path] = data
	return path, nil
}

func (f *fakeFileStore) DeleteFile(_ context.Context, path string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.files, path)
	return nil
}

func (f *fakeFileStore) Exists(_ context.Context, path string) (bool, error) {
	_, ok := f.files[path]
	return ok, nil
}

func newService(repo *fakeRepo, queue *fakeQueue, files *fakeFileStore) *Service {
	return New(repo, queue, files,
		parser.New(taxonomy.Default()),
		scoring.NewEngine())
}

// ============================================================================
// Synchronous Operations
// ============================================================================

func TestParseText(t *testing.T) {
	svc := newService(newFakeRepo(), &fakeQueue{}, &fakeFileStore{})

	resp, err := svc.ParseText(context.Background(), screener.ParseTextRequest{Text: resumeText})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", resp.Parsed.PersonalInfo.Name)
	assert.Equal(t, "jane.doe@example.com", resp.Parsed.PersonalInfo.Email)
}

func TestParseText_EmptyTextRejected(t *testing.T) {
	svc := newService(newFakeRepo(), &fakeQueue{}, &fakeFileStore{})

	_, err := svc.ParseText(context.Background(), screener.ParseTextRequest{Text: "   "})
	require.Error(t, err)
}

func TestAnalyzeText(t *testing.T) {
	svc := newService(newFakeRepo(), &fakeQueue{}, &fakeFileStore{})

	resp, err := svc.AnalyzeText(context.Background(), screener.AnalyzeTextRequest{
		Text: resumeText,
		Requirements: scoring.JobRequirements{
			Title:          "Data Engineer",
			RequiredSkills: []string{"Python", "SQL"},
			Education:      "bachelor",
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.Analysis.MatchScore.IsValid())
	assert.Empty(t, resp.Analysis.Skills.Missing)
	assert.NotEmpty(t, resp.Analysis.Strengths)
}

func TestBatchScreen_ResultsKeepRequestOrder(t *testing.T) {
	svc := newService(newFakeRepo(), &fakeQueue{}, &fakeFileStore{})

	req := screener.BatchScreenRequest{
		Items: []screener.BatchItem{
			{Label: "first", Text: resumeText},
			{Label: "second", Text: ""},
			{Label: "third", Text: resumeText},
		},
		Requirements: scoring.JobRequirements{RequiredSkills: []string{"Python"}},
	}

	resp, err := svc.BatchScreen(context.Background(), kernel.NewUserID("user-1"), req)
	require.NoError(t, err)
	require.Len(t, resp.Results, 3)

	assert.Equal(t, "first", resp.Results[0].Label)
	assert.Equal(t, 0, resp.Results[0].Index)
	require.NotNil(t, resp.Results[0].Analysis)

	// empty item fails in place without disturbing the others
	assert.Equal(t, 1, resp.Results[1].Index)
	assert.NotEmpty(t, resp.Results[1].Error)
	assert.Nil(t, resp.Results[1].Analysis)

	assert.Equal(t, 2, resp.Results[2].Index)
	require.NotNil(t, resp.Results[2].Analysis)
	assert.False(t, resp.BatchID.IsEmpty())
}

func TestBatchScreen_EmptyBatchRejected(t *testing.T) {
	svc := newService(newFakeRepo(), &fakeQueue{}, &fakeFileStore{})

	_, err := svc.BatchScreen(context.Background(), kernel.NewUserID("user-1"), screener.BatchScreenRequest{})
	require.Error(t, err)
}

func TestBatchScreen_PersistsBatchRecords(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, &fakeQueue{}, &fakeFileStore{})
	requester := kernel.NewUserID("user-1")

	resp, err := svc.BatchScreen(context.Background(), requester, screener.BatchScreenRequest{
		Items: []screener.BatchItem{
			{Label: "good", Text: resumeText},
			{Label: "bad", Text: ""},
		},
		Requirements: scoring.JobRequirements{RequiredSkills: []string{"Python"}},
	})
	require.NoError(t, err)

	// every result references its stored record
	for _, r := range resp.Results {
		assert.False(t, r.ScreeningID.IsEmpty())
	}

	stored, err := svc.ListBatch(context.Background(), resp.BatchID, requester)
	require.NoError(t, err)
	require.Len(t, stored, 2)

	byStatus := make(map[screener.ScreeningStatus]int)
	for _, s := range stored {
		require.NotNil(t, s.BatchID)
		assert.Equal(t, resp.BatchID, *s.BatchID)
		assert.Equal(t, requester, s.RequesterID)
		byStatus[s.Status]++
	}
	assert.Equal(t, 1, byStatus[screener.StatusCompleted])
	assert.Equal(t, 1, byStatus[screener.StatusFailed])

	_, err = svc.ListBatch(context.Background(), resp.BatchID, kernel.NewUserID("intruder"))
	require.Error(t, err)
}

// ============================================================================
// Async Operations
// ============================================================================

func TestScreenFile_QueuesPendingScreening(t *testing.T) {
	repo := newFakeRepo()
	queue := &fakeQueue{}
	svc := newService(repo, queue, &fakeFileStore{})

	resp, err := svc.ScreenFile(context.Background(), screener.ScreenFileRequest{
		RequesterID: kernel.NewUserID("user-1"),
		FilePath:    "screenings/user-1/resume.txt",
		FileName:    "resume.txt",
		ContentType: "text/plain",
	})
	require.NoError(t, err)

	assert.Equal(t, screener.StatusPending, resp.Status)
	require.Len(t, queue.ready, 1)
	assert.Equal(t, resp.ScreeningID, queue.ready[0].ScreeningID)

	stored, err := repo.GetByID(context.Background(), resp.ScreeningID)
	require.NoError(t, err)
	assert.Equal(t, screener.StatusPending, stored.Status)
	assert.Equal(t, DefaultMaxAttempts, stored.MaxAttempts)
}

func TestScreenFile_EnqueueFailureMarksFailed(t *testing.T) {
	repo := newFakeRepo()
	queue := &fakeQueue{enqueueErr: errors.New("redis down")}
	svc := newService(repo, queue, &fakeFileStore{})

	_, err := svc.ScreenFile(context.Background(), screener.ScreenFileRequest{
		RequesterID: kernel.NewUserID("user-1"),
		FilePath:    "screenings/user-1/resume.txt",
		FileName:    "resume.txt",
		ContentType: "text/plain",
	})
	require.Error(t, err)

	// the record exists but was marked failed
	require.Len(t, repo.store, 1)
	for _, s := range repo.store {
		assert.Equal(t, screener.StatusFailed, s.Status)
	}
}

func TestProcessScreeningJob_Completes(t *testing.T) {
	repo := newFakeRepo()
	queue := &fakeQueue{}
	files := &fakeFileStore{files: map[string][]byte{
		"screenings/user-1/resume.txt": []byte(resumeText),
	}}
	svc := newService(repo, queue, files)

	resp, err := svc.ScreenFile(context.Background(), screener.ScreenFileRequest{
		RequesterID: kernel.NewUserID("user-1"),
		FilePath:    "screenings/user-1/resume.txt",
		FileName:    "resume.txt",
		ContentType: "text/plain",
		Requirements: scoring.JobRequirements{
			RequiredSkills: []string{"Python"},
		},
	})
	require.NoError(t, err)

	job, err := queue.Dequeue(context.Background(), 0)
	require.NoError(t, err)
	require.NotNil(t, job)

	require.NoError(t, svc.ProcessScreeningJob(context.Background(), job))

	stored, err := repo.GetByID(context.Background(), resp.ScreeningID)
	require.NoError(t, err)
	assert.Equal(t, screener.StatusCompleted, stored.Status)
	require.NotNil(t, stored.Parsed)
	require.NotNil(t, stored.Analysis)
	assert.Equal(t, "Jane Doe", stored.Parsed.PersonalInfo.Name)
	assert.True(t, stored.Analysis.MatchScore.IsValid())
	assert.NotNil(t, stored.CompletedAt)
}

func TestProcessScreeningJob_FileErrorSchedulesRetry(t *testing.T) {
	repo := newFakeRepo()
	queue := &fakeQueue{}
	files := &fakeFileStore{err: errors.New("s3 unavailable")}
	svc := newService(repo, queue, files)

	resp, err := svc.ScreenFile(context.Background(), screener.ScreenFileRequest{
		RequesterID: kernel.NewUserID("user-1"),
		FilePath:    "screenings/user-1/resume.txt",
		FileName:    "resume.txt",
		ContentType: "text/plain",
	})
	require.NoError(t, err)

	job, _ := queue.Dequeue(context.Background(), 0)
	require.Error(t, svc.ProcessScreeningJob(context.Background(), job))

	stored, err := repo.GetByID(context.Background(), resp.ScreeningID)
	require.NoError(t, err)
	assert.Equal(t, screener.StatusPending, stored.Status)
	assert.Equal(t, 1, stored.AttemptCount)
	assert.NotNil(t, stored.NextRetryAt)
	require.Len(t, queue.delayed, 1)
}

func TestProcessScreeningJob_ExhaustsRetries(t *testing.T) {
	repo := newFakeRepo()
	queue := &fakeQueue{}
	files := &fakeFileStore{err: errors.New("s3 unavailable")}
	svc := newService(repo, queue, files)

	resp, err := svc.ScreenFile(context.Background(), screener.ScreenFileRequest{
		RequesterID: kernel.NewUserID("user-1"),
		FilePath:    "screenings/user-1/resume.txt",
		FileName:    "resume.txt",
		ContentType: "text/plain",
	})
	require.NoError(t, err)

	// drive the job through every attempt
	job, _ := queue.Dequeue(context.Background(), 0)
	for i := 0; i < DefaultMaxAttempts; i++ {
		require.Error(t, svc.ProcessScreeningJob(context.Background(), job))
		queue.MoveDelayedToReady(context.Background())
		job, _ = queue.Dequeue(context.Background(), 0)
		if job == nil {
			break
		}
	}

	stored, err := repo.GetByID(context.Background(), resp.ScreeningID)
	require.NoError(t, err)
	assert.Equal(t, screener.StatusFailed, stored.Status)
	assert.Equal(t, DefaultMaxAttempts, stored.AttemptCount)
	assert.NotNil(t, stored.FailedAt)
}

func TestProcessScreeningJob_SkipsTerminalScreening(t *testing.T) {
	repo := newFakeRepo()
	queue := &fakeQueue{}
	svc := newService(repo, queue, &fakeFileStore{})

	screening := &screener.Screening{
		ID:          kernel.NewScreeningID("done"),
		RequesterID: kernel.NewUserID("user-1"),
		Status:      screener.StatusCompleted,
		MaxAttempts: DefaultMaxAttempts,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), screening))

	err := svc.ProcessScreeningJob(context.Background(), &screener.ScreeningJob{ScreeningID: screening.ID})
	require.NoError(t, err)
}

// ============================================================================
// Queries
// ============================================================================

func TestGetScreening_OwnershipEnforced(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, &fakeQueue{}, &fakeFileStore{})

	screening := &screener.Screening{
		ID:          kernel.NewScreeningID("scr-1"),
		RequesterID: kernel.NewUserID("owner"),
		Status:      screener.StatusCompleted,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), screening))

	_, err := svc.GetScreening(context.Background(), screening.ID, kernel.NewUserID("owner"))
	require.NoError(t, err)

	_, err = svc.GetScreening(context.Background(), screening.ID, kernel.NewUserID("intruder"))
	require.Error(t, err)
}

func TestDeleteScreening_RemovesStoredFile(t *testing.T) {
	repo := newFakeRepo()
	files := &fakeFileStore{files: map[string][]byte{
		"screenings/u/r.txt": []byte(resumeText),
	}}
	svc := newService(repo, &fakeQueue{}, files)
	requester := kernel.NewUserID("u")

	resp, err := svc.ScreenFile(context.Background(), screener.ScreenFileRequest{
		RequesterID: requester,
		FilePath:    "screenings/u/r.txt",
		FileName:    "r.txt",
		ContentType: "text/plain",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteScreening(context.Background(), resp.ScreeningID, requester))

	_, err = repo.GetByID(context.Background(), resp.ScreeningID)
	require.Error(t, err)

	gone, err := files.Exists(context.Background(), "screenings/u/r.txt")
	require.NoError(t, err)
	assert.False(t, gone)
}

func TestGetStatus_CompletedIncludesAnalysis(t *testing.T) {
	repo := newFakeRepo()
	queue := &fakeQueue{}
	files := &fakeFileStore{files: map[string][]byte{
		"screenings/u/r.txt": []byte(resumeText),
	}}
	svc := newService(repo, queue, files)

	resp, err := svc.ScreenFile(context.Background(), screener.ScreenFileRequest{
		RequesterID: kernel.NewUserID("u"),
		FilePath:    "screenings/u/r.txt",
		FileName:    "r.txt",
		ContentType: "text/plain",
	})
	require.NoError(t, err)

	job, _ := queue.Dequeue(context.Background(), 0)
	require.NoError(t, svc.ProcessScreeningJob(context.Background(), job))

	status, err := svc.GetStatus(context.Background(), resp.ScreeningID, kernel.NewUserID("u"))
	require.NoError(t, err)
	assert.Equal(t, screener.StatusCompleted, status.Status)
	require.NotNil(t, status.Analysis)
}
