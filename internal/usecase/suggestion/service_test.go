package suggestion

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/saiydurnetcom/nexuspm/internal/domain/entities"
	"github.com/saiydurnetcom/nexuspm/internal/domain/repositories"
	uerrors "github.com/saiydurnetcom/nexuspm/internal/usecase/errors"
	"github.com/saiydurnetcom/nexuspm/pkg/ai"
	"github.com/saiydurnetcom/nexuspm/pkg/config"
)

// In-memory repository stubs

type stubSuggestionRepo struct {
	byID map[uuid.UUID]*entities.Suggestion
}

func newStubSuggestionRepo() *stubSuggestionRepo {
	return &stubSuggestionRepo{byID: make(map[uuid.UUID]*entities.Suggestion)}
}

func (r *stubSuggestionRepo) CreateBatch(_ context.Context, suggestions []*entities.Suggestion) error {
	for _, s := range suggestions {
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		s.CreatedAt = time.Now()
		r.byID[s.ID] = s
	}
	return nil
}

func (r *stubSuggestionRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Suggestion, error) {
	return r.byID[id], nil
}

func (r *stubSuggestionRepo) FindByMeetingID(_ context.Context, meetingID uuid.UUID) ([]*entities.Suggestion, error) {
	var out []*entities.Suggestion
	for _, s := range r.byID {
		if s.MeetingID == meetingID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubSuggestionRepo) FindPendingByOwner(_ context.Context, ownerID uuid.UUID) ([]*entities.Suggestion, error) {
	var out []*entities.Suggestion
	for _, s := range r.byID {
		if s.IsPending() && s.Meeting != nil && s.Meeting.IsOwnedBy(ownerID) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubSuggestionRepo) Update(_ context.Context, s *entities.Suggestion) error {
	r.byID[s.ID] = s
	return nil
}

type stubMeetingRepo struct {
	byID map[uuid.UUID]*entities.Meeting
}

func (r *stubMeetingRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Meeting, error) {
	return r.byID[id], nil
}

type stubTaskRepo struct {
	created   []*entities.Task
	summaries []repositories.TaskSummary
}

func (r *stubTaskRepo) Create(_ context.Context, task *entities.Task) error {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	r.created = append(r.created, task)
	return nil
}

func (r *stubTaskRepo) FindSummariesByProject(_ context.Context, _ uuid.UUID) ([]repositories.TaskSummary, error) {
	return r.summaries, nil
}

// fixture wires a service with an unconfigured oracle client so generation
// always yields the deterministic fallback drafts.
type fixture struct {
	service        Service
	suggestionRepo *stubSuggestionRepo
	meetingRepo    *stubMeetingRepo
	taskRepo       *stubTaskRepo
	owner          uuid.UUID
	meeting        *entities.Meeting
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	owner := uuid.New()
	projectID := uuid.New()
	meeting := &entities.Meeting{
		ID:        uuid.New(),
		Title:     "Sprint planning",
		Notes:     "Discussed the release checklist and assigned owners for the remaining items before launch day.",
		ProjectID: &projectID,
		CreatedBy: owner,
	}

	suggestionRepo := newStubSuggestionRepo()
	meetingRepo := &stubMeetingRepo{byID: map[uuid.UUID]*entities.Meeting{meeting.ID: meeting}}
	taskRepo := &stubTaskRepo{}
	oracle := ai.NewClient(&config.AIConfig{}, nil, nil)

	return &fixture{
		service:        NewService(suggestionRepo, meetingRepo, taskRepo, oracle, zap.NewNop()),
		suggestionRepo: suggestionRepo,
		meetingRepo:    meetingRepo,
		taskRepo:       taskRepo,
		owner:          owner,
		meeting:        meeting,
	}
}

func (f *fixture) pendingSuggestion(t *testing.T) *entities.Suggestion {
	t.Helper()
	sg := &entities.Suggestion{
		ID:                   uuid.New(),
		MeetingID:            f.meeting.ID,
		Meeting:              f.meeting,
		OriginalText:         "original excerpt from the notes",
		SuggestedTask:        "Prepare launch checklist",
		SuggestedDescription: "Collect remaining items and owners",
		ConfidenceScore:      0.9,
		Status:               entities.SuggestionStatusPending,
	}
	f.suggestionRepo.byID[sg.ID] = sg
	return sg
}

func TestGenerate_PersistsPendingBatch(t *testing.T) {
	f := newFixture(t)

	suggestions, err := f.service.Generate(context.Background(), f.meeting.ID, f.owner)
	require.NoError(t, err)
	require.Len(t, suggestions, 3)

	for _, s := range suggestions {
		assert.Equal(t, entities.SuggestionStatusPending, s.Status)
		assert.Equal(t, f.meeting.ID, s.MeetingID)
		assert.NotEmpty(t, s.SuggestedTask)
		assert.NotEmpty(t, s.OriginalText)
	}
}

func TestGenerate_RepeatedCallsAppend(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Generate(context.Background(), f.meeting.ID, f.owner)
	require.NoError(t, err)
	_, err = f.service.Generate(context.Background(), f.meeting.ID, f.owner)
	require.NoError(t, err)

	all, err := f.service.ListForMeeting(context.Background(), f.meeting.ID, f.owner)
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestGenerate_MeetingNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Generate(context.Background(), uuid.New(), f.owner)
	assert.ErrorIs(t, err, uerrors.ErrMeetingNotFound)
}

func TestGenerate_NotOwner(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Generate(context.Background(), f.meeting.ID, uuid.New())
	assert.ErrorIs(t, err, uerrors.ErrNotMeetingOwner)
}

func TestListForMeeting_NotOwner(t *testing.T) {
	f := newFixture(t)
	f.pendingSuggestion(t)

	_, err := f.service.ListForMeeting(context.Background(), f.meeting.ID, uuid.New())
	assert.ErrorIs(t, err, uerrors.ErrNotMeetingOwner)
}

func TestApprove_DefaultsFromSuggestion(t *testing.T) {
	f := newFixture(t)
	sg := f.pendingSuggestion(t)

	task, err := f.service.Approve(context.Background(), sg.ID, f.owner, ApproveOverrides{})
	require.NoError(t, err)

	assert.Equal(t, sg.SuggestedTask, task.Title)
	assert.Equal(t, sg.SuggestedDescription, task.Description)
	assert.Equal(t, entities.TaskPriorityMedium, task.Priority)
	assert.Equal(t, entities.TaskStatusTodo, task.Status)
	assert.Equal(t, float64(1), task.EstimatedHours)
	assert.Equal(t, f.owner, task.AssignedTo)
	assert.Equal(t, f.owner, task.CreatedBy)
	require.NotNil(t, task.ProjectID)
	assert.Equal(t, *f.meeting.ProjectID, *task.ProjectID)
	require.NotNil(t, task.MeetingID)
	assert.Equal(t, f.meeting.ID, *task.MeetingID)
	require.NotNil(t, task.DueDate)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 7), *task.DueDate, time.Minute)

	assert.Equal(t, entities.SuggestionStatusApproved, sg.Status)
	require.NotNil(t, sg.ReviewedBy)
	assert.Equal(t, f.owner, *sg.ReviewedBy)
	assert.NotNil(t, sg.ReviewedAt)
}

func TestApprove_DescriptionFallsBackToOriginalText(t *testing.T) {
	f := newFixture(t)
	sg := f.pendingSuggestion(t)
	sg.SuggestedDescription = ""

	task, err := f.service.Approve(context.Background(), sg.ID, f.owner, ApproveOverrides{})
	require.NoError(t, err)
	assert.Equal(t, sg.OriginalText, task.Description)
}

func TestApprove_OverridesWin(t *testing.T) {
	f := newFixture(t)
	sg := f.pendingSuggestion(t)

	title := "Custom title"
	desc := "Custom description"
	priority := entities.TaskPriorityHigh
	hours := 4.5
	assignee := uuid.New()
	projectID := uuid.New()
	due := time.Now().AddDate(0, 1, 0)

	task, err := f.service.Approve(context.Background(), sg.ID, f.owner, ApproveOverrides{
		ProjectID:      &projectID,
		Title:          &title,
		Description:    &desc,
		Priority:       &priority,
		EstimatedHours: &hours,
		AssignedTo:     &assignee,
		DueDate:        &due,
	})
	require.NoError(t, err)

	assert.Equal(t, title, task.Title)
	assert.Equal(t, desc, task.Description)
	assert.Equal(t, priority, task.Priority)
	assert.Equal(t, hours, task.EstimatedHours)
	assert.Equal(t, assignee, task.AssignedTo)
	assert.Equal(t, projectID, *task.ProjectID)
	assert.Equal(t, due, *task.DueDate)
	// Creator stays the approving user even when the task is assigned away
	assert.Equal(t, f.owner, task.CreatedBy)
}

func TestApprove_AlreadyReviewed(t *testing.T) {
	f := newFixture(t)
	sg := f.pendingSuggestion(t)

	_, err := f.service.Approve(context.Background(), sg.ID, f.owner, ApproveOverrides{})
	require.NoError(t, err)
	require.Len(t, f.taskRepo.created, 1)

	_, err = f.service.Approve(context.Background(), sg.ID, f.owner, ApproveOverrides{})
	assert.ErrorIs(t, err, uerrors.ErrSuggestionAlreadyReviewed)
	assert.Len(t, f.taskRepo.created, 1, "second approval must not create another task")
}

func TestApprove_NotOwner(t *testing.T) {
	f := newFixture(t)
	sg := f.pendingSuggestion(t)

	_, err := f.service.Approve(context.Background(), sg.ID, uuid.New(), ApproveOverrides{})
	assert.ErrorIs(t, err, uerrors.ErrNotMeetingOwner)
	assert.Empty(t, f.taskRepo.created)
}

func TestApprove_SuggestionNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Approve(context.Background(), uuid.New(), f.owner, ApproveOverrides{})
	assert.ErrorIs(t, err, uerrors.ErrSuggestionNotFound)
}

func TestReject_SetsReasonAndReviewer(t *testing.T) {
	f := newFixture(t)
	sg := f.pendingSuggestion(t)

	rejected, err := f.service.Reject(context.Background(), sg.ID, f.owner, "duplicate of an existing task")
	require.NoError(t, err)

	assert.Equal(t, entities.SuggestionStatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "duplicate of an existing task", *rejected.RejectionReason)
	require.NotNil(t, rejected.ReviewedBy)
	assert.Equal(t, f.owner, *rejected.ReviewedBy)
}

func TestReject_EmptyReason(t *testing.T) {
	f := newFixture(t)
	sg := f.pendingSuggestion(t)

	_, err := f.service.Reject(context.Background(), sg.ID, f.owner, "   ")
	assert.ErrorIs(t, err, uerrors.ErrRejectionReasonRequired)
	assert.Equal(t, entities.SuggestionStatusPending, sg.Status, "failed reject must not mutate the suggestion")
}

func TestReject_AlreadyReviewed(t *testing.T) {
	f := newFixture(t)
	sg := f.pendingSuggestion(t)

	_, err := f.service.Reject(context.Background(), sg.ID, f.owner, "first reason")
	require.NoError(t, err)

	_, err = f.service.Reject(context.Background(), sg.ID, f.owner, "second reason")
	assert.ErrorIs(t, err, uerrors.ErrSuggestionAlreadyReviewed)
	assert.Equal(t, "first reason", *sg.RejectionReason)
}

func TestListPendingForOwner_OnlyPending(t *testing.T) {
	f := newFixture(t)
	pending := f.pendingSuggestion(t)
	reviewed := f.pendingSuggestion(t)
	reviewed.Reject(f.owner, "not needed", time.Now())

	inbox, err := f.service.ListPendingForOwner(context.Background(), f.owner)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, pending.ID, inbox[0].ID)
}
