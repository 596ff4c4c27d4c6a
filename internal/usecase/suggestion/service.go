package suggestion

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/saiydurnetcom/nexuspm/internal/domain/entities"
	"github.com/saiydurnetcom/nexuspm/internal/domain/repositories"
	uerrors "github.com/saiydurnetcom/nexuspm/internal/usecase/errors"
	"github.com/saiydurnetcom/nexuspm/pkg/ai"
)

const (
	defaultEstimatedHours = 1
	defaultDueInDays      = 7
)

// Oracle produces task drafts from meeting notes. It never fails: an
// unreachable or unconfigured reasoning service yields fallback drafts.
type Oracle interface {
	GenerateSuggestions(ctx context.Context, notes string, projectID *uuid.UUID, existing []ai.TaskSummary) []ai.Draft
}

// ApproveOverrides carries the optional per-field overrides an approving user
// may supply. Nil fields fall back to the suggestion's values, then to hard
// defaults.
type ApproveOverrides struct {
	ProjectID      *uuid.UUID
	Title          *string
	Description    *string
	Priority       *entities.TaskPriority
	EstimatedHours *float64
	AssignedTo     *uuid.UUID
	DueDate        *time.Time
}

// Service manages the suggestion lifecycle: generation from meeting notes,
// review listing, and the one-way pending to approved/rejected transitions.
type Service interface {
	Generate(ctx context.Context, meetingID, userID uuid.UUID) ([]*entities.Suggestion, error)
	ListForMeeting(ctx context.Context, meetingID, userID uuid.UUID) ([]*entities.Suggestion, error)
	ListPendingForOwner(ctx context.Context, userID uuid.UUID) ([]*entities.Suggestion, error)
	Approve(ctx context.Context, suggestionID, userID uuid.UUID, overrides ApproveOverrides) (*entities.Task, error)
	Reject(ctx context.Context, suggestionID, userID uuid.UUID, reason string) (*entities.Suggestion, error)
}

type service struct {
	suggestionRepo repositories.SuggestionRepository
	meetingRepo    repositories.MeetingRepository
	taskRepo       repositories.TaskRepository
	oracle         Oracle
	logger         *zap.Logger
}

// NewService creates a suggestion lifecycle service
func NewService(
	suggestionRepo repositories.SuggestionRepository,
	meetingRepo repositories.MeetingRepository,
	taskRepo repositories.TaskRepository,
	oracle Oracle,
	logger *zap.Logger,
) Service {
	return &service{
		suggestionRepo: suggestionRepo,
		meetingRepo:    meetingRepo,
		taskRepo:       taskRepo,
		oracle:         oracle,
		logger:         logger,
	}
}

// Generate extracts task suggestions from the meeting's notes and persists
// them as a pending batch. Only the meeting owner may generate. Repeated
// calls append a new batch; earlier suggestions are left untouched.
func (s *service) Generate(ctx context.Context, meetingID, userID uuid.UUID) ([]*entities.Suggestion, error) {
	meeting, err := s.ownedMeeting(ctx, meetingID, userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.dedupContext(ctx, meeting)
	if err != nil {
		return nil, err
	}

	drafts := s.oracle.GenerateSuggestions(ctx, meeting.Notes, meeting.ProjectID, existing)

	suggestions := make([]*entities.Suggestion, 0, len(drafts))
	for _, d := range drafts {
		suggestions = append(suggestions, &entities.Suggestion{
			MeetingID:            meeting.ID,
			OriginalText:         d.OriginalText,
			SuggestedTask:        d.SuggestedTask,
			SuggestedDescription: d.SuggestedDescription,
			ConfidenceScore:      d.ConfidenceScore,
			Status:               entities.SuggestionStatusPending,
		})
	}

	if err := s.suggestionRepo.CreateBatch(ctx, suggestions); err != nil {
		return nil, err
	}

	s.logger.Info("suggestions generated",
		zap.String("meeting_id", meetingID.String()),
		zap.Int("count", len(suggestions)),
	)
	return suggestions, nil
}

// ListForMeeting returns every suggestion for the meeting, newest first.
// Only the meeting owner may list.
func (s *service) ListForMeeting(ctx context.Context, meetingID, userID uuid.UUID) ([]*entities.Suggestion, error) {
	if _, err := s.ownedMeeting(ctx, meetingID, userID); err != nil {
		return nil, err
	}
	return s.suggestionRepo.FindByMeetingID(ctx, meetingID)
}

// ListPendingForOwner returns the user's review inbox: pending suggestions
// across every meeting they own, newest first.
func (s *service) ListPendingForOwner(ctx context.Context, userID uuid.UUID) ([]*entities.Suggestion, error) {
	return s.suggestionRepo.FindPendingByOwner(ctx, userID)
}

// Approve converts a pending suggestion into a task and marks it approved.
// The task is created before the suggestion transition is persisted, so a
// failed task insert leaves the suggestion reviewable.
func (s *service) Approve(ctx context.Context, suggestionID, userID uuid.UUID, overrides ApproveOverrides) (*entities.Task, error) {
	sg, err := s.reviewableSuggestion(ctx, suggestionID, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	task := s.buildTask(sg, userID, overrides, now)

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	sg.Approve(userID, now)
	if err := s.suggestionRepo.Update(ctx, sg); err != nil {
		return nil, err
	}

	s.logger.Info("suggestion approved",
		zap.String("suggestion_id", suggestionID.String()),
		zap.String("task_id", task.ID.String()),
	)
	return task, nil
}

// Reject marks a pending suggestion rejected with a mandatory reason
func (s *service) Reject(ctx context.Context, suggestionID, userID uuid.UUID, reason string) (*entities.Suggestion, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, uerrors.ErrRejectionReasonRequired
	}

	sg, err := s.reviewableSuggestion(ctx, suggestionID, userID)
	if err != nil {
		return nil, err
	}

	sg.Reject(userID, reason, time.Now())
	if err := s.suggestionRepo.Update(ctx, sg); err != nil {
		return nil, err
	}

	s.logger.Info("suggestion rejected",
		zap.String("suggestion_id", suggestionID.String()),
	)
	return sg, nil
}

// ownedMeeting loads a meeting and verifies the caller owns it
func (s *service) ownedMeeting(ctx context.Context, meetingID, userID uuid.UUID) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, uerrors.ErrMeetingNotFound
	}
	if !meeting.IsOwnedBy(userID) {
		return nil, uerrors.ErrNotMeetingOwner
	}
	return meeting, nil
}

// reviewableSuggestion loads a suggestion, verifies the caller owns its
// meeting, and verifies it is still pending
func (s *service) reviewableSuggestion(ctx context.Context, suggestionID, userID uuid.UUID) (*entities.Suggestion, error) {
	sg, err := s.suggestionRepo.FindByID(ctx, suggestionID)
	if err != nil {
		return nil, err
	}
	if sg == nil {
		return nil, uerrors.ErrSuggestionNotFound
	}
	if sg.Meeting == nil || !sg.Meeting.IsOwnedBy(userID) {
		return nil, uerrors.ErrNotMeetingOwner
	}
	if !sg.IsPending() {
		return nil, uerrors.ErrSuggestionAlreadyReviewed
	}
	return sg, nil
}

// dedupContext collects title/description pairs of the project's existing
// tasks. Meetings without a project have no dedup context.
func (s *service) dedupContext(ctx context.Context, meeting *entities.Meeting) ([]ai.TaskSummary, error) {
	if meeting.ProjectID == nil {
		return nil, nil
	}
	summaries, err := s.taskRepo.FindSummariesByProject(ctx, *meeting.ProjectID)
	if err != nil {
		return nil, err
	}
	existing := make([]ai.TaskSummary, 0, len(summaries))
	for _, t := range summaries {
		existing = append(existing, ai.TaskSummary{Title: t.Title, Description: t.Description})
	}
	return existing, nil
}

// buildTask assembles the task an approval creates, merging overrides over
// the suggestion's fields over hard defaults.
func (s *service) buildTask(sg *entities.Suggestion, userID uuid.UUID, o ApproveOverrides, now time.Time) *entities.Task {
	task := &entities.Task{
		MeetingID:      &sg.MeetingID,
		Title:          sg.SuggestedTask,
		Priority:       entities.TaskPriorityMedium,
		Status:         entities.TaskStatusTodo,
		EstimatedHours: defaultEstimatedHours,
		AssignedTo:     userID,
		CreatedBy:      userID,
	}

	if sg.Meeting != nil {
		task.ProjectID = sg.Meeting.ProjectID
	}
	if o.ProjectID != nil {
		task.ProjectID = o.ProjectID
	}

	if o.Title != nil && strings.TrimSpace(*o.Title) != "" {
		task.Title = *o.Title
	}

	switch {
	case o.Description != nil:
		task.Description = *o.Description
	case sg.SuggestedDescription != "":
		task.Description = sg.SuggestedDescription
	default:
		task.Description = sg.OriginalText
	}

	if o.Priority != nil && entities.IsValidPriority(*o.Priority) {
		task.Priority = *o.Priority
	}
	if o.EstimatedHours != nil && *o.EstimatedHours > 0 {
		task.EstimatedHours = *o.EstimatedHours
	}
	if o.AssignedTo != nil {
		task.AssignedTo = *o.AssignedTo
	}

	if o.DueDate != nil {
		task.DueDate = o.DueDate
	} else {
		due := now.AddDate(0, 0, defaultDueInDays)
		task.DueDate = &due
	}

	return task
}
