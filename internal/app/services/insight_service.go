package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/attendly/attendly/internal/app/models"
	"github.com/attendly/attendly/internal/app/store"
	"github.com/attendly/attendly/internal/pkg/apperrors"
)

// Generator is the slice of the generative-language client the insight
// service depends on.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	GenerateWithSystem(ctx context.Context, system, message string) (string, error)
}

// InsightService forwards free-text questions plus a snapshot of the
// dataset to the generative-language collaborator
type InsightService interface {
	Insights(ctx context.Context, query string) (string, error)
	Chat(ctx context.Context, user models.User, message string) (string, error)
}

// insightServiceImpl implements the InsightService interface
type insightServiceImpl struct {
	store     *store.Store
	generator Generator
	logger    zerolog.Logger
}

// NewInsightService creates a new insight service instance
func NewInsightService(st *store.Store, generator Generator, logger zerolog.Logger) InsightService {
	return &insightServiceImpl{
		store:     st,
		generator: generator,
		logger:    logger,
	}
}

// userSummary is the reduced user shape shared with the collaborator:
// id, name and role only, never the email.
type userSummary struct {
	ID   int64       `json:"id"`
	Name string      `json:"name"`
	Role models.Role `json:"role"`
}

func (s *insightServiceImpl) dataContext() (string, error) {
	snap := s.store.Snapshot()

	users := make([]userSummary, 0, len(snap.Users))
	for _, u := range snap.Users {
		users = append(users, userSummary{ID: u.ID, Name: u.Name, Role: u.Role})
	}

	usersJSON, err := json.Marshal(users)
	if err != nil {
		return "", err
	}
	coursesJSON, err := json.Marshal(snap.Courses)
	if err != nil {
		return "", err
	}
	recordsJSON, err := json.Marshal(snap.Attendance)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Users: %s\nCourses: %s\nAttendance Records: %s", usersJSON, coursesJSON, recordsJSON), nil
}

// Insights answers an analytical query over the full dataset. The response
// is Markdown-flavored free text, rendered verbatim by the caller.
func (s *insightServiceImpl) Insights(ctx context.Context, query string) (string, error) {
	if query == "" {
		return "", apperrors.NewValidationError("query is required")
	}

	dataContext, err := s.dataContext()
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`You are an AI assistant for a college attendance management system.
Analyze the following data and answer the user's query.
Provide the answer in a clear, easy-to-read format. Use Markdown for formatting if needed (e.g., lists, bold text).

Here is the data:
%s

User Query: %q`, dataContext, query)

	text, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		s.logger.Error().Err(err).Msg("Insight request failed")
		return "", apperrors.NewCustomError(apperrors.ErrInsightUnavailable, err.Error())
	}
	return text, nil
}

// Chat answers a conversational message with the acting user's own data as
// context. Each message is stateless; the context rides along every call.
func (s *insightServiceImpl) Chat(ctx context.Context, user models.User, message string) (string, error) {
	if message == "" {
		return "", apperrors.NewValidationError("message is required")
	}

	userContext, err := json.Marshal(struct {
		User    userSummary               `json:"user"`
		Records []models.AttendanceRecord `json:"records,omitempty"`
	}{
		User:    userSummary{ID: user.ID, Name: user.Name, Role: user.Role},
		Records: s.userRecords(user),
	})
	if err != nil {
		return "", err
	}

	system := fmt.Sprintf(`You are a helpful chatbot for a college attendance system. Your name is Attendly Bot.
Be friendly, concise, and helpful.
Here is some context about the current user and their data: %s`, userContext)

	text, err := s.generator.GenerateWithSystem(ctx, system, message)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Chat request failed")
		return "", apperrors.NewCustomError(apperrors.ErrInsightUnavailable, err.Error())
	}
	return text, nil
}

func (s *insightServiceImpl) userRecords(user models.User) []models.AttendanceRecord {
	if user.Role != models.RoleStudent {
		return nil
	}
	var records []models.AttendanceRecord
	for _, r := range s.store.Attendance() {
		if r.StudentID == user.ID {
			records = append(records, r)
		}
	}
	return records
}
