package services

import (
	"strings"

	"github.com/attendly/attendly/internal/app/models"
	"github.com/attendly/attendly/internal/app/store"
	"github.com/attendly/attendly/internal/pkg/apperrors"
	"github.com/attendly/attendly/internal/pkg/export"
)

// SaveUser upserts a user into the collection. A candidate with a zero ID
// is appended under id = max existing id + 1; a candidate with a known ID
// replaces that entry in place (the id itself never changes). The input
// collection is never mutated. Validation failures return the collection
// unchanged.
func SaveUser(users []models.User, candidate models.User) ([]models.User, models.User, error) {
	if strings.TrimSpace(candidate.Name) == "" {
		return users, models.User{}, apperrors.NewValidationError("name cannot be empty")
	}
	if strings.TrimSpace(candidate.Email) == "" {
		return users, models.User{}, apperrors.NewValidationError("email cannot be empty")
	}
	if !candidate.Role.Valid() {
		return users, models.User{}, apperrors.NewValidationError("unknown role")
	}

	next := make([]models.User, len(users))
	copy(next, users)

	if candidate.ID != 0 {
		for i, u := range next {
			if u.ID == candidate.ID {
				next[i] = candidate
				return next, candidate, nil
			}
		}
		return users, models.User{}, apperrors.ErrUserNotFound
	}

	var maxID int64
	for _, u := range next {
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	candidate.ID = maxID + 1
	next = append(next, candidate)
	return next, candidate, nil
}

// DeleteUser removes the entry with the target id. Deleting the requesting
// identity fails with ErrSelfDeletion and leaves the collection untouched;
// deleting an absent id is a no-op. The input collection is never mutated.
func DeleteUser(users []models.User, targetID, requestingUserID int64) ([]models.User, error) {
	if targetID == requestingUserID {
		return users, apperrors.ErrSelfDeletion
	}

	next := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.ID != targetID {
			next = append(next, u)
		}
	}
	return next, nil
}

// UserSummary holds the admin dashboard headline counts.
type UserSummary struct {
	TotalUsers   int `json:"totalUsers"`
	TotalCourses int `json:"totalCourses"`
	Teachers     int `json:"teachers"`
	Students     int `json:"students"`
}

// UserService defines administrator-facing user management operations
type UserService interface {
	List() []models.User
	Get(id int64) (models.User, error)
	Save(candidate models.User) (models.User, error)
	Delete(targetID, requestingUserID int64) error
	ExportCSV() string
	Summary() UserSummary
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	store *store.Store
}

// NewUserService creates a new user service instance
func NewUserService(st *store.Store) UserService {
	return &userServiceImpl{store: st}
}

// List returns every user.
func (s *userServiceImpl) List() []models.User {
	return s.store.Users()
}

// Get returns one user by id.
func (s *userServiceImpl) Get(id int64) (models.User, error) {
	return s.store.UserByID(id)
}

// Save validates and upserts a user.
func (s *userServiceImpl) Save(candidate models.User) (models.User, error) {
	var saved models.User
	err := s.store.UpdateUsers(func(users []models.User) ([]models.User, error) {
		next, result, err := SaveUser(users, candidate)
		if err != nil {
			return nil, err
		}
		saved = result
		return next, nil
	})
	if err != nil {
		return models.User{}, err
	}
	return saved, nil
}

// Delete removes a user unless it is the requesting account.
func (s *userServiceImpl) Delete(targetID, requestingUserID int64) error {
	return s.store.UpdateUsers(func(users []models.User) ([]models.User, error) {
		return DeleteUser(users, targetID, requestingUserID)
	})
}

// ExportCSV renders the user collection in the fixed export format.
func (s *userServiceImpl) ExportCSV() string {
	return export.UsersCSV(s.store.Users())
}

// Summary computes the admin dashboard counts.
func (s *userServiceImpl) Summary() UserSummary {
	summary := UserSummary{
		TotalCourses: len(s.store.Courses()),
	}
	for _, u := range s.store.Users() {
		summary.TotalUsers++
		switch u.Role {
		case models.RoleTeacher:
			summary.Teachers++
		case models.RoleStudent:
			summary.Students++
		}
	}
	return summary
}
