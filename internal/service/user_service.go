package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/imammufiid/bnyu-admin/internal/repository"
	"github.com/imammufiid/bnyu-admin/internal/table"
)

const defaultPageSize = 10

// UserRow is one row of the users table, with fields derived from the points
// and reminders collections.
type UserRow struct {
	ID                uuid.UUID  `json:"id"`
	DisplayName       string     `json:"display_name"`
	Email             string     `json:"email"`
	Points            int64      `json:"points"`
	IsVerified        bool       `json:"is_verified"`
	CreatedAt         time.Time  `json:"created_at"`
	LastActive        *time.Time `json:"last_active,omitempty"`
	LastActiveDisplay string     `json:"last_active_display"`
}

// ListQuery carries the table controls: search, sort and pagination.
type ListQuery struct {
	Search   string
	SortBy   string
	SortDir  table.Direction
	Page     int
	PageSize int
}

// UserPage is one page of the users table.
type UserPage struct {
	Users      []UserRow `json:"users"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
	Total      int       `json:"total"`
}

// UserService assembles and presents the users table.
type UserService interface {
	ListUsers(ctx context.Context, q ListQuery) (*UserPage, error)
}

type userService struct {
	userRepo     repository.UserRepository
	pointsRepo   repository.PointsRepository
	reminderRepo repository.ReminderRepository
}

// NewUserService creates a new user service.
func NewUserService(
	userRepo repository.UserRepository,
	pointsRepo repository.PointsRepository,
	reminderRepo repository.ReminderRepository,
) UserService {
	return &userService{
		userRepo:     userRepo,
		pointsRepo:   pointsRepo,
		reminderRepo: reminderRepo,
	}
}

// ListUsers loads the full users collection, derives per-user points and last
// activity, then applies search, sort and pagination in memory.
func (s *userService) ListUsers(ctx context.Context, q ListQuery) (*UserPage, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}

	rows := make([]UserRow, 0, len(users))
	for _, u := range users {
		row := UserRow{
			ID:          u.ID,
			DisplayName: u.DisplayName,
			Email:       u.Email,
			IsVerified:  u.IsVerified,
			CreatedAt:   u.CreatedAt,
		}

		points, err := s.pointsRepo.ListByUser(ctx, u.ID)
		if err != nil {
			return nil, fmt.Errorf("fetch points for user %s: %w", u.ID, err)
		}
		if len(points) > 0 {
			// First record only; see UserStats for why this is not a sum.
			row.Points = points[0].Points
		}

		reminders, err := s.reminderRepo.ListByUser(ctx, u.ID)
		if err != nil {
			return nil, fmt.Errorf("fetch reminders for user %s: %w", u.ID, err)
		}
		for i := range reminders {
			if row.LastActive == nil || reminders[i].CreatedAt.After(*row.LastActive) {
				t := reminders[i].CreatedAt
				row.LastActive = &t
			}
		}

		row.LastActiveDisplay = "-"
		if row.LastActive != nil {
			row.LastActiveDisplay = table.FormatRelativeDate(*row.LastActive)
		}
		rows = append(rows, row)
	}

	rows = table.Filter(rows, q.Search, func(r UserRow) []string {
		return []string{r.DisplayName, r.Email}
	})
	rows = sortUsers(rows, q.SortBy, q.SortDir)

	size := q.PageSize
	if size < 1 {
		size = defaultPageSize
	}
	page := q.Page
	if page < 1 {
		page = 1
	}

	total := len(rows)
	pageRows, totalPages := table.Paginate(rows, page, size)
	if page > totalPages {
		page = totalPages
		pageRows, _ = table.Paginate(rows, page, size)
	}

	return &UserPage{
		Users:      pageRows,
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}, nil
}

// sortUsers orders rows by the named column. Unknown columns and the
// positional "no" column keep the original order (reversed for desc).
func sortUsers(rows []UserRow, key string, dir table.Direction) []UserRow {
	switch key {
	case "displayName":
		return table.SortBy(rows, func(r UserRow) table.Key { return table.String(r.DisplayName) }, dir)
	case "email":
		return table.SortBy(rows, func(r UserRow) table.Key { return table.String(r.Email) }, dir)
	case "points":
		return table.SortBy(rows, func(r UserRow) table.Key { return table.Number(float64(r.Points)) }, dir)
	case "isVerified":
		return table.SortBy(rows, func(r UserRow) table.Key { return table.Bool(r.IsVerified) }, dir)
	case "lastActive":
		return table.SortBy(rows, func(r UserRow) table.Key { return table.Time(r.LastActive) }, dir)
	default:
		if dir == table.Desc {
			return table.Reverse(rows)
		}
		return rows
	}
}
