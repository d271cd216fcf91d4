package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/imammufiid/bnyu-admin/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockPointsRepository is a mock implementation of PointsRepository.
type MockPointsRepository struct {
	mock.Mock
}

func (m *MockPointsRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.PointsRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PointsRecord), args.Error(1)
}

func (m *MockPointsRepository) Create(ctx context.Context, record *model.PointsRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// MockReminderRepository is a mock implementation of ReminderRepository.
type MockReminderRepository struct {
	mock.Mock
}

func (m *MockReminderRepository) ListByCreatedBetween(ctx context.Context, start, end time.Time) ([]model.Reminder, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Reminder), args.Error(1)
}

func (m *MockReminderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Reminder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Reminder), args.Error(1)
}

func (m *MockReminderRepository) ListByUserAndCreatedBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]model.Reminder, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Reminder), args.Error(1)
}

func (m *MockReminderRepository) Create(ctx context.Context, reminder *model.Reminder) error {
	args := m.Called(ctx, reminder)
	return args.Error(0)
}

func remindersWithFlags(flags ...bool) []model.Reminder {
	out := make([]model.Reminder, len(flags))
	for i, f := range flags {
		out[i] = model.Reminder{ID: uuid.New(), IsDrink: f}
	}
	return out
}

func TestPartition(t *testing.T) {
	tests := []struct {
		name     string
		flags    []bool
		expected ReminderStats
	}{
		{name: "empty", flags: nil, expected: ReminderStats{}},
		{name: "all drink", flags: []bool{true, true}, expected: ReminderStats{Drink: 2}},
		{name: "all dismissed", flags: []bool{false, false, false}, expected: ReminderStats{NotDrink: 3}},
		{name: "mixed", flags: []bool{true, false, true}, expected: ReminderStats{Drink: 2, NotDrink: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, partition(remindersWithFlags(tt.flags...)))
		})
	}
}

func TestStatsService_GlobalReminderStats(t *testing.T) {
	start := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 15, 23, 59, 59, int(999*time.Millisecond), time.UTC)

	tests := []struct {
		name          string
		setupMock     func(*MockReminderRepository)
		expected      *ReminderStats
		expectedError bool
	}{
		{
			name: "counts split by flag",
			setupMock: func(m *MockReminderRepository) {
				m.On("ListByCreatedBetween", mock.Anything, start, end).
					Return(remindersWithFlags(true, false, true), nil)
			},
			expected: &ReminderStats{Drink: 2, NotDrink: 1},
		},
		{
			name: "empty window yields zero counts, not nil",
			setupMock: func(m *MockReminderRepository) {
				m.On("ListByCreatedBetween", mock.Anything, start, end).
					Return([]model.Reminder{}, nil)
			},
			expected: &ReminderStats{},
		},
		{
			name: "fetch failure yields nil, not zero counts",
			setupMock: func(m *MockReminderRepository) {
				m.On("ListByCreatedBetween", mock.Anything, start, end).
					Return(nil, errors.New("connection refused"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReminders := new(MockReminderRepository)
			tt.setupMock(mockReminders)

			service := NewStatsService(new(MockUserRepository), new(MockPointsRepository), mockReminders, nil)
			stats, err := service.GlobalReminderStats(context.Background(), start, end)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, stats)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, stats)
			}
			mockReminders.AssertExpectations(t)
		})
	}
}

func TestStatsService_UserStats(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)
	dayStart, dayEnd := DayWindow(now)
	weekStart, weekEnd := WeekWindow(now)
	monthStart, monthEnd := MonthWindow(now)

	older := now.Add(-48 * time.Hour)
	newest := now.Add(-1 * time.Hour)

	mockPoints := new(MockPointsRepository)
	mockPoints.On("ListByUser", mock.Anything, userID).Return([]model.PointsRecord{
		{ID: uuid.New(), UserID: userID, Points: 80},
		{ID: uuid.New(), UserID: userID, Points: 45},
	}, nil)

	mockReminders := new(MockReminderRepository)
	mockReminders.On("ListByUser", mock.Anything, userID).Return([]model.Reminder{
		{ID: uuid.New(), UserID: userID, IsDrink: true, CreatedAt: older},
		{ID: uuid.New(), UserID: userID, IsDrink: false, CreatedAt: newest},
	}, nil)
	mockReminders.On("ListByUserAndCreatedBetween", mock.Anything, userID, dayStart, dayEnd).
		Return(remindersWithFlags(true), nil)
	mockReminders.On("ListByUserAndCreatedBetween", mock.Anything, userID, weekStart, weekEnd).
		Return(remindersWithFlags(true, false), nil)
	mockReminders.On("ListByUserAndCreatedBetween", mock.Anything, userID, monthStart, monthEnd).
		Return(remindersWithFlags(true, false, true), nil)

	service := NewStatsService(new(MockUserRepository), mockPoints, mockReminders, nil).(*statsService)
	service.now = func() time.Time { return now }

	stats, err := service.UserStats(context.Background(), userID)
	assert.NoError(t, err)
	assert.NotNil(t, stats)

	// First record, not the 125 a sum would give.
	assert.Equal(t, int64(80), stats.Points)
	assert.NotNil(t, stats.LastActive)
	assert.True(t, stats.LastActive.Equal(newest))
	assert.Equal(t, ReminderStats{Drink: 1}, stats.Today)
	assert.Equal(t, ReminderStats{Drink: 1, NotDrink: 1}, stats.Week)
	assert.Equal(t, ReminderStats{Drink: 2, NotDrink: 1}, stats.Month)

	mockPoints.AssertExpectations(t)
	mockReminders.AssertExpectations(t)
}

func TestStatsService_UserStatsNoActivity(t *testing.T) {
	userID := uuid.New()

	mockPoints := new(MockPointsRepository)
	mockPoints.On("ListByUser", mock.Anything, userID).Return([]model.PointsRecord{}, nil)

	mockReminders := new(MockReminderRepository)
	mockReminders.On("ListByUser", mock.Anything, userID).Return([]model.Reminder{}, nil)
	mockReminders.On("ListByUserAndCreatedBetween", mock.Anything, userID, mock.Anything, mock.Anything).
		Return([]model.Reminder{}, nil)

	service := NewStatsService(new(MockUserRepository), mockPoints, mockReminders, nil)
	stats, err := service.UserStats(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), stats.Points)
	assert.Nil(t, stats.LastActive)
	assert.Equal(t, ReminderStats{}, stats.Today)
	assert.Equal(t, ReminderStats{}, stats.Week)
	assert.Equal(t, ReminderStats{}, stats.Month)
}

func TestStatsService_UserStatsPointsFetchFails(t *testing.T) {
	userID := uuid.New()

	mockPoints := new(MockPointsRepository)
	mockPoints.On("ListByUser", mock.Anything, userID).Return(nil, errors.New("connection refused"))

	service := NewStatsService(new(MockUserRepository), mockPoints, new(MockReminderRepository), nil)
	stats, err := service.UserStats(context.Background(), userID)

	assert.Error(t, err)
	assert.Nil(t, stats)
}

func TestStatsService_DashboardSummary(t *testing.T) {
	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)
	dayStart, dayEnd := DayWindow(now)
	weekStart, weekEnd := WeekWindow(now)
	monthStart, monthEnd := MonthWindow(now)

	mockUsers := new(MockUserRepository)
	mockUsers.On("Count", mock.Anything).Return(int64(42), nil)

	mockReminders := new(MockReminderRepository)
	mockReminders.On("ListByCreatedBetween", mock.Anything, dayStart, dayEnd).
		Return(remindersWithFlags(true, false), nil)
	mockReminders.On("ListByCreatedBetween", mock.Anything, weekStart, weekEnd).
		Return(remindersWithFlags(true, true, false), nil)
	mockReminders.On("ListByCreatedBetween", mock.Anything, monthStart, monthEnd).
		Return(remindersWithFlags(true, true, true, false), nil)

	service := NewStatsService(mockUsers, new(MockPointsRepository), mockReminders, nil).(*statsService)
	service.now = func() time.Time { return now }

	summary := service.DashboardSummary(context.Background())

	assert.NotNil(t, summary.TotalUsers)
	assert.Equal(t, int64(42), *summary.TotalUsers)
	assert.Equal(t, &ReminderStats{Drink: 1, NotDrink: 1}, summary.Today)
	assert.Equal(t, &ReminderStats{Drink: 2, NotDrink: 1}, summary.Week)
	assert.Equal(t, &ReminderStats{Drink: 3, NotDrink: 1}, summary.Month)

	mockUsers.AssertExpectations(t)
	mockReminders.AssertExpectations(t)
}

func TestStatsService_DashboardSummaryPartialFailure(t *testing.T) {
	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)
	dayStart, dayEnd := DayWindow(now)
	weekStart, weekEnd := WeekWindow(now)
	monthStart, monthEnd := MonthWindow(now)

	mockUsers := new(MockUserRepository)
	mockUsers.On("Count", mock.Anything).Return(int64(0), errors.New("connection refused"))

	mockReminders := new(MockReminderRepository)
	mockReminders.On("ListByCreatedBetween", mock.Anything, dayStart, dayEnd).
		Return(remindersWithFlags(true), nil)
	mockReminders.On("ListByCreatedBetween", mock.Anything, weekStart, weekEnd).
		Return(nil, errors.New("connection refused"))
	mockReminders.On("ListByCreatedBetween", mock.Anything, monthStart, monthEnd).
		Return(remindersWithFlags(false), nil)

	service := NewStatsService(mockUsers, new(MockPointsRepository), mockReminders, nil).(*statsService)
	service.now = func() time.Time { return now }

	summary := service.DashboardSummary(context.Background())

	// Failed legs stay nil so the UI shows "--"; the others still populate.
	assert.Nil(t, summary.TotalUsers)
	assert.Nil(t, summary.Week)
	assert.Equal(t, &ReminderStats{Drink: 1}, summary.Today)
	assert.Equal(t, &ReminderStats{NotDrink: 1}, summary.Month)
}
