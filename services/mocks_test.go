package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/DmytroSyrovatskyi/FoodDiary/models"
	"github.com/DmytroSyrovatskyi/FoodDiary/repository"
)

// MockFoodItemRepository is a mock implementation of FoodItemRepository.
type MockFoodItemRepository struct {
	mock.Mock
}

func (m *MockFoodItemRepository) Create(ctx context.Context, item *models.FoodItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockFoodItemRepository) FindByID(ctx context.Context, id uint) (*models.FoodItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FoodItem), args.Error(1)
}

func (m *MockFoodItemRepository) FindByIDForUpdate(ctx context.Context, id uint) (*models.FoodItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FoodItem), args.Error(1)
}

func (m *MockFoodItemRepository) List(ctx context.Context) ([]models.FoodItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FoodItem), args.Error(1)
}

func (m *MockFoodItemRepository) SearchByName(ctx context.Context, term string) ([]models.FoodItem, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FoodItem), args.Error(1)
}

func (m *MockFoodItemRepository) InUse(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockFoodItemRepository) Delete(ctx context.Context, item *models.FoodItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

// WithTransaction runs fn against the mock itself; transactional semantics
// are the real repository's concern.
func (m *MockFoodItemRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.FoodItemRepository) error) error {
	return fn(ctx, m)
}

// MockFoodCategoryRepository is a mock implementation of FoodCategoryRepository.
type MockFoodCategoryRepository struct {
	mock.Mock
}

func (m *MockFoodCategoryRepository) Create(ctx context.Context, category *models.FoodCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockFoodCategoryRepository) FindByID(ctx context.Context, id uint) (*models.FoodCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FoodCategory), args.Error(1)
}

func (m *MockFoodCategoryRepository) List(ctx context.Context) ([]models.FoodCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FoodCategory), args.Error(1)
}

// MockMealRepository is a mock implementation of MealRepository.
type MockMealRepository struct {
	mock.Mock
}

func (m *MockMealRepository) Create(ctx context.Context, meal *models.Meal) error {
	args := m.Called(ctx, meal)
	return args.Error(0)
}

func (m *MockMealRepository) FindByID(ctx context.Context, id uint) (*models.Meal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

func (m *MockMealRepository) FindByIDWithEntries(ctx context.Context, id uint) (*models.Meal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

func (m *MockMealRepository) GetOrCreateSummary(ctx context.Context, userID uint, date time.Time) (*models.DailySummary, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailySummary), args.Error(1)
}

func (m *MockMealRepository) DeleteEntriesByMeal(ctx context.Context, mealID uint) error {
	args := m.Called(ctx, mealID)
	return args.Error(0)
}

func (m *MockMealRepository) Delete(ctx context.Context, meal *models.Meal) error {
	args := m.Called(ctx, meal)
	return args.Error(0)
}

func (m *MockMealRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.MealRepository) error) error {
	return fn(ctx, m)
}

// MockMealEntryRepository is a mock implementation of MealEntryRepository.
type MockMealEntryRepository struct {
	mock.Mock
}

func (m *MockMealEntryRepository) Create(ctx context.Context, entry *models.MealEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockMealEntryRepository) FindByID(ctx context.Context, id uint) (*models.MealEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MealEntry), args.Error(1)
}

func (m *MockMealEntryRepository) Delete(ctx context.Context, entry *models.MealEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// MockDailySummaryRepository is a mock implementation of DailySummaryRepository.
type MockDailySummaryRepository struct {
	mock.Mock
}

func (m *MockDailySummaryRepository) FindByUserAndDate(ctx context.Context, userID uint, date time.Time) (*models.DailySummary, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailySummary), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
