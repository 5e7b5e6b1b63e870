package services

import (
	"errors"
	"log/slog"

	"mealtrack/internal/models"

	"gorm.io/gorm"
)

type CreateMealInput struct {
	Name        string
	Description string
	DateTime    string
	InDiet      *bool // nil defaults to true
}

// UpdateMealInput carries partial updates. Nil means "leave unchanged",
// so an explicit false for InDiet or "" for Description is applied.
type UpdateMealInput struct {
	Name        *string
	Description *string
	DateTime    *string
	InDiet      *bool
}

type MealService struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewMealService(db *gorm.DB, logger *slog.Logger) *MealService {
	return &MealService{db: db, logger: logger}
}

func (s *MealService) Create(ownerID uint, in CreateMealInput) (*models.Meal, error) {
	if ownerID == 0 || in.Name == "" || in.DateTime == "" {
		return nil, ErrMissingField
	}

	at, err := models.ParseMealTime(in.DateTime)
	if err != nil {
		return nil, ErrInvalidDateTime
	}

	inDiet := true
	if in.InDiet != nil {
		inDiet = *in.InDiet
	}

	meal := models.Meal{
		Name:        in.Name,
		Description: in.Description,
		DateTime:    at,
		InDiet:      inDiet,
		UserID:      ownerID,
	}
	if err := s.db.Create(&meal).Error; err != nil {
		return nil, err
	}

	return &meal, nil
}

// Get fetches a meal scoped to its owner. A meal that exists but
// belongs to someone else is indistinguishable from one that does not
// exist, so other users' meal ids leak nothing.
func (s *MealService) Get(ownerID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.Where("id = ? AND user_id = ?", mealID, ownerID).First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) List(ownerID uint) ([]models.Meal, error) {
	meals := []models.Meal{}
	if err := s.db.Where("user_id = ?", ownerID).Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (s *MealService) Update(ownerID, mealID uint, in UpdateMealInput) (*models.Meal, error) {
	meal, err := s.Get(ownerID, mealID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, ErrMissingField
		}
		meal.Name = *in.Name
	}
	if in.Description != nil {
		meal.Description = *in.Description
	}
	if in.DateTime != nil {
		at, err := models.ParseMealTime(*in.DateTime)
		if err != nil {
			return nil, ErrInvalidDateTime
		}
		meal.DateTime = at
	}
	if in.InDiet != nil {
		meal.InDiet = *in.InDiet
	}

	if err := s.db.Save(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) Delete(ownerID, mealID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", mealID, ownerID).Delete(&models.Meal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
