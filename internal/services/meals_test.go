package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestMealCreate(t *testing.T) {
	db := setupTestDB()
	accounts := NewAccountService(db, testLogger())
	service := NewMealService(db, testLogger())
	alice, _ := accounts.Register("alice", "pw1")

	t.Run("Defaults in_diet to true", func(t *testing.T) {
		meal, err := service.Create(alice.ID, CreateMealInput{
			Name:     "Lunch",
			DateTime: "2024-01-01 12:00:00",
		})
		assert.NoError(t, err)
		assert.True(t, meal.InDiet)
		assert.Equal(t, alice.ID, meal.UserID)
		assert.Equal(t, "2024-01-01 12:00:00", meal.DateTime.String())
	})

	t.Run("Explicit in_diet false", func(t *testing.T) {
		meal, err := service.Create(alice.ID, CreateMealInput{
			Name:     "Cheat meal",
			DateTime: "2024-01-01 20:00:00",
			InDiet:   boolPtr(false),
		})
		assert.NoError(t, err)
		assert.False(t, meal.InDiet)
	})

	t.Run("Missing name", func(t *testing.T) {
		_, err := service.Create(alice.ID, CreateMealInput{DateTime: "2024-01-01 12:00:00"})
		assert.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("Missing date_time", func(t *testing.T) {
		_, err := service.Create(alice.ID, CreateMealInput{Name: "Lunch"})
		assert.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("Missing owner", func(t *testing.T) {
		_, err := service.Create(0, CreateMealInput{Name: "Lunch", DateTime: "2024-01-01 12:00:00"})
		assert.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("Invalid date format", func(t *testing.T) {
		_, err := service.Create(alice.ID, CreateMealInput{
			Name:     "Lunch",
			DateTime: "2024-01-01T12:00:00Z",
		})
		assert.ErrorIs(t, err, ErrInvalidDateTime)
	})
}

func TestMealOwnershipScoping(t *testing.T) {
	db := setupTestDB()
	accounts := NewAccountService(db, testLogger())
	service := NewMealService(db, testLogger())
	alice, _ := accounts.Register("alice", "pw1")
	bob, _ := accounts.Register("bob", "pw2")

	meal, err := service.Create(alice.ID, CreateMealInput{
		Name:     "Lunch",
		DateTime: "2024-01-01 12:00:00",
	})
	assert.NoError(t, err)

	t.Run("Owner can read", func(t *testing.T) {
		got, err := service.Get(alice.ID, meal.ID)
		assert.NoError(t, err)
		assert.Equal(t, meal.ID, got.ID)
	})

	t.Run("Other user gets not found", func(t *testing.T) {
		_, err := service.Get(bob.ID, meal.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = service.Update(bob.ID, meal.ID, UpdateMealInput{Name: strPtr("Hijacked")})
		assert.ErrorIs(t, err, ErrNotFound)

		err = service.Delete(bob.ID, meal.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("List is owner-scoped", func(t *testing.T) {
		aliceMeals, err := service.List(alice.ID)
		assert.NoError(t, err)
		assert.Len(t, aliceMeals, 1)

		bobMeals, err := service.List(bob.ID)
		assert.NoError(t, err)
		assert.Empty(t, bobMeals)
	})
}

func TestMealUpdate(t *testing.T) {
	db := setupTestDB()
	accounts := NewAccountService(db, testLogger())
	service := NewMealService(db, testLogger())
	alice, _ := accounts.Register("alice", "pw1")

	meal, _ := service.Create(alice.ID, CreateMealInput{
		Name:        "Lunch",
		Description: "rice and beans",
		DateTime:    "2024-01-01 12:00:00",
	})

	t.Run("Partial update changes only the supplied field", func(t *testing.T) {
		updated, err := service.Update(alice.ID, meal.ID, UpdateMealInput{
			Description: strPtr("salad"),
		})
		assert.NoError(t, err)
		assert.Equal(t, "salad", updated.Description)
		assert.Equal(t, "Lunch", updated.Name)
		assert.Equal(t, "2024-01-01 12:00:00", updated.DateTime.String())
		assert.True(t, updated.InDiet)
	})

	t.Run("Explicit in_diet false is applied", func(t *testing.T) {
		updated, err := service.Update(alice.ID, meal.ID, UpdateMealInput{
			InDiet: boolPtr(false),
		})
		assert.NoError(t, err)
		assert.False(t, updated.InDiet)

		got, err := service.Get(alice.ID, meal.ID)
		assert.NoError(t, err)
		assert.False(t, got.InDiet)
	})

	t.Run("Description can be cleared", func(t *testing.T) {
		updated, err := service.Update(alice.ID, meal.ID, UpdateMealInput{
			Description: strPtr(""),
		})
		assert.NoError(t, err)
		assert.Empty(t, updated.Description)
	})

	t.Run("date_time update keeps the wire format", func(t *testing.T) {
		updated, err := service.Update(alice.ID, meal.ID, UpdateMealInput{
			DateTime: strPtr("2024-02-02 08:15:30"),
		})
		assert.NoError(t, err)
		assert.Equal(t, "2024-02-02 08:15:30", updated.DateTime.String())
	})

	t.Run("Invalid date format", func(t *testing.T) {
		_, err := service.Update(alice.ID, meal.ID, UpdateMealInput{
			DateTime: strPtr("tomorrow"),
		})
		assert.ErrorIs(t, err, ErrInvalidDateTime)
	})

	t.Run("Name cannot be blanked", func(t *testing.T) {
		_, err := service.Update(alice.ID, meal.ID, UpdateMealInput{
			Name: strPtr(""),
		})
		assert.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("Unknown meal", func(t *testing.T) {
		_, err := service.Update(alice.ID, 9999, UpdateMealInput{Name: strPtr("Ghost")})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMealDelete(t *testing.T) {
	db := setupTestDB()
	accounts := NewAccountService(db, testLogger())
	service := NewMealService(db, testLogger())
	alice, _ := accounts.Register("alice", "pw1")

	meal, _ := service.Create(alice.ID, CreateMealInput{
		Name:     "Lunch",
		DateTime: "2024-01-01 12:00:00",
	})

	t.Run("Success", func(t *testing.T) {
		assert.NoError(t, service.Delete(alice.ID, meal.ID))

		_, err := service.Get(alice.ID, meal.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Already deleted", func(t *testing.T) {
		assert.ErrorIs(t, service.Delete(alice.ID, meal.ID), ErrNotFound)
	})
}
