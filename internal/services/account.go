package services

import (
	"errors"
	"log/slog"

	"mealtrack/internal/models"
	"mealtrack/pkg/utils"

	"gorm.io/gorm"
)

type AccountService struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewAccountService(db *gorm.DB, logger *slog.Logger) *AccountService {
	return &AccountService{db: db, logger: logger}
}

// Register creates a user with a bcrypt-hashed password. The username
// must not already exist.
func (s *AccountService) Register(username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ErrMissingField
	}

	var existing models.User
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	return &user, nil
}

// Authenticate looks the user up by exact username and checks the
// password against the stored hash. A missing user and a wrong password
// both come back as ErrInvalidCredentials.
func (s *AccountService) Authenticate(username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ErrMissingField
	}

	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// Update changes the username and/or password. Empty strings mean
// "leave unchanged"; at least one field must be given.
func (s *AccountService) Update(userID uint, newUsername, newPassword string) (*models.User, error) {
	if newUsername == "" && newPassword == "" {
		return nil, ErrMissingField
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if newUsername != "" {
		var existing models.User
		err := s.db.Where("username = ? AND id <> ?", newUsername, userID).First(&existing).Error
		if err == nil {
			return nil, ErrUsernameTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Username = newUsername
	}

	if newPassword != "" {
		hash, err := utils.HashPassword(newPassword)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// Delete removes the user and every meal it owns inside one
// transaction: children first, then the parent row.
func (s *AccountService) Delete(userID uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Meal{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.User{}, userID).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("user deleted", "user_id", userID)
	return nil
}
