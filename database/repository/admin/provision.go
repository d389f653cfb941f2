package adminRepo

import (
	"fmt"

	"github.com/bol3ezzz/spalux-backend/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// NewAdmin builds an active admin account with a bcrypt password hash,
// ready to be persisted with AdminRepository.Create.
func NewAdmin(username, email, password string) (*models.Admin, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &models.Admin{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     true,
	}, nil
}
