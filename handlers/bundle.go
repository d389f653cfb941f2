package handlers

import (
	adminRepo "github.com/bol3ezzz/spalux-backend/database/repository/admin"
	"github.com/bol3ezzz/spalux-backend/services/advertisement"
)

// HandlerBundle groups the dependencies all HTTP handlers draw from.
type HandlerBundle struct {
	AdService advertisement.AdvertisementService
	AdminRepo adminRepo.AdminRepository
}
