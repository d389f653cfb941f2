package cron

import (
	"time"

	adRepo "github.com/bol3ezzz/spalux-backend/database/repository/advertisement"
	"github.com/bol3ezzz/spalux-backend/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartExpirySweeper runs an hourly job that flips isActive off on
// advertisements whose subscription has lapsed. Public visibility never
// depends on this sweep (the query pipeline re-checks expiry on every read);
// it only keeps the stored flag honest for the admin dashboard.
func StartExpirySweeper(repo adRepo.AdvertisementRepository) *cron.Cron {
	logger := utils.GetLogger()

	c := cron.New()
	_, err := c.AddFunc("@hourly", func() {
		n, err := repo.DeactivateExpired(time.Now().UTC())
		if err != nil {
			logger.Error("Expiry sweep failed", zap.Error(err))
			return
		}
		if n > 0 {
			logger.Info("Deactivated expired advertisements", zap.Int64("count", n))
		}
	})
	if err != nil {
		logger.Error("Failed to schedule expiry sweep", zap.Error(err))
		return c
	}
	c.Start()
	return c
}
