package database

import (
	"fmt"
	"time"

	"gamerflow_service/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

// NewPGConnection create a new postgreSQL gorm connection with retry
func NewPGConnection(d Connection) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	for i := 0; i < d.RetryCount; i++ {
		db, err = gorm.Open(postgres.Open(d.ConnectStr), &gorm.Config{
			Logger: gorm_logger.Default.LogMode(gorm_logger.Warn),
		})
		if err == nil {
			return db, nil
		}
		logger.Log.Warn(
			"Failed to connect to postgreSQL database, retrying...",
			zap.Int("attempt", i+1),
			zap.Error(err),
		)
		time.Sleep(d.RetryInterval * time.Second)
	}

	return nil, fmt.Errorf("connect postgreSQL failed: %w", err)
}
