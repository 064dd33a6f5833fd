package db

import (
	"github.com/onnuriprint/onnuriprint-backend/internal/app/model"
	"github.com/onnuriprint/onnuriprint-backend/pkg/logger"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("데이터베이스 마이그레이션 실행")

	models := []interface{}{
		&model.Order{},
		&model.MarketingLead{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("데이터베이스 마이그레이션 실패", err)
		return err
	}

	logger.Info("데이터베이스 마이그레이션 완료")
	return nil
}
