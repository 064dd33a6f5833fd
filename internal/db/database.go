package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/onnuriprint/onnuriprint-backend/config"
	appLogger "github.com/onnuriprint/onnuriprint-backend/pkg/logger"
)

var DB *gorm.DB

// 주문/리드 테이블용 커넥션 풀 설정
const (
	maxIdleConns = 10
	maxOpenConns = 100
)

// Initialize PostgreSQL 연결 초기화
// gorm 자체 로그는 끄고 pkg/logger로만 남긴다
func Initialize(cfg *config.DatabaseConfig) error {
	appLogger.Info("데이터베이스 연결 시도", map[string]interface{}{
		"host":     cfg.Host,
		"port":     cfg.Port,
		"database": cfg.DBName,
		"user":     cfg.User,
	})

	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("데이터베이스 연결에 실패했습니다: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("데이터베이스 인스턴스 조회에 실패했습니다: %w", err)
	}

	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetMaxOpenConns(maxOpenConns)

	appLogger.Info("데이터베이스 연결 완료", map[string]interface{}{
		"max_idle_conns": maxIdleConns,
		"max_open_conns": maxOpenConns,
	})
	return nil
}

// Close 데이터베이스 연결 종료
func Close() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetDB 전역 데이터베이스 인스턴스 반환
func GetDB() *gorm.DB {
	return DB
}
