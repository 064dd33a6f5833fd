package db

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/onnuriprint/onnuriprint-backend/internal/app/model"
)

// SetupTestDB 테스트용 인메모리 SQLite 데이터베이스 생성
// 주문/리드 테이블을 마이그레이션한 상태로 반환한다
func SetupTestDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("테스트 데이터베이스 연결 실패: %w", err)
	}

	err = db.AutoMigrate(
		&model.Order{},
		&model.MarketingLead{},
	)
	if err != nil {
		return nil, fmt.Errorf("테스트 데이터베이스 마이그레이션 실패: %w", err)
	}

	return db, nil
}

// CleanupTestDB 테스트 데이터베이스 정리
func CleanupTestDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("테스트 DB 인스턴스 조회 실패: %v", err)
		return
	}
	sqlDB.Close()
}

// TruncateAllTables 모든 테이블 데이터 삭제
func TruncateAllTables(db *gorm.DB) error {
	tables := []string{"orders", "marketing_leads"}
	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return err
		}
	}
	return nil
}
