package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/onnuriprint/onnuriprint-backend/config"
	"github.com/onnuriprint/onnuriprint-backend/pkg/logger"
)

var client *redis.Client

// Init Redis 연결 초기화
// 연결에 실패하면 에러를 반환하지만, 호출부는 무시하고 기동할 수 있다
// (Redis 없이 돌면 발송 제한만 꺼진다)
func Init(cfg *config.RedisConfig) error {
	logger.Info("Redis 연결 초기화", map[string]interface{}{
		"host": cfg.Host,
		"port": cfg.Port,
		"db":   cfg.DB,
	})

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client = nil
		logger.Error("Redis 연결 실패", err, map[string]interface{}{
			"host": cfg.Host,
			"port": cfg.Port,
		})
		return fmt.Errorf("redis 연결에 실패했습니다: %w", err)
	}

	logger.Info("Redis 연결 완료", nil)
	return nil
}

// GetClient Redis 클라이언트 반환 (연결 안 됐으면 nil)
func GetClient() *redis.Client {
	return client
}

// Close Redis 연결 종료
func Close() error {
	if client != nil {
		logger.Info("Redis 연결 종료", nil)
		return client.Close()
	}
	return nil
}

// AcquireEmailSlot 수신자별 견적 메일 발송 슬롯 획득
//
// SETNX로 수신자당 window 동안 한 번만 발송을 허용한다.
// Redis가 없으면 제한 없이 항상 허용한다
func AcquireEmailSlot(ctx context.Context, email string, window time.Duration) (bool, error) {
	if client == nil {
		return true, nil
	}

	key := fmt.Sprintf("quote_email:%s", email)
	ok, err := client.SetNX(ctx, key, "sent", window).Result()
	if err != nil {
		logger.Error("메일 발송 제한 확인 실패", err, map[string]interface{}{
			"email": email,
		})
		return false, err
	}
	return ok, nil
}

// ReleaseEmailSlot 발송 슬롯 반환
// 발송 자체가 실패했을 때 수신자가 10분을 기다리지 않도록 키를 지운다
func ReleaseEmailSlot(ctx context.Context, email string) error {
	if client == nil {
		return nil
	}
	return client.Del(ctx, fmt.Sprintf("quote_email:%s", email)).Err()
}
