package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/onnuriprint/onnuriprint-backend/internal/app/service"
	"github.com/onnuriprint/onnuriprint-backend/internal/document"
	"github.com/onnuriprint/onnuriprint-backend/pkg/logger"
	"github.com/onnuriprint/onnuriprint-backend/pkg/mailer"
)

// LeadDigestScheduler 일일 리드 요약 메일 스케줄러
type LeadDigestScheduler struct {
	cron        *cron.Cron
	leadService service.LeadService
	mail        mailer.Mailer
	recipient   string
}

// NewLeadDigestScheduler 리드 요약 스케줄러 생성
// recipient는 요약을 받을 매장 메일 주소
func NewLeadDigestScheduler(leadService service.LeadService, mail mailer.Mailer, recipient string) *LeadDigestScheduler {
	return &LeadDigestScheduler{
		cron:        cron.New(),
		leadService: leadService,
		mail:        mail,
		recipient:   recipient,
	}
}

// Start 스케줄러 시작
func (s *LeadDigestScheduler) Start() error {
	// 매일 오전 9시에 전날 리드 요약 발송 (KST 기준)
	// cron 표현식: "0 9 * * *" = 매일 9시 0분
	_, err := s.cron.AddFunc("0 9 * * *", func() {
		if err := s.SendDigest(); err != nil {
			logger.Error("리드 요약 메일 발송 실패", err)
		}
	})
	if err != nil {
		logger.Error("리드 요약 스케줄 등록 실패", err)
		return err
	}

	s.cron.Start()
	logger.Info("리드 요약 스케줄러 시작 (매일 09:00)", nil)
	return nil
}

// Stop 스케줄러 중지
func (s *LeadDigestScheduler) Stop() {
	s.cron.Stop()
	logger.Info("리드 요약 스케줄러 중지", nil)
}

// SendDigest 지난 하루 동안 수집된 리드 요약을 메일로 발송
func (s *LeadDigestScheduler) SendDigest() error {
	since := time.Now().Add(-24 * time.Hour)
	leads, err := s.leadService.LeadsSince(since)
	if err != nil {
		return err
	}

	if len(leads) == 0 {
		logger.Info("발송할 리드 요약 없음", nil)
		return nil
	}

	body := fmt.Sprintf("[%s] 최근 24시간 견적 고객 %d명\n\n", document.CompanyName, len(leads))
	for _, lead := range leads {
		body += fmt.Sprintf("- %s (%s) 키워드: %s, 조회 %d회\n",
			lead.CustomerName, lead.CustomerEmail, lead.Keyword, lead.SearchCount)
	}

	msg := &mailer.Message{
		To:       s.recipient,
		Subject:  fmt.Sprintf("[%s] 일일 견적 고객 요약", document.CompanyName),
		TextBody: body,
	}
	if err := s.mail.Send(msg); err != nil {
		return err
	}

	logger.Info("리드 요약 메일 발송 완료", map[string]interface{}{
		"leads": len(leads),
		"to":    s.recipient,
	})
	return nil
}
