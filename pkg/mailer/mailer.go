package mailer

import (
	"encoding/base64"
	"fmt"
	"net/smtp"

	"github.com/onnuriprint/onnuriprint-backend/config"
	"github.com/onnuriprint/onnuriprint-backend/pkg/logger"
)

// Message 발송할 메일 한 통
// HTMLBody와 TextBody를 함께 주면 multipart/alternative로 발송한다
type Message struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

// Mailer 메일 발송 인터페이스
type Mailer interface {
	Send(msg *Message) error
}

type smtpMailer struct {
	cfg *config.MailConfig
}

// New SMTP 메일러 생성
func New(cfg *config.MailConfig) Mailer {
	return &smtpMailer{cfg: cfg}
}

const multipartBoundary = "onnuri-mail-boundary"

// Send 메일 발송
// SMTP 자격 증명이 비어 있으면 개발 모드로 간주하고 로그만 남긴다
func (m *smtpMailer) Send(msg *Message) error {
	if m.cfg.Username == "" || m.cfg.Password == "" {
		logger.Info("[개발 모드] 메일 발송 생략", map[string]interface{}{
			"to":      msg.To,
			"subject": msg.Subject,
		})
		return nil
	}

	payload := buildMessage(m.cfg.From, msg)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.SMTPHost)
	addr := m.cfg.SMTPHost + ":" + m.cfg.SMTPPort

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{msg.To}, payload); err != nil {
		logger.Error("메일 발송 실패", err, map[string]interface{}{
			"to":      msg.To,
			"subject": msg.Subject,
		})
		return fmt.Errorf("메일 발송에 실패했습니다: %w", err)
	}

	logger.Info("메일 발송 완료", map[string]interface{}{
		"to":      msg.To,
		"subject": msg.Subject,
	})
	return nil
}

// buildMessage RFC 5322 메시지 조립
func buildMessage(from string, msg *Message) []byte {
	headers := fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n",
		from, msg.To, encodeSubject(msg.Subject),
	)

	// 둘 중 하나만 있으면 단일 파트로 발송
	if msg.TextBody == "" {
		return []byte(headers +
			"Content-Type: text/html; charset=UTF-8\r\n\r\n" +
			msg.HTMLBody)
	}
	if msg.HTMLBody == "" {
		return []byte(headers +
			"Content-Type: text/plain; charset=UTF-8\r\n\r\n" +
			msg.TextBody)
	}

	body := fmt.Sprintf(
		"Content-Type: multipart/alternative; boundary=%s\r\n\r\n"+
			"--%s\r\n"+
			"Content-Type: text/plain; charset=UTF-8\r\n\r\n"+
			"%s\r\n"+
			"--%s\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n\r\n"+
			"%s\r\n"+
			"--%s--\r\n",
		multipartBoundary,
		multipartBoundary, msg.TextBody,
		multipartBoundary, msg.HTMLBody,
		multipartBoundary,
	)
	return []byte(headers + body)
}

// encodeSubject 한글 제목 RFC 2047 인코딩
func encodeSubject(subject string) string {
	return fmt.Sprintf("=?UTF-8?B?%s?=", base64.StdEncoding.EncodeToString([]byte(subject)))
}
