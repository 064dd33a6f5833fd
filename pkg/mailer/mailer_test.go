package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onnuriprint/onnuriprint-backend/config"
)

func TestSend_DevModeWithoutCredentials(t *testing.T) {
	m := New(&config.MailConfig{SMTPHost: "smtp.naver.com", SMTPPort: "587"})

	err := m.Send(&Message{To: "customer@example.com", Subject: "견적서", TextBody: "본문"})

	assert.NoError(t, err)
}

func TestBuildMessage_MultipartAlternative(t *testing.T) {
	payload := string(buildMessage("print7123@naver.com", &Message{
		To:       "customer@example.com",
		Subject:  "견적서",
		HTMLBody: "<html><body>안내</body></html>",
		TextBody: "안내",
	}))

	assert.Contains(t, payload, "From: print7123@naver.com")
	assert.Contains(t, payload, "To: customer@example.com")
	assert.Contains(t, payload, "multipart/alternative")
	assert.Contains(t, payload, "text/plain; charset=UTF-8")
	assert.Contains(t, payload, "text/html; charset=UTF-8")
	// 텍스트 파트가 HTML 파트보다 먼저 와야 한다
	assert.Less(t,
		strings.Index(payload, "text/plain"),
		strings.Index(payload, "text/html"))
	assert.Contains(t, payload, "--"+multipartBoundary+"--")
}

func TestBuildMessage_SinglePart(t *testing.T) {
	htmlOnly := string(buildMessage("a@b.c", &Message{To: "x@y.z", Subject: "s", HTMLBody: "<p>hi</p>"}))
	assert.Contains(t, htmlOnly, "Content-Type: text/html; charset=UTF-8")
	assert.NotContains(t, htmlOnly, "multipart")

	textOnly := string(buildMessage("a@b.c", &Message{To: "x@y.z", Subject: "s", TextBody: "hi"}))
	assert.Contains(t, textOnly, "Content-Type: text/plain; charset=UTF-8")
	assert.NotContains(t, textOnly, "multipart")
}

func TestEncodeSubject(t *testing.T) {
	encoded := encodeSubject("[온누리인쇄나라] 견적서")

	assert.True(t, strings.HasPrefix(encoded, "=?UTF-8?B?"))
	assert.True(t, strings.HasSuffix(encoded, "?="))
}
