package mail

import (
	"testing"

	"recipe-assistant/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessage(t *testing.T) {
	t.Parallel()

	msg := string(buildMessage(
		"noreply@recipe-assistant.local",
		[]string{"user@example.com"},
		"Your Grocery List",
		"<h1>List</h1>",
	))

	assert.Contains(t, msg, "From: noreply@recipe-assistant.local\r\n")
	assert.Contains(t, msg, "To: user@example.com\r\n")
	assert.Contains(t, msg, "Subject: Your Grocery List\r\n")
	assert.Contains(t, msg, "Content-Type: text/html; charset=\"UTF-8\"\r\n")
	assert.Contains(t, msg, "\r\n\r\n<h1>List</h1>")
}

func TestSendWithoutHostFails(t *testing.T) {
	t.Parallel()

	m := NewSMTPMailer(&config.SMTPConfig{})
	err := m.Send([]string{"user@example.com"}, "subject", "<p>body</p>")
	assert.Error(t, err)
}
