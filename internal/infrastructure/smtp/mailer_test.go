package smtp

import (
	"errors"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	addr string
	auth smtp.Auth
	from string
	to   []string
	msg  string
}

func newTestMailer(c *captured, err error) *mailer {
	return &mailer{
		host: "mail.local",
		port: "1025",
		from: "no-reply@gcn.nasa.gov",
		send: func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			*c = captured{addr: addr, auth: a, from: from, to: to, msg: string(msg)}
			return err
		},
	}
}

func TestSendEmail(t *testing.T) {
	var c captured
	m := newTestMailer(&c, nil)

	require.NoError(t, m.SendEmail("alice@example.org", "Test", "hello"))
	assert.Equal(t, "mail.local:1025", c.addr)
	assert.Nil(t, c.auth)
	assert.Equal(t, "no-reply@gcn.nasa.gov", c.from)
	assert.Equal(t, []string{"alice@example.org"}, c.to)
	assert.Contains(t, c.msg, "To: alice@example.org\r\n")
	assert.Contains(t, c.msg, "Subject: Test\r\n")
	assert.Contains(t, c.msg, "\r\n\r\nhello")
}

func TestSendEmail_UsesAuthWhenConfigured(t *testing.T) {
	var c captured
	m := newTestMailer(&c, nil)
	m.username, m.password = "user", "pass"

	require.NoError(t, m.SendEmail("alice@example.org", "Test", "hello"))
	assert.NotNil(t, c.auth)
}

func TestSendEmail_RejectsHeaderInjection(t *testing.T) {
	var c captured
	m := newTestMailer(&c, nil)

	err := m.SendEmail("alice@example.org\r\nBcc: eve@example.org", "Test", "hello")
	assert.Error(t, err)
	assert.Empty(t, c.addr)
}

func TestSendEmail_PropagatesError(t *testing.T) {
	var c captured
	m := newTestMailer(&c, errors.New("connection refused"))
	assert.ErrorContains(t, m.SendEmail("alice@example.org", "Test", "hello"), "connection refused")
}
