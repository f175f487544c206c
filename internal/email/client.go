package email

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/brotherhood/barbershop_backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/wneessen/go-mail"
)

// Message is a fully rendered email ready for the relay.
type Message struct {
	FromName    string
	FromAddress string
	To          string
	ReplyTo     string
	Subject     string
	HTMLBody    string
	TextBody    string
}

// Sender delivers a Message and returns the Message-ID assigned to it.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// Client sends mail through an authenticated SMTP relay.
type Client struct {
	host     string
	port     int
	user     string
	password string
}

// NewClient creates an SMTP client. The port must be numeric.
func NewClient(host, portStr, user, password string) (*Client, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP port %q: %w", portStr, err)
	}

	return &Client{
		host:     host,
		port:     port,
		user:     user,
		password: password,
	}, nil
}

// Send builds a multipart/alternative message (plain text plus HTML) and
// delivers it with a single dial. There is no retry.
func (c *Client) Send(ctx context.Context, msg Message) (string, error) {
	m, messageID, err := buildMsg(msg)
	if err != nil {
		return "", err
	}

	logger.Debugf("SMTP: connecting to %s:%d as user=%s", c.host, c.port, c.user)

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create SMTP client (host=%s port=%d): %w", c.host, c.port, err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return "", fmt.Errorf("failed to send mail (host=%s port=%d): %w", c.host, c.port, err)
	}
	return messageID, nil
}

func buildMsg(msg Message) (*mail.Msg, string, error) {
	m := mail.NewMsg()

	if err := m.FromFormat(msg.FromName, msg.FromAddress); err != nil {
		return nil, "", fmt.Errorf("invalid sender %q: %w", msg.FromAddress, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, "", fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return nil, "", fmt.Errorf("invalid reply-to %q: %w", msg.ReplyTo, err)
		}
	}
	m.Subject(msg.Subject)

	id := newMessageID(msg.FromAddress)
	m.SetMessageIDWithValue(id)
	m.SetDate()

	m.SetBodyString(mail.TypeTextPlain, msg.TextBody)
	m.AddAlternativeString(mail.TypeTextHTML, msg.HTMLBody)

	return m, "<" + id + ">", nil
}

// newMessageID returns "<uuid>@<sender domain>" without the angle brackets.
func newMessageID(fromAddress string) string {
	domain := "localhost"
	if at := strings.LastIndex(fromAddress, "@"); at >= 0 && at < len(fromAddress)-1 {
		domain = fromAddress[at+1:]
	}
	return uuid.NewString() + "@" + domain
}
