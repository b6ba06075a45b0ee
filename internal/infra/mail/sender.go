package mail

import (
	"context"
	"fmt"
	"log"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/leadpilot/leadpilot/internal/entity"
)

const sendTimeout = 15 * time.Second

// Sender wraps the SMTP transport. Every attempt, success or failure, lands
// in the email log.
type Sender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string

	EmailLog entity.EmailLogRepositoryInterface
}

func NewSender(host string, port int, user, password, from string, emailLog entity.EmailLogRepositoryInterface) *Sender {
	return &Sender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		EmailLog: emailLog,
	}
}

// Send delivers one message and records the attempt. The returned error is
// for the delivery worker's ack/nack decision; it is never surfaced to the
// request that triggered the email.
func (s *Sender) Send(ctx context.Context, template, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	// gomail has no context support, so the SMTP round trip runs in its own
	// goroutine bounded by sendTimeout.
	errCh := make(chan error, 1)
	go func() {
		errCh <- d.DialAndSend(m)
	}()

	var sendErr error
	select {
	case sendErr = <-errCh:
	case <-time.After(sendTimeout):
		sendErr = fmt.Errorf("smtp send timed out after %s", sendTimeout)
	case <-ctx.Done():
		sendErr = ctx.Err()
	}

	status, errMsg := entity.EmailStatusSent, ""
	if sendErr != nil {
		status = entity.EmailStatusFailed
		errMsg = sendErr.Error()
		log.Printf("email send failed (template=%s to=%s): %v", template, to, sendErr)
	}

	entry := entity.NewEmailLogEntry(to, subject, template, status, errMsg)
	if err := s.EmailLog.Append(context.WithoutCancel(ctx), entry); err != nil {
		log.Printf("warning: failed to append email log: %v", err)
	}

	return sendErr
}
