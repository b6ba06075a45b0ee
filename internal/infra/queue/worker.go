package queue

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/leadpilot/leadpilot/internal/infra/mail"
)

// MailSender is what the worker needs from the SMTP layer.
type MailSender interface {
	Send(ctx context.Context, template, to, subject, htmlBody string) error
}

// Worker drains the mail queue. Requests only ever enqueue; all SMTP latency
// and failure lives here.
type Worker struct {
	Channel *amqp.Channel
	Sender  MailSender
}

func NewWorker(ch *amqp.Channel, sender MailSender) *Worker {
	return &Worker{Channel: ch, Sender: sender}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		log.Fatalf("failed to register mail consumer: %s", err)
	}

	log.Printf("mail worker waiting on queue %q", queueName)

	for d := range msgs {
		var job EmailJob
		if err := json.Unmarshal(d.Body, &job); err != nil {
			log.Printf("mail worker: malformed job, dropping to DLQ: %s", err)
			d.Nack(false, false)
			continue
		}

		if err := w.process(context.Background(), job); err != nil {
			log.Printf("mail worker: delivery failed (template=%s to=%s): %s", job.Template, job.To, err)
			// No requeue: a send that failed once is already in the email
			// log, and the DLQ keeps the payload for manual inspection.
			d.Nack(false, false)
			continue
		}

		d.Ack(false)
	}
}

func (w *Worker) process(ctx context.Context, job EmailJob) error {
	rendered, err := mail.RenderTemplate(mail.TemplateName(job.Template), job.Data)
	if errors.Is(err, mail.ErrUnknownTemplate) {
		// A bad template name is a producer bug, not a transient failure.
		return err
	}
	if err != nil {
		return err
	}

	return w.Sender.Send(ctx, job.Template, job.To, rendered.Subject, rendered.HTML)
}
