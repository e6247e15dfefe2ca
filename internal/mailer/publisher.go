package mailer

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/MarkAnthonyMontano/sis-superadmin-backend/internal/config"
	"github.com/MarkAnthonyMontano/sis-superadmin-backend/internal/domain"
)

// QueueName is the durable queue the API publishes to and the mail worker
// consumes from.
const QueueName = "email_queue"

// Publisher hands a mail message to the dispatch side. A publish failure
// surfaces to the caller; nothing is retried here.
type Publisher interface {
	Publish(msg *domain.MailMessage) error
}

type AMQPPublisher struct {
	cfg     *config.Config
	channel *amqp.Channel
}

func NewAMQPPublisher(cfg *config.Config, channel *amqp.Channel) *AMQPPublisher {
	return &AMQPPublisher{
		cfg:     cfg,
		channel: channel,
	}
}

// DeclareQueue makes sure the queue exists before anything publishes to it.
func DeclareQueue(channel *amqp.Channel) error {
	_, err := channel.QueueDeclare(
		QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	return err
}

func (p *AMQPPublisher) Publish(msg *domain.MailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(p.cfg.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return p.channel.PublishWithContext(
		ctx,
		"",
		QueueName,
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
