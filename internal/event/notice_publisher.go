package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"marketplace-service/internal/models"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 2 * time.Second

// Channel is the subset of *amqp.Channel the publisher needs.
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// NoticePublisher mirrors cart confirmation notices onto the push queue.
type NoticePublisher struct {
	channel Channel

	mu                sync.Mutex
	declared          bool
	messagesPublished int64
	messagesFailed    int64
}

func NewNoticePublisher(channel Channel) *NoticePublisher {
	return &NoticePublisher{channel: channel}
}

// Notify publishes the notice and logs any failure; the cart action that
// raised it has already succeeded.
func (p *NoticePublisher) Notify(ctx context.Context, notice models.Notice) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := p.publish(ctx, notice); err != nil {
		slog.Error("failed to publish cart notice", "notice_id", notice.ID, "error", err)
	}
}

func (p *NoticePublisher) publish(ctx context.Context, notice models.Notice) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.declared {
		_, err := p.channel.QueueDeclare(
			PushNotiQueue, // queue name
			true,          // durable
			false,         // delete when unused
			false,         // exclusive
			false,         // no-wait
			nil,           // arguments
		)
		if err != nil {
			p.messagesFailed++
			return fmt.Errorf("failed to declare queue: %w", err)
		}
		p.declared = true
	}

	body, err := json.Marshal(NotificationEventPushModel{
		Title: cartNoticeTitle,
		Body:  notice.Message,
		Data: map[string]any{
			"notice_id":  notice.ID.String(),
			"created_at": notice.CreatedAt,
		},
	})
	if err != nil {
		p.messagesFailed++
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	err = p.channel.PublishWithContext(
		ctx,
		"",            // exchange
		PushNotiQueue, // routing key (queue name)
		false,         // mandatory
		false,         // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    notice.CreatedAt,
		},
	)
	if err != nil {
		p.messagesFailed++
		return fmt.Errorf("failed to publish notification event: %w", err)
	}

	p.messagesPublished++
	slog.Info("Notification event published", "queue", PushNotiQueue, "notice_id", notice.ID)
	return nil
}

// GetMetrics returns publisher metrics
func (p *NoticePublisher) GetMetrics() map[string]any {
	p.mu.Lock()
	defer p.mu.Unlock()
	return map[string]any{
		"messages_published": p.messagesPublished,
		"messages_failed":    p.messagesFailed,
		"queue":              PushNotiQueue,
	}
}
