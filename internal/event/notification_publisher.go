package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// NotificationPublisher publishes workflow events to RabbitMQ. Publishing is
// best-effort from the workflow's point of view: callers log failures but do
// not roll back the triggering write.
type NotificationPublisher struct {
	conn              *RabbitMQConnection
	messagesPublished int64
	messagesFailed    int64
	lastPublishTime   time.Time
}

func NewNotificationPublisher(conn *RabbitMQConnection) *NotificationPublisher {
	return &NotificationPublisher{
		conn:            conn,
		lastPublishTime: time.Now(),
	}
}

// Publish sends one workflow event to the shared queue.
func (p *NotificationPublisher) Publish(ctx context.Context, evt WorkflowEvent) error {
	_, err := p.conn.Channel.QueueDeclare(
		WorkflowEventQueue, // queue name
		true,               // durable
		false,              // delete when unused
		false,              // exclusive
		false,              // no-wait
		nil,                // arguments
	)
	if err != nil {
		p.messagesFailed++
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	evt.OccurredAt = time.Now()
	body, err := json.Marshal(evt)
	if err != nil {
		p.messagesFailed++
		return fmt.Errorf("failed to marshal workflow event: %w", err)
	}

	err = p.conn.Channel.PublishWithContext(
		ctx,
		"",                 // exchange
		WorkflowEventQueue, // routing key (queue name)
		false,              // mandatory
		false,              // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		p.messagesFailed++
		return fmt.Errorf("failed to publish workflow event: %w", err)
	}

	p.messagesPublished++
	p.lastPublishTime = time.Now()

	slog.Info("Workflow event published",
		"queue", WorkflowEventQueue,
		"type", evt.Type,
	)
	return nil
}

// PublishIssuanceCreated announces a new binding policy record.
func (p *NotificationPublisher) PublishIssuanceCreated(ctx context.Context, issuanceID uuid.UUID, policyNumber string, sellerID uuid.UUID) error {
	return p.Publish(ctx, WorkflowEvent{
		Type:  TypeIssuanceCreated,
		Title: "Policy Issued",
		Body:  fmt.Sprintf("Policy %s has been issued.", policyNumber),
		Data: map[string]any{
			"issuance_id":   issuanceID.String(),
			"policy_number": policyNumber,
			"seller_id":     sellerID.String(),
		},
	})
}

// PublishIssuanceVoided announces a status change to void.
func (p *NotificationPublisher) PublishIssuanceVoided(ctx context.Context, issuanceID uuid.UUID, policyNumber string) error {
	return p.Publish(ctx, WorkflowEvent{
		Type:  TypeIssuanceVoided,
		Title: "Policy Voided",
		Body:  fmt.Sprintf("Policy %s has been voided.", policyNumber),
		Data: map[string]any{
			"issuance_id":   issuanceID.String(),
			"policy_number": policyNumber,
		},
	})
}

// PublishCollectionPaid announces a completed payment.
func (p *NotificationPublisher) PublishCollectionPaid(ctx context.Context, collectionID, issuanceID uuid.UUID, receiptNumber string, amount float64) error {
	return p.Publish(ctx, WorkflowEvent{
		Type:  TypeCollectionPaid,
		Title: "Payment Received",
		Body:  fmt.Sprintf("Receipt %s recorded for %.2f.", receiptNumber, amount),
		Data: map[string]any{
			"collection_id":  collectionID.String(),
			"issuance_id":    issuanceID.String(),
			"receipt_number": receiptNumber,
		},
	})
}

// GetMetrics returns publisher metrics
func (p *NotificationPublisher) GetMetrics() map[string]any {
	return map[string]any{
		"messages_published": p.messagesPublished,
		"messages_failed":    p.messagesFailed,
		"last_publish_time":  p.lastPublishTime,
		"queue":              WorkflowEventQueue,
	}
}

// HealthCheck reports whether the underlying connection is usable.
func (p *NotificationPublisher) HealthCheck() PublisherHealthStatus {
	isHealthy := p.conn != nil && p.conn.Connection != nil && !p.conn.Connection.IsClosed()

	return PublisherHealthStatus{
		IsHealthy:         isHealthy,
		MessagesPublished: p.messagesPublished,
		MessagesFailed:    p.messagesFailed,
		LastPublishTime:   p.lastPublishTime,
		Queue:             WorkflowEventQueue,
	}
}

// PublisherHealthStatus represents the health status of the publisher
type PublisherHealthStatus struct {
	IsHealthy         bool      `json:"is_healthy"`
	MessagesPublished int64     `json:"messages_published"`
	MessagesFailed    int64     `json:"messages_failed"`
	LastPublishTime   time.Time `json:"last_publish_time"`
	Queue             string    `json:"queue"`
}
