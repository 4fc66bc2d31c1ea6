package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Tipos de evento publicados após mutações bem-sucedidas.
const (
	EventLeadCreated      = "lead.created"
	EventLeadUpdated      = "lead.updated"
	EventStageMoved       = "lead.stage_moved"
	EventMeetingScheduled = "lead.meeting_scheduled"
)

type LeadEvent struct {
	Type   string `json:"type"`
	LeadID string `json:"lead_id"`

	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Source string `json:"source,omitempty"`
	Origin string `json:"origin,omitempty"` // Webhook, Importação CSV, API

	OldStatus string `json:"old_status,omitempty"`
	NewStatus string `json:"new_status,omitempty"`

	MeetingDate string `json:"meeting_date,omitempty"`
	MeetingTime string `json:"meeting_time,omitempty"`

	OccurredAt time.Time `json:"occurred_at"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishLeadEvent(ctx context.Context, event LeadEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("erro ao converter evento: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco
		},
	)

	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	return nil
}
