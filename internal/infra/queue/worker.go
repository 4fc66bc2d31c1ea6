package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadNotifier define o contrato de aviso para a equipe comercial.
type LeadNotifier interface {
	NotifyNewLead(event LeadEvent) error
	NotifyMeetingScheduled(event LeadEvent) error
}

// Worker consome os eventos de lead e dispara as notificações. Desacoplado
// do banco: tudo que ele precisa está no payload.
type Worker struct {
	Channel  *amqp.Channel
	Notifier LeadNotifier
}

func NewWorker(ch *amqp.Channel, notifier LeadNotifier) *Worker {
	return &Worker{Channel: ch, Notifier: notifier}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var event LeadEvent
			if err := json.Unmarshal(d.Body, &event); err != nil {
				log.Printf("❌ [WORKER] JSON Inválido: %s", err)
				// Mensagem malformada: rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			if err := w.processEvent(event); err != nil {
				log.Printf("❌ [WORKER] Erro ao notificar (%s): %s", event.Type, err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}

func (w *Worker) processEvent(event LeadEvent) error {
	switch event.Type {
	case EventLeadCreated:
		log.Printf("📥 [WORKER] Novo lead: %s (origem: %s)", event.Name, event.Origin)
		return w.Notifier.NotifyNewLead(event)

	case EventMeetingScheduled:
		log.Printf("📅 [WORKER] Reunião marcada com %s em %s", event.Name, event.MeetingDate)
		return w.Notifier.NotifyMeetingScheduled(event)

	case EventLeadUpdated, EventStageMoved:
		// Só auditoria por enquanto; o rastro persistente já está em activities.
		log.Printf("🔁 [WORKER] %s: lead %s (%s → %s)", event.Type, event.LeadID, event.OldStatus, event.NewStatus)
		return nil

	default:
		log.Printf("⚠️ Evento desconhecido: %s. Apenas logando.", event.Type)
		return nil
	}
}
