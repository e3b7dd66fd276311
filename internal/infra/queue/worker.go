package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/abcideas/leadflow/internal/infra/http/middleware"
)

// EmailSender despacha mensajes generados por email.
type EmailSender interface {
	SendOutreach(to, asunto, cuerpo string) error
}

// WhatsAppSender despacha mensajes generados por whatsapp.
type WhatsAppSender interface {
	SendText(phone, body string) error
}

type Worker struct {
	Channel  *amqp.Channel
	Email    EmailSender
	WhatsApp WhatsAppSender
}

func NewWorker(ch *amqp.Channel, email EmailSender, whatsapp WhatsAppSender) *Worker {
	return &Worker{
		Channel:  ch,
		Email:    email,
		WhatsApp: whatsapp,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual, que es más seguro)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ Fallo al registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload OutreachPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON inválido: %s", err)
				// Mensaje malformado: a la DLQ, sin requeue, para no atascar la cola.
				d.Nack(false, false)
				continue
			}

			log.Printf("📤 [WORKER] Despachando mensaje para %s por %s", payload.Nombre, payload.Canal)

			if err := w.dispatch(payload); err != nil {
				log.Printf("❌ [WORKER] Fallo en el envío: %s", err)
				middleware.RecordOutreachError(payload.Canal)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker de outreach esperando en la cola '%s'", queueName)
	<-forever
}

func (w *Worker) dispatch(payload OutreachPayload) error {
	switch payload.Canal {
	case "email":
		if payload.Email == "" {
			log.Printf("⚠️ [WORKER] Lead %s sin email, se descarta el envío", payload.LeadID)
			return nil
		}
		return w.Email.SendOutreach(payload.Email, payload.Asunto, payload.Cuerpo)

	case "whatsapp":
		if payload.Telefono == "" {
			log.Printf("⚠️ [WORKER] Lead %s sin teléfono, se descarta el envío", payload.LeadID)
			return nil
		}
		return w.WhatsApp.SendText(payload.Telefono, payload.Cuerpo)

	default:
		// linkedin y canales futuros aún no tienen integración de salida:
		// se registra y se confirma para sacarlo de la cola.
		log.Printf("⚠️ [WORKER] Canal sin despacho automático: %s. Solo registrado.", payload.Canal)
		return nil
	}
}
