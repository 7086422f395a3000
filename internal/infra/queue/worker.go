package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/ligue-leads/internal/infra/http/middleware"
)

// CRMClient define o contrato do CRM de vendas (Kommo)
type CRMClient interface {
	CreateLead(ctx context.Context, input LeadSyncPayload) (int, error)
}

type Worker struct {
	Channel   *amqp.Channel
	CRMClient CRMClient
}

func NewWorker(ch *amqp.Channel, crmClient CRMClient) *Worker {
	return &Worker{
		Channel:   ch,
		CRMClient: crmClient,
	}
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
			var payload LeadSyncPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON Inválido: %s", err)
				// Mensagem podre (malformada). Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] Entregando lead %s (%s) no CRM", payload.Name, payload.Country)

			leadID, err := w.CRMClient.CreateLead(context.Background(), payload)
			if err != nil {
				log.Printf("❌ [WORKER] Erro na integração com o CRM: %s", err)
				middleware.RecordIntegrationError("kommo")

				// Vai pra DLQ para inspeção manual
				d.Nack(false, false)
				continue
			}

			log.Printf("✅ [WORKER] Lead %s criado no CRM (#%d)", payload.Name, leadID)
			d.Ack(false)
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}
