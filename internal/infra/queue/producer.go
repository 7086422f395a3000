package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/ligue-leads/internal/entity"
)


// LeadSyncPayload é a mensagem que viaja da varredura até o consumidor do CRM
type LeadSyncPayload struct {
	LeadID      string  `json:"lead_id"`
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	Probability float64 `json:"probability"`
}


type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}


func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}


// PushLead publica o lead verificado na fila de sincronização do CRM.
// Publicação durável: se o publish confirmar, o lead não se perde.
func (p *RabbitMQProducer) PushLead(ctx context.Context, lead *entity.Lead) error {
	payload := LeadSyncPayload{
		LeadID:      lead.ID,
		Name:        lead.Name,
		Country:     lead.Country,
		Probability: lead.Probability,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName, // ex.leads
		RoutingKey,   // k.lead-verified
		false,        // Mandatory
		false,        // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco (segurança!)
		},
	)

	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	return nil
}
