package usecase

import (
	"context"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/integration/nationalize"
)

type InferenceGateway interface {
	Lookup(ctx context.Context, name string) (*nationalize.CountryGuess, error)
}

// CRMSink é o destino dos leads verificados (push fire-and-forget).
// Em produção é o publish durável no RabbitMQ; o consumidor entrega no Kommo.
type CRMSink interface {
	PushLead(ctx context.Context, lead *entity.Lead) error
}

type DigestMailer interface {
	SendLeadDigest(to string, leads []*entity.Lead) error
}
