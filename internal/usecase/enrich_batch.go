package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/integration/nationalize"
)

const DefaultMaxConcurrentLookups = 10

type EnrichBatchUseCase struct {
	LeadRepo  entity.LeadRepositoryInterface
	Inference InferenceGateway

	Delimiter            string
	MaxConcurrentLookups int
}

func NewEnrichBatchUseCase(
	leadRepo entity.LeadRepositoryInterface,
	inference InferenceGateway,
	delimiter string,
	maxConcurrentLookups int,
) *EnrichBatchUseCase {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	if maxConcurrentLookups <= 0 {
		maxConcurrentLookups = DefaultMaxConcurrentLookups
	}
	return &EnrichBatchUseCase{
		LeadRepo:             leadRepo,
		Inference:            inference,
		Delimiter:            delimiter,
		MaxConcurrentLookups: maxConcurrentLookups,
	}
}


// Execute enriquece o batch inteiro: uma consulta por nome, em paralelo,
// e grava tudo de uma vez. Se qualquer consulta falhar, nada é persistido.
func (uc *EnrichBatchUseCase) Execute(ctx context.Context, input EnrichBatchInput) ([]*entity.Lead, error) {

	names := CleanNames(input.Names, uc.Delimiter)
	if len(names) == 0 {
		return nil, &DomainError{
			Code:    CodeEmptyBatch,
			Message: "nenhum nome válido no batch",
		}
	}

	// Fan-out: cada goroutine escreve só no seu próprio slot,
	// então a ordem de saída é a ordem de entrada
	guesses := make([]*nationalize.CountryGuess, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.MaxConcurrentLookups)

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			guess, err := uc.Inference.Lookup(gctx, name)
			if err != nil {
				return fmt.Errorf("lookup de '%s' falhou: %w", name, err)
			}
			guesses[i] = guess
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, &TechnicalError{
			Code:    CodeBatchLookupFailed,
			Message: "falha na inferência do batch: " + err.Error(),
		}
	}

	leads := make([]*entity.Lead, len(names))
	for i, name := range names {
		country := "Unknown"
		probability := 0.0

		if guesses[i] != nil {
			country = guesses[i].CountryID
			probability = guesses[i].Probability
		}

		leads[i] = &entity.Lead{
			Name:        name,
			Country:     country,
			Probability: probability,
			Status:      entity.StatusFor(probability),
			SyncedToCRM: false,
		}
	}

	if err := uc.LeadRepo.InsertMany(ctx, leads); err != nil {
		return nil, &TechnicalError{
			Code:    CodeStoreWriteError,
			Message: "falha ao persistir batch: " + err.Error(),
		}
	}

	return leads, nil
}
