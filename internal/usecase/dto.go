package usecase

type EnrichBatchInput struct {
	// Names é o texto cru enviado pelo cliente: nomes separados por delimitador
	Names string `json:"names"`
}
