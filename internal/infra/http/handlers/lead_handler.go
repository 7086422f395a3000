package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-leads/internal/usecase"
)


type LeadHandler struct {
	enrichUC *usecase.EnrichBatchUseCase
	leadRepo entity.LeadRepositoryInterface
}


func NewLeadHandler(enrichUC *usecase.EnrichBatchUseCase, leadRepo entity.LeadRepositoryInterface) *LeadHandler {
	return &LeadHandler{
		enrichUC: enrichUC,
		leadRepo: leadRepo,
	}
}


type BatchRequest struct {
	// Aceita tanto "Peter, Aditi" quanto ["Peter", "Aditi"]
	Names json.RawMessage `json:"names"`
}


type ErrorResponse struct {
	Message string `json:"message"`
}


func (h *LeadHandler) HandleBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	rawNames, ok := decodeNames(req.Names, h.enrichUC.Delimiter)
	if !ok {
		writeError(w, http.StatusBadRequest, "Names array required")
		return
	}

	leads, err := h.enrichUC.Execute(ctx, usecase.EnrichBatchInput{Names: rawNames})
	if err != nil {
		if usecase.IsDomainError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	for _, lead := range leads {
		middleware.RecordLeadEnriched(lead.Status)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(leads)
}


func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status := r.URL.Query().Get("status")

	leads, err := h.leadRepo.FindAll(ctx, status)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(leads)
}


// decodeNames normaliza o campo names: lista vira texto delimitado,
// texto passa direto. A limpeza fica toda no use case.
func decodeNames(raw json.RawMessage, delimiter string) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}

	var asList []string
	if err := json.Unmarshal(raw, &asList); err == nil {
		return strings.Join(asList, delimiter), true
	}

	var asText string
	if err := json.Unmarshal(raw, &asText); err == nil {
		return asText, true
	}

	return "", false
}


func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(ErrorResponse{Message: message})
}
