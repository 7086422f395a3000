package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/integration/nationalize"
	"github.com/xavierca1/ligue-leads/internal/usecase"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) InsertMany(ctx context.Context, leads []*entity.Lead) error {
	args := m.Called(ctx, leads)
	return args.Error(0)
}

func (m *MockLeadRepository) FindUnsyncedVerified(ctx context.Context) ([]*entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) MarkSynced(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLeadRepository) FindAll(ctx context.Context, status string) ([]*entity.Lead, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

// FakeInference - tabela fixa de palpites
type FakeInference struct {
	guesses map[string]*nationalize.CountryGuess
	err     error
}

func (f *FakeInference) Lookup(ctx context.Context, name string) (*nationalize.CountryGuess, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.guesses[name], nil
}

func newHandler(repo entity.LeadRepositoryInterface, inference usecase.InferenceGateway) *LeadHandler {
	uc := usecase.NewEnrichBatchUseCase(repo, inference, ",", 0)
	return NewLeadHandler(uc, repo)
}

// ============ TESTES ============

// TestHandleBatchWithNameList - O frontend manda lista de nomes
func TestHandleBatchWithNameList(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("InsertMany", mock.Anything, mock.Anything).Return(nil)

	inference := &FakeInference{
		guesses: map[string]*nationalize.CountryGuess{
			"Peter": {CountryID: "US", Probability: 0.73},
			"Aditi": {CountryID: "IN", Probability: 0.81},
			"Ravi":  {CountryID: "IN", Probability: 0.4},
		},
	}

	h := newHandler(mockRepo, inference)

	body := bytes.NewBufferString(`{"names": ["Peter", "Aditi", "", "Ravi"]}`)
	req := httptest.NewRequest("POST", "/api/leads/batch", body)
	rec := httptest.NewRecorder()

	h.HandleBatch(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var leads []*entity.Lead
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &leads))
	assert.Len(t, leads, 3)
	assert.Equal(t, "Peter", leads[0].Name)
	assert.Equal(t, entity.StatusVerified, leads[0].Status)
	assert.Equal(t, "Ravi", leads[2].Name)
	assert.Equal(t, entity.StatusToCheck, leads[2].Status)
}

// TestHandleBatchWithRawText - Também aceita o texto delimitado cru
func TestHandleBatchWithRawText(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("InsertMany", mock.Anything, mock.Anything).Return(nil)

	inference := &FakeInference{
		guesses: map[string]*nationalize.CountryGuess{
			"Peter": {CountryID: "US", Probability: 0.73},
			"Aditi": {CountryID: "IN", Probability: 0.81},
		},
	}

	h := newHandler(mockRepo, inference)

	body := bytes.NewBufferString(`{"names": "Peter, Aditi"}`)
	req := httptest.NewRequest("POST", "/api/leads/batch", body)
	rec := httptest.NewRecorder()

	h.HandleBatch(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var leads []*entity.Lead
	json.Unmarshal(rec.Body.Bytes(), &leads)
	assert.Len(t, leads, 2)
}

// TestHandleBatchEmptyInput - Batch vazio é erro do cliente, sem side effects
func TestHandleBatchEmptyInput(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	h := newHandler(mockRepo, &FakeInference{})

	for _, payload := range []string{`{"names": []}`, `{"names": " , , "}`, `{}`} {
		req := httptest.NewRequest("POST", "/api/leads/batch", bytes.NewBufferString(payload))
		rec := httptest.NewRecorder()

		h.HandleBatch(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "payload: %s", payload)
	}

	mockRepo.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
}

// TestHandleBatchInvalidJSON
func TestHandleBatchInvalidJSON(t *testing.T) {
	h := newHandler(new(MockLeadRepository), &FakeInference{})

	req := httptest.NewRequest("POST", "/api/leads/batch", bytes.NewBufferString(`{names:`))
	rec := httptest.NewRecorder()

	h.HandleBatch(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestHandleBatchLookupFailure - Falha de inferência vira erro de servidor
func TestHandleBatchLookupFailure(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	h := newHandler(mockRepo, &FakeInference{err: errors.New("connection refused")})

	req := httptest.NewRequest("POST", "/api/leads/batch", bytes.NewBufferString(`{"names": ["Satoshi"]}`))
	rec := httptest.NewRecorder()

	h.HandleBatch(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	mockRepo.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
}

// TestHandleListWithStatusFilter
func TestHandleListWithStatusFilter(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("FindAll", mock.Anything, entity.StatusVerified).Return([]*entity.Lead{
		{ID: "id-1", Name: "Peter", Status: entity.StatusVerified},
	}, nil)

	h := newHandler(mockRepo, &FakeInference{})

	req := httptest.NewRequest("GET", "/api/leads?status=Verified", nil)
	rec := httptest.NewRecorder()

	h.HandleList(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var leads []*entity.Lead
	json.Unmarshal(rec.Body.Bytes(), &leads)
	assert.Len(t, leads, 1)
	assert.Equal(t, "Peter", leads[0].Name)
}

// TestHandleListRepoError
func TestHandleListRepoError(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("FindAll", mock.Anything, "").Return(nil, errors.New("pq: connection reset"))

	h := newHandler(mockRepo, &FakeInference{})

	req := httptest.NewRequest("GET", "/api/leads", nil)
	rec := httptest.NewRecorder()

	h.HandleList(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
