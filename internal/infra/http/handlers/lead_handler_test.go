package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/abcideas/leadflow/internal/entity"
	"github.com/abcideas/leadflow/internal/infra/http/handlers"
	"github.com/abcideas/leadflow/internal/usecase"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) SaveClassification(ctx context.Context, leadID string, c entity.Classification) error {
	args := m.Called(ctx, leadID, c)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newLeadHandler(repo *MockLeadRepository) *handlers.LeadHandler {
	createUC := usecase.NewCreateLeadUseCase(repo)
	updateUC := usecase.NewUpdateLeadUseCase(repo)
	return handlers.NewLeadHandler(createUC, updateUC, repo)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	chiCtx := chi.NewRouteContext()
	chiCtx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, chiCtx))
}

// ============ TESTS DEL HANDLER DE LEADS ============

func TestCreateLeadHandlerSuccess(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	handler := newLeadHandler(mockRepo)

	input := usecase.CreateLeadInput{
		Nombre:         "Laura Gómez",
		Email:          "laura@example.com",
		Empresa:        "Clínica Dental Sonrisa",
		Sector:         "salud",
		Fuente:         "Instagram Ads",
		MensajeInicial: "Me urge resolver esto, estamos perdiendo pacientes.",
	}

	body, _ := json.Marshal(input)
	req := httptest.NewRequest("POST", "/leads", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response entity.Lead
	json.NewDecoder(w.Body).Decode(&response)

	assert.NotEmpty(t, response.ID)
	assert.Equal(t, "nuevo", response.Estado)
	assert.Equal(t, "Laura Gómez", response.Nombre)
	// El lead nace sin clasificar; los campos derivados no viajan en la
	// respuesta hasta que alguien lo segmenta.
	assert.Nil(t, response.Classification)
}

func TestCreateLeadHandlerInvalidJSON(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	handler := newLeadHandler(mockRepo)

	req := httptest.NewRequest("POST", "/leads", bytes.NewReader([]byte("esto no es json")))
	w := httptest.NewRecorder()

	handler.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateLeadHandlerValidationError(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	handler := newLeadHandler(mockRepo)

	input := usecase.CreateLeadInput{
		Nombre: "Laura",
		Email:  "email-invalido", // sin @
	}

	body, _ := json.Marshal(input)
	req := httptest.NewRequest("POST", "/leads", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResponse map[string]string
	json.NewDecoder(w.Body).Decode(&errResponse)
	assert.NotEmpty(t, errResponse["error"])
}

func TestCreateLeadHandlerRateLimit(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	handler := newLeadHandler(mockRepo)

	input := usecase.CreateLeadInput{Nombre: "Bot"}
	body, _ := json.Marshal(input)

	var last int
	for i := 0; i < 11; i++ {
		req := httptest.NewRequest("POST", "/leads", bytes.NewReader(body))
		req.Header.Set("X-Forwarded-For", "203.0.113.7")
		w := httptest.NewRecorder()

		handler.Create(w, req)
		last = w.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, last)
}

func TestGetLeadHandlerNotFound(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("FindByID", mock.Anything, "lead-999").Return(nil, entity.ErrLeadNotFound)

	handler := newLeadHandler(mockRepo)

	req := httptest.NewRequest("GET", "/leads/lead-999", nil)
	req = withURLParam(req, "id", "lead-999")
	w := httptest.NewRecorder()

	handler.Get(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListLeadsHandler(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("FindAll", mock.Anything).Return([]*entity.Lead{
		{ID: "lead-1", Nombre: "Laura Gómez", Estado: "nuevo"},
		{ID: "lead-2", Nombre: "Javier López", Estado: "activo"},
	}, nil)

	handler := newLeadHandler(mockRepo)

	req := httptest.NewRequest("GET", "/leads", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []*entity.Lead
	json.NewDecoder(w.Body).Decode(&response)
	assert.Len(t, response, 2)
}

func TestDeleteLeadHandler(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Delete", mock.Anything, "lead-1").Return(nil)

	handler := newLeadHandler(mockRepo)

	req := httptest.NewRequest("DELETE", "/leads/lead-1", nil)
	req = withURLParam(req, "id", "lead-1")
	w := httptest.NewRecorder()

	handler.Delete(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDeleteLeadHandlerNotFound(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Delete", mock.Anything, "lead-999").Return(entity.ErrLeadNotFound)

	handler := newLeadHandler(mockRepo)

	req := httptest.NewRequest("DELETE", "/leads/lead-999", nil)
	req = withURLParam(req, "id", "lead-999")
	w := httptest.NewRecorder()

	handler.Delete(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSegmentHandlerSuccess(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	lead := &entity.Lead{
		ID:             "lead-1",
		Nombre:         "Laura Gómez",
		Empresa:        "Clínica Dental Sonrisa",
		Sector:         "salud",
		MensajeInicial: "Me urge tener esto resuelto este mes.",
		Estado:         "nuevo",
	}

	mockRepo.On("FindByID", mock.Anything, "lead-1").Return(lead, nil)
	mockRepo.On("SaveClassification", mock.Anything, "lead-1", mock.Anything).Return(nil)

	segmentUC := usecase.NewSegmentLeadUseCase(mockRepo)
	handler := handlers.NewSegmentHandler(segmentUC, nil)

	req := httptest.NewRequest("POST", "/leads/lead-1/segmentar", nil)
	req = withURLParam(req, "id", "lead-1")
	w := httptest.NewRecorder()

	handler.Segment(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	json.NewDecoder(w.Body).Decode(&response)
	assert.Equal(t, entity.TempCaliente, response["temperatura"])
	assert.Equal(t, entity.EtapaDecision, response["etapa_funnel"])
}
