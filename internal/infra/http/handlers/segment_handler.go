package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abcideas/leadflow/internal/infra/http/middleware"
	"github.com/abcideas/leadflow/internal/usecase"
)

// SegmentHandler expone las dos operaciones "tipo LLM": segmentar un lead y
// generar su siguiente mensaje de nutrición.
type SegmentHandler struct {
	SegmentUC  *usecase.SegmentLeadUseCase
	GenerateUC *usecase.GenerateMessageUseCase
}

func NewSegmentHandler(segmentUC *usecase.SegmentLeadUseCase, generateUC *usecase.GenerateMessageUseCase) *SegmentHandler {
	return &SegmentHandler{
		SegmentUC:  segmentUC,
		GenerateUC: generateUC,
	}
}

// Segment (POST /leads/{id}/segmentar)
func (h *SegmentHandler) Segment(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")

	resultado, err := h.SegmentUC.Execute(r.Context(), leadID)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.RecordSegmentation(resultado.Temperatura)
	respondJSON(w, http.StatusOK, resultado)
}

// NextMessage (POST /leads/{id}/siguiente-mensaje)
func (h *SegmentHandler) NextMessage(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")

	var input usecase.GenerateMessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido"})
		return
	}

	mensaje, err := h.GenerateUC.Execute(r.Context(), leadID, input)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.RecordMessageGenerated(mensaje.Canal, input.Objetivo)
	respondJSON(w, http.StatusOK, mensaje)
}
