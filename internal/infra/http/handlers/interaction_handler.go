package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abcideas/leadflow/internal/entity"
	"github.com/abcideas/leadflow/internal/usecase"
)

type InteractionHandler struct {
	RecordUC *usecase.RecordInteractionUseCase
	LeadRepo entity.LeadRepository
	Repo     entity.InteractionRepository
}

func NewInteractionHandler(recordUC *usecase.RecordInteractionUseCase, leadRepo entity.LeadRepository, repo entity.InteractionRepository) *InteractionHandler {
	return &InteractionHandler{
		RecordUC: recordUC,
		LeadRepo: leadRepo,
		Repo:     repo,
	}
}

// List (GET /leads/{id}/interacciones) devuelve el historial completo, de la
// más antigua a la más reciente.
func (h *InteractionHandler) List(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")

	if _, err := h.LeadRepo.FindByID(r.Context(), leadID); err != nil {
		respondError(w, err)
		return
	}

	inters, err := h.Repo.FindByLead(r.Context(), leadID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, inters)
}

// Create (POST /leads/{id}/interacciones)
func (h *InteractionHandler) Create(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")

	var input usecase.RecordInteractionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido"})
		return
	}

	inter, err := h.RecordUC.Execute(r.Context(), leadID, input)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, inter)
}
