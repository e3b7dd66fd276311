package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/abcideas/leadflow/internal/entity"
	"github.com/abcideas/leadflow/internal/usecase"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// respondError mapea la jerarquía de errores del dominio a códigos HTTP:
// not-found a 404, errores de validación/dominio a 400 y el resto a 500.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrLeadNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case usecase.IsDomainError(err):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}
