package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/abcideas/leadflow/internal/entity"
)

// UpdateLeadInput es un patch parcial: los punteros en nil se dejan como
// están. Solo cubre los campos de entrada y el estado; la clasificación
// derivada no se puede tocar por aquí.
type UpdateLeadInput struct {
	Nombre         *string `json:"nombre"`
	Email          *string `json:"email"`
	Telefono       *string `json:"telefono"`
	Empresa        *string `json:"empresa"`
	Sector         *string `json:"sector"`
	Fuente         *string `json:"fuente"`
	MensajeInicial *string `json:"mensaje_inicial"`
	Necesidades    *string `json:"necesidades"`
	Estado         *string `json:"estado"`
}

type UpdateLeadUseCase struct {
	Repo entity.LeadRepository
}

func NewUpdateLeadUseCase(repo entity.LeadRepository) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{Repo: repo}
}

func (uc *UpdateLeadUseCase) Execute(ctx context.Context, leadID string, input UpdateLeadInput) (*entity.Lead, error) {
	lead, err := uc.Repo.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	applyString(&lead.Nombre, input.Nombre)
	applyString(&lead.Email, input.Email)
	applyString(&lead.Telefono, input.Telefono)
	applyString(&lead.Empresa, input.Empresa)
	applyString(&lead.Sector, input.Sector)
	applyString(&lead.Fuente, input.Fuente)
	applyString(&lead.MensajeInicial, input.MensajeInicial)
	applyString(&lead.Necesidades, input.Necesidades)
	applyString(&lead.Estado, input.Estado)

	if strings.TrimSpace(lead.Nombre) == "" {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "nombre is required"}
	}

	lead.ActualizadoEn = time.Now()

	if err := uc.Repo.Update(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to update lead: " + err.Error(),
		}
	}

	return lead, nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
