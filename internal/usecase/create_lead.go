package usecase

import (
	"context"

	"github.com/abcideas/leadflow/internal/entity"
)

type CreateLeadInput struct {
	Nombre         string `json:"nombre"`
	Email          string `json:"email"`
	Telefono       string `json:"telefono"`
	Empresa        string `json:"empresa"`
	Sector         string `json:"sector"`
	Fuente         string `json:"fuente"`
	MensajeInicial string `json:"mensaje_inicial"`
	Necesidades    string `json:"necesidades"`
}

type CreateLeadUseCase struct {
	Repo entity.LeadRepository
}

func NewCreateLeadUseCase(repo entity.LeadRepository) *CreateLeadUseCase {
	return &CreateLeadUseCase{Repo: repo}
}

// Execute crea el lead con estado "nuevo" y sin clasificación: los campos
// derivados solo los escribe el segmentador más adelante.
func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: joinValidationErrors(errs),
		}
	}

	lead, err := entity.NewLead(
		input.Nombre,
		input.Email,
		input.Telefono,
		input.Empresa,
		input.Sector,
		input.Fuente,
		input.MensajeInicial,
		input.Necesidades,
	)
	if err != nil {
		return nil, &DomainError{Code: "INVALID_LEAD", Message: err.Error()}
	}

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist lead: " + err.Error(),
		}
	}

	return lead, nil
}
