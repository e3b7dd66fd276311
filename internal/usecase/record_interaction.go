package usecase

import (
	"context"

	"github.com/abcideas/leadflow/internal/entity"
)

type RecordInteractionInput struct {
	Canal     string `json:"canal"`
	Rol       string `json:"rol"`
	Mensaje   string `json:"mensaje"`
	Tipo      string `json:"tipo"`
	Resultado string `json:"resultado"`
}

type RecordInteractionUseCase struct {
	LeadRepo        entity.LeadRepository
	InteractionRepo entity.InteractionRepository
}

func NewRecordInteractionUseCase(leadRepo entity.LeadRepository, interRepo entity.InteractionRepository) *RecordInteractionUseCase {
	return &RecordInteractionUseCase{
		LeadRepo:        leadRepo,
		InteractionRepo: interRepo,
	}
}

func (uc *RecordInteractionUseCase) Execute(ctx context.Context, leadID string, input RecordInteractionInput) (*entity.Interaction, error) {
	if errs := ValidateRecordInteractionInput(input); len(errs) > 0 {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: joinValidationErrors(errs),
		}
	}

	// La interacción solo existe colgada de un lead vivo.
	if _, err := uc.LeadRepo.FindByID(ctx, leadID); err != nil {
		return nil, err
	}

	inter, err := entity.NewInteraction(leadID, input.Canal, input.Rol, input.Mensaje, input.Tipo, input.Resultado)
	if err != nil {
		return nil, &DomainError{Code: "INVALID_INTERACTION", Message: err.Error()}
	}

	if err := uc.InteractionRepo.Create(ctx, inter); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist interaction: " + err.Error(),
		}
	}

	return inter, nil
}
