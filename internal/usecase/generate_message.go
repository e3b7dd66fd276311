package usecase

import (
	"context"
	"log"

	"github.com/abcideas/leadflow/internal/entity"
	"github.com/abcideas/leadflow/internal/llm"
	"github.com/abcideas/leadflow/internal/infra/queue"
)

// Cuántas interacciones recientes se le pasan al generador de copy.
const recentInteractionsLimit = 5

type GenerateMessageInput struct {
	Canal    string `json:"canal"`
	Objetivo string `json:"objetivo"`
	Tono     string `json:"tono"`

	// Enviar=true encola además el mensaje generado para despacharlo por el
	// canal correspondiente (email / whatsapp).
	Enviar bool `json:"enviar"`
}

type GenerateMessageUseCase struct {
	LeadRepo        entity.LeadRepository
	InteractionRepo entity.InteractionRepository
	Queue           QueueProducerInterface
}

func NewGenerateMessageUseCase(
	leadRepo entity.LeadRepository,
	interRepo entity.InteractionRepository,
	producer QueueProducerInterface,
) *GenerateMessageUseCase {
	return &GenerateMessageUseCase{
		LeadRepo:        leadRepo,
		InteractionRepo: interRepo,
		Queue:           producer,
	}
}

func (uc *GenerateMessageUseCase) Execute(ctx context.Context, leadID string, input GenerateMessageInput) (*llm.Message, error) {
	if errs := ValidateGenerateMessageInput(input); len(errs) > 0 {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: joinValidationErrors(errs),
		}
	}

	lead, err := uc.LeadRepo.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	recientes, err := uc.InteractionRepo.FindRecentByLead(ctx, leadID, recentInteractionsLimit)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to load interactions: " + err.Error(),
		}
	}

	mensaje := llm.GenerateMessage(lead, llm.CopyContext{
		Canal:     input.Canal,
		Objetivo:  input.Objetivo,
		Tono:      input.Tono,
		Recientes: recientes,
	})

	if input.Enviar && uc.Queue != nil {
		payload := queue.OutreachPayload{
			LeadID:   lead.ID,
			Nombre:   lead.Nombre,
			Email:    lead.Email,
			Telefono: lead.Telefono,
			Canal:    mensaje.Canal,
			Cuerpo:   mensaje.Cuerpo,
		}
		if mensaje.Asunto != nil {
			payload.Asunto = *mensaje.Asunto
		}

		// El fallo al encolar no rompe la generación: el caller ya tiene su
		// mensaje y puede reintentar el envío.
		if err := uc.Queue.PublishOutreach(ctx, payload); err != nil {
			log.Printf("⚠️ No se pudo encolar el envío para %s: %v", lead.ID, err)
		}
	}

	return &mensaje, nil
}
