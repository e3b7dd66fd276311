package usecase

import (
	"context"

	"github.com/abcideas/leadflow/internal/entity"
	"github.com/abcideas/leadflow/internal/llm"
)

type SegmentLeadUseCase struct {
	Repo entity.LeadRepository
}

func NewSegmentLeadUseCase(repo entity.LeadRepository) *SegmentLeadUseCase {
	return &SegmentLeadUseCase{Repo: repo}
}

// Execute clasifica el lead y persiste los tres campos derivados de golpe.
// El segmentador en sí nunca falla; los únicos errores posibles vienen del
// repositorio (lead inexistente o fallo de escritura).
func (uc *SegmentLeadUseCase) Execute(ctx context.Context, leadID string) (*llm.Segmentation, error) {
	lead, err := uc.Repo.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	resultado := llm.Segment(lead)

	err = uc.Repo.SaveClassification(ctx, lead.ID, entity.Classification{
		EtapaFunnel:  resultado.EtapaFunnel,
		Temperatura:  resultado.Temperatura,
		TipoContacto: resultado.TipoContacto,
	})
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist classification: " + err.Error(),
		}
	}

	return &resultado, nil
}
