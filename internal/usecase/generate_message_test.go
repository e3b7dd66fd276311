package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/abcideas/leadflow/internal/entity"
	"github.com/abcideas/leadflow/internal/infra/queue"
	"github.com/abcideas/leadflow/internal/usecase"
)

func leadClasificado() *entity.Lead {
	return &entity.Lead{
		ID:       "lead-123",
		Nombre:   "Laura Gómez",
		Email:    "laura@example.com",
		Telefono: "34600111222",
		Empresa:  "Tienda Verde Online",
		Classification: &entity.Classification{
			EtapaFunnel:  entity.EtapaDecision,
			Temperatura:  entity.TempCaliente,
			TipoContacto: entity.ContactoLead,
		},
	}
}

func TestGenerateMessageSinEnvio(t *testing.T) {
	ctx := context.Background()

	mockLeads := new(MockLeadRepository)
	mockInters := new(MockInteractionRepository)
	mockQueue := new(MockQueueProducer)

	mockLeads.On("FindByID", ctx, "lead-123").Return(leadClasificado(), nil)
	mockInters.On("FindRecentByLead", ctx, "lead-123", 5).Return([]*entity.Interaction{}, nil)

	uc := usecase.NewGenerateMessageUseCase(mockLeads, mockInters, mockQueue)

	msg, err := uc.Execute(ctx, "lead-123", usecase.GenerateMessageInput{
		Canal:    "whatsapp",
		Objetivo: "conseguir_llamada",
	})

	assert.NoError(t, err)
	assert.Nil(t, msg.Asunto)
	assert.Equal(t, "whatsapp", msg.Canal)
	assert.Equal(t, entity.TempCaliente, msg.Temperatura)

	// Sin enviar=true no se toca la cola.
	mockQueue.AssertNotCalled(t, "PublishOutreach", mock.Anything, mock.Anything)
}

func TestGenerateMessageConEnvioEncola(t *testing.T) {
	ctx := context.Background()

	mockLeads := new(MockLeadRepository)
	mockInters := new(MockInteractionRepository)
	mockQueue := new(MockQueueProducer)

	mockLeads.On("FindByID", ctx, "lead-123").Return(leadClasificado(), nil)
	mockInters.On("FindRecentByLead", ctx, "lead-123", 5).Return([]*entity.Interaction{}, nil)
	mockQueue.On("PublishOutreach", ctx, mock.Anything).Return(nil)

	uc := usecase.NewGenerateMessageUseCase(mockLeads, mockInters, mockQueue)

	msg, err := uc.Execute(ctx, "lead-123", usecase.GenerateMessageInput{
		Canal:    "whatsapp",
		Objetivo: "conseguir_llamada",
		Enviar:   true,
	})

	assert.NoError(t, err)

	mockQueue.AssertCalled(t, "PublishOutreach", ctx, mock.MatchedBy(func(p queue.OutreachPayload) bool {
		return p.LeadID == "lead-123" &&
			p.Canal == "whatsapp" &&
			p.Telefono == "34600111222" &&
			p.Cuerpo == msg.Cuerpo
	}))
}

func TestGenerateMessageFalloDeColaNoRompe(t *testing.T) {
	ctx := context.Background()

	mockLeads := new(MockLeadRepository)
	mockInters := new(MockInteractionRepository)
	mockQueue := new(MockQueueProducer)

	mockLeads.On("FindByID", ctx, "lead-123").Return(leadClasificado(), nil)
	mockInters.On("FindRecentByLead", ctx, "lead-123", 5).Return([]*entity.Interaction{}, nil)
	mockQueue.On("PublishOutreach", ctx, mock.Anything).Return(assert.AnError)

	uc := usecase.NewGenerateMessageUseCase(mockLeads, mockInters, mockQueue)

	msg, err := uc.Execute(ctx, "lead-123", usecase.GenerateMessageInput{
		Canal:    "email",
		Objetivo: "seguimiento",
		Enviar:   true,
	})

	// El mensaje generado se devuelve aunque encolar falle.
	assert.NoError(t, err)
	assert.NotNil(t, msg)
}

func TestGenerateMessageValidaCanalYObjetivo(t *testing.T) {
	ctx := context.Background()

	mockLeads := new(MockLeadRepository)
	mockInters := new(MockInteractionRepository)

	uc := usecase.NewGenerateMessageUseCase(mockLeads, mockInters, nil)

	_, err := uc.Execute(ctx, "lead-123", usecase.GenerateMessageInput{})

	assert.True(t, usecase.IsDomainError(err))
	mockLeads.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestGenerateMessageLeadNoEncontrado(t *testing.T) {
	ctx := context.Background()

	mockLeads := new(MockLeadRepository)
	mockInters := new(MockInteractionRepository)

	mockLeads.On("FindByID", ctx, "no-existe").Return(nil, entity.ErrLeadNotFound)

	uc := usecase.NewGenerateMessageUseCase(mockLeads, mockInters, nil)

	msg, err := uc.Execute(ctx, "no-existe", usecase.GenerateMessageInput{
		Canal:    "email",
		Objetivo: "seguimiento",
	})

	assert.Nil(t, msg)
	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
}
