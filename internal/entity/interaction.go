package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Interaction es un mensaje intercambiado con un lead por algún canal.
// Pertenece a exactamente un Lead y muere con él.
type Interaction struct {
	ID        string    `json:"id"`
	LeadID    string    `json:"lead_id"`
	Canal     string    `json:"canal"` // email / whatsapp / linkedin
	Rol       string    `json:"rol"`   // agente / lead
	Mensaje   string    `json:"mensaje"`
	Tipo      string    `json:"tipo,omitempty"`      // primer_contacto / seguimiento / cierre / reactivacion
	Resultado string    `json:"resultado,omitempty"` // sin_respuesta / respondio / rechazo / cerro_llamada
	Fecha     time.Time `json:"fecha"`
}

func NewInteraction(leadID, canal, rol, mensaje, tipo, resultado string) (*Interaction, error) {
	inter := &Interaction{
		ID:        uuid.New().String(),
		LeadID:    leadID,
		Canal:     canal,
		Rol:       rol,
		Mensaje:   mensaje,
		Tipo:      tipo,
		Resultado: resultado,
		Fecha:     time.Now(),
	}

	if err := inter.Validate(); err != nil {
		return nil, err
	}

	return inter, nil
}

func (i *Interaction) Validate() error {
	if i.LeadID == "" {
		return errors.New("lead_id is required")
	}
	if i.Canal == "" {
		return errors.New("canal is required")
	}
	if i.Rol != "agente" && i.Rol != "lead" {
		return errors.New("rol must be agente or lead")
	}
	if i.Mensaje == "" {
		return errors.New("mensaje is required")
	}
	return nil
}

type InteractionRepository interface {
	Create(ctx context.Context, inter *Interaction) error

	// FindByLead devuelve el historial completo, de la más antigua a la más
	// reciente.
	FindByLead(ctx context.Context, leadID string) ([]*Interaction, error)

	// FindRecentByLead devuelve como mucho limit interacciones, de la más
	// reciente a la más antigua.
	FindRecentByLead(ctx context.Context, leadID string, limit int) ([]*Interaction, error)
}
