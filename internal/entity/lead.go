package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Etapas del funnel
const (
	EtapaAwareness     = "awareness"
	EtapaConsideration = "consideration"
	EtapaDecision      = "decision"
)

// Temperaturas
const (
	TempFrio     = "frio"
	TempTibio    = "tibio"
	TempCaliente = "caliente"
)

// Tipos de contacto
const (
	ContactoLead        = "lead"
	ContactoOportunidad = "oportunidad"
	ContactoCliente     = "cliente"
)

// Classification agrupa los tres campos derivados que SOLO escribe el
// segmentador. Un Lead sin segmentar lleva el puntero en nil: o están los
// tres campos, o no está ninguno.
type Classification struct {
	EtapaFunnel  string `json:"etapa_funnel,omitempty"`
	Temperatura  string `json:"temperatura,omitempty"`
	TipoContacto string `json:"tipo_contacto,omitempty"`
}

type Lead struct {
	ID             string `json:"id"`
	Nombre         string `json:"nombre"`
	Email          string `json:"email,omitempty"`
	Telefono       string `json:"telefono,omitempty"`
	Empresa        string `json:"empresa,omitempty"`
	Sector         string `json:"sector,omitempty"`
	Fuente         string `json:"fuente,omitempty"`
	MensajeInicial string `json:"mensaje_inicial,omitempty"`
	Necesidades    string `json:"necesidades,omitempty"`

	*Classification

	// Estado de ciclo de vida (nuevo, activo, en_propuesta...). Lo fija el
	// creador y lo puede cambiar cualquier update; el segmentador no lo toca.
	Estado string `json:"estado"`

	CreadoEn      time.Time `json:"creado_en"`
	ActualizadoEn time.Time `json:"actualizado_en"`
}

// Factory
func NewLead(nombre, email, telefono, empresa, sector, fuente, mensajeInicial, necesidades string) (*Lead, error) {
	lead := &Lead{
		ID:             uuid.New().String(),
		Nombre:         nombre,
		Email:          email,
		Telefono:       telefono,
		Empresa:        empresa,
		Sector:         sector,
		Fuente:         fuente,
		MensajeInicial: mensajeInicial,
		Necesidades:    necesidades,
		Estado:         "nuevo",
		CreadoEn:       time.Now(),
		ActualizadoEn:  time.Now(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Nombre == "" {
		return errors.New("nombre is required")
	}
	return nil
}

type LeadRepository interface {
	Create(ctx context.Context, lead *Lead) error
	FindByID(ctx context.Context, id string) (*Lead, error)
	FindAll(ctx context.Context) ([]*Lead, error)
	Update(ctx context.Context, lead *Lead) error
	SaveClassification(ctx context.Context, leadID string, c Classification) error

	// Delete borra el lead y sus interacciones en la misma transacción.
	Delete(ctx context.Context, id string) error
}
