package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/abcideas/leadflow/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `
	id, nombre, email, telefono, empresa, sector, fuente,
	mensaje_inicial, necesidades,
	etapa_funnel, temperatura, tipo_contacto,
	estado, creado_en, actualizado_en
`

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (
			id, nombre, email, telefono, empresa, sector, fuente,
			mensaje_inicial, necesidades, estado, creado_en, actualizado_en
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Nombre,
		nullString(lead.Email),
		nullString(lead.Telefono),
		nullString(lead.Empresa),
		nullString(lead.Sector),
		nullString(lead.Fuente),
		nullString(lead.MensajeInicial),
		nullString(lead.Necesidades),
		lead.Estado,
		lead.CreadoEn,
		lead.ActualizadoEn,
	)

	return err
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrLeadNotFound
		}
		return nil, err
	}

	return lead, nil
}

func (r *LeadRepository) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY creado_en DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []*entity.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

func (r *LeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	query := `
		UPDATE leads SET
			nombre = $1, email = $2, telefono = $3, empresa = $4,
			sector = $5, fuente = $6, mensaje_inicial = $7, necesidades = $8,
			estado = $9, actualizado_en = $10
		WHERE id = $11
	`

	res, err := r.DB.ExecContext(ctx, query,
		lead.Nombre,
		nullString(lead.Email),
		nullString(lead.Telefono),
		nullString(lead.Empresa),
		nullString(lead.Sector),
		nullString(lead.Fuente),
		nullString(lead.MensajeInicial),
		nullString(lead.Necesidades),
		lead.Estado,
		lead.ActualizadoEn,
		lead.ID,
	)
	if err != nil {
		return err
	}

	return checkAffected(res)
}

// SaveClassification escribe los tres campos derivados de una vez. Nunca se
// escribe uno suelto: o el lead queda clasificado entero o queda como estaba.
func (r *LeadRepository) SaveClassification(ctx context.Context, leadID string, c entity.Classification) error {
	query := `
		UPDATE leads SET
			etapa_funnel = $1, temperatura = $2, tipo_contacto = $3,
			actualizado_en = NOW()
		WHERE id = $4
	`

	res, err := r.DB.ExecContext(ctx, query, c.EtapaFunnel, c.Temperatura, c.TipoContacto, leadID)
	if err != nil {
		return err
	}

	return checkAffected(res)
}

// Delete borra el lead y en cascada sus interacciones, todo en la misma
// transacción: no puede quedar una interacción huérfana.
func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM interacciones WHERE lead_id = $1`, id); err != nil {
		return fmt.Errorf("fallo al borrar interacciones: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if err := checkAffected(res); err != nil {
		return err
	}

	return tx.Commit()
}

// leadScanner cubre tanto *sql.Row como *sql.Rows.
type leadScanner interface {
	Scan(dest ...any) error
}

func scanLead(row leadScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var email, telefono, empresa, sector, fuente, mensaje, necesidades sql.NullString
	var etapa, temperatura, tipo sql.NullString

	err := row.Scan(
		&lead.ID,
		&lead.Nombre,
		&email,
		&telefono,
		&empresa,
		&sector,
		&fuente,
		&mensaje,
		&necesidades,
		&etapa,
		&temperatura,
		&tipo,
		&lead.Estado,
		&lead.CreadoEn,
		&lead.ActualizadoEn,
	)
	if err != nil {
		return nil, err
	}

	lead.Email = email.String
	lead.Telefono = telefono.String
	lead.Empresa = empresa.String
	lead.Sector = sector.String
	lead.Fuente = fuente.String
	lead.MensajeInicial = mensaje.String
	lead.Necesidades = necesidades.String

	// Los tres campos derivados van siempre juntos: con que uno esté, están
	// todos (los escribe solo SaveClassification).
	if etapa.Valid {
		lead.Classification = &entity.Classification{
			EtapaFunnel:  etapa.String,
			Temperatura:  temperatura.String,
			TipoContacto: tipo.String,
		}
	}

	return &lead, nil
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
