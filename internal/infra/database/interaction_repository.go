package database

import (
	"context"
	"database/sql"

	"github.com/abcideas/leadflow/internal/entity"
)

type InteractionRepository struct {
	DB *sql.DB
}

func NewInteractionRepository(db *sql.DB) *InteractionRepository {
	return &InteractionRepository{DB: db}
}

func (r *InteractionRepository) Create(ctx context.Context, inter *entity.Interaction) error {
	query := `
		INSERT INTO interacciones (id, lead_id, canal, rol, mensaje, tipo, resultado, fecha)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query,
		inter.ID,
		inter.LeadID,
		inter.Canal,
		inter.Rol,
		inter.Mensaje,
		nullString(inter.Tipo),
		nullString(inter.Resultado),
		inter.Fecha,
	)

	return err
}

func (r *InteractionRepository) FindByLead(ctx context.Context, leadID string) ([]*entity.Interaction, error) {
	query := `
		SELECT id, lead_id, canal, rol, mensaje, tipo, resultado, fecha
		FROM interacciones
		WHERE lead_id = $1
		ORDER BY fecha ASC
	`
	return r.queryInteractions(ctx, query, leadID)
}

func (r *InteractionRepository) FindRecentByLead(ctx context.Context, leadID string, limit int) ([]*entity.Interaction, error) {
	query := `
		SELECT id, lead_id, canal, rol, mensaje, tipo, resultado, fecha
		FROM interacciones
		WHERE lead_id = $1
		ORDER BY fecha DESC
		LIMIT $2
	`
	return r.queryInteractions(ctx, query, leadID, limit)
}

func (r *InteractionRepository) queryInteractions(ctx context.Context, query string, args ...any) ([]*entity.Interaction, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inters := []*entity.Interaction{}
	for rows.Next() {
		var inter entity.Interaction
		var tipo, resultado sql.NullString

		err := rows.Scan(
			&inter.ID,
			&inter.LeadID,
			&inter.Canal,
			&inter.Rol,
			&inter.Mensaje,
			&tipo,
			&resultado,
			&inter.Fecha,
		)
		if err != nil {
			return nil, err
		}

		inter.Tipo = tipo.String
		inter.Resultado = resultado.String
		inters = append(inters, &inter)
	}

	return inters, rows.Err()
}
