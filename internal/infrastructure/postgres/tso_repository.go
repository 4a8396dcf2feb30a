package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oticavisao/otica-api/internal/domain/entity"
	"github.com/oticavisao/otica-api/internal/domain/repository"
)

var _ repository.TSORepository = (*TSORepo)(nil)

// TSORepo implementação de TSORepository sobre PostgreSQL (aceita pool ou tx).
// As medidas de cada olho ficam achatadas em colunas (od_/oe_).
type TSORepo struct {
	q Querier
}

// NewTSORepository constrói o adaptador de receitas. Passar pool ou tx (Querier).
func NewTSORepository(q Querier) *TSORepo {
	return &TSORepo{q: q}
}

const tsoColumns = `id, client_id, user_id,
		od_spherical, od_cylindrical, od_axis, od_dnp,
		oe_spherical, oe_cylindrical, oe_axis, oe_dnp,
		addition, doctor, crm, issued_at, valid_until, notes, created_at`

// Create persiste uma receita nova.
func (r *TSORepo) Create(tso *entity.TSO) error {
	query := `
		INSERT INTO tso (` + tsoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		tso.ID, tso.ClientID, tso.UserID,
		tso.RightEye.Spherical, tso.RightEye.Cylindrical, tso.RightEye.Axis, tso.RightEye.DNP,
		tso.LeftEye.Spherical, tso.LeftEye.Cylindrical, tso.LeftEye.Axis, tso.LeftEye.DNP,
		tso.Addition, tso.Doctor, tso.CRM, tso.IssuedAt, tso.ValidUntil, tso.Notes, tso.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tso: %w", err)
	}
	return nil
}

// GetByID obtém uma receita por ID; nil quando não existe.
func (r *TSORepo) GetByID(id string) (*entity.TSO, error) {
	query := `SELECT ` + tsoColumns + ` FROM tso WHERE id = $1`
	var t entity.TSO
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.ClientID, &t.UserID,
		&t.RightEye.Spherical, &t.RightEye.Cylindrical, &t.RightEye.Axis, &t.RightEye.DNP,
		&t.LeftEye.Spherical, &t.LeftEye.Cylindrical, &t.LeftEye.Axis, &t.LeftEye.DNP,
		&t.Addition, &t.Doctor, &t.CRM, &t.IssuedAt, &t.ValidUntil, &t.Notes, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tso: %w", err)
	}
	return &t, nil
}

// ListByClient lista as receitas de um cliente, mais recentes primeiro.
func (r *TSORepo) ListByClient(clientID string, limit, offset int) ([]*entity.TSO, error) {
	query := `
		SELECT ` + tsoColumns + `
		FROM tso WHERE client_id = $1 ORDER BY issued_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, clientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tso: %w", err)
	}
	defer rows.Close()
	var list []*entity.TSO
	for rows.Next() {
		var t entity.TSO
		if err := rows.Scan(
			&t.ID, &t.ClientID, &t.UserID,
			&t.RightEye.Spherical, &t.RightEye.Cylindrical, &t.RightEye.Axis, &t.RightEye.DNP,
			&t.LeftEye.Spherical, &t.LeftEye.Cylindrical, &t.LeftEye.Axis, &t.LeftEye.DNP,
			&t.Addition, &t.Doctor, &t.CRM, &t.IssuedAt, &t.ValidUntil, &t.Notes, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan tso: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
