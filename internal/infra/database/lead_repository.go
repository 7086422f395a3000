package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/xavierca1/ligue-leads/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}


// InsertMany grava o batch inteiro numa única transação.
// Ou salva tudo, ou não salva nada.
func (r *LeadRepository) InsertMany(ctx context.Context, leads []*entity.Lead) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("erro ao abrir transação: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO leads (id, name, country, probability, status, synced_to_crm, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	for _, lead := range leads {
		lead.ID = uuid.New().String()

		err := tx.QueryRowContext(
			ctx,
			query,
			lead.ID,
			lead.Name,
			lead.Country,
			lead.Probability,
			lead.Status,
			lead.SyncedToCRM,
		).Scan(
			&lead.CreatedAt,
			&lead.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("erro ao inserir lead '%s': %w", lead.Name, err)
		}
	}

	return tx.Commit()
}


func (r *LeadRepository) FindUnsyncedVerified(ctx context.Context) ([]*entity.Lead, error) {
	query := `
		SELECT id, name, country, probability, status, synced_to_crm, created_at, updated_at
		FROM leads
		WHERE status = $1 AND synced_to_crm = false
	`

	rows, err := r.DB.QueryContext(ctx, query, entity.StatusVerified)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeads(rows)
}


// MarkSynced é idempotente: marcar um lead já sincronizado não é erro
func (r *LeadRepository) MarkSynced(ctx context.Context, id string) error {
	query := `
		UPDATE leads
		SET synced_to_crm = true, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.DB.ExecContext(ctx, query, id)
	return err
}


func (r *LeadRepository) FindAll(ctx context.Context, status string) ([]*entity.Lead, error) {
	query := `
		SELECT id, name, country, probability, status, synced_to_crm, created_at, updated_at
		FROM leads
	`
	args := []interface{}{}

	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}

	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeads(rows)
}


func scanLeads(rows *sql.Rows) ([]*entity.Lead, error) {
	leads := []*entity.Lead{}

	for rows.Next() {
		var lead entity.Lead
		err := rows.Scan(
			&lead.ID,
			&lead.Name,
			&lead.Country,
			&lead.Probability,
			&lead.Status,
			&lead.SyncedToCRM,
			&lead.CreatedAt,
			&lead.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		leads = append(leads, &lead)
	}

	return leads, rows.Err()
}
