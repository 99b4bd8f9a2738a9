package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/revendapp/revenda-api/internal/domain"
	"github.com/revendapp/revenda-api/internal/domain/entity"
	"github.com/revendapp/revenda-api/internal/domain/repository"
)

var _ repository.ProgramRepository = (*ProgramRepo)(nil)

// ProgramRepo implementação de ProgramRepository sobre PostgreSQL.
type ProgramRepo struct {
	q Querier
}

// NewProgramRepository constrói o adaptador de programas. Passar pool ou tx (Querier).
func NewProgramRepository(q Querier) *ProgramRepo {
	return &ProgramRepo{q: q}
}

// Create persiste um novo programa.
func (r *ProgramRepo) Create(program *entity.Program) error {
	query := `
		INSERT INTO programs (id, name, club, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		program.ID, program.Name, program.Club, program.CreatedAt, program.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert program: %w", err)
	}
	return nil
}

// GetByID obtém um programa por ID.
func (r *ProgramRepo) GetByID(id string) (*entity.Program, error) {
	query := `SELECT id, name, club, created_at, updated_at FROM programs WHERE id = $1`
	var p entity.Program
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Club, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get program: %w", err)
	}
	return &p, nil
}

// Update atualiza um programa existente.
func (r *ProgramRepo) Update(program *entity.Program) error {
	query := `UPDATE programs SET name = $2, club = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		program.ID, program.Name, program.Club, program.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update program: %w", err)
	}
	return nil
}

// List lista programas com paginação.
func (r *ProgramRepo) List(limit, offset int) ([]*entity.Program, error) {
	query := `SELECT id, name, club, created_at, updated_at FROM programs ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	defer rows.Close()
	var list []*entity.Program
	for rows.Next() {
		var p entity.Program
		if err := rows.Scan(&p.ID, &p.Name, &p.Club, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan program: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete exclui um programa por ID.
func (r *ProgramRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM programs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete program: %w", err)
	}
	return nil
}
