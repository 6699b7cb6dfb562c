package locadora

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/hublumi/booking-service/internal/domain"
	"github.com/hublumi/booking-service/pkg/dbmetrics"
	"github.com/hublumi/booking-service/pkg/psqlbuilder"
)

// pq: unique_violation
const pqUniqueViolation = "23505"

var locadoraColumns = []string{
	"id",
	"razao_social",
	"cnpj",
	"inscricao_estadual",
	"contribuinte",
	"email",
	"telefone",
	"endereco",
	"cidade",
	"estado",
	"status",
	"created_at",
	"updated_at",
}

// Repository repositório de locadoras
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository cria o repositório de locadoras
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create cadastra uma nova locadora.
// Email e CNPJ têm constraint UNIQUE no banco; violações são mapeadas para
// ErrDuplicateEmail / ErrDuplicateCNPJ conforme a constraint violada.
func (r *Repository) Create(ctx context.Context, locadora *domain.Locadora) (*domain.Locadora, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("locadoras").
		Columns(
			"razao_social",
			"cnpj",
			"inscricao_estadual",
			"contribuinte",
			"email",
			"telefone",
			"endereco",
			"cidade",
			"estado",
			"status",
		).
		Values(
			locadora.RazaoSocial,
			locadora.CNPJ,
			locadora.InscricaoEstadual,
			locadora.Contribuinte,
			locadora.Email,
			locadora.Telefone,
			locadora.Endereco,
			locadora.City,
			locadora.State,
			locadora.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&locadora.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if dupErr := mapUniqueViolation(err); dupErr != nil {
			return nil, dupErr
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	locadora.CreatedAt = createdAt.Time
	locadora.UpdatedAt = updatedAt.Time

	return locadora, nil
}

// GetByID busca uma locadora por ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Locadora, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(locadoraColumns...).
		From("locadoras").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	locadora, err := scanLocadora(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrLocadoraNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan locadora: %v", ErrScanRow, err)
	}

	return locadora, nil
}

// GetByEmail busca uma locadora pelo email cadastrado
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Locadora, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(locadoraColumns...).
		From("locadoras").
		Where(squirrel.Eq{"email": email}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	locadora, err := scanLocadora(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrLocadoraNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - scan locadora: %v", ErrScanRow, err)
	}

	return locadora, nil
}

// List lista todas as locadoras cadastradas
func (r *Repository) List(ctx context.Context) ([]*domain.Locadora, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(locadoraColumns...).
		From("locadoras").
		OrderBy("razao_social ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	locadoras := make([]*domain.Locadora, 0)
	for rows.Next() {
		locadora, err := scanLocadora(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		locadoras = append(locadoras, locadora)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return locadoras, nil
}

// Update atualiza os dados cadastrais de uma locadora
func (r *Repository) Update(ctx context.Context, locadora *domain.Locadora) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("locadoras").
		Set("razao_social", locadora.RazaoSocial).
		Set("cnpj", locadora.CNPJ).
		Set("inscricao_estadual", locadora.InscricaoEstadual).
		Set("contribuinte", locadora.Contribuinte).
		Set("email", locadora.Email).
		Set("telefone", locadora.Telefone).
		Set("endereco", locadora.Endereco).
		Set("cidade", locadora.City).
		Set("estado", locadora.State).
		Set("status", locadora.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": locadora.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if dupErr := mapUniqueViolation(err); dupErr != nil {
			return dupErr
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrLocadoraNotFound
	}

	return nil
}

// mapUniqueViolation traduz violações de UNIQUE em erros de domínio
func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != pqUniqueViolation {
		return nil
	}
	switch {
	case strings.Contains(pqErr.Constraint, "email"):
		return ErrDuplicateEmail
	case strings.Contains(pqErr.Constraint, "cnpj"):
		return ErrDuplicateCNPJ
	default:
		return fmt.Errorf("%w: unique violation on %s", ErrExecQuery, pqErr.Constraint)
	}
}

// rowScanner abstrai *sql.Row e *sql.Rows para o scan
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLocadora(row rowScanner) (*domain.Locadora, error) {
	var locadora domain.Locadora
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&locadora.ID,
		&locadora.RazaoSocial,
		&locadora.CNPJ,
		&locadora.InscricaoEstadual,
		&locadora.Contribuinte,
		&locadora.Email,
		&locadora.Telefone,
		&locadora.Endereco,
		&locadora.City,
		&locadora.State,
		&locadora.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	locadora.CreatedAt = createdAt.Time
	locadora.UpdatedAt = updatedAt.Time

	return &locadora, nil
}
