package equipment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/hublumi/booking-service/internal/domain"
	"github.com/hublumi/booking-service/pkg/dbmetrics"
	"github.com/hublumi/booking-service/pkg/psqlbuilder"
)

var equipmentColumns = []string{
	"id",
	"locadora_id",
	"titulo",
	"descricao",
	"categoria",
	"valor_diaria",
	"quantidade_total",
	"status_disponibilidade",
	"cidade",
	"estado",
	"endereco_curto",
	"foto_principal",
	"foto_extra1",
	"foto_extra2",
	"created_at",
	"updated_at",
}

// Repository repositório de equipamentos
type Repository struct {
	db DBExecutor
}

// NewRepository cria o repositório de equipamentos
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create cadastra um novo equipamento
func (r *Repository) Create(ctx context.Context, equipment *domain.Equipment) (*domain.Equipment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("equipamentos").
		Columns(
			"locadora_id",
			"titulo",
			"descricao",
			"categoria",
			"valor_diaria",
			"quantidade_total",
			"status_disponibilidade",
			"cidade",
			"estado",
			"endereco_curto",
			"foto_principal",
			"foto_extra1",
			"foto_extra2",
		).
		Values(
			equipment.LocadoraID,
			equipment.Title,
			equipment.Description,
			equipment.Category,
			equipment.DailyRate,
			equipment.TotalQuantity,
			equipment.ListingStatus,
			equipment.City,
			equipment.State,
			equipment.ShortAddress,
			equipment.PhotoMain,
			equipment.PhotoExtra1,
			equipment.PhotoExtra2,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&equipment.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	equipment.CreatedAt = createdAt.Time
	equipment.UpdatedAt = updatedAt.Time

	return equipment, nil
}

// GetByID busca um equipamento por ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(equipmentColumns...).
		From("equipamentos").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	equipment, err := scanEquipment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrEquipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan equipment: %v", ErrScanRow, err)
	}

	return equipment, nil
}

// List lista equipamentos do catálogo com filtros opcionais
// (locadora, cidade, estado, categoria, apenas listados)
func (r *Repository) List(ctx context.Context, filter domain.EquipmentFilter) ([]*domain.Equipment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(equipmentColumns...).
		From("equipamentos").
		OrderBy("created_at DESC")

	if filter.LocadoraID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"locadora_id": *filter.LocadoraID})
	}
	if filter.City != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"cidade": *filter.City})
	}
	if filter.State != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"estado": *filter.State})
	}
	if filter.Category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"categoria": *filter.Category})
	}
	if filter.OnlyListed {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status_disponibilidade": domain.ListingDisponivel})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanEquipments(rows)
}

// Update atualiza os dados de um equipamento
func (r *Repository) Update(ctx context.Context, equipment *domain.Equipment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("equipamentos").
		Set("titulo", equipment.Title).
		Set("descricao", equipment.Description).
		Set("categoria", equipment.Category).
		Set("valor_diaria", equipment.DailyRate).
		Set("quantidade_total", equipment.TotalQuantity).
		Set("status_disponibilidade", equipment.ListingStatus).
		Set("cidade", equipment.City).
		Set("estado", equipment.State).
		Set("endereco_curto", equipment.ShortAddress).
		Set("foto_principal", equipment.PhotoMain).
		Set("foto_extra1", equipment.PhotoExtra1).
		Set("foto_extra2", equipment.PhotoExtra2).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": equipment.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrEquipmentNotFound
	}

	return nil
}

// Delete remove um equipamento do catálogo (remoção física)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("equipamentos").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrEquipmentNotFound
	}

	return nil
}

// rowScanner abstrai *sql.Row e *sql.Rows para o scan
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEquipment(row rowScanner) (*domain.Equipment, error) {
	var equipment domain.Equipment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&equipment.ID,
		&equipment.LocadoraID,
		&equipment.Title,
		&equipment.Description,
		&equipment.Category,
		&equipment.DailyRate,
		&equipment.TotalQuantity,
		&equipment.ListingStatus,
		&equipment.City,
		&equipment.State,
		&equipment.ShortAddress,
		&equipment.PhotoMain,
		&equipment.PhotoExtra1,
		&equipment.PhotoExtra2,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	equipment.CreatedAt = createdAt.Time
	equipment.UpdatedAt = updatedAt.Time

	return &equipment, nil
}

func scanEquipments(rows *sql.Rows) ([]*domain.Equipment, error) {
	equipments := make([]*domain.Equipment, 0)

	for rows.Next() {
		equipment, err := scanEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanEquipments - scan row: %v", ErrScanRow, err)
		}
		equipments = append(equipments, equipment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEquipments - rows error: %v", ErrScanRow, err)
	}

	return equipments, nil
}
