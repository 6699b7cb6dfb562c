package equipment

import "errors"

var (
	// ErrEquipmentNotFound retornado quando o equipamento não é encontrado
	ErrEquipmentNotFound = errors.New("equipment.repository: equipment not found")

	// ErrBuildQuery retornado quando a montagem do SQL falha
	ErrBuildQuery = errors.New("equipment.repository: failed to build query")

	// ErrExecQuery retornado quando a execução do SQL falha
	ErrExecQuery = errors.New("equipment.repository: failed to execute query")

	// ErrScanRow retornado quando o scan do resultado falha
	ErrScanRow = errors.New("equipment.repository: failed to scan row")
)
