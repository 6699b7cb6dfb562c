package locadora

import "errors"

var (
	// ErrLocadoraNotFound retornado quando a locadora não é encontrada
	ErrLocadoraNotFound = errors.New("locadora.repository: locadora not found")

	// ErrDuplicateEmail retornado quando o email já está cadastrado
	ErrDuplicateEmail = errors.New("locadora.repository: email already registered")

	// ErrDuplicateCNPJ retornado quando o CNPJ já está cadastrado
	ErrDuplicateCNPJ = errors.New("locadora.repository: cnpj already registered")

	// ErrBuildQuery retornado quando a montagem do SQL falha
	ErrBuildQuery = errors.New("locadora.repository: failed to build query")

	// ErrExecQuery retornado quando a execução do SQL falha
	ErrExecQuery = errors.New("locadora.repository: failed to execute query")

	// ErrScanRow retornado quando o scan do resultado falha
	ErrScanRow = errors.New("locadora.repository: failed to scan row")
)
