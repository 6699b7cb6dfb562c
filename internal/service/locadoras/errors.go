package locadoras

import "errors"

var (
	// ErrLocadoraNotFound retornado quando a locadora não é encontrada
	ErrLocadoraNotFound = errors.New("locadora not found")

	// ErrDuplicateEmail retornado quando o e-mail já está cadastrado
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDuplicateCNPJ retornado quando o CNPJ já está cadastrado
	ErrDuplicateCNPJ = errors.New("cnpj already registered")

	// ErrAccessDenied retornado quando o solicitante não é a própria locadora
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput retornado em dados de entrada inválidos
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal retornado em erros internos do serviço
	ErrInternal = errors.New("service: internal error")
)
