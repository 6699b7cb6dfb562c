package availability

import "errors"

var (
	// ErrEquipmentNotFound retornado quando o equipamento não existe
	ErrEquipmentNotFound = errors.New("availability: equipment not found")

	// ErrInvalidRange retornado quando a data final precede a inicial
	ErrInvalidRange = errors.New("availability: end date before start date")

	// ErrInvalidQuantity retornado quando a quantidade solicitada é menor que 1
	ErrInvalidQuantity = errors.New("availability: requested quantity must be >= 1")

	// ErrInternal retornado em falhas de leitura do repositório
	ErrInternal = errors.New("availability: internal error")
)
