package check_availability

import "errors"

var (
	// ErrEquipmentNotFound retornado quando o equipamento não é encontrado
	ErrEquipmentNotFound = errors.New("check_availability: equipment not found")

	// ErrInvalidRange retornado quando endDate < startDate
	ErrInvalidRange = errors.New("check_availability: end date before start date")

	// ErrInvalidInput retornado em dados de entrada inválidos
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal retornado em erros internos do usecase
	ErrInternal = errors.New("check_availability: internal error")
)
