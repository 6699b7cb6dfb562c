package create_reservation

import "errors"

var (
	// ErrEquipmentNotFound retornado quando o equipamento não é encontrado
	ErrEquipmentNotFound = errors.New("create_reservation: equipment not found")

	// ErrEquipmentNotListed retornado quando o equipamento está fora do catálogo
	ErrEquipmentNotListed = errors.New("create_reservation: equipment is not listed")

	// ErrLocadoraInactive retornado quando a locadora dona está inativa
	ErrLocadoraInactive = errors.New("create_reservation: locadora is inactive")

	// ErrInvalidDate retornado quando a data de início é no passado
	ErrInvalidDate = errors.New("create_reservation: start date is in the past")

	// ErrInvalidRange retornado quando endDate < startDate
	ErrInvalidRange = errors.New("create_reservation: end date before start date")

	// ErrRangeTooLong retornado quando o período excede o máximo de diárias
	ErrRangeTooLong = errors.New("create_reservation: rental period is too long")

	// ErrNotEnoughUnits retornado quando não há unidades livres suficientes na janela
	ErrNotEnoughUnits = errors.New("create_reservation: not enough units available")

	// ErrInvalidInput retornado em dados de entrada inválidos
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal retornado em erros internos do usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
