package equipments

import "errors"

var (
	// ErrEquipmentNotFound retornado quando o equipamento não é encontrado
	ErrEquipmentNotFound = errors.New("equipment not found")

	// ErrLocadoraNotFound retornado quando a locadora não é encontrada
	ErrLocadoraNotFound = errors.New("locadora not found")

	// ErrLocadoraInactive retornado quando a locadora está inativa
	ErrLocadoraInactive = errors.New("locadora is inactive")

	// ErrAccessDenied retornado quando o solicitante não é dono do equipamento
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput retornado em dados de entrada inválidos
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal retornado em erros internos do serviço
	ErrInternal = errors.New("service: internal error")
)
