package check_availability

import "time"

// Request modelo de consulta de disponibilidade
type Request struct {
	EquipmentID int64
	StartDate   time.Time // primeiro dia da janela (sem hora)
	EndDate     time.Time // último dia da janela, inclusivo
	Quantity    *int      // quantidade desejada (opcional)
}

// Response resultado da consulta
type Response struct {
	EquipmentID   int64
	StartDate     time.Time
	EndDate       time.Time
	TotalQuantity int
	PeakDemand    int
	Available     int   // unidades livres durante toda a janela, >= 0
	CanSatisfy    *bool // presente apenas quando Quantity foi informada
}
