package models

import (
	"fmt"
	"time"
)

// AllowTransition описывает допустимые переходы статуса сделки.
// Терминальные статусы (completed / canceled) дальше не переводятся.
var AllowTransition = map[DealStatus][]DealStatus{
	DealNew:       {DealInProcess, DealCompleted, DealCanceled},
	DealInProcess: {DealCompleted, DealCanceled},
	DealCompleted: {},
	DealCanceled:  {},
}

// CanTransition проверяет, допустим ли переход from -> to.
func CanTransition(from, to DealStatus) bool {
	if from == to {
		return true
	}
	allowed, ok := AllowTransition[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// ApplyTransition применяет переход статуса и поддерживает completed_at:
// вход в completed/canceled проставляет время завершения, остальные переходы
// оставляют его пустым.
func ApplyTransition(d *Deal, to DealStatus, now time.Time) error {
	if d == nil {
		return fmt.Errorf("deal is nil")
	}
	from := d.Status
	if !CanTransition(from, to) {
		return fmt.Errorf("invalid deal status transition: %s -> %s", from, to)
	}

	d.Status = to

	switch to {
	case DealCompleted, DealCanceled:
		if d.CompletedAt == nil {
			t := now
			d.CompletedAt = &t
		}
	default:
		d.CompletedAt = nil
	}
	return nil
}
