// Package policy — единая таблица прав: какая роль какую операцию может
// выполнять. Чтение каталогов прав не требует (см. роутер).
package policy

import "autosalon/internal/models"

type Operation string

const (
	OpCarWrite    Operation = "car:write" // создание, изменение, смена статуса
	OpCarDelete   Operation = "car:delete"
	OpClientWrite Operation = "client:write"
	OpDealWrite   Operation = "deal:write" // создание сделки и смена её статуса
	OpDealDelete  Operation = "deal:delete"
	OpBrandWrite  Operation = "brand:write"
	OpBrandDelete Operation = "brand:delete"
	OpAuditRead   Operation = "audit:read"
)

var table = map[Operation][]models.UserRole{
	OpCarWrite:    {models.RoleAdmin, models.RoleManager},
	OpCarDelete:   {models.RoleAdmin},
	OpClientWrite: {models.RoleAdmin, models.RoleManager, models.RoleViewer},
	OpDealWrite:   {models.RoleAdmin, models.RoleManager, models.RoleViewer},
	OpDealDelete:  {models.RoleAdmin},
	OpBrandWrite:  {models.RoleAdmin, models.RoleManager},
	OpBrandDelete: {models.RoleAdmin},
	OpAuditRead:   {models.RoleAdmin},
}

// Allowed сообщает, разрешена ли операция для роли.
func Allowed(role models.UserRole, op Operation) bool {
	roles, ok := table[op]
	if !ok {
		return false
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
