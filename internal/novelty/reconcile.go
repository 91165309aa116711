package novelty

import (
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/nomina/internal/period"
)

type reconcileKey struct {
	EmployeeID uuid.UUID
	Type       Type
}

// Reconcile returns the instances that recurring novelties in all still need
// for month. A recurring novelty applies from its StartMonth on; an instance is
// missing when no novelty of the same employee and type is dated in month.
// Synthesized instances are dated the first of month and are not recurring
// themselves. The input is not modified.
func Reconcile(all []*Novelty, month period.Month) []*Novelty {
	present := make(map[reconcileKey]struct{}, len(all))

	for _, n := range all {
		if month.Contains(n.Date) {
			present[reconcileKey{EmployeeID: n.EmployeeID, Type: n.Type}] = struct{}{}
		}
	}

	var missing []*Novelty

	for _, n := range all {
		if !n.Recurring || n.StartMonth.IsZero() || n.StartMonth.After(month) {
			continue
		}

		k := reconcileKey{EmployeeID: n.EmployeeID, Type: n.Type}
		if _, ok := present[k]; ok {
			continue
		}

		present[k] = struct{}{}

		missing = append(missing, &Novelty{
			EmployeeID:   n.EmployeeID,
			EmployeeName: n.EmployeeName,
			Type:         n.Type,
			Date:         month.FirstDay(),
			Quantity:     n.Quantity,
			Description:  n.Description,
			AutoApplied:  true,
			SourceID:     new(n.ID),
		})
	}

	return missing
}
