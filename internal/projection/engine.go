package projection

import (
	"fmt"
	"time"

	"github.com/homeledger/homeledger/internal/core/money"
	"github.com/homeledger/homeledger/internal/expense"
)

// ComputeMonth aggregates one calendar month of the snapshot under the given
// filter. Income is not date-scoped: every matching entry counts toward every
// month, modelling the current recurring income level. Expenses contribute by
// kind: fixed ones count every month, pending installments and one-off
// expenses count in the month their due date falls in. Paid installments
// never count, whatever their due date.
//
// The function is pure; records it cannot interpret are skipped and reported
// as warnings rather than aborting the month.
func ComputeMonth(year int, month time.Month, snapshot Snapshot, filter Filter) (MonthTotal, []Warning) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	nextMonthStart := monthStart.AddDate(0, 1, 0)

	var warnings []Warning

	var incomeTotal money.Cents
	for _, entry := range snapshot.Incomes {
		if filter.Person != "" && entry.Person != filter.Person {
			continue
		}
		incomeTotal += entry.Amount
	}

	var expenseTotal money.Cents
	for _, exp := range snapshot.Expenses {
		if filter.Person != "" && exp.PaidBy != filter.Person {
			continue
		}
		if filter.Category != "" && exp.Category != filter.Category {
			continue
		}

		switch exp.Kind {
		case expense.KindFixed:
			expenseTotal += exp.Amount

		case expense.KindInstallment:
			for i := range exp.Installments {
				inst := &exp.Installments[i]
				if inst.IsPaid() {
					continue
				}
				if inst.DueDate.IsZero() {
					warnings = append(warnings, Warning{
						RecordID: inst.ID,
						Reason:   "installment has no due date",
					})
					continue
				}
				if inMonth(inst.DueDate, monthStart, nextMonthStart) {
					expenseTotal += inst.Amount
				}
			}

		case expense.KindOneOff:
			if exp.DueDate == nil || exp.DueDate.IsZero() {
				warnings = append(warnings, Warning{
					RecordID: exp.ID,
					Reason:   "one-off expense has no due date",
				})
				continue
			}
			if inMonth(*exp.DueDate, monthStart, nextMonthStart) {
				expenseTotal += exp.Amount
			}

		default:
			warnings = append(warnings, Warning{
				RecordID: exp.ID,
				Reason:   fmt.Sprintf("unknown expense kind %q", exp.Kind),
			})
		}
	}

	return MonthTotal{
		Year:         year,
		Month:        int(month),
		IncomeCents:  incomeTotal,
		ExpenseCents: expenseTotal,
		BalanceCents: incomeTotal - expenseTotal,
	}, warnings
}

// ComputeProjection produces horizon consecutive months starting at
// (startYear, startMonth). Overrides replace the computed income and expense
// figures of their month, but only in the unfiltered view: an override stores
// a single combined figure per month, so there is nothing meaningful to show
// for a person or category slice of it.
func ComputeProjection(startYear int, startMonth time.Month, horizon int, snapshot Snapshot, overrides []*Override, filter Filter) ([]MonthTotal, []Warning) {
	if horizon < 1 {
		return nil, nil
	}

	overrideByMonth := make(map[[2]int]*Override, len(overrides))
	if filter.IsZero() {
		for _, o := range overrides {
			overrideByMonth[[2]int{o.Year, o.Month}] = o
		}
	}

	months := make([]MonthTotal, 0, horizon)
	var warnings []Warning

	cursor := time.Date(startYear, startMonth, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < horizon; i++ {
		year, month := cursor.Year(), cursor.Month()

		total, monthWarnings := ComputeMonth(year, month, snapshot, filter)
		warnings = append(warnings, monthWarnings...)

		if o, ok := overrideByMonth[[2]int{year, int(month)}]; ok {
			total.IncomeCents = o.IncomeCents
			total.ExpenseCents = o.ExpenseCents
			total.BalanceCents = o.IncomeCents - o.ExpenseCents
			total.Overridden = true
		}

		months = append(months, total)
		cursor = cursor.AddDate(0, 1, 0)
	}

	return months, dedupeWarnings(warnings)
}

func inMonth(t, monthStart, nextMonthStart time.Time) bool {
	return !t.Before(monthStart) && t.Before(nextMonthStart)
}

// dedupeWarnings collapses the per-month repeats of the same broken record,
// so a dateless installment warns once per projection rather than once per
// month.
func dedupeWarnings(warnings []Warning) []Warning {
	if len(warnings) == 0 {
		return nil
	}
	seen := make(map[Warning]struct{}, len(warnings))
	out := warnings[:0]
	for _, w := range warnings {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
