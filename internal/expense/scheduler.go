package expense

import (
	"time"

	"github.com/google/uuid"

	errors "github.com/homeledger/homeledger/internal"
	"github.com/homeledger/homeledger/internal/core/money"
)

// GenerateInstallments produces the dated installment records for an
// installment-kind expense. Amounts come from splitting the total so the sum
// of the parts always equals the total exactly. Due dates advance one
// calendar month per installment, clamping the day of month when the target
// month is shorter (Jan 31 -> Feb 28). The first alreadyPaid installments are
// created as paid with PaidAt set to now.
//
// The result is deterministic for a given input; the caller supplies now so
// creation and tests agree on timestamps.
func GenerateInstallments(expenseID string, totalAmount money.Cents, count int, firstDueDate time.Time, alreadyPaid int, now time.Time) ([]Installment, *errors.AppError) {
	if totalAmount < 0 {
		return nil, errors.NewValidationError(
			"total amount must not be negative",
			errors.ErrCodeInvalidAmount)
	}
	if count < 1 {
		return nil, errors.NewValidationError(
			"installment count must be at least 1",
			errors.ErrCodeInvalidInstallmentCount)
	}
	if alreadyPaid < 0 || alreadyPaid > count {
		return nil, errors.NewValidationError(
			"paid count must be between 0 and the installment count",
			errors.ErrCodeInvalidPaidCount)
	}

	amounts := money.Split(totalAmount, count)

	installments := make([]Installment, count)
	for i := 0; i < count; i++ {
		inst := Installment{
			ID:                uuid.NewString(),
			ExpenseID:         expenseID,
			InstallmentNumber: i + 1,
			Amount:            amounts[i],
			DueDate:           addMonthsClamped(firstDueDate, i),
			Status:            StatusPending,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if i < alreadyPaid {
			paidAt := now
			inst.Status = StatusPaid
			inst.PaidAt = &paidAt
		}
		installments[i] = inst
	}

	return installments, nil
}

// addMonthsClamped adds n calendar months to t, clamping the day of month to
// the last day of the target month. time.AddDate would normalize Jan 31 + 1
// month to Mar 2/3, which is not what a monthly due date means.
func addMonthsClamped(t time.Time, n int) time.Time {
	year, month, day := t.Date()

	totalMonths := int(month) - 1 + n
	targetYear := year + totalMonths/12
	targetMonth := time.Month(totalMonths%12 + 1)
	if totalMonths < 0 {
		// Go's integer division truncates toward zero; shift negatives back.
		targetYear = year + (totalMonths-11)/12
		targetMonth = time.Month((totalMonths%12+12)%12 + 1)
	}

	if last := daysInMonth(targetYear, targetMonth); day > last {
		day = last
	}

	return time.Date(targetYear, targetMonth, day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
