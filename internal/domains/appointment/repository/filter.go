package repository

import (
	"fmt"
	"time"

	"tattoo-studio/internal/domains/appointment/model"
)

// filterClause trả điều kiện SQL cho filter, placeholder đánh số từ argStart.
// upcoming: scheduled_date >= now AND status IN (pending, confirmed)
func filterClause(filter model.Filter, now time.Time, argStart int) (string, []any) {
	if filter == model.FilterUpcoming {
		clause := fmt.Sprintf("ap.scheduled_date >= $%d AND ap.status IN ($%d, $%d)", argStart, argStart+1, argStart+2)
		return clause, []any{now, model.StatusPending, model.StatusConfirmed}
	}
	if status, ok := filter.Status(); ok {
		return fmt.Sprintf("ap.status = $%d", argStart), []any{status}
	}
	return "", nil
}

// id làm tie-breaker để LIMIT/OFFSET không lặp hay bỏ sót dòng trùng scheduled_date
const (
	orderNewestFirst  = "ap.scheduled_date DESC, ap.id DESC"
	orderSoonestFirst = "ap.scheduled_date ASC, ap.id ASC"
)

// listQuery: argCount là số placeholder đã dùng trong where
func listQuery(where string, argCount int) string {
	return selectAppointment + where + fmt.Sprintf(`
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, orderNewestFirst, argCount+1, argCount+2)
}

func upcomingQuery(where string, argCount int) string {
	return selectAppointment + where + fmt.Sprintf(`
		ORDER BY %s
		LIMIT $%d
	`, orderSoonestFirst, argCount+1)
}
