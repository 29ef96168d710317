package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/Mondoloni/Billed/internal/dto"
	"github.com/Mondoloni/Billed/internal/models"
)

// Abbreviated French month names as rendered by the bill list: capitalized
// and truncated to three letters, so juin and juillet both display as "Jui.".
var frenchMonths = [12]string{
	"Jan.", "Fév.", "Mar.", "Avr.", "Mai.", "Jui.",
	"Jui.", "Aoû.", "Sep.", "Oct.", "Nov.", "Déc.",
}

// FormatDate converts an ISO calendar date (YYYY-MM-DD) into its French
// display form, e.g. "2004-04-04" -> "4 Avr. 04". It fails on unparseable
// input rather than producing a wrong date; callers rely on the error to
// trigger the keep-raw-date fallback.
func FormatDate(isoDate string) (string, error) {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", isoDate, err)
	}

	return fmt.Sprintf("%d %s %02d", t.Day(), frenchMonths[t.Month()-1], t.Year()%100), nil
}

// FormatStatus maps the canonical statuses to their display labels. Unknown
// values pass through unchanged so a bad record never breaks rendering.
func FormatStatus(status models.BillStatus) string {
	switch status {
	case models.BillStatusPending:
		return "En attente"
	case models.BillStatusAccepted:
		return "Accepté"
	case models.BillStatusRefused:
		return "Refusé"
	default:
		return string(status)
	}
}

// SortBillsByDateDesc orders display bills most recent first, comparing the
// textual date fields lexicographically. Stable, so equal dates keep their
// store order.
func SortBillsByDateDesc(bills []dto.BillResponse) {
	sort.SliceStable(bills, func(i, j int) bool {
		return bills[i].Date > bills[j].Date
	})
}
