// Package csvexport renders exported history rows as CSV.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"dispatch/internal/core/application/usecases/queries"
)

// TimestampLayout is ISO 8601 in UTC with milliseconds.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// ContentType is the media type of the rendered document.
const ContentType = "text/csv; charset=utf-8"

// Header lists the exported columns in order.
var Header = []string{"code", "platform", "pay", "motoboy", "dayKey", "createdAt", "finishedAt"}

// Write renders the header followed by one record per row.
func Write(w io.Writer, rows []queries.ExportRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, r := range rows {
		record := []string{
			r.Code,
			r.Platform,
			r.Pay,
			r.Courier,
			r.DayKey,
			formatTime(r.CreatedAt),
			formatTime(r.FinishedAt),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
