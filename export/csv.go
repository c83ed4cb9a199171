package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"AltarCheckinBackend/models"
)

const (
	// Filename is the attachment name used by the HTTP export.
	Filename = "altar_server_logs.csv"

	timestampLayout = "2006-01-02T15:04:05.000Z"
	dateLayout      = "2006-01-02"
)

var header = []string{
	"User ID",
	"User Name",
	"Email",
	"Service Type",
	"Clock In Time",
	"Clock Out Time",
	"Duration (minutes)",
	"Status",
	"Date",
}

// WriteSessionsCSV writes the header and one line per row. Every field is
// quoted. Lines end with a bare newline.
func WriteSessionsCSV(w io.Writer, rows []*models.SessionExportRow) error {
	bw := bufio.NewWriter(w)
	writeLine(bw, header)
	for _, row := range rows {
		if row == nil {
			continue
		}
		writeLine(bw, Record(row))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// Record renders one session as export fields, unquoted.
func Record(row *models.SessionExportRow) []string {
	s := row.Session

	clockOut := ""
	if s.ClockOutTime != nil {
		clockOut = formatTimestamp(*s.ClockOutTime)
	}
	duration := "0"
	if s.Duration != nil {
		duration = strconv.Itoa(*s.Duration)
	}
	status := "Completed"
	if s.IsActive {
		status = "Active"
	}

	return []string{
		s.UserID,
		row.UserName,
		row.UserEmail,
		s.ServiceType,
		formatTimestamp(s.ClockInTime),
		clockOut,
		duration,
		status,
		s.ClockInTime.UTC().Format(dateLayout),
	}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func writeLine(w *bufio.Writer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			w.WriteByte(',')
		}
		w.WriteByte('"')
		w.WriteString(strings.ReplaceAll(f, `"`, `""`))
		w.WriteByte('"')
	}
	w.WriteByte('\n')
}
