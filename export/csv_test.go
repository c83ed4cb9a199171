package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AltarCheckinBackend/models"
)

func TestWriteSessionsCSV(t *testing.T) {
	clockIn := time.Date(2024, 1, 7, 23, 30, 0, 0, time.FixedZone("EST", -5*60*60))
	clockOut := clockIn.Add(95 * time.Minute)
	duration := 95

	rows := []*models.SessionExportRow{
		{
			Session: models.ServiceSession{
				ID:          2,
				UserID:      "u-1",
				ClockInTime: clockIn,
				ServiceType: `Mass "Solemn"`,
				IsActive:    true,
			},
			UserName:  "Ana Diaz",
			UserEmail: "ana@example.com",
		},
		{
			Session: models.ServiceSession{
				ID:           1,
				UserID:       "u-2",
				ClockInTime:  clockIn,
				ClockOutTime: &clockOut,
				Duration:     &duration,
				ServiceType:  "General Service",
			},
			UserName:  "Ben, Jr.",
			UserEmail: "ben@example.com",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSessionsCSV(&buf, rows))

	out := buf.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.NotContains(t, out, "\r")

	assert.Equal(t, `"User ID","User Name","Email","Service Type","Clock In Time","Clock Out Time","Duration (minutes)","Status","Date"`, lines[0])
	assert.Equal(t, `"u-1","Ana Diaz","ana@example.com","Mass ""Solemn""","2024-01-08T04:30:00.000Z","","0","Active","2024-01-08"`, lines[1])
	assert.Equal(t, `"u-2","Ben, Jr.","ben@example.com","General Service","2024-01-08T04:30:00.000Z","2024-01-08T06:05:00.000Z","95","Completed","2024-01-08"`, lines[2])

	// The output parses back as standard CSV.
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, `Mass "Solemn"`, records[1][3])
	assert.Equal(t, "Ben, Jr.", records[2][1])
}

func TestWriteSessionsCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSessionsCSV(&buf, nil))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestRecord_MillisecondPrecision(t *testing.T) {
	clockIn := time.Date(2024, 5, 2, 8, 0, 0, 123456789, time.UTC)
	got := Record(&models.SessionExportRow{Session: models.ServiceSession{UserID: "u", ClockInTime: clockIn}})
	assert.Equal(t, "2024-05-02T08:00:00.123Z", got[4])
	assert.Equal(t, "Completed", got[7])
}
