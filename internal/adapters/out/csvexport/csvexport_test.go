package csvexport_test

import (
	"bytes"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"dispatch/internal/adapters/out/csvexport"
	"dispatch/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	created := time.Date(2025, 3, 14, 10, 0, 0, 0, time.FixedZone("BRT", -3*60*60))
	rows := []queries.ExportRow{
		{
			Code: "1234", Platform: "iFood", Pay: "PIX", Courier: "Motoboy 01", DayKey: "2025-03-14",
			CreatedAt: created, FinishedAt: created.Add(90*time.Minute + 250*time.Millisecond),
		},
		{
			Code: "555", Platform: "AUTO", Pay: `Cartão, "crédito"`, Courier: "", DayKey: "",
			CreatedAt: created, FinishedAt: created,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, csvexport.Write(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		csvexport.Header,
		{"1234", "iFood", "PIX", "Motoboy 01", "2025-03-14", "2025-03-14T13:00:00.000Z", "2025-03-14T14:30:00.250Z"},
		{"555", "AUTO", `Cartão, "crédito"`, "", "", "2025-03-14T13:00:00.000Z", "2025-03-14T13:00:00.000Z"},
	}, records)
}

func TestWrite_EmptyHistoryWritesHeaderOnly(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, csvexport.Write(&buf, nil))

	assert.Equal(t, "code,platform,pay,motoboy,dayKey,createdAt,finishedAt\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWrite_PropagatesWriterErrors(t *testing.T) {
	err := csvexport.Write(failingWriter{}, []queries.ExportRow{{Code: "123"}})

	assert.EqualError(t, err, "disk full")
}
