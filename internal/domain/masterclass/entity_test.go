//go:build unit

package masterclass_test

import (
	"testing"
	"time"

	"smakownia-backend/internal/domain/masterclass"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	date := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	dateEnd := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	t.Run("single day", func(t *testing.T) {
		assert.Equal(t, "07.06.2025", masterclass.FormatDate(masterclass.DateSingle, date, nil))
	})

	t.Run("range", func(t *testing.T) {
		assert.Equal(t, "07.06.2025 - 09.06.2025", masterclass.FormatDate(masterclass.DateRange, date, &dateEnd))
	})

	t.Run("range without end date falls back to single", func(t *testing.T) {
		assert.Equal(t, "07.06.2025", masterclass.FormatDate(masterclass.DateRange, date, nil))
	})
}

func TestTimeWindow(t *testing.T) {
	m := &masterclass.Masterclass{HourStart: "10:00", HourEnd: "14:00"}
	assert.Equal(t, "10:00 - 14:00", m.TimeWindow())

	m.HourEnd = ""
	assert.Equal(t, "", m.TimeWindow())
}

func TestNewDateType(t *testing.T) {
	for _, valid := range []string{"single", "range"} {
		dt, err := masterclass.NewDateType(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(dt))
	}

	_, err := masterclass.NewDateType("weekly")
	assert.ErrorIs(t, err, masterclass.ErrInvalidDateType)
}

func TestLocalizedTextForLocale(t *testing.T) {
	txt := masterclass.LocalizedText{PL: "Warsztaty", EN: "Workshop"}

	assert.Equal(t, "Workshop", txt.ForLocale("en"))
	assert.Equal(t, "Warsztaty", txt.ForLocale("pl"))

	// Missing translation falls back to Polish.
	partial := masterclass.LocalizedText{PL: "Warsztaty"}
	assert.Equal(t, "Warsztaty", partial.ForLocale("en"))
}
