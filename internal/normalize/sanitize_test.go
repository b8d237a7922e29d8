package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeTable(t *testing.T) {
	header := []string{"Date", "Narration", "Amount"}
	roles := MapColumns(header)

	t.Run("drops junk rows", func(t *testing.T) {
		table := &Table{
			Header: header,
			Rows: []Row{
				{"15/01/2026", "POS  Purchase   Fuel", "5,000.00"},
				{"", "", ""},
				{"nan", "Transfer from Acme", "1,000.00"},
				{"16/01/2026", "Narration", "2,000.00"},
				{"17/01/2026", "Airtime purchase", "500.00"},
			},
		}

		clean := SanitizeTable(table, roles)
		require.Len(t, clean.Rows, 2)
		assert.Equal(t, "POS Purchase Fuel", clean.Rows[0].Cell(1))
		assert.Equal(t, "Airtime purchase", clean.Rows[1].Cell(1))
	})

	t.Run("idempotent", func(t *testing.T) {
		table := &Table{
			Header: header,
			Rows: []Row{
				{"15/01/2026", "POS Purchase Fuel", "5,000.00"},
				{"NULL", "junk", "1.00"},
			},
		}

		once := SanitizeTable(table, roles)
		twice := SanitizeTable(once, roles)
		assert.Equal(t, once, twice)
	})
}

func TestCountValidDates(t *testing.T) {
	header := []string{"Date", "Narration", "Amount"}
	roles := MapColumns(header)

	table := &Table{
		Header: header,
		Rows: []Row{
			{"15/01/2026", "ok", "1.00"},
			{"16 Jan 2026", "ok", "1.00"},
			{"Opening Balance", "junk", ""},
			{"tomorrow", "junk", "1.00"},
		},
	}
	assert.Equal(t, 2, CountValidDates(table, roles))

	t.Run("no date column scores zero", func(t *testing.T) {
		assert.Equal(t, 0, CountValidDates(table, Roles{Date: -1}))
	})
}
