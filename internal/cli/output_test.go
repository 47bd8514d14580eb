package cli

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oskarw/pantrylist/internal/grocery"
)

func sampleEntries() []grocery.Entry {
	added := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	return []grocery.Entry{
		{
			ID:        "e-1",
			Brand:     "Coca Cola",
			Name:      "330ml Can",
			Ownership: grocery.OwnershipAuto,
			AddedAt:   added,
			Seq:       1,
		},
		{
			ID:        "e-2",
			Name:      "Dish Soap",
			Checked:   true,
			Ownership: grocery.OwnershipManual,
			AddedAt:   added.Add(time.Minute),
			Seq:       2,
		},
		{
			ID:        "e-3",
			Brand:     "Arla",
			Name:      "Milk",
			Ownership: grocery.OwnershipAuto,
			AddedAt:   added.Add(2 * time.Minute),
			Seq:       3,
		},
	}
}

func TestFormatEntriesGolden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "list_text", []byte(FormatEntries(sampleEntries())))
}

func TestFormatEntriesJSONGolden(t *testing.T) {
	out, err := FormatEntriesJSON(sampleEntries())
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "list_json", []byte(out))
}

func TestFormatEntriesEmpty(t *testing.T) {
	assert.Equal(t, "(empty list)\n", FormatEntries(nil))
}

func TestFormatEntriesJSONRoundTrips(t *testing.T) {
	out, err := FormatEntriesJSON(sampleEntries())
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 3)
	assert.Equal(t, "auto", decoded[0]["ownership"])
	assert.Equal(t, true, decoded[1]["checked"])
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "boom", nil)))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
}
