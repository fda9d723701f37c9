package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseImportRows(t *testing.T) {
	csv := strings.Join([]string{
		"name,species,sex,morphs,hatch_date,weight_grams,dam_name,sire_name",
		"Nova,Ball Python,female,banana;pastel,2024-06-01,1200,Luna,Atlas",
		"Rex,Boa Constrictor,male,,,,,",
	}, "\n")

	rows, rowErrs, err := parseImportRows(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, rows, 2)

	nova := rows[0]
	assert.Equal(t, "Nova", nova.name)
	assert.Equal(t, "female", nova.sex)
	assert.Equal(t, []string{"banana", "pastel"}, nova.morphs)
	require.NotNil(t, nova.hatchDate)
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local), *nova.hatchDate)
	require.NotNil(t, nova.weightGrams)
	assert.Equal(t, 1200, *nova.weightGrams)
	assert.Equal(t, "Luna", nova.damName)
	assert.Equal(t, "Atlas", nova.sireName)

	rex := rows[1]
	assert.Nil(t, rex.hatchDate)
	assert.Nil(t, rex.weightGrams)
	assert.Empty(t, rex.damName)
}

func TestParseImportRowsCollectsPerRowErrors(t *testing.T) {
	csv := strings.Join([]string{
		"name,species,sex,hatch_date,weight_grams",
		"Good,Ball Python,female,,",
		",Ball Python,female,,",
		"BadSex,Ball Python,intersex,,",
		"BadDate,Ball Python,male,01/02/2024,",
		"BadWeight,Ball Python,male,,-5",
	}, "\n")

	rows, rowErrs, err := parseImportRows(strings.NewReader(csv))
	require.NoError(t, err, "bad rows never abort the batch")
	assert.Len(t, rows, 1)
	assert.Equal(t, "Good", rows[0].name)

	require.Len(t, rowErrs, 4)
	lines := make([]int, 0, len(rowErrs))
	for _, e := range rowErrs {
		lines = append(lines, e.Row)
	}
	assert.ElementsMatch(t, []int{3, 4, 5, 6}, lines, "errors carry 1-based file line numbers")
}

func TestParseImportRowsMissingRequiredColumn(t *testing.T) {
	csv := "species,sex\nBall Python,female\n"

	_, _, err := parseImportRows(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"name"`)
}
