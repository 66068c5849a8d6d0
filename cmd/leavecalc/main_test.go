package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/paid-leave/api"
	"github.com/warp/paid-leave/generic"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCalc_Tables(t *testing.T) {
	out, err := run(t, "calc", "--start", "2024-04-15", "--end", "2024-07-10", "--salary", "1000")

	require.NoError(t, err)
	assert.Contains(t, out, "2024-04-15 → 2024-05-31")
	assert.Contains(t, out, "174.24")
	assert.Contains(t, out, "2024-07")
	assert.Contains(t, out, "2855.91")
}

func TestCalc_JSON(t *testing.T) {
	out, err := run(t, "calc", "--start", "2024-04-15", "--end", "2024-07-10", "--salary", "1000", "--json")

	require.NoError(t, err)
	var dto api.CalculationDTO
	require.NoError(t, json.Unmarshal([]byte(out), &dto))
	assert.Len(t, dto.Periods, 2)
	assert.Len(t, dto.MonthlyDetails, 4)
	assert.Equal(t, "82.56", dto.MonthlyDetails[3].LeaveTotalPayAsYouGo)
}

func TestCalc_ValidationError(t *testing.T) {
	_, err := run(t, "calc", "--start", "2024-07-10", "--end", "2024-04-15", "--salary", "1000")

	require.Error(t, err)
	assert.ErrorIs(t, err, generic.ErrDateOrder)
	assert.Equal(t, "The end date must be after the start date.", err.Error())
}

func TestCalc_MissingFlags(t *testing.T) {
	_, err := run(t, "calc", "--start", "2024-04-15")

	assert.ErrorIs(t, err, generic.ErrMissingField)
}
