package queries_test

import (
	"testing"
	"time"

	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExportOrderQuery_ValidInput(t *testing.T) {
	id, err := kernel.ParseOrderID("ORD-007")
	require.NoError(t, err)
	exportedAt := time.Date(2025, 6, 2, 15, 4, 0, 0, time.UTC)

	query, err := queries.NewExportOrderQuery(id, exportedAt)
	require.NoError(t, err)
	assert.Equal(t, "ORD-007", query.OrderID().String())
	assert.Equal(t, exportedAt, query.ExportedAt())
}

func TestNewExportOrderQuery_InvalidOrderID(t *testing.T) {
	var invalidID kernel.OrderID // zero value, should trigger validation error
	_, err := queries.NewExportOrderQuery(invalidID, time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrOrderIDIsNotConstructed)
}

func TestNewExportOrderQuery_ZeroExportedAt(t *testing.T) {
	id, err := kernel.ParseOrderID("ORD-007")
	require.NoError(t, err)

	_, err = queries.NewExportOrderQuery(id, time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrExportedAtIsRequired)
}
