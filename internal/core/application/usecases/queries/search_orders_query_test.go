package queries_test

import (
	"testing"

	"orderdesk/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchOrdersQuery(t *testing.T) {
	query := queries.NewSearchOrdersQuery("ord-00")
	require.NoError(t, query.Validate())
	assert.Equal(t, "ord-00", query.Filter())
}

func TestNewSearchOrdersQuery_EmptyFilter(t *testing.T) {
	query := queries.NewSearchOrdersQuery("")
	require.NoError(t, query.Validate())
	assert.Empty(t, query.Filter())
}

func TestSearchOrdersQuery_Validate_ZeroValue(t *testing.T) {
	var query queries.SearchOrdersQuery
	require.Error(t, query.Validate())
}
