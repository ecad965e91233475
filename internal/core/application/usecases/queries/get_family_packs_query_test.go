package queries_test

import (
	"testing"

	"farmstore/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetFamilyPacksQuery_Validates(t *testing.T) {
	query := queries.NewGetFamilyPacksQuery()
	require.NoError(t, query.Validate())
}

func TestGetFamilyPacksQueryHandler_Handle_InvalidQuery(t *testing.T) {
	h := queries.NewGetFamilyPacksQueryHandler(nil)
	result, err := h.Handle(t.Context(), queries.GetFamilyPacksQuery{})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, queries.ErrGetFamilyPacksQueryIsNotConstructed)
}
