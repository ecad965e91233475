package catalog_test

import (
	"testing"

	"farmstore/internal/core/domain/model/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServiceType(t *testing.T) {
	t.Run("accepts_known_values_case_insensitively", func(t *testing.T) {
		for _, input := range []string{"RAW", "raw", "Raw", " raw "} {
			st, err := catalog.ParseServiceType(input)
			require.NoError(t, err)
			assert.Equal(t, catalog.ServiceRaw, st)
		}
	})

	t.Run("rejects_unknown_values", func(t *testing.T) {
		_, err := catalog.ParseServiceType("fried")
		require.Error(t, err)
	})
}

func TestServiceType_Label(t *testing.T) {
	assert.Equal(t, "Raw Fish", catalog.ServiceRaw.Label())
	assert.Equal(t, "Cut Pieces", catalog.ServiceCut.Label())
	assert.Equal(t, "Cooked", catalog.ServiceCooked.Label())
	assert.Equal(t, "Pickle", catalog.ServicePickle.Label())
}

func TestServiceType_Priority(t *testing.T) {
	t.Run("raw_comes_first_pickle_last", func(t *testing.T) {
		assert.Less(t, catalog.ServiceRaw.Priority(), catalog.ServiceCut.Priority())
		assert.Less(t, catalog.ServiceCut.Priority(), catalog.ServiceCooked.Priority())
		assert.Less(t, catalog.ServiceCooked.Priority(), catalog.ServicePickle.Priority())
	})

	t.Run("unknown_types_sort_after_known_ones", func(t *testing.T) {
		unknown := catalog.ServiceType("SMOKED")
		assert.Greater(t, unknown.Priority(), catalog.ServicePickle.Priority())
	})
}

func TestParseCategory(t *testing.T) {
	t.Run("accepts_known_categories", func(t *testing.T) {
		for input, want := range map[string]catalog.Category{
			"fish":       catalog.CategoryFish,
			"Sheep":      catalog.CategorySheep,
			"VEGETABLES": catalog.CategoryVegetables,
		} {
			got, err := catalog.ParseCategory(input)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("rejects_unknown_category", func(t *testing.T) {
		_, err := catalog.ParseCategory("poultry")
		require.Error(t, err)
	})
}
