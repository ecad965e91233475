package catalog_test

import (
	"testing"

	"farmstore/internal/core/domain/model/catalog"
	"farmstore/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFishItem(t *testing.T) {
	t.Run("creates_listing_with_defaults", func(t *testing.T) {
		item, err := catalog.NewFishItem(kernel.NewUUID(), "", "Rohu Seed", "1 inch • 10,000 qty", "Call for price", "")

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, catalog.FishFresh, item.ItemType())
		assert.Equal(t, catalog.Available, item.Status())
		assert.Equal(t, "Rohu Seed", item.Name())
	})

	t.Run("requires_name", func(t *testing.T) {
		_, err := catalog.NewFishItem(kernel.NewUUID(), catalog.FishBulk, "   ", "", "₹ / kg", "")
		require.ErrorIs(t, err, catalog.ErrFishItemNameIsRequired)
	})

	t.Run("requires_valid_id", func(t *testing.T) {
		_, err := catalog.NewFishItem(kernel.UUID{}, catalog.FishFresh, "Tilapia", "", "", "")
		require.Error(t, err)
	})

	t.Run("keeps_entered_status", func(t *testing.T) {
		item, err := catalog.NewFishItem(kernel.NewUUID(), catalog.FishBulk, "Rohu (Bulk)", "2 kg avg", "₹ / kg (Call)", catalog.Limited)
		require.NoError(t, err)
		assert.Equal(t, catalog.Limited, item.Status())
	})
}

func TestParseFishItemType(t *testing.T) {
	t.Run("blank_defaults_to_fresh", func(t *testing.T) {
		ft, err := catalog.ParseFishItemType("")
		require.NoError(t, err)
		assert.Equal(t, catalog.FishFresh, ft)
	})

	t.Run("accepts_known_types", func(t *testing.T) {
		for input, want := range map[string]catalog.FishItemType{
			"seed":  catalog.FishSeed,
			"Bulk":  catalog.FishBulk,
			"fresh": catalog.FishFresh,
		} {
			ft, err := catalog.ParseFishItemType(input)
			require.NoError(t, err)
			assert.Equal(t, want, ft)
		}
	})

	t.Run("rejects_unknown_type", func(t *testing.T) {
		_, err := catalog.ParseFishItemType("smoked")
		require.Error(t, err)
	})
}

func TestNewFishVariant(t *testing.T) {
	t.Run("creates_variant", func(t *testing.T) {
		v, err := catalog.NewFishVariant(kernel.NewUUID(), kernel.NewUUID(), catalog.ServiceRaw, "1 kg", "₹320/kg", "cleaned", "30", true)

		require.NoError(t, err)
		require.NoError(t, v.Validate())
		assert.True(t, v.IsAvailable())
	})

	t.Run("requires_size_label_and_price", func(t *testing.T) {
		_, err := catalog.NewFishVariant(kernel.NewUUID(), kernel.NewUUID(), catalog.ServiceRaw, " ", "₹320/kg", "", "", true)
		require.ErrorIs(t, err, catalog.ErrSizeLabelIsRequired)

		_, err = catalog.NewFishVariant(kernel.NewUUID(), kernel.NewUUID(), catalog.ServiceRaw, "1 kg", "", "", "", true)
		require.ErrorIs(t, err, catalog.ErrPriceIsRequired)
	})

	t.Run("rejects_unknown_service_type", func(t *testing.T) {
		_, err := catalog.NewFishVariant(kernel.NewUUID(), kernel.NewUUID(), "SMOKED", "1 kg", "₹320/kg", "", "", true)
		require.Error(t, err)
	})
}

func TestNewFishType(t *testing.T) {
	t.Run("trims_and_requires_name", func(t *testing.T) {
		ft, err := catalog.NewFishType(kernel.NewUUID(), "  Katla  ", "", "", true)
		require.NoError(t, err)
		assert.Equal(t, "Katla", ft.Name())

		_, err = catalog.NewFishType(kernel.NewUUID(), "   ", "", "", true)
		require.ErrorIs(t, err, catalog.ErrFishTypeNameIsRequired)
	})
}
