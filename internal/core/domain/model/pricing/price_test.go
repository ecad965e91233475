package pricing_test

import (
	"testing"

	"farmstore/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/assert"
)

func TestParsePriceNumber(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"currency_and_unit_suffix", "₹320/kg", 320},
		{"bare_number_with_unit", "500/kg", 500},
		{"currency_only", "₹280", 280},
		{"decimal_numeral", "₹49.50 per pack", 49.5},
		{"range_takes_first_numeral", "₹280–320", 280},
		{"no_digits", "Call for price", 0},
		{"empty_string", "", 0},
		{"numeral_after_text", "approx 120 rupees", 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, pricing.ParsePriceNumber(tt.text), 1e-9)
		})
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name string
		n    float64
		want string
	}{
		{"whole_amount_no_decimals", 320, "₹320"},
		{"half_rupee_two_decimals", 319.5, "₹319.50"},
		{"rounds_to_two_places", 319.499, "₹319.50"},
		{"rounds_up_to_whole", 319.999, "₹320"},
		{"zero", 0, "₹0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.FormatMoney(tt.n))
		})
	}
}

func TestQtyStep(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  float64
	}{
		{"kilogram_label", "1 kg", 0.5},
		{"gram_label", "500 g", 1},
		{"mixed_case_kg", "2 Kg", 0.5},
		{"upper_case_kg", "1.5KG", 0.5},
		{"pack_label", "pack of 4", 1},
		{"empty_label", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, pricing.QtyStep(tt.label), 1e-9)
		})
	}
}

func TestComputeTotal(t *testing.T) {
	t.Run("parsed_price_times_quantity", func(t *testing.T) {
		assert.InDelta(t, 480, pricing.ComputeTotal("₹320/kg", 1.5), 1e-9)
		assert.InDelta(t, 1000, pricing.ComputeTotal("500/kg", 2), 1e-9)
	})

	t.Run("unparseable_price_yields_zero", func(t *testing.T) {
		assert.InDelta(t, 0, pricing.ComputeTotal("Call for price", 3), 1e-9)
	})

	t.Run("no_rounding_before_display", func(t *testing.T) {
		total := pricing.ComputeTotal("₹99.99", 3)
		assert.InDelta(t, 299.97, total, 1e-9)
		assert.Equal(t, "₹299.97", pricing.FormatMoney(total))
	})
}
