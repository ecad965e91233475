package pricing

import "math"

// QuantityStepper holds the quantity a customer is composing for a variant
// and enforces the stepping rules: increments move by the variant's step,
// decrements clamp at one step unit, and manual entry is accepted verbatim
// only when it parses to a finite positive number. Invalid manual entry is a
// silent no-op so a customer mid-edit never sees their quantity collapse.
type QuantityStepper struct {
	qty  float64
	step float64
}

// NewQuantityStepper creates a stepper for the given size label starting at
// quantity 1.
func NewQuantityStepper(sizeLabel string) *QuantityStepper {
	return NewQuantityStepperAt(sizeLabel, 1)
}

// NewQuantityStepperAt creates a stepper seeded with a quantity carried over
// from the catalog page. Non-positive or non-finite seeds fall back to 1.
func NewQuantityStepperAt(sizeLabel string, qty float64) *QuantityStepper {
	if !isPositiveFinite(qty) {
		qty = 1
	}
	return &QuantityStepper{
		qty:  qty,
		step: QtyStep(sizeLabel),
	}
}

// Quantity returns the current quantity.
func (s *QuantityStepper) Quantity() float64 {
	return s.qty
}

// Step returns the increment granularity for the variant.
func (s *QuantityStepper) Step() float64 {
	return s.step
}

// CanDecrement reports whether a decrement would keep the quantity above
// zero. The decrement control is disabled once quantity sits at one step.
func (s *QuantityStepper) CanDecrement() bool {
	return s.qty > s.step
}

// Increment raises the quantity by one step. There is no upper clamp.
func (s *QuantityStepper) Increment() {
	s.qty = round2(s.qty + s.step)
}

// Decrement lowers the quantity by one step, clamping at one step unit.
func (s *QuantityStepper) Decrement() {
	s.qty = math.Max(s.step, round2(s.qty-s.step))
}

// Set accepts a manually entered quantity. Values that are not finite
// positive numbers are silently ignored and the current quantity stands.
func (s *QuantityStepper) Set(qty float64) {
	if !isPositiveFinite(qty) {
		return
	}
	s.qty = qty
}

func isPositiveFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// round2 keeps stepped quantities at two decimal places so repeated
// half-unit steps do not accumulate float noise.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
