// Package catalog models the sellable farm produce: fish stock listings,
// live sheep, vegetables, and the fish family-pack hierarchy of fish types
// and their variants. Prices and sizes are deliberately free-text display
// strings entered by staff; the pricing package extracts numerals from them
// at the boundary.
package catalog
