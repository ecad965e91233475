// Package pricing implements the storefront pricing engine: tolerant
// numeral extraction from human-entered price strings, money formatting,
// quantity stepping for kilogram- and piece-denominated variants, and the
// lossy serialization of a catalog selection into an order page link.
package pricing
