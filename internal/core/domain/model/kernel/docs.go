// Package kernel holds shared value objects used by every domain model in
// the storefront: currently the UUID identifier wrapper. Types here carry no
// business rules of their own beyond construction validity.
package kernel
