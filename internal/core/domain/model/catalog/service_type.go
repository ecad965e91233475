package catalog

import (
	"fmt"
	"strings"

	"farmstore/internal/pkg/errs"
)

// ServiceType classifies how a family-pack fish variant is prepared.
type ServiceType string

const (
	ServiceRaw    ServiceType = "RAW"
	ServiceCut    ServiceType = "CUT"
	ServiceCooked ServiceType = "COOKED"
	ServicePickle ServiceType = "PICKLE"
)

// ServicePriority is the display ordering of service types on the
// storefront. Raw fish is offered first, pickle last.
var ServicePriority = []ServiceType{ServiceRaw, ServiceCut, ServiceCooked, ServicePickle}

var serviceLabels = map[ServiceType]string{
	ServiceRaw:    "Raw Fish",
	ServiceCut:    "Cut Pieces",
	ServiceCooked: "Cooked",
	ServicePickle: "Pickle",
}

// ParseServiceType maps a request string onto a known service type.
// Input is upper-cased before matching, so case-insensitive input is
// tolerated.
func ParseServiceType(s string) (ServiceType, error) {
	st := ServiceType(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := serviceLabels[st]; !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("serviceType",
			fmt.Errorf("%q is not a known service type", s))
	}
	return st, nil
}

// Validate reports whether the service type is one of the known values.
func (s ServiceType) Validate() error {
	if _, ok := serviceLabels[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("serviceType",
			fmt.Errorf("%q is not a known service type", string(s)))
	}
	return nil
}

// Label returns the customer-facing label for the service type, or the raw
// value when it is unknown.
func (s ServiceType) Label() string {
	if label, ok := serviceLabels[s]; ok {
		return label
	}
	return string(s)
}

// Priority returns the service type's position in the storefront ordering.
// Unknown types sort after all known ones.
func (s ServiceType) Priority() int {
	for i, st := range ServicePriority {
		if st == s {
			return i
		}
	}
	return len(ServicePriority)
}

// String returns the wire representation of the service type.
func (s ServiceType) String() string {
	return string(s)
}
