package order

import (
	"fmt"
	"strings"

	"farmstore/internal/pkg/errs"
)

// Status is the lifecycle state of a persisted order.
//
// The conventional flow is:
//
//	NEW ──> CONTACTED ──> CONFIRMED ──> DELIVERED
//	 └────────┴──────────────┴────────> CANCELLED
//
// DELIVERED and CANCELLED are terminal by convention only: the administrator
// status update overwrites the field with any member of the set, and no
// transition table is enforced. There is no audit trail of previous statuses.
type Status string

const (
	StatusNew       Status = "NEW"
	StatusContacted Status = "CONTACTED"
	StatusConfirmed Status = "CONFIRMED"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

// AllStatuses lists the fixed status set in conventional flow order.
var AllStatuses = []Status{StatusNew, StatusContacted, StatusConfirmed, StatusDelivered, StatusCancelled}

// ParseStatus maps a request string onto a member of the status set. Input
// is upper-cased before matching, so "delivered" persists as DELIVERED.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if err := st.Validate(); err != nil {
		return "", err
	}
	return st, nil
}

// Validate reports whether the status is a member of the fixed set.
func (s Status) Validate() error {
	for _, known := range AllStatuses {
		if s == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", string(s)))
}

// String returns the upper-cased wire representation.
func (s Status) String() string {
	return string(s)
}
