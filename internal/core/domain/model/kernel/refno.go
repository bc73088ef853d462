package kernel

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"freightflow/internal/pkg/errs"
)

// rateRequestRefPrefix is the human-facing prefix for rate request
// reference numbers.
const rateRequestRefPrefix = "RR"

// RefNo is a human-legible business reference number. It is practically
// unique (millisecond timestamp plus a 3-digit random suffix) but not
// guaranteed unique; the store primary key remains the true identity, so
// a theoretical collision is tolerated rather than prevented.
type RefNo struct {
	value string
}

// NewRateRequestRefNo generates a reference number of the form
// "RR<millisecond timestamp><0-999 suffix>".
func NewRateRequestRefNo() RefNo {
	return RefNo{value: fmt.Sprintf("%s%d%d",
		rateRequestRefPrefix, time.Now().UnixMilli(), rand.Intn(1000))}
}

// RefNoFromString reconstructs a reference number from persistence.
func RefNoFromString(s string) (RefNo, error) {
	if !strings.HasPrefix(s, rateRequestRefPrefix) || len(s) <= len(rateRequestRefPrefix) {
		return RefNo{}, errs.NewValueIsInvalidError("refNo")
	}
	return RefNo{value: s}, nil
}

// String returns the reference number text.
func (r RefNo) String() string {
	return r.value
}

// Validate returns an error if the reference number is the zero value.
func (r RefNo) Validate() error {
	if r.value == "" {
		return errs.NewValueIsRequiredError("refNo")
	}
	return nil
}
