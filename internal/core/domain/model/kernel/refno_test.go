package kernel_test

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"freightflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateRequestRefNo(t *testing.T) {
	before := time.Now().UnixMilli()
	ref := kernel.NewRateRequestRefNo()
	after := time.Now().UnixMilli()

	require.NoError(t, ref.Validate())
	assert.True(t, strings.HasPrefix(ref.String(), "RR"))

	// Timestamp part: everything after the prefix minus the 1-3 digit suffix
	// must parse back to a millisecond timestamp within the call window.
	digits := strings.TrimPrefix(ref.String(), "RR")
	found := false
	for cut := 1; cut <= 3 && cut < len(digits); cut++ {
		ts, err := strconv.ParseInt(digits[:len(digits)-cut], 10, 64)
		if err == nil && ts >= before && ts <= after {
			found = true
			break
		}
	}
	assert.True(t, found, "refNo %q does not embed a current millisecond timestamp", ref.String())
}

func TestRefNoFromString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ref, err := kernel.RefNoFromString("RR1735689600000123")
		require.NoError(t, err)
		assert.Equal(t, "RR1735689600000123", ref.String())
	})

	t.Run("missing prefix", func(t *testing.T) {
		_, err := kernel.RefNoFromString("XX123")
		require.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := kernel.RefNoFromString("")
		require.Error(t, err)
	})
}

func TestRefNoValidate(t *testing.T) {
	var zero kernel.RefNo
	require.Error(t, zero.Validate())
}
