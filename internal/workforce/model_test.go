package workforce

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNetPayRounding(t *testing.T) {
	require.Equal(t, 11500.0, NetPay(12000, 800, 1300))
	require.Equal(t, 10000.01, NetPay(10000.005, 0.005, 0))
	require.Equal(t, -100.0, NetPay(0, 0, 100))
}

func TestNetPayAvoidsFloatDrift(t *testing.T) {
	// 0.1+0.2 style inputs must still land exactly on centavos.
	require.Equal(t, 0.3, NetPay(0.1, 0.2, 0))
}

func TestFullName(t *testing.T) {
	e := Employee{FirstName: "Ana", LastName: "Cruz"}
	require.Equal(t, "Ana Cruz", e.FullName())
}

func TestAttendanceStatusValid(t *testing.T) {
	for _, s := range AttendanceStatuses() {
		require.True(t, s.Valid())
	}
	require.False(t, AttendanceStatus("On Leave").Valid())
}
