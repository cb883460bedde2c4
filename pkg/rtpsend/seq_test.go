package rtpsend

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_IsSeqHigherThan(t *testing.T) {
	tests := []struct {
		name string
		a, b uint16
		want bool
	}{
		{"simple higher", 5, 3, true},
		{"simple lower", 3, 5, false},
		{"equal", 5, 5, false},
		{"wrap around", 1, 65535, true},
		{"wrap around reverse", 65535, 1, false},
		{"max distance is lower", 0x8000, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsSeqHigherThan(tt.a, tt.b))
			require.Equal(t, tt.want, IsSeqLowerThan(tt.b, tt.a))
		})
	}
}

func Test_seqDistance(t *testing.T) {
	require.Equal(t, uint16(2), seqDistance(5, 3))
	require.Equal(t, uint16(2), seqDistance(1, 65535))
}
