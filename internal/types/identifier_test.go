package types

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		raw  string
		want VersionedIdentifier
	}{
		{"xilinx.com:interface:aximm_rtl:1.0", VersionedIdentifier{"xilinx.com", "interface", "aximm_rtl", "1.0"}},
		{" acme:bus:axi : 2.1 ", VersionedIdentifier{"acme", "bus", "axi", "2.1"}},
	}
	for _, tt := range tests {
		id, err := ParseIdentifier(tt.raw)
		require.NoError(t, err)
		if diff := cmp.Diff(tt.want, id); diff != "" {
			t.Fatalf("unexpected identifier (-want +got):\n%s", diff)
		}
	}
}

func TestParseIdentifierRejectsWrongArity(t *testing.T) {
	for _, raw := range []string{"", "a:b:c", "a:b:c:d:e"} {
		_, err := ParseIdentifier(raw)
		require.Error(t, err, raw)
	}
}

func TestIdentifierString(t *testing.T) {
	id := NewIdentifier("xilinx.com", "signal", "clock_rtl", "1.0")
	require.Equal(t, "xilinx.com:signal:clock_rtl:1.0", id.String())
}

func TestIdentifierIsZero(t *testing.T) {
	require.True(t, VersionedIdentifier{}.IsZero())
	require.False(t, NewIdentifier("v", "", "", "").IsZero())
}

func TestWithoutVersion(t *testing.T) {
	id := NewIdentifier("v", "l", "n", "1.0")
	require.Equal(t, "", id.WithoutVersion().Version)
	require.Equal(t, "1.0", id.Version)
}
