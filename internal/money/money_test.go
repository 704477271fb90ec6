package money

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	f := Default()
	require.Equal(t, "$1,700,000", f.Format(1700000))
	require.Equal(t, "$6,177,000", f.Format(6177000))
	require.Equal(t, "$0", f.Format(0))
	require.Equal(t, "$325,000", f.Format(325000))
	require.Equal(t, "-$1,000", f.Format(-1000))
}

func TestFormatterFallbacks(t *testing.T) {
	require.Equal(t, "$8,000,000", NewFormatter("$", "not a locale!").Format(8000000))
	require.Equal(t, "$12", Formatter{}.Format(12))
}
