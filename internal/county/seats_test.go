package county

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeat_Known(t *testing.T) {
	t.Parallel()

	p, ok := Seat("El Dorado")
	require.True(t, ok)
	require.InDelta(t, 38.7296, p.Lat, 0.0001)
	require.InDelta(t, -120.7985, p.Lon, 0.0001)
}

func TestSeat_StripsCountySuffix(t *testing.T) {
	t.Parallel()

	p, ok := Seat("El Dorado County")
	require.True(t, ok)
	require.InDelta(t, 38.7296, p.Lat, 0.0001)
}

func TestSeat_NormalizesCase(t *testing.T) {
	t.Parallel()

	_, ok := Seat("fresno county")
	require.True(t, ok)

	_, ok = Seat("SAN LUIS OBISPO")
	require.True(t, ok)
}

func TestSeat_Unknown(t *testing.T) {
	t.Parallel()

	_, ok := Seat("Atlantis")
	require.False(t, ok)
}

func TestSeat_TableCoversEveryFallbackCounty(t *testing.T) {
	t.Parallel()

	for _, name := range Fallback() {
		_, ok := Seat(name)
		require.True(t, ok, "missing seat for %s", name)
	}
	require.Len(t, countySeats, 58)
}
