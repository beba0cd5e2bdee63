package county

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jbrasil/fishplants/internal/observability"
)

type stubSource struct {
	cells []string
	err   error
	calls int
}

func (s *stubSource) CountyCells(_ context.Context) ([]string, error) {
	s.calls++
	return s.cells, s.err
}

func newTestProvider(source CellSource, clock clockwork.Clock) *Provider {
	return NewProvider(source, time.Hour, clock, observability.NewNopMetrics(), zap.NewNop())
}

func TestCounties_NormalizesAndSorts(t *testing.T) {
	t.Parallel()

	source := &stubSource{cells: []string{"FRESNO", "el dorado", " Inyo ", "Fresno", "el dorado"}}
	p := newTestProvider(source, clockwork.NewFakeClock())

	got := p.Counties(context.Background())
	require.Equal(t, []string{"El Dorado", "Fresno", "Inyo"}, got)
}

func TestCounties_CachedWithinTTL(t *testing.T) {
	t.Parallel()

	source := &stubSource{cells: []string{"Fresno"}}
	clock := clockwork.NewFakeClock()
	p := newTestProvider(source, clock)

	p.Counties(context.Background())
	clock.Advance(59 * time.Minute)
	p.Counties(context.Background())

	require.Equal(t, 1, source.calls)
}

func TestCounties_RefreshesAfterTTL(t *testing.T) {
	t.Parallel()

	source := &stubSource{cells: []string{"Fresno"}}
	clock := clockwork.NewFakeClock()
	p := newTestProvider(source, clock)

	p.Counties(context.Background())
	clock.Advance(61 * time.Minute)
	p.Counties(context.Background())

	require.Equal(t, 2, source.calls)
}

func TestCounties_FallbackOnError(t *testing.T) {
	t.Parallel()

	source := &stubSource{err: errors.New("boom")}
	p := newTestProvider(source, clockwork.NewFakeClock())

	got := p.Counties(context.Background())
	require.Len(t, got, 58)
	require.Contains(t, got, "El Dorado")
}

func TestCounties_FailedRefreshDoesNotPoisonCache(t *testing.T) {
	t.Parallel()

	source := &stubSource{err: errors.New("boom")}
	clock := clockwork.NewFakeClock()
	p := newTestProvider(source, clock)

	p.Counties(context.Background())
	p.Counties(context.Background())

	// Each call retried the fetch because the failure path never writes
	// the cache.
	require.Equal(t, 2, source.calls)

	// Upstream recovers; the next call caches the live list.
	source.err = nil
	source.cells = []string{"Inyo"}
	require.Equal(t, []string{"Inyo"}, p.Counties(context.Background()))
	p.Counties(context.Background())
	require.Equal(t, 3, source.calls)
}

func TestFallback_Complete(t *testing.T) {
	t.Parallel()

	list := Fallback()
	require.Len(t, list, 58)
	require.Equal(t, "Alameda", list[0])
	require.Equal(t, "Yuba", list[len(list)-1])

	// Returned slice is a copy; mutating it must not affect the source.
	list[0] = "mutated"
	require.Equal(t, "Alameda", Fallback()[0])
}
