package anneal

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/renormtsp/renorm"
	"github.com/katalvlaran/renormtsp/tsp"
)

// TestMetrics counts iterations, acceptances and finished runs.
func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	rc, err := renorm.NewContext([]tsp.Point{{0, 0}, {4, 1}, {2, 5}, {7, 3}, {1, 9}, {6, 6}}, nil)
	require.NoError(t, err)
	p := Params{TempInit: 10, TempEnd: 0.01, TempSig: 0.001, BMSigma: 1, K: 1, MaxIterations: 20}
	res, err := Run(context.Background(), rc, p, WithObserver(m))
	require.NoError(t, err)

	require.Equal(t, float64(res.Iterations), testutil.ToFloat64(m.iterations))
	require.Equal(t, float64(res.Accepted), testutil.ToFloat64(m.accepted))
	require.Equal(t, res.BestLength, testutil.ToFloat64(m.bestLength))
	require.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues(string(res.Stop))))
	require.Equal(t, 1, testutil.CollectAndCount(m.step))

	expected := `
# HELP renormtsp_anneal_runs_total Finished annealing runs by stop reason
# TYPE renormtsp_anneal_runs_total counter
renormtsp_anneal_runs_total{stop="` + string(res.Stop) + `"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "renormtsp_anneal_runs_total"))
}

// TestAmplitude is 2π at the terminal temperature and clamps overflow.
func TestAmplitude(t *testing.T) {
	p := Params{TempInit: 10, TempEnd: 0.01, BMSigma: 1}
	require.Equal(t, bmStart, amplitude(p.TempEnd, p, 3))
	require.InDelta(t, bmStart, amplitude(5, p, 0), 1e-12)

	p.BMSigma = 1e6
	require.Equal(t, float64(math.MaxFloat32), amplitude(10, p, 5))
}

// TestStreams derives independent, reproducible sources.
func TestStreams(t *testing.T) {
	a1, b1 := streams(0)
	a2, b2 := streams(defaultRNGSeed)
	require.Equal(t, a1.Int63(), a2.Int63())
	require.Equal(t, b1.Int63(), b2.Int63())

	p, q := streams(7)
	require.NotEqual(t, p.Int63(), q.Int63())
}
