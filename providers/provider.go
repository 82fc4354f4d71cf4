// Package providers serves market prices, weather forecasts, agronomy tips
// and alerts. The data is generated deterministically from seeded
// pseudo-random streams rather than fetched, so repeated reads agree and
// tests are stable. Every read honors its context and can simulate upstream
// latency.
package providers

import (
	"context"
	"hash/fnv"
	"time"
)

// Counties of Liberia, the portal's service area.
var Counties = []string{
	"Bomi", "Bong", "Gbarpolu", "Grand Bassa", "Grand Cape Mount",
	"Grand Gedeh", "Grand Kru", "Lofa", "Margibi", "Maryland",
	"Montserrado", "Nimba", "River Cess", "River Gee", "Sinoe",
}

// Provider groups the generated data sources behind one latency knob.
type Provider struct {
	// Latency imitates the round trip to a data service. Zero in tests.
	Latency time.Duration
}

func New(latency time.Duration) *Provider {
	return &Provider{Latency: latency}
}

// wait sleeps for the configured latency unless the context ends first.
func (p *Provider) wait(ctx context.Context) error {
	if p.Latency <= 0 {
		return nil
	}
	timer := time.NewTimer(p.Latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// seededRand is a small LCG seeded from a string key, giving each
// (crop, county, period) tuple its own repeatable stream.
type seededRand struct {
	state uint64
}

func newSeededRand(key string) *seededRand {
	h := fnv.New64a()
	h.Write([]byte(key))
	return &seededRand{state: h.Sum64()}
}

func (r *seededRand) next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state >> 33
}

// intn returns a value in [0, n).
func (r *seededRand) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.next() % uint64(n))
}

// float64n returns a value in [0, n).
func (r *seededRand) float64n(n float64) float64 {
	return float64(r.next()%1000000) / 1000000 * n
}
