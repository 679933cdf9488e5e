package skema

import (
	"context"
	"math"
	"reflect"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/reoring/skema"

// ResultCache memoizes validation results of one schema instance. Keys follow
// SameValueZero: NaN matches NaN and +0 matches -0. Values that cannot be
// compared (maps, slices, funcs) are never cached.
type ResultCache struct {
	mu      sync.Mutex
	entries map[any]ValidationResult
	attrs   metric.MeasurementOption
}

func newResultCache(k Kind) *ResultCache {
	return &ResultCache{
		entries: map[any]ValidationResult{},
		attrs:   metric.WithAttributes(attribute.String("schema.kind", string(k))),
	}
}

// nanKey stands in for a NaN of type typ, which never equals itself as a map
// key.
type nanKey struct{ typ reflect.Type }

func cacheKey(v any) (any, bool) {
	if v == nil {
		return nil, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		if math.IsNaN(rv.Float()) {
			return nanKey{typ: rv.Type()}, true
		}
	}
	// Composites holding a NaN compare unequal to themselves.
	if !rv.Comparable() || !rv.Equal(rv) {
		return nil, false
	}
	return v, true
}

// Do returns the memoized result for v, running compute at most once per key.
func (c *ResultCache) Do(v any, compute func() ValidationResult) ValidationResult {
	key, ok := cacheKey(v)
	if !ok {
		return compute()
	}
	c.mu.Lock()
	if res, hit := c.entries[key]; hit {
		c.mu.Unlock()
		cacheMetrics().hit(c.attrs)
		return res
	}
	res := compute()
	c.entries[key] = res
	c.mu.Unlock()
	cacheMetrics().miss(c.attrs)
	return res
}

// Len reports the number of memoized results.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

type cacheInstruments struct {
	hits   metric.Int64Counter
	misses metric.Int64Counter
}

func (ci *cacheInstruments) hit(opt metric.MeasurementOption) {
	if ci.hits != nil {
		ci.hits.Add(context.Background(), 1, opt)
	}
}

func (ci *cacheInstruments) miss(opt metric.MeasurementOption) {
	if ci.misses != nil {
		ci.misses.Add(context.Background(), 1, opt)
	}
}

var (
	instrumentsOnce sync.Once
	instruments     atomic.Pointer[cacheInstruments]
)

func cacheMetrics() *cacheInstruments {
	instrumentsOnce.Do(func() {
		if instruments.Load() == nil {
			instruments.Store(newCacheInstruments(otel.GetMeterProvider()))
		}
	})
	return instruments.Load()
}

func newCacheInstruments(mp metric.MeterProvider) *cacheInstruments {
	m := mp.Meter(instrumentationName)
	ci := &cacheInstruments{}
	ci.hits, _ = m.Int64Counter("skema.validate.cache.hits",
		metric.WithDescription("Validation results served from a schema's cache"))
	ci.misses, _ = m.Int64Counter("skema.validate.cache.misses",
		metric.WithDescription("Validation results computed and stored in a schema's cache"))
	return ci
}

// SetMeterProvider routes cache metrics to mp. Without it the global
// OpenTelemetry provider is used.
func SetMeterProvider(mp metric.MeterProvider) {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	instruments.Store(newCacheInstruments(mp))
}
