package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	suggestionRequestsTotal        atomic.Uint64
	suggestionCacheHitsTotal       atomic.Uint64
	suggestionRemoteFallbacksTotal atomic.Uint64

	suggestionDuration = newHistogram([]float64{1, 5, 25, 100, 250, 1000, 2500, 5000, 10000})
)

// IncSuggestionRequest increments the suggestion request counter.
func IncSuggestionRequest() {
	suggestionRequestsTotal.Add(1)
}

// IncSuggestionCacheHit increments the cache hit counter.
func IncSuggestionCacheHit() {
	suggestionCacheHitsTotal.Add(1)
}

// IncSuggestionRemoteFallback increments the remote fallback counter.
func IncSuggestionRemoteFallback() {
	suggestionRemoteFallbacksTotal.Add(1)
}

// ObserveSuggestionDurationMs records a suggestion duration in milliseconds.
func ObserveSuggestionDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	suggestionDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "suggestion_requests_total", "Total priority suggestions requested", suggestionRequestsTotal.Load())
	writeCounter(&buf, "suggestion_cache_hits_total", "Total priority suggestions served from cache", suggestionCacheHitsTotal.Load())
	writeCounter(&buf, "suggestion_remote_fallbacks_total", "Total remote classifications replaced by the fallback suggestion", suggestionRemoteFallbacksTotal.Load())
	writeHistogram(&buf, "suggestion_duration_ms", "Suggestion duration in milliseconds", suggestionDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

// Observe records one value. Counts are kept per bucket; rendering cumulates.
func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
