// Package main provides an in-process load tool for the classifier
package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/muliwe/go-dispatch-sorter/internal/classifier"
)

// metrics are kept on a private registry and only written out as a
// node_exporter textfile
type metrics struct {
	registry        *prometheus.Registry
	classifications *prometheus.CounterVec
	latency         prometheus.Histogram
}

func newMetrics(runID string) *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "sorter",
			Subsystem:   "benchmark",
			Name:        "classifications_total",
			Help:        "Packages classified, by dispatch stack or error kind.",
			ConstLabels: prometheus.Labels{"run_id": runID},
		}, []string{"result"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   "sorter",
			Subsystem:   "benchmark",
			Name:        "classify_duration_seconds",
			Help:        "Time spent in a single Sort call.",
			ConstLabels: prometheus.Labels{"run_id": runID},
			Buckets:     prometheus.ExponentialBuckets(25e-9, 2, 12),
		}),
	}
	m.registry.MustRegister(m.classifications, m.latency)
	return m
}

// prometheusWrite writes every registered metric in text exposition format
func prometheusWrite(path string, m *metrics) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// randomInput draws a package that is mostly valid. Roughly one in fifty
// carries a non-positive or non-numeric value to exercise validation
func randomInput(r *rand.Rand) [4]any {
	in := [4]any{
		r.Float64() * 200,
		r.Float64() * 200,
		r.Float64() * 200,
		r.Float64() * 40,
	}
	switch r.IntN(100) {
	case 0:
		in[r.IntN(4)] = -r.Float64()
	case 1:
		in[r.IntN(4)] = "n/a"
	}
	return in
}

func resultLabel(c classifier.Classification, err error) string {
	if err == nil {
		return c.String()
	}
	if errors.Is(err, classifier.ErrInvalidType) {
		return "invalid_type"
	}
	return "invalid_value"
}

func main() {
	duration := flag.Duration("duration", 5*time.Second, "Test duration")
	concurrency := flag.Int("c", 10, "Number of concurrent workers")
	metricsFile := flag.String("metrics-file", "", "Write Prometheus metrics to this textfile")
	flag.Parse()

	runID := uuid.NewString()
	fmt.Printf("Benchmarking classifier.Sort (run %s)\n", runID)
	fmt.Printf("Duration: %v, Concurrency: %d\n\n", *duration, *concurrency)

	m := newMetrics(runID)

	// fixed key set, so the map itself is never written concurrently
	perResult := map[string]*atomic.Int64{}
	for _, c := range classifier.Classifications() {
		perResult[c.String()] = new(atomic.Int64)
	}
	perResult["invalid_type"] = new(atomic.Int64)
	perResult["invalid_value"] = new(atomic.Int64)

	var (
		totalCalls   int64
		totalErrors  int64
		totalLatency int64 // in nanoseconds
		minLatency   int64 = 1<<63 - 1
		maxLatency   int64
		wg           sync.WaitGroup
		stop         = make(chan struct{})
	)

	// Start workers
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()
			r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
			for {
				select {
				case <-stop:
					return
				default:
					in := randomInput(r)
					start := time.Now()
					c, err := classifier.Sort(in[0], in[1], in[2], in[3])
					elapsed := time.Since(start)
					latency := elapsed.Nanoseconds()

					m.latency.Observe(elapsed.Seconds())
					label := resultLabel(c, err)
					m.classifications.WithLabelValues(label).Inc()
					perResult[label].Add(1)

					if err != nil {
						atomic.AddInt64(&totalErrors, 1)
						continue
					}
					atomic.AddInt64(&totalCalls, 1)
					atomic.AddInt64(&totalLatency, latency)

					// Update min/max (approximate, not perfectly thread-safe)
					for {
						old := atomic.LoadInt64(&minLatency)
						if latency >= old || atomic.CompareAndSwapInt64(&minLatency, old, latency) {
							break
						}
					}
					for {
						old := atomic.LoadInt64(&maxLatency)
						if latency <= old || atomic.CompareAndSwapInt64(&maxLatency, old, latency) {
							break
						}
					}
				}
			}
		}(uint64(i) + 1)
	}

	// Progress ticker
	ticker := time.NewTicker(time.Second)
	go func() {
		elapsed := 0
		for range ticker.C {
			elapsed++
			calls := atomic.LoadInt64(&totalCalls)
			errs := atomic.LoadInt64(&totalErrors)
			fmt.Printf("[%ds] Calls: %d, Rejected inputs: %d, Calls/s: %.0f\n",
				elapsed, calls, errs, float64(calls)/float64(elapsed))
		}
	}()

	// Wait for duration
	time.Sleep(*duration)
	close(stop)
	ticker.Stop()
	wg.Wait()

	// Results
	calls := atomic.LoadInt64(&totalCalls)
	errs := atomic.LoadInt64(&totalErrors)
	latencyTotal := atomic.LoadInt64(&totalLatency)
	minLat := atomic.LoadInt64(&minLatency)
	maxLat := atomic.LoadInt64(&maxLatency)

	avgLatency := float64(0)
	if calls > 0 {
		avgLatency = float64(latencyTotal) / float64(calls)
	}

	cps := float64(calls+errs) / duration.Seconds()

	fmt.Println("\n========== RESULTS ==========")
	fmt.Printf("Classified:      %d\n", calls)
	fmt.Printf("Invalid inputs:  %d\n", errs)
	fmt.Printf("Duration:        %v\n", *duration)
	fmt.Printf("Concurrency:     %d\n", *concurrency)
	fmt.Println()
	fmt.Printf("Calls/s:         %.2f\n", cps)
	fmt.Println()
	fmt.Printf("Latency avg:     %.1f ns\n", avgLatency)
	fmt.Printf("Latency min:     %d ns\n", minLat)
	fmt.Printf("Latency max:     %d ns\n", maxLat)
	fmt.Println()
	for _, label := range []string{"STANDARD", "SPECIAL", "REJECTED", "invalid_type", "invalid_value"} {
		fmt.Printf("%-16s %d\n", label+":", perResult[label].Load())
	}

	if *metricsFile != "" {
		if err := prometheusWrite(*metricsFile, m); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing metrics: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nMetrics written to %s\n", *metricsFile)
	}
}
