package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Standalone generator for synthetic spotlist payloads: builds datasets in
// the upstream exporter's shape (locale-formatted costs, mixed boolean
// encodings) and posts them against the analyze endpoint.

type Config struct {
	Endpoint      string
	Requests      int
	SpotsPerBatch int
	Concurrency   int
	DoublePercent int
}

func parseFlags() *Config {
	c := &Config{}
	flag.StringVar(&c.Endpoint, "endpoint", "", "Target URL (required), e.g. http://localhost:8080/reports/analyze")
	flag.IntVar(&c.Requests, "requests", 100, "Total analyze requests")
	flag.IntVar(&c.SpotsPerBatch, "spots", 5000, "Spot records per payload")
	flag.IntVar(&c.Concurrency, "concurrency", 8, "Worker count")
	flag.IntVar(&c.DoublePercent, "double-percent", 15, "Share of records flagged is_double")
	flag.Parse()

	if c.Endpoint == "" {
		fmt.Fprintln(os.Stderr, "Error: -endpoint is required")
		flag.Usage()
		os.Exit(1)
	}
	if c.DoublePercent < 0 {
		c.DoublePercent = 0
	} else if c.DoublePercent > 100 {
		c.DoublePercent = 100
	}
	return c
}

type Stats struct {
	ok      uint64
	errors  uint64
	latency int64 // microseconds
}

func (s *Stats) AddOK(duration time.Duration) {
	atomic.AddUint64(&s.ok, 1)
	atomic.AddInt64(&s.latency, duration.Microseconds())
}

func (s *Stats) AddError() {
	atomic.AddUint64(&s.errors, 1)
}

var (
	channels  = []string{"RTL", "SAT1", "PRO7", "VOX", "KABEL1", "ZDF"}
	dayparts  = []string{"Morning", "Daytime", "Early Fringe", "Prime Time", "Late Night"}
	categories = []string{"Film", "News", "Sport", "Show", "Series"}
	brands    = []string{"Acme", "Globex", "Initech", "Umbrella"}
)

func buildPayload(rng *rand.Rand, spots, doublePercent int) map[string]any {
	records := make([]map[string]any, 0, spots)
	for i := 0; i < spots; i++ {
		cost := 50 + rng.Float64()*2000
		rec := map[string]any{
			"channel":   channels[rng.Intn(len(channels))],
			"daypart":   dayparts[rng.Intn(len(dayparts))],
			"category":  categories[rng.Intn(len(categories))],
			"brand":     brands[rng.Intn(len(brands))],
			"date":      fmt.Sprintf("2025-03-%02d", 1+rng.Intn(28)),
			"cost":      europeanNumber(cost),
			"xrp":       rng.Float64() * 10,
			"duration":  []int{10, 15, 20, 30, 45}[rng.Intn(5)],
			"placement": []string{"Before", "Within"}[rng.Intn(2)],
		}
		if rng.Intn(100) < doublePercent {
			// Mixed encodings on purpose: the service must accept all three.
			rec["is_double"] = []any{true, "true", 1}[rng.Intn(3)]
		} else {
			rec["is_double"] = false
		}
		records = append(records, rec)
	}

	return map[string]any{
		"data": records,
		"field_map": map[string]string{
			"cost_column":    "cost",
			"program_column": "channel",
			"daypart_column": "daypart",
		},
	}
}

// europeanNumber renders 1234.56 as "1.234,56".
func europeanNumber(f float64) string {
	whole := int(f)
	frac := int((f - float64(whole)) * 100)
	s := fmt.Sprintf("%d", whole)
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}
	return fmt.Sprintf("%s,%02d", out, frac)
}

func main() {
	cfg := parseFlags()
	stats := &Stats{}

	client := &http.Client{Timeout: 30 * time.Second}
	jobs := make(chan int)

	var wg sync.WaitGroup
	start := time.Now()
	for w := 0; w < cfg.Concurrency; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for range jobs {
				payload := buildPayload(rng, cfg.SpotsPerBatch, cfg.DoublePercent)
				body, err := json.Marshal(payload)
				if err != nil {
					stats.AddError()
					continue
				}

				t0 := time.Now()
				resp, err := client.Post(cfg.Endpoint, "application/json", bytes.NewReader(body))
				if err != nil {
					stats.AddError()
					continue
				}
				resp.Body.Close()
				if resp.StatusCode >= 300 {
					stats.AddError()
					continue
				}
				stats.AddOK(time.Since(t0))
			}
		}(time.Now().UnixNano() + int64(w))
	}

	for i := 0; i < cfg.Requests; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	elapsed := time.Since(start)
	ok := atomic.LoadUint64(&stats.ok)
	var avgLatency time.Duration
	if ok > 0 {
		avgLatency = time.Duration(atomic.LoadInt64(&stats.latency)/int64(ok)) * time.Microsecond
	}
	log.Printf("done in %s: ok=%d errors=%d avg_latency=%s rps=%.1f",
		elapsed.Round(time.Millisecond), ok, atomic.LoadUint64(&stats.errors),
		avgLatency, float64(ok)/elapsed.Seconds())
}
