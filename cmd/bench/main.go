// Command bench runs a synthetic single-writer workload against the map
// and exposes optional pprof/Prometheus endpoints.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"strconv"
	"time"

	log "github.com/apex/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	pmet "github.com/IvanBrykalov/ordmap/metrics/prom"
	"github.com/IvanBrykalov/ordmap/ordmap"
)

func main() {
	// ---- Flags ----
	var (
		capacity = flag.Int("cap", 100_000, "capacity hint (entries)")
		ops      = flag.Int("ops", 10_000_000, "number of operations")

		readPct = flag.Int("reads", 80, "read percentage [0..100]")
		movePct = flag.Int("moves", 5, "move-to-end percentage of writes [0..100]")
		popPct  = flag.Int("pops", 5, "pop percentage of writes [0..100]")

		keys  = flag.Int("keys", 1_000_000, "keyspace size")
		zipfS = flag.Float64("zipf_s", 1.1, "Zipf s > 1 (skew)")
		zipfV = flag.Float64("zipf_v", 1.0, "Zipf v")
		seed  = flag.Int64("seed", time.Now().UnixNano(), "random seed")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", "", "serve Prometheus metrics at addr; empty = disabled")
	)
	flag.Parse()

	logger := log.WithField("cmd", "bench")

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			logger.Infof("pprof: serving at %s", *pprofAddr)
			if err := http.ListenAndServe(*pprofAddr, nil); err != nil {
				logger.WithError(err).Error("pprof server stopped")
			}
		}()
	}

	// ---- Prometheus metrics (on DefaultServeMux) ----
	opt := ordmap.Options[string, string]{
		Capacity: *capacity,
		Seed:     uint64(*seed),
	}
	if *metricsAddr != "" {
		opt.Metrics = pmet.New(nil, "ordmap", "bench", nil)
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			logger.Infof("metrics: serving at %s", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
				logger.WithError(err).Error("metrics server stopped")
			}
		}()
	}

	m := ordmap.New[string, string](opt)

	// ---- Preload half the capacity hint for a realistic hit-rate ----
	for i := 0; i < *capacity/2; i++ {
		m.Set("k:"+strconv.Itoa(i), "v"+strconv.Itoa(i))
	}

	// ---- Load generation (single writer, per the map's contract) ----
	r := rand.New(rand.NewSource(*seed))
	zipf := rand.NewZipf(r, *zipfS, *zipfV, uint64(*keys-1))
	keyByZipf := func() string {
		return "k:" + strconv.FormatUint(zipf.Uint64(), 10)
	}

	var reads, writes, hits, moves, pops uint64
	start := time.Now()
	for i := 0; i < *ops; i++ {
		if int(r.Int31n(100)) < *readPct {
			reads++
			if _, ok := m.Get(keyByZipf()); ok {
				hits++
			}
			continue
		}
		writes++
		switch w := int(r.Int31n(100)); {
		case w < *movePct:
			moves++
			if err := m.MoveToBack(keyByZipf()); err != nil {
				m.Set(keyByZipf(), "v")
			}
		case w < *movePct+*popPct:
			pops++
			if _, _, err := m.PopFront(); err != nil {
				m.Set(keyByZipf(), "v")
			}
		default:
			m.Set(keyByZipf(), "v"+strconv.Itoa(r.Int()))
		}
	}
	elapsed := time.Since(start)

	// ---- Report ----
	hitRate := 0.0
	if reads > 0 {
		hitRate = float64(hits) / float64(reads) * 100
	}
	fmt.Printf("cap=%d keys=%d dur=%v seed=%d\n", *capacity, *keys, elapsed, *seed)
	fmt.Printf("ops=%d (%.0f ops/s)  reads=%d  writes=%d  moves=%d  pops=%d\n",
		*ops, float64(*ops)/elapsed.Seconds(), reads, writes, moves, pops)
	fmt.Printf("hits=%d  hit-rate=%.2f%%  Len()=%d\n", hits, hitRate, m.Len())
}
