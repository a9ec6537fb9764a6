// Package pkg provides the core libraries for jyotish chart computation.
//
// # Overview
//
// Jyotish derives Vedic astrology charts from externally supplied ephemeris
// data. The engine is deterministic and side-effect free: the same input
// longitudes always produce the same chart. The pkg directory is organized
// into three main areas:
//
//  1. Domain logic (zodiac arithmetic, varga mapping, nakshatras, panchanga, aspects)
//  2. Orchestration ([chart] assembles the full reading from one input)
//  3. Infrastructure (caching, persistence, rendering, observability)
//
// # Architecture
//
// The typical data flow through jyotish:
//
//	Ephemeris longitudes (TOML file or JSON API body)
//	         ↓
//	    [chart] package (validate + normalize input)
//	         ↓
//	    [varga] / [nakshatra] / [panchanga] / [aspect] packages
//	         ↓
//	    Chart (varga table, nakshatra table, panchanga, aspect list)
//	         ↓
//	    JSON output / terminal tables / aspect graph (DOT, SVG, PNG)
//
// # Quick Start
//
// Compute a chart from raw longitudes:
//
//	import (
//	    "github.com/rsharan/jyotish/pkg/chart"
//	    "github.com/rsharan/jyotish/pkg/zodiac"
//	)
//
//	asc := 215.42
//	c, err := chart.Compute(chart.Input{
//	    Ascendant: &asc,
//	    Bodies: map[zodiac.Body]float64{
//	        zodiac.Sun:  340.21,
//	        zodiac.Moon: 95.5,
//	    },
//	    Instant:  time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC),
//	    Timezone: "Asia/Kolkata",
//	})
//
// # Main Packages
//
// ## Domain Logic
//
// [zodiac] - Signs, bodies and longitude arithmetic. Everything else is
// built on its normalization and sign-splitting primitives.
//
// [varga] - Divisional chart mapping for the eight supported systems
// (D1, D2, D3, D7, D9, D10, D12, D30). Pure sign arithmetic over a
// longitude's offset within its rasi.
//
// [nakshatra] - Lunar mansion resolution: 27 mansions of 13°20′ each,
// four padas per mansion, ruling lord by the nine-lord cycle.
//
// [panchanga] - The five limbs of the Vedic almanac (vara, tithi,
// nakshatra, yoga, karana) derived from the Sun and Moon longitudes and
// a civil timezone.
//
// [aspect] - Angular aspect detection between bodies with per-aspect
// orbs, plus merging of externally supplied aspect lists.
//
// ## Orchestration
//
// [chart] - Assembles the full reading from one input: the varga and
// nakshatra tables, the panchanga, the merged aspect list and the
// pass-through dasha periods. Also owns the input file format (TOML)
// and the canonical JSON serialization.
//
// ## Infrastructure
//
// [cache] - Byte-level caching of computed charts and rendered
// artifacts, keyed by input hash. FileCache for the CLI, RedisCache for
// the API server, NullCache to disable caching.
//
// [store] - Chart persistence for retrieval by ID. MongoStore for the
// API server, MemoryStore for testing.
//
// [render/aspectgraph] - Renders the aspect list as an undirected graph
// via Graphviz (DOT, SVG, PNG).
//
// [observability] - Optional hooks for metrics and tracing around chart
// computation, rendering and cache operations.
//
// [errors] - Structured errors with machine-readable codes, shared by
// the CLI and the HTTP API.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/varga/...    # Specific package
//	go test -run Example       # Examples only
//
// [zodiac]: https://pkg.go.dev/github.com/rsharan/jyotish/pkg/zodiac
// [varga]: https://pkg.go.dev/github.com/rsharan/jyotish/pkg/varga
// [nakshatra]: https://pkg.go.dev/github.com/rsharan/jyotish/pkg/nakshatra
// [panchanga]: https://pkg.go.dev/github.com/rsharan/jyotish/pkg/panchanga
// [aspect]: https://pkg.go.dev/github.com/rsharan/jyotish/pkg/aspect
// [chart]: https://pkg.go.dev/github.com/rsharan/jyotish/pkg/chart
// [cache]: https://pkg.go.dev/github.com/rsharan/jyotish/pkg/cache
// [store]: https://pkg.go.dev/github.com/rsharan/jyotish/pkg/store
// [render/aspectgraph]: https://pkg.go.dev/github.com/rsharan/jyotish/pkg/render/aspectgraph
// [observability]: https://pkg.go.dev/github.com/rsharan/jyotish/pkg/observability
// [errors]: https://pkg.go.dev/github.com/rsharan/jyotish/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/rsharan/jyotish/pkg/buildinfo
package pkg
