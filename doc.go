// Package linegraph turns an unordered soup of 2-D line segments into a
// topological graph: segments that share an endpoint coordinate become
// edges incident on one shared node.
//
// 🚀 What does it do?
//
//	Construction is deferred and runs in two passes over what was ingested:
//		• Phase A: one node per distinct coordinate, sized by its final degree
//		• Phase B: one edge per ingested segment, in ingestion order
//
//	Because every degree is known before the first edge is attached, an
//	assembly strategy can allocate exact-size adjacency storage up front.
//
// ✨ Highlights
//
//   - Pluggable assembly – swap Opt (degree-sized arrays) for Adjacency (core.Graph)
//   - Strict lifecycle – ingest, build once, query; misuse returns sentinel errors
//   - Observable – zap logging and a Prometheus collector, both optional
//
// Packages:
//
//	geom/      - Coordinate and Segment value types + finiteness checks
//	linegraph/ - Generator, endpoint index, segment log, Strategy contracts
//	assembly/  - Opt and Adjacency strategies
//	core/      - thread-safe string-ID multigraph used by Adjacency
//	builder/   - synthetic grids, paths, rings and stars for tests & demos
//	segio/     - YAML/JSON segment documents and GeoJSON line work
//	config/    - CLI configuration, validation and logger setup
//	metrics/   - Prometheus counters for ingestion and builds
//	cmd/linegraph - command-line front end
//
// Quick ASCII example:
//
//	(0,1)───(1,1)
//	          │
//	(0,0)───(1,0)
//
//	three segments, four nodes; (1,0) and (1,1) carry degree 2.
//
//	go get github.com/katalvlaran/linegraph
package linegraph
