// File: lixenwraith/simpleconfig/doc.go

// Package simpleconfig persists an ordered set of named, typed values to a
// human-editable text file and reads them back, tolerating hand edits and
// partial corruption.
//
// Features:
//   - One key=<literal> line per value, JSON literals by default
//   - Section banners and comments rendered from declarations
//   - Primitives, lists, maps, pairs and records through pluggable codecs
//   - Process-wide codec registry with per-key overrides
//   - Per-line failure isolation: a bad line never aborts a read or write
//   - Atomic file replacement on write
//   - Struct discovery with conf/section/comment tags
//   - YAML flow and HCL literal syntaxes as alternatives to JSON
//   - Export to JSON, TOML and YAML documents, JSON schema validation
//
// File format:
//
//	# ======
//	# Server
//	# ======
//	# Listen port
//	port=8080
//	hosts=["a.example","b.example"]
//	limits={"cpu":2,"mem":512} # trailing comments are ignored
//
// Quick Start:
//
//	type Settings struct {
//	    Port  int      `conf:"port" section:"Server" comment:"Listen port"`
//	    Hosts []string `conf:"hosts"`
//	}
//
//	settings := Settings{Port: 8080}
//	cfg, err := simpleconfig.Quick("app.conf", &settings)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg.TrySet("port", "9090") // settings.Port is now 9090
//	if err := cfg.Write(); err != nil {
//	    log.Fatal(err)
//	}
//
// Items can also be declared by hand:
//
//	var retries int32 = 3
//	cfg := simpleconfig.New("app.conf", []simpleconfig.Item{
//	    simpleconfig.ItemOf("retries", &retries).WithComment("Retry budget"),
//	})
//
// Concurrency:
// A Config performs no locking and must be driven by one goroutine at a time.
// The codec registry is safe for concurrent use but is meant to be populated
// before configurations that depend on it are built.
package simpleconfig
