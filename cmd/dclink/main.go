// Command dclink inspects the receive-path fault policy of a configured
// connection.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"dclink/internal/config"
	"dclink/internal/metrics"
	"dclink/internal/stream/recv"
)

func main() {
	cfgPath := flag.String("config", "dclink.yaml", "path to config file")
	flag.Parse()

	switch flag.Arg(0) {
	case "matrix", "":
		runMatrix(*cfgPath)
	case "serve-metrics":
		serveMetrics(*cfgPath)
	default:
		fmt.Fprintf(os.Stderr, "usage: dclink [-config file] [matrix|serve-metrics]\n")
		os.Exit(2)
	}
}

// runMatrix prints every fault with its fatality on the configured
// transport, its closure category and its coarse category.
func runMatrix(path string) {
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	features := cfg.Features()

	fmt.Printf("transport %s (%s)\n\n", cfg.Transport.Type, features)
	fmt.Printf("%-28s %-7s %-22s %s\n", "FAULT", "FATAL", "CLOSURE", "CATEGORY")
	for _, f := range sampleFaults() {
		closure := "none"
		if cc, ok := f.ConnectionClose(); ok {
			closure = cc.Category()
		}
		fmt.Printf("%-28s %-7t %-22s %s\n", f.Kind, f.IsFatal(features), closure, f.Category())
	}
}

func sampleFaults() []recv.Fault {
	return []recv.Fault{
		recv.Decode,
		recv.Decrypt,
		recv.Duplicate,
		recv.StreamMismatch(1, 2),
		recv.OutOfOrder(10, 7),
		recv.MaxDataExceeded,
		recv.InvalidFin,
		recv.OutOfRange,
		recv.UnexpectedRetransmission,
		recv.TruncatedTransport,
		recv.IdleTimeout,
		recv.KeyReplayPrevented,
		recv.KeyReplayMaybePrevented(5),
		recv.ApplicationError(0x17),
	}
}

func serveMetrics(path string) {
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Metrics.Listen == "" {
		log.Fatalf("metrics.listen not configured")
	}
	http.Handle("/metrics", metrics.Handler())
	log.Printf("metrics listening on %s", cfg.Metrics.Listen)
	log.Fatal(http.ListenAndServe(cfg.Metrics.Listen, nil))
}
