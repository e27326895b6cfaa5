// Package metrics exposes prometheus counters for the receive path and
// the key schedule.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// faultsTotal counts classified receive-path faults by kind
	faultsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dclink_recv_faults_total",
		Help: "Total number of classified receive-path faults by kind",
	}, []string{"kind"})

	// closuresTotal counts connection close signals sent to peers by category
	closuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dclink_connection_closes_total",
		Help: "Total number of connection close signals sent by category",
	}, []string{"category"})

	// replayDropsTotal counts records rejected by a key's replay window
	replayDropsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dclink_replay_drops_total",
		Help: "Total number of records rejected by replay detection",
	})

	// keyInstallsTotal counts key installs by encryption level
	keyInstallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dclink_key_installs_total",
		Help: "Total number of keys installed by encryption level",
	}, []string{"level"})

	// keyRetirementsTotal counts wiped keys by encryption level
	keyRetirementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dclink_key_retirements_total",
		Help: "Total number of keys wiped by encryption level",
	}, []string{"level"})
)

// IncFault records one classified fault.
func IncFault(kind string) {
	faultsTotal.WithLabelValues(kind).Inc()
}

// IncClosure records one connection close signal actually sent. The outer
// framing layer calls this when it serializes the signal.
func IncClosure(category string) {
	closuresTotal.WithLabelValues(category).Inc()
}

// IncReplayDrop records one record rejected by replay detection.
func IncReplayDrop() {
	replayDropsTotal.Inc()
}

// IncKeyInstall records one key install for a level.
func IncKeyInstall(level string) {
	keyInstallsTotal.WithLabelValues(level).Inc()
}

// IncKeyRetirement records one key wipe for a level.
func IncKeyRetirement(level string) {
	keyRetirementsTotal.WithLabelValues(level).Inc()
}

// Handler returns the prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
