package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	TicksLoaded = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "fxlabel_ticks_loaded_total", Help: "Ticks loaded from the configured source"},
	)
	LabelsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "fxlabel_labels_total", Help: "Decision points labeled"},
		[]string{"class"},
	)
	ShortWindows = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "fxlabel_short_windows_total", Help: "Decision points skipped for insufficient forward ticks"},
	)
)

func init() {
	prometheus.MustRegister(TicksLoaded, LabelsTotal, ShortWindows)
}

func Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() { _ = srv.ListenAndServe() }()
	return srv
}
