package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cscbench "github.com/RedisLabs/csc-bench"
)

// chartServer serves the charts page for the newest output and accepts
// new outputs over /upload. The page is rebuilt outside the lock and
// swapped in under it.
type chartServer struct {
	mu      sync.RWMutex
	page    *components.Page
	outputs []cscbench.Output
	dataDir string

	registry *prometheus.Registry
	renders  prometheus.Counter
	accepted prometheus.Counter
	rejected prometheus.Counter
}

func newChartServer(dataDir string, outputs []cscbench.Output) *chartServer {
	reg := prometheus.NewRegistry()
	s := &chartServer{
		outputs:  outputs,
		dataDir:  dataDir,
		registry: reg,
		renders: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "cscbench_page_renders_total",
			Help: "Charts pages served.",
		}),
		accepted: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "cscbench_uploads_accepted_total",
			Help: "Benchmark outputs accepted via /upload.",
		}),
		rejected: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "cscbench_uploads_rejected_total",
			Help: "Upload requests rejected.",
		}),
	}
	s.regenerate()
	return s
}

// latest returns the newest output, falling back to the builtin sample
// table when nothing has been measured yet.
func latest(outputs []cscbench.Output) cscbench.Output {
	if len(outputs) == 0 {
		return cscbench.Builtin()
	}
	sorted := make([]cscbench.Output, len(outputs))
	copy(sorted, outputs)
	cscbench.SortByDate(sorted)
	return sorted[len(sorted)-1]
}

func (s *chartServer) regenerate() {
	s.mu.RLock()
	out := latest(s.outputs)
	s.mu.RUnlock()

	page := cscbench.NewPage(out)

	s.mu.Lock()
	s.page = page
	s.mu.Unlock()
}

func (s *chartServer) chartsHandle(w http.ResponseWriter, _ *http.Request) {
	s.renders.Inc()
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.page.Render(w); err != nil {
		log.Println("render page:", err)
	}
}

func (s *chartServer) uploadHandle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.rejected.Inc()
		http.Error(w, "method should be POST", http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var o cscbench.Output
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		s.rejected.Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	tm, err := o.Time()
	if err != nil {
		s.rejected.Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	file := filepath.Join(s.dataDir, cscbench.FileName(tm, o.Label))
	if err := cscbench.WriteJSONFile(file, o); err != nil {
		s.rejected.Inc()
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	s.outputs = append(s.outputs, o)
	s.mu.Unlock()
	s.regenerate()
	s.accepted.Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (s *chartServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.chartsHandle)
	mux.HandleFunc("/upload", s.uploadHandle)
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return mux
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the benchmark charts over HTTP",
		Long: `Loads every output in the data directory and serves the newest one as
a charts page. New outputs POSTed to /upload are persisted and the page
is regenerated in place. Prometheus metrics are exposed on /metrics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := viper.GetString("addr")
			dir := dataDir()
			outputs, err := cscbench.LoadDataDir(dir)
			if err != nil {
				if !os.IsNotExist(err) {
					return fmt.Errorf("load data dir: %w", err)
				}
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return err
				}
			}

			s := newChartServer(dir, outputs)
			fmt.Fprintf(cmd.OutOrStdout(), "serving %d outputs on %s\n", len(outputs), addr)
			return http.ListenAndServe(addr, s.handler())
		},
	}

	cmd.Flags().String("addr", ":18081", "listen address")
	viper.BindPFlag("addr", cmd.Flags().Lookup("addr"))
	return cmd
}
