package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	m := New(registry)

	if m.BankSlipsCreated == nil || m.BankSlipsResolved == nil || m.UnexpectedErrors == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	m.BankSlipsCreated.Inc()
	m.BankSlipsResolved.WithLabelValues("PAID").Inc()

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}

	if got := testutil.ToFloat64(m.BankSlipsCreated); got != 1 {
		t.Fatalf("expected created counter 1, got %v", got)
	}
}

func TestNewOnSeparateRegistries(t *testing.T) {
	// Each registry gets its own collectors, so tests can build metrics repeatedly.
	New(prometheus.NewRegistry())
	New(prometheus.NewRegistry())
}
