package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCounters(t *testing.T) {
	m := New()

	m.IncCommand("anilist")
	m.IncCommand("anilist")
	m.IncCommand("vn")
	m.IncURL("example.com")
	m.IncQuery()

	if got := testutil.ToFloat64(m.commands.WithLabelValues("anilist")); got != 2 {
		t.Errorf("anilist = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.urls.WithLabelValues("example.com")); got != 1 {
		t.Errorf("example.com = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.queries); got != 1 {
		t.Errorf("queries = %v, want 1", got)
	}

	want := []Count{{"anilist", 2}, {"vn", 1}}
	if diff := cmp.Diff(want, m.Commands()); diff != "" {
		t.Errorf("Commands() mismatch (-want +got):\n%s", diff)
	}
}

func TestTakeResets(t *testing.T) {
	m := New()
	m.IncCommand("ping")
	m.IncQuery()

	c := m.take()
	if c.commands["ping"] != 1 || c.queries != 1 {
		t.Fatalf("take() = %+v", c)
	}

	c = m.take()
	if len(c.commands) != 0 || c.queries != 0 {
		t.Errorf("second take() = %+v, want empty", c)
	}

	// totals survive a submission
	if got := m.Commands(); len(got) != 1 {
		t.Errorf("Commands() = %v", got)
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.IncCommand("ping")
	m.IncURL("example.com")
	m.IncQuery()

	if m.Commands() != nil || m.URLs() != nil {
		t.Error("nil Metrics returned counts")
	}
}

func TestHandler(t *testing.T) {
	m := New()
	m.IncCommand("ping")

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(b), `ebina_commands_total{command="ping"} 1`) {
		t.Errorf("metrics output missing command counter:\n%s", b)
	}
}

func TestSystemFields(t *testing.T) {
	s := System{Alloc: 1, Goroutines: 3, CPU: []float64{12.5, 50}}
	f := s.fields()

	if f["cpu_1"] != 50.0 || f["goroutines"] != 3 {
		t.Errorf("fields() = %v", f)
	}
	if _, ok := f["total_sys"]; ok {
		t.Error("host memory included when unset")
	}
}
