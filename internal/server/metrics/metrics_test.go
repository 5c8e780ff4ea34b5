package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather error: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	metric:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue metric
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestCollector_ImplementsRecorder(t *testing.T) {
	var _ Recorder = NewCollector(prometheus.NewRegistry())
}

func TestRecordRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRequest(http.MethodPost, "/api/v1/login", 200, 120*time.Millisecond)
	c.RecordRequest(http.MethodPost, "/api/v1/login", 200, 80*time.Millisecond)
	c.RecordRequest(http.MethodPost, "/api/v1/login", 401, 110*time.Millisecond)

	ok := counterValue(t, reg, "wallmagic_http_requests_total",
		map[string]string{"method": "POST", "route": "/api/v1/login", "status": "200"})
	if ok != 2 {
		t.Fatalf("requests_total{status=200} = %v, want 2", ok)
	}
	failed := counterValue(t, reg, "wallmagic_http_requests_total",
		map[string]string{"method": "POST", "route": "/api/v1/login", "status": "401"})
	if failed != 1 {
		t.Fatalf("requests_total{status=401} = %v, want 1", failed)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather error: %v", err)
	}
	found := false
	for _, mf := range families {
		if mf.GetName() != "wallmagic_http_request_duration_seconds" {
			continue
		}
		found = true
		h := mf.GetMetric()[0].GetHistogram()
		if h.GetSampleCount() != 3 {
			t.Fatalf("duration sample_count = %d, want 3", h.GetSampleCount())
		}
	}
	if !found {
		t.Fatalf("wallmagic_http_request_duration_seconds not found")
	}
}

func TestRecordRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRegistration()
	c.RecordRegistration()

	if v := counterValue(t, reg, "wallmagic_registrations_total", nil); v != 2 {
		t.Fatalf("registrations_total = %v, want 2", v)
	}
}

func TestRecordLogin(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordLogin(true)
	c.RecordLogin(true)
	c.RecordLogin(false)

	success := counterValue(t, reg, "wallmagic_logins_total", map[string]string{"result": "success"})
	if success != 2 {
		t.Fatalf("logins_total{result=success} = %v, want 2", success)
	}
	failure := counterValue(t, reg, "wallmagic_logins_total", map[string]string{"result": "failure"})
	if failure != 1 {
		t.Fatalf("logins_total{result=failure} = %v, want 1", failure)
	}
}

func TestHandler_ServesExpositionFormat(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRequest(http.MethodGet, "/health", 200, 5*time.Millisecond)
	c.RecordRegistration()
	c.RecordLogin(false)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("ReadAll error: %v", err)
	}

	for _, name := range []string{
		"wallmagic_http_requests_total",
		"wallmagic_http_request_duration_seconds",
		"wallmagic_registrations_total",
		"wallmagic_logins_total",
	} {
		if !strings.Contains(string(body), name) {
			t.Fatalf("response body does not contain %q", name)
		}
	}
}

func TestCollectors_IndependentRegistries(t *testing.T) {
	reg1 := prometheus.NewRegistry()
	reg2 := prometheus.NewRegistry()
	c1 := NewCollector(reg1)
	c2 := NewCollector(reg2)

	c1.RecordRegistration()
	c2.RecordRegistration()
	c2.RecordRegistration()

	if v := counterValue(t, reg1, "wallmagic_registrations_total", nil); v != 1 {
		t.Fatalf("reg1 registrations_total = %v, want 1", v)
	}
	if v := counterValue(t, reg2, "wallmagic_registrations_total", nil); v != 2 {
		t.Fatalf("reg2 registrations_total = %v, want 2", v)
	}
}
