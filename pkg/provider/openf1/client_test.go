package openf1

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"
	"time"
)

const (
	meetingsJSON = `[
		{"meeting_key": 1141, "meeting_name": "Bahrain Grand Prix", "date_start": "2023-03-03T11:30:00+00:00", "year": 2023},
		{"meeting_key": 1140, "meeting_name": "Pre-Season Testing", "date_start": "2023-02-23T07:00:00+00:00", "year": 2023},
		{"meeting_key": 1142, "meeting_name": "Saudi Arabian Grand Prix", "date_start": "2023-03-17T13:30:00+00:00", "year": 2023}
	]`
	sessionsJSON = `[{"session_key": 7953, "session_name": "Race", "session_type": "Race", "meeting_key": 1141, "year": 2023}]`
	driversJSON  = `[
		{"driver_number": 1, "name_acronym": "VER", "first_name": "Max", "last_name": "Verstappen", "team_name": "Red Bull Racing"},
		{"driver_number": 44, "name_acronym": "HAM", "first_name": "Lewis", "last_name": "Hamilton", "team_name": "Mercedes"},
		{"driver_number": 1, "name_acronym": "VER", "first_name": "Max", "last_name": "Verstappen", "team_name": "Red Bull Racing"}
	]`
	lapsJSON = `[
		{"driver_number": 1, "lap_number": 1, "lap_duration": 92.3},
		{"driver_number": 1, "lap_number": 2, "lap_duration": null},
		{"driver_number": 1, "lap_number": 3, "lap_duration": 91.8},
		{"driver_number": 44, "lap_number": 1, "lap_duration": 93.0},
		{"driver_number": 99, "lap_number": 1, "lap_duration": 99.0}
	]`
	stintsJSON = `[
		{"driver_number": 1, "stint_number": 1, "lap_start": 1, "lap_end": 2, "compound": "SOFT"},
		{"driver_number": 1, "stint_number": 2, "lap_start": 3, "lap_end": null, "compound": "MEDIUM"}
	]`
)

// newMockServer serves canned OpenF1 responses, keyed by endpoint.
func newMockServer(t *testing.T) *httptest.Server {
	t.Helper()
	responses := map[string]string{
		"/meetings": meetingsJSON,
		"/sessions": sessionsJSON,
		"/drivers":  driversJSON,
		"/laps":     lapsJSON,
		"/stints":   stintsJSON,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := responses[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestEventNamesInCalendarOrder(t *testing.T) {
	srv := newMockServer(t)
	c := NewClient(srv.URL, time.Second, 0)

	got, err := c.EventNames(context.Background(), 2023)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Pre-Season Testing", "Bahrain Grand Prix", "Saudi Arabian Grand Prix"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("EventNames = %v, want %v", got, want)
	}
}

func TestLoadSession(t *testing.T) {
	srv := newMockServer(t)
	c := NewClient(srv.URL+"/", time.Second, 0)

	s, err := c.LoadSession(context.Background(), 2023, "Bahrain Grand Prix", "Race")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.DriverCodes(); !reflect.DeepEqual(got, []string{"VER", "HAM"}) {
		t.Errorf("DriverCodes = %v", got)
	}
	ver, ok := s.Driver("VER")
	if !ok || ver.LastName != "Verstappen" {
		t.Errorf("Driver(VER) = %+v, %v", ver, ok)
	}
	if len(s.Laps) != 4 {
		t.Fatalf("len(Laps) = %d, want 4 (unknown driver dropped)", len(s.Laps))
	}

	wantCompounds := []string{"SOFT", "SOFT", "MEDIUM", "UNKNOWN"}
	for i, lap := range s.Laps {
		if lap.Compound != wantCompounds[i] {
			t.Errorf("lap %d compound = %q, want %q", i, lap.Compound, wantCompounds[i])
		}
	}
	if s.Laps[1].HasTime() {
		t.Errorf("null lap_duration should map to no time, got %s", s.Laps[1].LapTime)
	}
	if math.Abs(s.Laps[0].Seconds()-92.3) > 1e-9 {
		t.Errorf("lap 1 = %v s, want 92.3", s.Laps[0].Seconds())
	}

	clean := s.Laps.Clean("VER")
	if len(clean) != 2 || clean[0].Number != 1 || clean[1].Number != 3 {
		t.Errorf("Clean(VER) = %+v", clean)
	}
}

func TestLoadSessionUnknownEvent(t *testing.T) {
	srv := newMockServer(t)
	c := NewClient(srv.URL, time.Second, 0)

	if _, err := c.LoadSession(context.Background(), 2023, "Monaco Grand Prix", "Race"); err == nil {
		t.Fatal("expected an error for an event outside the schedule")
	}
}

func TestNotFoundIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	c := NewClient(srv.URL, time.Second, 2)

	got, err := c.EventNames(context.Background(), 2018)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("EventNames = %v, want empty", got)
	}
}

func TestRetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, meetingsJSON)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, 2)
	c.backoff = time.Millisecond

	got, err := c.EventNames(context.Background(), 2023)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("EventNames = %v", got)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestGivesUpAfterRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, 1)
	c.backoff = time.Millisecond

	if _, err := c.EventNames(context.Background(), 2023); err == nil {
		t.Fatal("expected an error")
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestClientErrorsAreNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, 3)
	c.backoff = time.Millisecond

	if _, err := c.EventNames(context.Background(), 2023); err == nil {
		t.Fatal("expected an error")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
