package lookup

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/svarj/WeatherMe/internal/model"
	"github.com/svarj/WeatherMe/internal/observability"
)

// fakeFetcher returns canned results; cities listed in block wait on release.
type fakeFetcher struct {
	mu      sync.Mutex
	calls   []string
	block   map[string]chan struct{}
	records map[string]*model.WeatherRecord
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		block:   make(map[string]chan struct{}),
		records: make(map[string]*model.WeatherRecord),
	}
}

func (f *fakeFetcher) FetchWeather(ctx context.Context, city string) (*model.WeatherRecord, error) {
	f.mu.Lock()
	f.calls = append(f.calls, city)
	gate := f.block[city]
	record := f.records[city]
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if record == nil {
		return nil, errors.New("place not found")
	}
	return record, nil
}

type collector struct {
	mu      sync.Mutex
	results []*model.LookupResult
}

func (c *collector) add(r *model.LookupResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = append(c.results, r)
}

func (c *collector) all() []*model.LookupResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*model.LookupResult(nil), c.results...)
}

func TestNewService(t *testing.T) {
	fetcher := newFakeFetcher()
	service := NewService(fetcher, nil)

	if service.fetcher != fetcher {
		t.Error("Expected fetcher to be stored")
	}
	if service.logger == nil {
		t.Error("Expected nil logger to be replaced by a no-op logger")
	}
	if service.seq != 0 {
		t.Errorf("Expected seq to start at 0, got %d", service.seq)
	}
}

func TestLookup_DeliversRecord(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.records["London"] = &model.WeatherRecord{CityName: "london", CountryCode: "GB"}

	service := NewService(fetcher, nil)
	results := &collector{}
	service.SetUpdateCallback(results.add)

	id := service.Lookup("London")
	service.Wait()

	got := results.all()
	if len(got) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(got))
	}
	if got[0].ID != id {
		t.Errorf("Expected result ID %s, got %s", id, got[0].ID)
	}
	if !got[0].Found() {
		t.Errorf("Expected record to be found, got err %v", got[0].Err)
	}
	if got[0].Record.CityName != "london" {
		t.Errorf("Expected city london, got %s", got[0].Record.CityName)
	}
	if got[0].FinishedAt.Before(got[0].StartedAt) {
		t.Error("FinishedAt should not be before StartedAt")
	}
}

func TestLookup_DeliversFailure(t *testing.T) {
	service := NewService(newFakeFetcher(), nil)
	results := &collector{}
	service.SetUpdateCallback(results.add)

	service.Lookup("Atlantis")
	service.Wait()

	got := results.all()
	if len(got) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(got))
	}
	if got[0].Found() || got[0].Record != nil || got[0].Err == nil {
		t.Errorf("Expected a failed result with nil record, got %+v", got[0])
	}
}

func TestLookup_DropsSupersededResult(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.records["Slow"] = &model.WeatherRecord{CityName: "slow"}
	fetcher.records["Fast"] = &model.WeatherRecord{CityName: "fast"}
	release := make(chan struct{})
	fetcher.block["Slow"] = release

	service := NewService(fetcher, nil)
	results := &collector{}
	service.SetUpdateCallback(results.add)

	staleBefore := testutil.ToFloat64(observability.WeatherLookupsStaleTotal)

	service.Lookup("Slow")
	fastID := service.Lookup("Fast")

	// Let the newer lookup finish first, then release the older one.
	deadline := time.Now().Add(2 * time.Second)
	for len(results.all()) == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	close(release)
	service.Wait()

	got := results.all()
	if len(got) != 1 {
		t.Fatalf("Expected only the newest result to be delivered, got %d", len(got))
	}
	if got[0].ID != fastID || got[0].Record.CityName != "fast" {
		t.Errorf("Expected Fast result, got %+v", got[0])
	}

	staleAfter := testutil.ToFloat64(observability.WeatherLookupsStaleTotal)
	if staleAfter != staleBefore+1 {
		t.Errorf("weatherLookupsStaleTotal = %v, want %v", staleAfter, staleBefore+1)
	}
}

func TestLookup_SequenceIncreases(t *testing.T) {
	service := NewService(newFakeFetcher(), nil)
	results := &collector{}
	service.SetUpdateCallback(results.add)

	for i := 0; i < 3; i++ {
		service.Lookup("Nowhere")
		service.Wait()
	}

	got := results.all()
	if len(got) != 3 {
		t.Fatalf("Expected 3 sequential results, got %d", len(got))
	}
	for i, r := range got {
		if r.Seq != uint64(i+1) {
			t.Errorf("result %d: Seq = %d, want %d", i, r.Seq, i+1)
		}
	}
}

func TestLookup_WithoutCallback(t *testing.T) {
	fetcher := newFakeFetcher()
	service := NewService(fetcher, nil)

	service.Lookup("London")
	service.Wait()

	fetcher.mu.Lock()
	defer fetcher.mu.Unlock()
	if len(fetcher.calls) != 1 || fetcher.calls[0] != "London" {
		t.Errorf("Expected one fetch for London, got %v", fetcher.calls)
	}
}

func TestGenerateLookupID(t *testing.T) {
	id1 := generateLookupID()
	id2 := generateLookupID()

	if id1 == id2 {
		t.Error("Expected different lookup IDs")
	}

	if !strings.HasPrefix(id1, "lookup-") {
		t.Errorf("Expected ID to start with 'lookup-', got: %s", id1)
	}

	// lookup- + 36 chars for UUID
	if len(id1) != len("lookup-")+36 {
		t.Errorf("Expected ID length %d, got %d for ID: %s", len("lookup-")+36, len(id1), id1)
	}
}
