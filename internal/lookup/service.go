package lookup

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/svarj/WeatherMe/internal/model"
	"github.com/svarj/WeatherMe/internal/observability"
	"github.com/svarj/WeatherMe/internal/weather"
)

var _ Looker = (*Service)(nil)

// Service handles weather lookups
type Service struct {
	fetcher weather.Fetcher
	logger  *zap.Logger

	mu       sync.Mutex
	seq      uint64 // sequence of the newest started lookup
	onUpdate func(*model.LookupResult)
	inFlight sync.WaitGroup

	// deliverMu orders the staleness check and the callback so an older
	// result can never be delivered after a newer one.
	deliverMu sync.Mutex
}

// NewService creates a new lookup service
func NewService(fetcher weather.Fetcher, logger *zap.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		logger:  observability.OrNop(logger),
	}
}

// SetUpdateCallback sets the callback function for finished lookups
func (s *Service) SetUpdateCallback(callback func(*model.LookupResult)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// Lookup starts fetching the weather for city on a new goroutine
func (s *Service) Lookup(city string) string {
	s.mu.Lock()
	s.seq++
	result := &model.LookupResult{
		ID:        generateLookupID(),
		Seq:       s.seq,
		City:      city,
		StartedAt: time.Now(),
	}
	s.mu.Unlock()

	observability.WeatherLookupsTotal.Inc()
	s.logger.Info("lookup started",
		zap.String("lookup_id", result.ID),
		zap.Uint64("seq", result.Seq),
		zap.String("city", city))

	s.inFlight.Add(1)
	go s.run(result)

	return result.ID
}

// Wait blocks until all started lookups have finished
func (s *Service) Wait() {
	s.inFlight.Wait()
}

// run performs the lookup and hands the result to the callback
func (s *Service) run(result *model.LookupResult) {
	defer s.inFlight.Done()

	record, err := s.fetcher.FetchWeather(context.Background(), result.City)
	result.Record = record
	result.Err = err
	result.FinishedAt = time.Now()

	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	if !s.isLatest(result.Seq) {
		observability.WeatherLookupsStaleTotal.Inc()
		s.logger.Info("lookup superseded, dropping result",
			zap.String("lookup_id", result.ID),
			zap.Uint64("seq", result.Seq),
			zap.String("city", result.City))
		return
	}

	if err != nil {
		s.logger.Info("lookup finished without a record",
			zap.String("lookup_id", result.ID),
			zap.String("city", result.City),
			zap.Error(err))
	} else {
		s.logger.Info("lookup finished",
			zap.String("lookup_id", result.ID),
			zap.String("city", result.City),
			zap.Duration("duration", result.FinishedAt.Sub(result.StartedAt)))
	}

	s.notifyUpdate(result)
}

// isLatest reports whether no lookup was started after seq
func (s *Service) isLatest(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return seq == s.seq
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(result *model.LookupResult) {
	s.mu.Lock()
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(result)
	}
}

// generateLookupID generates a unique lookup ID
func generateLookupID() string {
	return "lookup-" + uuid.NewString()
}
