package sensors

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/markusressel/hystfan/internal/filter"
	"github.com/markusressel/hystfan/internal/ui"
	"github.com/markusressel/hystfan/internal/util"
)

// PollingSensor samples a TemperatureSource on a fixed period in a background
// goroutine and publishes the filtered value through an atomic cell.
//
// The filtered value is written only by the background goroutine. Readers never
// block and may observe a value that is one sample old.
type PollingSensor struct {
	source      TemperatureSource
	filter      *filter.AveragingFilter
	pollingRate time.Duration

	filtered atomic.Uint64
	raw      atomic.Uint64
	fault    atomic.Pointer[error]

	// lifecycle only, never held while reading values
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewPollingSensor(source TemperatureSource, filterOrder int, pollingRate time.Duration) (*PollingSensor, error) {
	if pollingRate <= 0 {
		return nil, util.NewConfigError("sensor %s: pollingRate must be > 0, was %s", source.GetId(), pollingRate)
	}

	initial, err := source.ReadRaw()
	if err != nil {
		return nil, err
	}

	f, err := filter.NewAveragingFilter(filterOrder, initial)
	if err != nil {
		return nil, util.NewConfigError("sensor %s: %v", source.GetId(), err)
	}

	s := &PollingSensor{
		source:      source,
		filter:      f,
		pollingRate: pollingRate,
	}
	s.store(&s.raw, initial)
	s.store(&s.filtered, f.Value())
	return s, nil
}

func (s *PollingSensor) GetId() string {
	return s.source.GetId()
}

func (s *PollingSensor) GetFiltered() float64 {
	return math.Float64frombits(s.filtered.Load())
}

// GetRaw returns the last unfiltered sample
func (s *PollingSensor) GetRaw() float64 {
	return math.Float64frombits(s.raw.Load())
}

func (s *PollingSensor) Err() error {
	if err := s.fault.Load(); err != nil {
		return *err
	}
	return nil
}

func (s *PollingSensor) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done != nil
}

func (s *PollingSensor) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.run(ctx, s.done)
}

func (s *PollingSensor) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done == nil {
		return
	}

	s.cancel()
	<-s.done
	s.cancel = nil
	s.done = nil
}

// Refresh takes one sample synchronously.
// Must not be called while the sensor is running.
func (s *PollingSensor) Refresh() (float64, error) {
	err := s.sample()
	return s.GetFiltered(), err
}

func (s *PollingSensor) run(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	tick := time.NewTicker(s.pollingRate)
	defer tick.Stop()

	for {
		err := s.sample()
		if err != nil {
			ui.Error("Sensor %s stopped polling: %v", s.GetId(), err)
			s.fault.Store(&err)
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-tick.C:
		}
	}
}

func (s *PollingSensor) sample() error {
	value, err := s.source.ReadRaw()
	if err != nil {
		return err
	}
	s.store(&s.raw, value)
	s.store(&s.filtered, s.filter.Update(value))
	return nil
}

func (s *PollingSensor) store(cell *atomic.Uint64, value float64) {
	cell.Store(math.Float64bits(value))
}
