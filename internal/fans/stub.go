package fans

import (
	"sync"

	"github.com/markusressel/hystfan/internal/ui"
)

// StubFan only prints and remembers the speed it is given
type StubFan struct {
	ID string

	mu        sync.Mutex
	lastSpeed int
	writes    int
}

func NewStubFan(id string) *StubFan {
	ui.Info("StubFan for %s created", id)
	return &StubFan{
		ID:        id,
		lastSpeed: -1,
	}
}

func (fan *StubFan) GetId() string {
	return fan.ID
}

func (fan *StubFan) SetSpeed(speed int) error {
	fan.mu.Lock()
	defer fan.mu.Unlock()
	fan.lastSpeed = speed
	fan.writes++
	ui.Info("StubFan %s: speed %d", fan.ID, speed)
	return nil
}

// LastSpeed returns the last speed written, or -1 if nothing was written yet
func (fan *StubFan) LastSpeed() int {
	fan.mu.Lock()
	defer fan.mu.Unlock()
	return fan.lastSpeed
}

func (fan *StubFan) Writes() int {
	fan.mu.Lock()
	defer fan.mu.Unlock()
	return fan.writes
}
