package filter

import (
	"github.com/markusressel/hystfan/internal/util"
)

// AveragingFilter is a fixed window moving average.
//
// Every sample is divided by the window size before it is stored, so the
// filtered value is the plain sum of the buffer. The sum is maintained
// incrementally, which means it can drift from a freshly computed sum by
// floating point accumulation error.
type AveragingFilter struct {
	order  int
	buffer []float64
	// tail points to the oldest contribution, head to the newest
	tail  int
	head  int
	value float64
}

// NewAveragingFilter creates a filter whose window is completely filled with initValue,
// so an immediate read returns initValue
func NewAveragingFilter(order int, initValue float64) (*AveragingFilter, error) {
	if order < 1 {
		return nil, util.NewConfigError("filter order must be >= 1, was %d", order)
	}

	f := &AveragingFilter{
		order:  order,
		buffer: make([]float64, order),
		tail:   0,
		head:   order - 1,
	}
	contribution := initValue / float64(order)
	for i := range f.buffer {
		f.buffer[i] = contribution
		f.value += contribution
	}
	return f, nil
}

// Update folds a new sample into the window and returns the new average
func (f *AveragingFilter) Update(sample float64) float64 {
	contribution := sample / float64(f.order)

	oldest := f.buffer[f.tail]
	f.tail = f.advance(f.tail)

	f.head = f.advance(f.head)
	f.buffer[f.head] = contribution

	f.value = f.value - oldest + contribution
	return f.value
}

// Value returns the current average without modifying the window
func (f *AveragingFilter) Value() float64 {
	return f.value
}

func (f *AveragingFilter) Order() int {
	return f.order
}

func (f *AveragingFilter) advance(pos int) int {
	return (pos + 1) % f.order
}
