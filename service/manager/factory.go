package manager

import (
	"fmt"

	"github.com/viant/tasker/model"
)

// New creates a manager for the supplied mode. An empty mode selects ModeDefault.
func New(mode model.Mode, capacity int, options ...Option) (Service, error) {
	var (
		ret Service
		err error
	)
	switch mode {
	case model.ModeDefault, "":
		ret, err = NewBounded(capacity, options...)
	case model.ModeFIFO:
		ret, err = NewFIFO(capacity, options...)
	case model.ModePriority:
		ret, err = NewPriority(capacity, options...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMode, mode)
	}
	if err != nil {
		return nil, err
	}
	o := newOptions(options)
	if o.traced {
		ret = Traced(ret)
	}
	if o.synchronized {
		ret = Synchronized(ret)
	}
	return ret, nil
}
