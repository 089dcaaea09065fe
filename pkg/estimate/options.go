package estimate

import "github.com/peter-kozarec/psecalc/pkg/fees"

type Option func(*Engine)

func WithSchedule(schedule *fees.Schedule) Option {
	return func(e *Engine) {
		e.schedule = schedule
	}
}
