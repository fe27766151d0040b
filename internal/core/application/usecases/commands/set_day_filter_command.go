package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrSetDayFilterCommandIsNotConstructed = errors.New(
	"SetDayFilterCommand must be created via NewSetDayFilterCommand constructor",
)

// DayFilterToday selects the current day when passed to NewSetDayFilterCommand.
const DayFilterToday = "today"

// SetDayFilterCommand selects which day the board shows.
//
// The raw value is one of:
//   - "" to show every day
//   - "today" to select the current local day when the command is handled
//   - a "YYYY-MM-DD" date
type SetDayFilterCommand struct { //nolint:recvcheck //using for validation
	dayKey kernel.DayKey
	today  bool

	guard guard.ConstructorGuard
}

func NewSetDayFilterCommand(raw string) (SetDayFilterCommand, error) {
	command := SetDayFilterCommand{
		guard: guard.NewConstructorGuard(),
	}

	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
	case strings.EqualFold(raw, DayFilterToday):
		command.today = true
	default:
		dayKey, err := kernel.ParseDayKey(raw)
		if err != nil {
			return SetDayFilterCommand{}, err
		}
		command.dayKey = dayKey
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDayFilterCommand) Validate() error {
	return c.guard.Validate(ErrSetDayFilterCommandIsNotConstructed)
}

// DayKey returns the requested day; zero clears the filter unless Today is set.
func (c SetDayFilterCommand) DayKey() kernel.DayKey {
	return c.dayKey
}

func (c SetDayFilterCommand) Today() bool {
	return c.today
}
