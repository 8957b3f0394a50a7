package availability

import (
	"fmt"
	"time"
)

// Block is a recurring weekly interval of working hours.
type Block struct {
	Day   time.Weekday
	Start ClockTime
	End   ClockTime
}

// NewBlock builds a block from its persisted form: a lowercase weekday name
// and two "HH:mm" strings.
func NewBlock(day, start, end string) (Block, error) {
	d, err := ParseWeekday(day)
	if err != nil {
		return Block{}, fmt.Errorf("%w: %v", ErrInvalidBlock, err)
	}
	s, err := ParseClock(start)
	if err != nil {
		return Block{}, fmt.Errorf("%w: %v", ErrInvalidBlock, err)
	}
	e, err := ParseClock(end)
	if err != nil {
		return Block{}, fmt.Errorf("%w: %v", ErrInvalidBlock, err)
	}

	b := Block{Day: d, Start: s, End: e}
	if err := b.Validate(); err != nil {
		return Block{}, err
	}
	return b, nil
}

func (b Block) Validate() error {
	if b.Start.Minutes() >= b.End.Minutes() {
		return fmt.Errorf("%w: %s %s-%s starts at or after its end",
			ErrInvalidBlock, WeekdayName(b.Day), b.Start, b.End)
	}
	return nil
}

// Window returns the absolute [start, end) interval of the block on date.
func (b Block) Window(date time.Time) (time.Time, time.Time) {
	return b.Start.On(date), b.End.On(date)
}

func (b Block) String() string {
	return fmt.Sprintf("%s %s-%s", WeekdayName(b.Day), b.Start, b.End)
}

// BlocksFor returns the blocks recurring on the weekday of date, in input
// order.
func BlocksFor(blocks []Block, date time.Time) []Block {
	day := date.Weekday()
	out := make([]Block, 0, len(blocks))
	for _, b := range blocks {
		if b.Day == day {
			out = append(out, b)
		}
	}
	return out
}
