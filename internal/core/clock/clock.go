// Package clock tracks in-game time. One tick is one completed turn.
package clock

import "fmt"

const (
	HoursPerDay = 12
	DaysPerYear = 100
)

// Season is a quarter of the in-game year.
type Season int

const (
	Spring Season = iota
	Summer
	Autumn
	Winter
)

func (s Season) String() string {
	switch s {
	case Spring:
		return "spring"
	case Summer:
		return "summer"
	case Autumn:
		return "autumn"
	case Winter:
		return "winter"
	default:
		return fmt.Sprintf("season(%d)", int(s))
	}
}

// Clock is the in-game calendar. Hour is always below HoursPerDay and Day
// below DaysPerYear.
type Clock struct {
	Hour uint8  `json:"hour"`
	Day  uint16 `json:"day"`
	Year uint16 `json:"year"`
}

// Tick advances the clock by one hour, rolling over into days and years.
func (c *Clock) Tick() {
	c.Hour++
	if c.Hour < HoursPerDay {
		return
	}
	c.Hour = 0
	c.Day++
	if c.Day < DaysPerYear {
		return
	}
	c.Day = 0
	c.Year++
}

// IsDay reports whether the current hour falls in the first half of the day.
func (c Clock) IsDay() bool {
	return c.Hour < HoursPerDay/2
}

// IsNight is the complement of IsDay.
func (c Clock) IsNight() bool {
	return !c.IsDay()
}

// Season returns the quarter of the year the current day falls in.
func (c Clock) Season() Season {
	return Season(int(c.Day) * 4 / DaysPerYear)
}

// Turns returns the number of ticks since the zero clock.
func (c Clock) Turns() uint64 {
	return (uint64(c.Year)*DaysPerYear+uint64(c.Day))*HoursPerDay + uint64(c.Hour)
}

func (c Clock) String() string {
	return fmt.Sprintf("year %d, day %d, hour %d", c.Year, c.Day, c.Hour)
}
