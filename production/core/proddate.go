package core

import (
	"fmt"
	"time"
)

// ProductionDateRule rolls orders placed after the daily cutoff into the next
// production cycle.
type ProductionDateRule struct {
	Hour, Minute, Second int
	Location             *time.Location
}

func DefaultProductionDateRule() ProductionDateRule {
	return ProductionDateRule{Hour: 8, Location: time.Local}
}

// NewProductionDateRule parses a cutoff such as "08:00" or "08:00:00" and a
// time zone name ("Local", "UTC", "America/Sao_Paulo").
func NewProductionDateRule(cutoff, zone string) (ProductionDateRule, error) {
	var r ProductionDateRule

	at, err := time.Parse(time.TimeOnly, cutoff)
	if err != nil {
		at, err = time.Parse("15:04", cutoff)
		if err != nil {
			return r, fmt.Errorf("parse cutoff %q: %w", cutoff, err)
		}
	}
	r.Hour, r.Minute, r.Second = at.Clock()

	switch zone {
	case "", "Local":
		r.Location = time.Local
	default:
		loc, err := time.LoadLocation(zone)
		if err != nil {
			return r, fmt.Errorf("load time zone %q: %w", zone, err)
		}
		r.Location = loc
	}

	return r, nil
}

// Apply returns now unchanged up to and including the cutoff, and the same
// wall-clock instant on the next calendar day strictly after it.
func (r ProductionDateRule) Apply(now time.Time) time.Time {
	loc := r.location()

	local := now.In(loc)
	y, m, d := local.Date()
	cutoff := time.Date(y, m, d, r.Hour, r.Minute, r.Second, 0, loc)

	if local.After(cutoff) {
		return local.AddDate(0, 0, 1)
	}
	return local
}

// Day is the production calendar day (YYYY-MM-DD) of t in the rule's zone,
// whatever zone t itself carries.
func (r ProductionDateRule) Day(t time.Time) string {
	return t.In(r.location()).Format(time.DateOnly)
}

func (r ProductionDateRule) location() *time.Location {
	if r.Location == nil {
		return time.Local
	}
	return r.Location
}
