package scene

import (
	"fmt"
	"strings"

	"github.com/meghashyamc/optics2d/optics"
)

// Category classifies what happened at the end of one ray segment.
type Category uint8

const (
	Reflect Category = iota // bounced off a mirror
	Refract                 // crossed a refracting surface
	TIR                     // total internal reflection inside a refracting body
	Absorb                  // stopped by an obstacle, target or source
	Open                    // left the scene without hitting anything
	Runaway                 // hit the extension bound

	categoryCount
)

func (c Category) String() string {
	switch c {
	case Reflect:
		return "reflect"
	case Refract:
		return "refract"
	case TIR:
		return "tir"
	case Absorb:
		return "absorb"
	case Open:
		return "open"
	case Runaway:
		return "runaway"
	}
	return "unknown"
}

func categoryOf(interaction optics.Interaction) Category {
	switch interaction {
	case optics.Refracted:
		return Refract
	case optics.TotalInternalReflection:
		return TIR
	}
	return Reflect
}

// Stats counts ray events per category since the last reset.
type Stats struct {
	counts [categoryCount]int
}

func (s *Stats) add(c Category) {
	s.counts[c]++
}

func (s Stats) Count(c Category) int {
	if c >= categoryCount {
		return 0
	}
	return s.counts[c]
}

func (s Stats) Total() int {
	total := 0
	for _, n := range s.counts {
		total += n
	}
	return total
}

// KeyVals flattens the counters into logger key/value pairs.
func (s Stats) KeyVals() []interface{} {
	keyvals := make([]interface{}, 0, 2*int(categoryCount))
	for c := Category(0); c < categoryCount; c++ {
		keyvals = append(keyvals, c.String(), s.counts[c])
	}
	return keyvals
}

// String prints the non-zero counters, e.g. "reflect=3 open=1".
func (s Stats) String() string {
	if s.Total() == 0 {
		return "no events"
	}
	var parts []string
	for c := Category(0); c < categoryCount; c++ {
		if s.counts[c] > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", c, s.counts[c]))
		}
	}
	return strings.Join(parts, " ")
}

func (s *Scene) Stats() Stats {
	return s.stats
}

func (s *Scene) ResetStats() {
	s.stats = Stats{}
}
