package service

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/cadence-sh/cadence/internal/domain"
)

// constraintsFile is the YAML document users author to describe their
// availability. Clock values are "HH:MM" strings, weekdays are lowercase
// English names.
type constraintsFile struct {
	Sleep struct {
		Start string `yaml:"start"`
		End   string `yaml:"end"`
	} `yaml:"sleep"`
	Peak *struct {
		Start string `yaml:"start"`
		End   string `yaml:"end"`
	} `yaml:"peak,omitempty"`
	Blocks     []blockEntry     `yaml:"blocks,omitempty"`
	Exceptions []exceptionEntry `yaml:"exceptions,omitempty"`
}

type blockEntry struct {
	Title    string   `yaml:"title"`
	Weekdays []string `yaml:"weekdays"`
	Start    string   `yaml:"start"`
	End      string   `yaml:"end"`
	Pattern  string   `yaml:"pattern,omitempty"`
	Timezone string   `yaml:"timezone,omitempty"`
}

type exceptionEntry struct {
	Date    string `yaml:"date"`
	Start   string `yaml:"start"`
	End     string `yaml:"end"`
	Blocked *bool  `yaml:"blocked,omitempty"`
}

var weekdayNames = map[string]time.Weekday{
	"sunday": time.Sunday, "monday": time.Monday, "tuesday": time.Tuesday,
	"wednesday": time.Wednesday, "thursday": time.Thursday,
	"friday": time.Friday, "saturday": time.Saturday,
}

// loadConstraintsFile reads and converts a YAML constraints file.
func loadConstraintsFile(path string) (*domain.UserConstraints, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseConstraintsFile(data)
}

func parseConstraintsFile(data []byte) (*domain.UserConstraints, error) {
	var f constraintsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing constraints file: %w", err)
	}

	var c domain.UserConstraints
	var err error
	if c.SleepStart, err = domain.ParseClock(f.Sleep.Start); err != nil {
		return nil, fmt.Errorf("sleep.start: %w", err)
	}
	if c.SleepEnd, err = domain.ParseClock(f.Sleep.End); err != nil {
		return nil, fmt.Errorf("sleep.end: %w", err)
	}
	if f.Peak != nil {
		if c.PeakStart, err = domain.ParseClock(f.Peak.Start); err != nil {
			return nil, fmt.Errorf("peak.start: %w", err)
		}
		if c.PeakEnd, err = domain.ParseClock(f.Peak.End); err != nil {
			return nil, fmt.Errorf("peak.end: %w", err)
		}
	}

	for i, b := range f.Blocks {
		block, err := convertBlock(b)
		if err != nil {
			return nil, fmt.Errorf("blocks[%d]: %w", i, err)
		}
		c.Blocks = append(c.Blocks, block)
	}

	for i, e := range f.Exceptions {
		exc, err := convertException(e)
		if err != nil {
			return nil, fmt.Errorf("exceptions[%d]: %w", i, err)
		}
		c.Exceptions = append(c.Exceptions, exc)
	}

	return &c, nil
}

func convertBlock(b blockEntry) (domain.RecurringBlock, error) {
	block := domain.RecurringBlock{
		Title:    b.Title,
		Timezone: b.Timezone,
	}

	if len(b.Weekdays) == 0 {
		return block, fmt.Errorf("weekdays is required")
	}
	for _, name := range b.Weekdays {
		day, ok := weekdayNames[strings.ToLower(name)]
		if !ok {
			return block, fmt.Errorf("unknown weekday %q", name)
		}
		block.Weekdays = append(block.Weekdays, day)
	}

	var err error
	if block.Start, err = domain.ParseClock(b.Start); err != nil {
		return block, err
	}
	if block.End, err = domain.ParseClock(b.End); err != nil {
		return block, err
	}
	if block.End <= block.Start {
		return block, fmt.Errorf("end %q must be after start %q", b.End, b.Start)
	}

	switch b.Pattern {
	case "", "default":
		block.Pattern = domain.PatternDefault
	case "A", "a":
		block.Pattern = domain.PatternA
	case "B", "b":
		block.Pattern = domain.PatternB
	default:
		return block, fmt.Errorf("unknown week pattern %q", b.Pattern)
	}

	return block, nil
}

func convertException(e exceptionEntry) (domain.DateException, error) {
	var exc domain.DateException

	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return exc, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", e.Date)
	}
	exc.Date = e.Date

	var err error
	if exc.Start, err = domain.ParseClock(e.Start); err != nil {
		return exc, err
	}
	if exc.End, err = domain.ParseClock(e.End); err != nil {
		return exc, err
	}
	if exc.End <= exc.Start {
		return exc, fmt.Errorf("end %q must be after start %q", e.End, e.Start)
	}

	// Omitting "blocked" means the exception blocks time; an explicit
	// false reopens hours a recurring block would close.
	exc.Blocked = domain.BoolFromPtrWithDefault(true, e.Blocked)

	return exc, nil
}
