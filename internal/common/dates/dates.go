package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// ErrUnparseable is returned when the input matched no known date format
var ErrUnparseable = errors.New("could not parse date")

// Parser turns human date input ("dec 20", "next friday") into times
// anchored in a given timezone.
type Parser struct {
	w *when.Parser
}

// NewParser creates a new date parser with English rules
func NewParser() *Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	return &Parser{w: w}
}

// Parse resolves input relative to now in the given location. Absolute
// dates in YYYY-MM-DD form are accepted before falling back to the
// natural-language rules.
func (p *Parser) Parse(input string, now time.Time, loc *time.Location) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, ErrUnparseable
	}

	if t, err := time.ParseInLocation("2006-01-02", input, loc); err == nil {
		return t, nil
	}

	r, err := p.w.Parse(input, now.In(loc))
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %q: %w", input, err)
	}
	if r == nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseable, input)
	}

	return r.Time.In(loc), nil
}

// LoadLocation resolves an IANA timezone name, defaulting to UTC when empty
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(name)
}
