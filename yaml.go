package periodic

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// intervalFields is the mapping form of an Interval in YAML:
//
//	every: 2 weeks
//	begin: 2008/01/01
//	end: 2009
//
// every, days, months and years add up, like the frequency clauses of a
// descriptor. begin and end take any ParsePeriod expression and use its
// first day.
type intervalFields struct {
	Every  string `yaml:"every"`
	Days   int    `yaml:"days"`
	Months int    `yaml:"months"`
	Years  int    `yaml:"years"`
	Begin  string `yaml:"begin"`
	End    string `yaml:"end"`
}

// MarshalYAML encodes the interval as its descriptor string.
func (iv Interval) MarshalYAML() (interface{}, error) {
	return iv.String(), nil
}

// UnmarshalYAML decodes either a descriptor string, see Parse, or a mapping
// with the fields every, days, months, years, begin and end.
func (iv *Interval) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err := Parse(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*iv = parsed
		return nil
	case yaml.MappingNode:
		var fields intervalFields
		if err := value.Decode(&fields); err != nil {
			return err
		}
		parsed, err := fields.interval()
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*iv = parsed
		return nil
	default:
		return fmt.Errorf("line %d: %w: expected a descriptor or a mapping", value.Line, ErrMalformedInterval)
	}
}

func (f intervalFields) interval() (Interval, error) {
	var step Interval
	if every := strings.TrimSpace(f.Every); every != "" {
		parsed, err := Parse("every " + every)
		if err != nil {
			return Interval{}, err
		}
		step = parsed
	}

	opts := []Option{
		SetDays(step.Days + f.Days),
		SetMonths(step.Months + f.Months),
		SetYears(step.Years + f.Years),
	}
	if f.Begin != "" {
		begin, _, err := ParsePeriod(f.Begin)
		if err != nil {
			return Interval{}, err
		}
		opts = append(opts, SetBegin(begin))
	}
	if f.End != "" {
		end, _, err := ParsePeriod(f.End)
		if err != nil {
			return Interval{}, err
		}
		opts = append(opts, SetEnd(end))
	}
	return New(opts...)
}
