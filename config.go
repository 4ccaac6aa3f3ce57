package periodic

import (
	"errors"
	"fmt"
	"io"
	"sort"

	cerrors "cloudeng.io/errors"
	"gopkg.in/yaml.v3"
)

// Set is a collection of named intervals, typically the reporting periods
// configured for an application.
type Set map[string]Interval

// Names returns the names in the set in sorted order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadSet reads named intervals from a YAML document of the form:
//
//	periods:
//	  weekly-review: weekly from 2008/01/07
//	  fiscal:
//	    every: 1 year
//	    begin: 2008/04/01
//
// Every entry is decoded and all failures are returned together. An empty
// document yields an empty Set.
func LoadSet(r io.Reader) (Set, error) {
	var doc struct {
		Periods map[string]yaml.Node `yaml:"periods"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	set := make(Set, len(doc.Periods))
	errs := &cerrors.M{}
	for _, name := range sortedKeys(doc.Periods) {
		node := doc.Periods[name]
		var iv Interval
		if err := node.Decode(&iv); err != nil {
			errs.Append(fmt.Errorf("period %q: %w", name, err))
			continue
		}
		set[name] = iv
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return set, nil
}

func sortedKeys(m map[string]yaml.Node) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
