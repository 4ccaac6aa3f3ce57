package periodic

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// MalformedIntervalError is returned by Parse when a descriptor does not
// match the grammar. Token is the offending token, empty when the descriptor
// ended early, and Position its byte offset within Text.
type MalformedIntervalError struct {
	Text     string
	Token    string
	Position int
	Reason   string

	// Err is the underlying cause, a *DateParseError for a bad date
	// operand, if any.
	Err error
}

func (e *MalformedIntervalError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("malformed interval %q: %s at end of input", e.Text, e.Reason)
	}
	msg := fmt.Sprintf("malformed interval %q: %s at position %d (%q)", e.Text, e.Reason, e.Position, e.Token)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedIntervalError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformedInterval, e.Err}
	}
	return []error{ErrMalformedInterval}
}

// frequencies maps the bare frequency words to the step they stand for.
var frequencies = map[string]struct {
	n    int
	unit Unit
}{
	"daily":     {1, Day},
	"weekly":    {1, Week},
	"biweekly":  {2, Week},
	"monthly":   {1, Month},
	"bimonthly": {2, Month},
	"quarterly": {1, Quarter},
	"yearly":    {1, Year},
	"annually":  {1, Year},
}

var units = map[string]Unit{
	"day":      Day,
	"days":     Day,
	"week":     Week,
	"weeks":    Week,
	"month":    Month,
	"months":   Month,
	"quarter":  Quarter,
	"quarters": Quarter,
	"year":     Year,
	"years":    Year,
}

// Parse parses a descriptor into an Interval. The grammar is
// case-insensitive and whitespace separated:
//
//	daily | weekly | biweekly | monthly | bimonthly | quarterly | yearly | annually
//	every [<N>] day(s) | week(s) | month(s) | quarter(s) | year(s)
//	from <date> | since <date>
//	to <date> | until <date>
//	in <period>
//
// Frequency clauses for different units combine, so "every 1 month every
// 15 days" steps by a month and then 15 days. Range clauses may appear in
// any order, at most one setting the begin and one setting the end. "to"
// and "until" are exclusive: "to 2008/12/31" makes 2008/12/30 the last
// date in range. "in" covers a whole period, "in 2008" is
// "from 2008/01/01 to 2009/01/01". Date operands are parsed with
// ParsePeriod; "from" and "to" use the first day of the period.
//
// An empty descriptor yields the zero Interval. Any failure returns a
// *MalformedIntervalError and no Interval.
func Parse(text string) (Interval, error) {
	p := &parser{text: text, tokens: tokenize(text)}
	if err := p.parse(); err != nil {
		return Interval{}, err
	}
	if err := validate(&p.interval); err != nil {
		return Interval{}, &MalformedIntervalError{
			Text:     text,
			Token:    p.endAt.text,
			Position: p.endAt.pos,
			Reason:   "end before begin",
			Err:      err,
		}
	}
	return p.interval, nil
}

type token struct {
	text string
	pos  int
}

func tokenize(text string) []token {
	var tokens []token
	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				tokens = append(tokens, token{text: text[start:i], pos: start})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, token{text: text[start:], pos: start})
	}
	return tokens
}

type parser struct {
	text   string
	tokens []token
	next   int

	interval         Interval
	daysSet          bool
	monthsSet        bool
	yearsSet         bool
	beginSet, endSet bool

	// endAt is the clause that set the end, reported when the range
	// is inverted.
	endAt token
}

func (p *parser) parse() error {
	for p.next < len(p.tokens) {
		tok := p.take()
		word := strings.ToLower(tok.text)
		if f, ok := frequencies[word]; ok {
			if err := p.setStep(tok, f.n, f.unit); err != nil {
				return err
			}
			continue
		}
		var err error
		switch word {
		case "every":
			err = p.parseEvery(tok)
		case "from", "since":
			err = p.parseBegin(tok)
		case "to", "until":
			err = p.parseEnd(tok)
		case "in":
			err = p.parseIn(tok)
		default:
			err = p.malformed(tok, "unrecognized token")
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) take() token {
	tok := p.tokens[p.next]
	p.next++
	return tok
}

// operand returns the token following keyword, failing if there is none.
func (p *parser) operand(keyword token, what string) (token, error) {
	if p.next >= len(p.tokens) {
		return token{}, p.malformed(token{pos: len(p.text)}, fmt.Sprintf("expected %s after %q", what, keyword.text))
	}
	return p.take(), nil
}

func (p *parser) parseEvery(keyword token) error {
	tok, err := p.operand(keyword, "a count or unit")
	if err != nil {
		return err
	}
	if unit, ok := units[strings.ToLower(tok.text)]; ok {
		return p.setStep(tok, 1, unit)
	}

	n, err := strconv.Atoi(tok.text)
	if err != nil || n < 1 {
		return p.malformed(tok, "expected a positive count")
	}
	if n > maxStep {
		return p.malformed(tok, "count out of range")
	}

	unitTok, err := p.operand(tok, "a unit")
	if err != nil {
		return err
	}
	unit, ok := units[strings.ToLower(unitTok.text)]
	if !ok {
		return p.malformed(unitTok, "expected a unit")
	}
	return p.setStep(unitTok, n, unit)
}

func (p *parser) setStep(tok token, n int, unit Unit) error {
	var field *int
	var set *bool
	switch unit {
	case Day:
		field, set = &p.interval.Days, &p.daysSet
	case Week:
		field, set, n = &p.interval.Days, &p.daysSet, 7*n
	case Month:
		field, set = &p.interval.Months, &p.monthsSet
	case Quarter:
		field, set, n = &p.interval.Months, &p.monthsSet, 3*n
	case Year:
		field, set = &p.interval.Years, &p.yearsSet
	}
	if *set {
		return p.malformed(tok, "duplicate "+unit.String()+" step")
	}
	if n > maxStep {
		return p.malformed(tok, "count out of range")
	}
	*field, *set = n, true
	return nil
}

func (p *parser) parseBegin(keyword token) error {
	if p.beginSet {
		return p.malformed(keyword, "duplicate begin date")
	}
	begin, _, err := p.period(keyword)
	if err != nil {
		return err
	}
	p.interval.Begin, p.beginSet = begin, true
	return nil
}

func (p *parser) parseEnd(keyword token) error {
	if p.endSet {
		return p.malformed(keyword, "duplicate end date")
	}
	end, _, err := p.period(keyword)
	if err != nil {
		return err
	}
	p.interval.End, p.endSet, p.endAt = end, true, keyword
	return nil
}

func (p *parser) parseIn(keyword token) error {
	if p.beginSet {
		return p.malformed(keyword, "duplicate begin date")
	}
	if p.endSet {
		return p.malformed(keyword, "duplicate end date")
	}
	begin, end, err := p.period(keyword)
	if err != nil {
		return err
	}
	p.interval.Begin, p.interval.End = begin, end
	p.beginSet, p.endSet, p.endAt = true, true, keyword
	return nil
}

func (p *parser) period(keyword token) (time.Time, time.Time, error) {
	tok, err := p.operand(keyword, "a date")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	begin, end, err := ParsePeriod(tok.text)
	if err != nil {
		return time.Time{}, time.Time{}, &MalformedIntervalError{
			Text:     p.text,
			Token:    tok.text,
			Position: tok.pos,
			Reason:   "invalid date",
			Err:      err,
		}
	}
	return begin, end, nil
}

func (p *parser) malformed(tok token, reason string) error {
	return &MalformedIntervalError{
		Text:     p.text,
		Token:    tok.text,
		Position: tok.pos,
		Reason:   reason,
	}
}
