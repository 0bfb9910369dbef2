package booking

import (
	"regexp"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// Fields is the partial structured result of parsing a booking request.
// An empty string marks a field the parser could not recover; all three
// keys are always present in the JSON form so callers have a stable shape
// to inspect.
type Fields struct {
	Doctor string `json:"doctor"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}

// stopwords are tokens that end the doctor-name scan because they open a
// date or time phrase.
var stopwords = map[string]struct{}{
	"today": {}, "tomorrow": {}, "tonight": {}, "on": {}, "at": {},
	"this": {}, "next": {}, "coming": {}, "morning": {}, "evening": {},
	"afternoon": {}, "noon": {}, "midday": {}, "midnight": {},
}

var weekdays = map[string]struct{}{
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {},
	"friday": {}, "saturday": {}, "sunday": {},
}

var months = map[string]struct{}{
	"january": {}, "february": {}, "march": {}, "april": {}, "may": {},
	"june": {}, "july": {}, "august": {}, "september": {}, "october": {},
	"november": {}, "december": {},
}

var (
	// "with Dr. John", "for Dr Smith", "to see Dr Wick"
	doctorRE = regexp.MustCompile(`(?i)(?:with|for|to see)\s+(Dr\.?)\s+([A-Za-z]+)`)
	// name-walk tokens: words, plus day numbers/ordinals so "25" and
	// "25th" reach the stop check instead of being split apart
	tokenRE = regexp.MustCompile(`[A-Za-z]+|\d+(?:st|nd|rd|th)?`)
	// bare day numbers and ordinals: "25", "25th"
	ordinalRE = regexp.MustCompile(`^\d{1,2}(st|nd|rd|th)?$`)

	// explicit date phrases: "25 August", "August 25"; the second form
	// requires the literal word "on" in front
	datePhraseRE   = regexp.MustCompile(`(?i)\b(\d{1,2}\s+[A-Za-z]+|[A-Za-z]{3,}\s+\d{1,2})\b`)
	datePhraseOnRE = regexp.MustCompile(`(?i)\bon\s+([A-Za-z]{3,}\s+\d{1,2}|\d{1,2}\s+[A-Za-z]{3,})\b`)

	// 12-hour time anywhere in the text: "8pm", "8:00PM", "at 7 p.m."
	time12RE = regexp.MustCompile(`(?i)\b(?:at\s*)?(\d{1,2}(?::\d{2})?\s*(?:a\.?m\.?|p\.?m\.?))\b`)
	// bare 24-hour clock: "14:30"
	time24RE = regexp.MustCompile(`\b([01]?\d|2[0-3]):([0-5]\d)\b`)
)

// Parser extracts booking fields from free text. The clock pins "today"
// and the year the delegated date parser resolves bare month/day phrases
// into, so tests can supply a fixed reference time.
type Parser struct {
	now func() time.Time
}

// NewParser returns a Parser on the wall clock.
func NewParser() *Parser {
	return &Parser{now: time.Now}
}

// NewParserWithClock returns a Parser on a fixed clock for tests.
func NewParserWithClock(now func() time.Time) *Parser {
	if now == nil {
		now = time.Now
	}
	return &Parser{now: now}
}

// ParseCommand recovers a doctor name, an ISO date and a 12-hour time from
// a booking message. Every stage degrades to an absent field; malformed
// input never produces an error, only a partially populated result.
func (p *Parser) ParseCommand(text string) Fields {
	return Fields{
		Doctor: p.extractDoctor(text),
		Date:   p.extractDate(text),
		Time:   p.extractTime(text),
	}
}

// extractDoctor finds "(with|for|to see) Dr <name>" and then walks the
// following words one by one, appending surname tokens until a token that
// looks like a date or time word ends the name. Multi-word surnames like
// "Dr Van Damme" survive the walk.
func (p *Parser) extractDoctor(text string) string {
	m := doctorRE.FindStringSubmatchIndex(text)
	if m == nil {
		return ""
	}
	honorific := strings.ReplaceAll(text[m[2]:m[3]], ".", "")
	parts := []string{honorific, text[m[4]:m[5]]}

	tail := text[m[1]:]
	for _, tok := range tokenRE.FindAllString(tail, -1) {
		if looksLikeDateOrTimeToken(tok) {
			break
		}
		parts = append(parts, tok)
	}
	return strings.Join(parts, " ")
}

// looksLikeDateOrTimeToken reports whether a word opens a date/time phrase:
// a stopword, a weekday or month name, or a bare day number or ordinal.
func looksLikeDateOrTimeToken(tok string) bool {
	t := strings.ToLower(strings.Trim(tok, ".,!?"))
	if _, ok := stopwords[t]; ok {
		return true
	}
	if _, ok := weekdays[t]; ok {
		return true
	}
	if _, ok := months[t]; ok {
		return true
	}
	return ordinalRE.MatchString(t)
}

// extractDate resolves, in priority order: "today", "tomorrow", then the
// first explicit date phrase handed to the natural-language parser.
func (p *Parser) extractDate(text string) string {
	low := strings.ToLower(text)
	today := p.now()

	if strings.Contains(low, "today") {
		return today.Format("2006-01-02")
	}
	if strings.Contains(low, "tomorrow") {
		return today.AddDate(0, 0, 1).Format("2006-01-02")
	}

	var phrase string
	if m := datePhraseRE.FindStringSubmatch(text); m != nil {
		phrase = m[1]
	} else if m := datePhraseOnRE.FindStringSubmatch(text); m != nil {
		phrase = m[1]
	}
	if phrase == "" {
		return ""
	}

	parsed, err := dateparser.Parse(p.parserConfig(), phrase)
	if err != nil {
		return ""
	}
	return parsed.Time.Format("2006-01-02")
}

// extractTime looks for a 12-hour expression first and a bare 24-hour
// HH:MM second; either is round-tripped through the natural-language
// parser and rendered "hh:mm AM/PM".
func (p *Parser) extractTime(text string) string {
	if m := time12RE.FindStringSubmatch(text); m != nil {
		raw := strings.ToLower(strings.ReplaceAll(m[1], ".", ""))
		return p.parseClock(raw)
	}
	if m := time24RE.FindStringSubmatch(text); m != nil {
		return p.parseClock(m[1] + ":" + m[2])
	}
	return ""
}

func (p *Parser) parseClock(raw string) string {
	parsed, err := dateparser.Parse(p.parserConfig(), raw)
	if err != nil {
		return ""
	}
	return parsed.Time.Format("03:04 PM")
}

func (p *Parser) parserConfig() *dateparser.Configuration {
	return &dateparser.Configuration{CurrentTime: p.now()}
}
