package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	inDurationRe = regexp.MustCompile(`^(?:in|em) (\d+) (day|days|dia|dias|week|weeks|semana|semanas|month|months|mes|mês|meses)$`)

	weekdays = map[string]time.Weekday{
		"monday": time.Monday, "segunda": time.Monday,
		"tuesday": time.Tuesday, "terca": time.Tuesday, "terça": time.Tuesday,
		"wednesday": time.Wednesday, "quarta": time.Wednesday,
		"thursday": time.Thursday, "quinta": time.Thursday,
		"friday": time.Friday, "sexta": time.Friday,
		"saturday": time.Saturday, "sabado": time.Saturday, "sábado": time.Saturday,
		"sunday": time.Sunday, "domingo": time.Sunday,
	}
)

// Parser resolves reference days in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/Sao_Paulo"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Today returns local midnight of now's calendar day.
func (p *Parser) Today(now time.Time) time.Time {
	return p.startOfDay(now)
}

// Parse converts a relative day ("today", "amanhã", "in 3 days", "next friday")
// into local midnight of that day. Empty input means today.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "", "today", "hoje":
		return p.startOfDay(baseTime), nil
	case "tomorrow", "amanha", "amanhã":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday", "ontem":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(relative, "in ") || strings.HasPrefix(relative, "em ") {
		return p.parseInDuration(relative, baseTime)
	}

	if strings.HasPrefix(relative, "next ") || strings.HasPrefix(relative, "proxima ") || strings.HasPrefix(relative, "próxima ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	if day, err := time.ParseInLocation(time.DateOnly, relative, p.location); err == nil {
		return day, nil
	}

	return baseTime, fmt.Errorf("unrecognized day: %q", relative)
}

func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"), strings.HasPrefix(unit, "dia"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"), strings.HasPrefix(unit, "semana"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	_, dayName, _ := strings.Cut(relative, " ")
	dayName = strings.TrimSuffix(dayName, "-feira")

	target, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	daysUntil := int(target - baseTime.In(p.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// NewParserIn creates a parser bound to an already resolved location.
func NewParserIn(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{location: loc}
}
