// Package dice parses dice notation and evaluates it into roll results.
package dice

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/osse101/DiceBot_Go/internal/domain"
)

// Parser turns notation such as "2d6+1d4+3>=10" into a domain.DiceExpression.
//
// Grammar (whitespace is ignored, 'd' is case-insensitive):
//
//	expression := [sign] term { sign term } [ comparator threshold ]
//	term       := [count] 'd' faces | integer
//	comparator := ">=" | "<=" | ">" | "<" | "="
type Parser struct {
	MaxDice  int
	MaxFaces int
	// MaxModifier bounds the absolute value of the summed flat terms and of
	// the threshold. Zero means DefaultMaxModifier.
	MaxModifier int
}

// NewParser returns a Parser with the given limits; non-positive values use the defaults
func NewParser(maxDice, maxFaces int) *Parser {
	if maxDice <= 0 {
		maxDice = DefaultMaxDice
	}
	if maxFaces <= 0 {
		maxFaces = DefaultMaxFaces
	}
	return &Parser{MaxDice: maxDice, MaxFaces: maxFaces, MaxModifier: DefaultMaxModifier}
}

func (p *Parser) maxModifier() int {
	if p.MaxModifier <= 0 {
		return DefaultMaxModifier
	}
	return p.MaxModifier
}

var defaultParser = NewParser(DefaultMaxDice, DefaultMaxFaces)

// Parse parses expr with the default limits
func Parse(expr string) (domain.DiceExpression, error) {
	return defaultParser.Parse(expr)
}

// MustParse parses expr and panics on error. Useful for package-level expressions.
func MustParse(expr string) domain.DiceExpression {
	e, err := Parse(expr)
	if err != nil {
		panic("dice: MustParse failed for expression " + expr + ": " + err.Error())
	}
	return e
}

// Parse parses expr. It never returns a partially filled expression.
func (p *Parser) Parse(expr string) (domain.DiceExpression, error) {
	s := normalize(expr)
	if s == "" {
		return domain.DiceExpression{}, newParseError(expr, 0, ReasonEmpty)
	}

	arith, cmpPos := s, -1
	if i := strings.IndexAny(s, "<>="); i >= 0 {
		arith, cmpPos = s[:i], i
	}

	out := domain.DiceExpression{Raw: expr}
	if err := p.parseArithmetic(expr, arith, &out); err != nil {
		return domain.DiceExpression{}, err
	}

	if cmpPos >= 0 {
		cmp, err := p.parseComparison(expr, s, cmpPos)
		if err != nil {
			return domain.DiceExpression{}, err
		}
		out.Comparison = cmp
	}

	return out, nil
}

func (p *Parser) parseArithmetic(raw, s string, out *domain.DiceExpression) error {
	pos := 0
	sign := 1
	if pos < len(s) && (s[pos] == '+' || s[pos] == '-') {
		if s[pos] == '-' {
			sign = -1
		}
		pos++
	}

	diceTotal := 0
	for {
		start := pos
		countStr := scanDigits(s, &pos)

		if pos < len(s) && s[pos] == 'd' {
			pos++
			facesStart := pos
			facesStr := scanDigits(s, &pos)
			if facesStr == "" {
				return newParseError(raw, facesStart, ReasonMissingFaces)
			}

			count := 1
			if countStr != "" {
				n, err := strconv.Atoi(countStr)
				if err != nil {
					return newParseError(raw, start, ReasonNumberOutOfRange)
				}
				count = n
			}
			faces, err := strconv.Atoi(facesStr)
			if err != nil {
				return newParseError(raw, facesStart, ReasonNumberOutOfRange)
			}

			switch {
			case count < 1:
				return newParseError(raw, start, ReasonZeroDice)
			case faces < MinFaces:
				return newParseError(raw, facesStart, ReasonTooFewFaces)
			case faces > p.MaxFaces:
				return newParseError(raw, facesStart, ReasonTooManyFaces)
			case count > p.MaxDice || diceTotal+count > p.MaxDice:
				return &ParseError{Expression: raw, Position: start, Reason: ReasonTooManyDice, Err: domain.ErrTooManyDice}
			}

			diceTotal += count
			out.Groups = append(out.Groups, domain.DiceGroup{Count: count, Faces: faces, Sign: sign})
		} else {
			if countStr == "" {
				return newParseError(raw, start, ReasonMissingTerm)
			}
			n, err := strconv.Atoi(countStr)
			if err != nil || n > p.maxModifier() {
				return newParseError(raw, start, ReasonNumberOutOfRange)
			}
			out.Modifier += sign * n
			if abs(out.Modifier) > p.maxModifier() {
				return newParseError(raw, start, ReasonNumberOutOfRange)
			}
		}

		if pos == len(s) {
			break
		}
		switch s[pos] {
		case '+':
			sign = 1
		case '-':
			sign = -1
		default:
			return newParseError(raw, pos, ReasonUnexpectedChar)
		}
		pos++
	}

	if len(out.Groups) == 0 {
		return newParseError(raw, 0, ReasonNoDice)
	}
	return nil
}

func (p *Parser) parseComparison(raw, s string, pos int) (*domain.Comparison, error) {
	rest := s[pos:]
	op := domain.ComparisonOperator(rest[:1])
	if strings.HasPrefix(rest, ">=") || strings.HasPrefix(rest, "<=") {
		op = domain.ComparisonOperator(rest[:2])
	}

	thresholdPos := pos + len(op)
	thresholdStr := s[thresholdPos:]
	if thresholdStr == "" {
		return nil, newParseError(raw, thresholdPos, ReasonMissingThreshold)
	}
	if strings.ContainsAny(thresholdStr, "<>=") {
		return nil, newParseError(raw, thresholdPos, ReasonDuplicateOperator)
	}

	threshold, err := strconv.Atoi(thresholdStr)
	if errors.Is(err, strconv.ErrRange) || (err == nil && abs(threshold) > p.maxModifier()) {
		return nil, newParseError(raw, thresholdPos, ReasonNumberOutOfRange)
	}
	if err != nil {
		return nil, newParseError(raw, thresholdPos, ReasonInvalidThreshold)
	}
	return &domain.Comparison{Operator: op, Threshold: threshold}, nil
}

// normalize strips whitespace and lower-cases the die marker
func normalize(expr string) string {
	var b strings.Builder
	b.Grow(len(expr))
	for _, r := range expr {
		if unicode.IsSpace(r) {
			continue
		}
		if r == 'D' {
			r = 'd'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func scanDigits(s string, pos *int) string {
	start := *pos
	for *pos < len(s) && s[*pos] >= '0' && s[*pos] <= '9' {
		*pos++
	}
	return s[start:*pos]
}
