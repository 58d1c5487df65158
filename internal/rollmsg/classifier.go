package rollmsg

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/osse101/DiceBot_Go/internal/domain"
)

// Classifier recovers outcome counts from rendered roll messages
type Classifier struct {
	// Delimiter frames the status label, e.g. "**"
	Delimiter string
	// Spacers are tokens skipped, along with whitespace, before the label
	Spacers []string

	reverse ReverseTranslator
}

// NewClassifier creates a Classifier with the default delimiter and spacers
func NewClassifier(rt ReverseTranslator) *Classifier {
	spacers := make([]string, len(DefaultSpacers))
	copy(spacers, DefaultSpacers)
	return &Classifier{Delimiter: DefaultDelimiter, Spacers: spacers, reverse: rt}
}

// Classify counts the recognizable status labels in text, one per line.
// Lines without a known label are skipped.
func (c *Classifier) Classify(text string) domain.OutcomeCount {
	var count domain.OutcomeCount
	for _, line := range strings.Split(text, "\n") {
		label, ok := c.label(line)
		if !ok {
			continue
		}
		key, ok := c.reverse.ReverseTranslate(strings.ToLower(label))
		if !ok {
			continue
		}
		count = count.Add(countForKey(key))
	}
	return count
}

// label returns the delimited span at the start of line after leading spacers
func (c *Classifier) label(line string) (string, bool) {
	rest := c.skipSpacers(line)
	if c.Delimiter == "" || !strings.HasPrefix(rest, c.Delimiter) {
		return "", false
	}
	rest = rest[len(c.Delimiter):]
	end := strings.Index(rest, c.Delimiter)
	if end <= 0 {
		return "", false
	}
	return rest[:end], true
}

func (c *Classifier) skipSpacers(line string) string {
	for {
		trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
		for _, spacer := range c.Spacers {
			if spacer != "" {
				trimmed = strings.TrimPrefix(trimmed, spacer)
			}
		}
		if trimmed == line {
			return line
		}
		line = trimmed
	}
}

func countForKey(key string) domain.OutcomeCount {
	switch key {
	case KeyRollSuccess, KeyCommonSuccess:
		return domain.OutcomeCount{Success: 1}
	case KeyRollFailure, KeyCommonFailure:
		return domain.OutcomeCount{Failure: 1}
	case KeyRollCriticalSuccess:
		return domain.OutcomeCount{Success: 1, CriticalSuccess: 1}
	case KeyRollCriticalFailure:
		return domain.OutcomeCount{Failure: 1, CriticalFailure: 1}
	default:
		return domain.OutcomeCount{}
	}
}

// MessageMeta is what author attribution needs to know about a message
type MessageMeta struct {
	// InteractionUserID is the user that ran the command producing the message
	InteractionUserID string
	Content           string
}

var authorPattern = regexp.MustCompile(`^\s*\*(?:<@!?([0-9A-Za-z_]+)>|@([0-9A-Za-z_]+))\*`)

// ExtractAuthor returns the user a roll message belongs to, preferring the
// interaction originator over the mention header.
func ExtractAuthor(meta MessageMeta) (string, bool) {
	if id := strings.TrimSpace(meta.InteractionUserID); id != "" {
		return id, true
	}
	m := authorPattern.FindStringSubmatch(meta.Content)
	if m == nil {
		return "", false
	}
	if m[1] != "" {
		return m[1], true
	}
	return m[2], true
}

// Mention formats userID the way the renderer header expects it
func Mention(userID string) string {
	return "<@" + userID + ">"
}
