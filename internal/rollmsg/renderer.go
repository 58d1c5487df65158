package rollmsg

import (
	"strconv"
	"strings"

	"github.com/osse101/DiceBot_Go/internal/domain"
)

// Roll pairs a result with the expression text shown to the user
type Roll struct {
	Result     domain.RollResult
	Expression string
}

// Renderer formats roll results as chat messages
type Renderer struct {
	translator Translator
	delimiter  string
}

// NewRenderer creates a Renderer that labels outcomes through t
func NewRenderer(t Translator) *Renderer {
	return &Renderer{translator: t, delimiter: DefaultDelimiter}
}

// Render formats a single roll:
//
//	*<author>*
//	 **<status>** — <expression> ⟶ [<dice>] = [<total>] <op> <threshold>
//
// Rolls without a comparison omit the status and the comparison.
func (r *Renderer) Render(result domain.RollResult, expressionText, authorMention string) string {
	return r.RenderAll([]Roll{{Result: result, Expression: expressionText}}, authorMention)
}

// RenderAll formats several rolls under one author header, one line per roll
func (r *Renderer) RenderAll(rolls []Roll, authorMention string) string {
	var sb strings.Builder
	sb.WriteString("*")
	sb.WriteString(authorMention)
	sb.WriteString("*")
	for _, roll := range rolls {
		sb.WriteString("\n ")
		r.writeLine(&sb, roll)
	}
	return sb.String()
}

func (r *Renderer) writeLine(sb *strings.Builder, roll Roll) {
	res := roll.Result
	if res.HasComparison() {
		sb.WriteString(r.delimiter)
		sb.WriteString(r.statusLabel(res))
		sb.WriteString(r.delimiter)
		sb.WriteString(" " + Dash + " ")
	}

	sb.WriteString(roll.Expression)
	sb.WriteString(" " + Arrow + " [")
	for i, v := range res.Dice {
		if i > 0 {
			sb.WriteString(DiceSeparator)
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteString("] = [")
	sb.WriteString(strconv.Itoa(res.Total))
	sb.WriteString("]")

	if res.HasComparison() {
		sb.WriteString(" ")
		sb.WriteString(res.Comparison.String())
	}
}

// statusLabel translates the most specific key available for the outcome
func (r *Renderer) statusLabel(res domain.RollResult) string {
	for _, key := range StatusKeys(res) {
		if label := r.translator.Translate(key); label != "" {
			return label
		}
	}
	return StatusKeys(res)[0]
}

// StatusKeys lists the status keys for a compared result, most specific first
func StatusKeys(res domain.RollResult) []string {
	if res.Outcome == domain.OutcomeSuccess {
		if res.Critical == domain.CriticalSuccess {
			return []string{KeyRollCriticalSuccess, KeyRollSuccess, KeyCommonSuccess}
		}
		return []string{KeyRollSuccess, KeyCommonSuccess}
	}
	if res.Critical == domain.CriticalFailure {
		return []string{KeyRollCriticalFailure, KeyRollFailure, KeyCommonFailure}
	}
	return []string{KeyRollFailure, KeyCommonFailure}
}
