package dice

import (
	"context"
	"errors"
	"log/slog"

	"github.com/osse101/DiceBot_Go/internal/domain"
	"github.com/osse101/DiceBot_Go/internal/logger"
	"github.com/osse101/DiceBot_Go/internal/metrics"
	"github.com/osse101/DiceBot_Go/internal/random"
)

// Evaluation is an evaluated roll together with what was known about it up front
type Evaluation struct {
	Expression domain.DiceExpression
	Result     domain.RollResult
	// Trivial is true when the comparison outcome did not depend on the dice
	Trivial bool
}

// Evaluator rolls expressions with a configured parser and source, logging and
// counting every roll.
type Evaluator struct {
	parser *Parser
	src    random.Source
}

// NewEvaluator creates an Evaluator. A nil parser uses the default limits and a
// nil src the crypto source.
func NewEvaluator(parser *Parser, src random.Source) *Evaluator {
	if parser == nil {
		parser = defaultParser
	}
	if src == nil {
		src = random.NewCryptoSource()
	}
	return &Evaluator{parser: parser, src: src}
}

// Parser returns the parser used by the evaluator
func (e *Evaluator) Parser() *Parser {
	return e.parser
}

// Evaluate parses and rolls expression
func (e *Evaluator) Evaluate(ctx context.Context, expression string) (*Evaluation, error) {
	log := logger.FromContext(ctx)

	expr, err := e.parser.Parse(expression)
	if err != nil {
		metrics.ParseErrors.Inc()
		log.Debug(LogMsgParseFailed, "expression", expression, "error", err)
		return nil, err
	}

	result, err := Roll(expr, e.src)
	if err != nil {
		if errors.Is(err, domain.ErrEntropyUnavailable) {
			metrics.EntropyFailures.Inc()
			log.Error(LogMsgEntropyFailed, "expression", expression, "error", err)
		}
		return nil, err
	}

	trivial := IsTrivial(expr)
	metrics.RecordRoll(result)
	if trivial {
		metrics.TrivialRolls.Inc()
	}

	log.Debug(LogMsgRollEvaluated,
		slog.String("expression", result.Expression),
		slog.Any("dice", result.Dice),
		slog.Int("modifier", result.Modifier),
		slog.Int("total", result.Total),
		slog.String("outcome", string(result.Outcome)),
		slog.String("critical", string(result.Critical)),
		slog.Bool("trivial", trivial),
	)

	return &Evaluation{Expression: expr, Result: result, Trivial: trivial}, nil
}
