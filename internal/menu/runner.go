package menu

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"trio/internal/console"
	"trio/internal/logging"
	"trio/internal/tasks"
)

// Runner drives one menu session over a console.
type Runner struct {
	console *console.Console
	a       tasks.Matrix2x3
	b       tasks.Matrix3x4
}

// NewRunner returns a Runner using a and b as the matrix task operands.
func NewRunner(c *console.Console, a tasks.Matrix2x3, b tasks.Matrix3x4) *Runner {
	return &Runner{console: c, a: a, b: b}
}

// Run prints the menu, reads a choice and runs that one task. An invalid or
// missing choice prints InvalidChoiceMessage and runs nothing; that is not
// an error.
func (r *Runner) Run(ctx context.Context) error {
	log := logging.Get(logging.CategoryMenu)

	r.console.Prompt(Text())
	r.console.Prompt(ChoicePrompt())

	line, err := r.console.ReadLineContext(ctx)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	choice, err := ParseChoice(line)
	if err != nil {
		log.Debug("selection rejected", zap.Error(err))
		logging.Audit(logging.AuditEvent{EventType: logging.AuditSelection, Outcome: "invalid", Err: err})
		r.console.Println(InvalidChoiceMessage)
		return nil
	}

	log.Debug("selection accepted", zap.Stringer("choice", choice))
	logging.Audit(logging.AuditEvent{EventType: logging.AuditSelection, Task: choice.String(), Outcome: "valid"})
	return r.RunChoice(ctx, choice)
}

// RunChoice runs a single task with its prompts.
func (r *Runner) RunChoice(ctx context.Context, choice Choice) error {
	switch choice {
	case ChoiceWord:
		return r.runWord(ctx)
	case ChoiceMatrix:
		return r.runMatrix(ctx)
	case ChoiceDigits:
		return r.runDigits(ctx)
	}
	r.console.Println(InvalidChoiceMessage)
	return fmt.Errorf("%w: %d", ErrInvalidSelection, int(choice))
}

func (r *Runner) runWord(ctx context.Context) error {
	done := logging.AuditTimer(ChoiceWord.String())

	r.console.Prompt(SentencePrompt)
	line, err := r.console.ReadLineContext(ctx)
	if err != nil && !errors.Is(err, io.EOF) {
		logging.AuditFailure(ChoiceWord.String(), err)
		return err
	}

	word, ok := tasks.LongestEvenWord(line)
	done(WordOutcome(word, ok))
	r.console.Println(FormatWord(word, ok))
	return nil
}

func (r *Runner) runMatrix(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	done := logging.AuditTimer(ChoiceMatrix.String())

	product := tasks.Multiply(r.a, r.b)
	done(OutcomeComputed, product.String())
	r.console.Println(FormatMatrix(product))
	return nil
}

func (r *Runner) runDigits(ctx context.Context) error {
	done := logging.AuditTimer(ChoiceDigits.String())

	r.console.Prompt(NumberPrompt)
	n, err := r.console.ReadIntContext(ctx)
	switch {
	case err == nil:
		err = tasks.ValidateUniqueDigits(n)
	case errors.Is(err, console.ErrNotANumber), errors.Is(err, io.EOF):
		// Unreadable input is reported the same way as an out-of-range number.
		logging.Get(logging.CategoryTasks).Debug("number unreadable", zap.Error(err))
		err = tasks.ErrOutOfRange
	default:
		logging.AuditFailure(ChoiceDigits.String(), err)
		return err
	}

	done(DigitsOutcome(err))
	r.console.Println(FormatDigits(err))
	return nil
}
