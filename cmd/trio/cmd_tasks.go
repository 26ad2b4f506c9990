package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trio/internal/console"
	"trio/internal/logging"
	"trio/internal/menu"
	"trio/internal/tasks"
)

var (
	plainTasks bool
)

// wordCmd runs the longest even-length word task
var wordCmd = &cobra.Command{
	Use:   "word [sentence...]",
	Short: "Print the longest even-length word of a sentence",
	Long: `Splits the sentence on spaces and tabs and prints the longest word whose
length is even. Among equally long words the first one wins.
Without arguments the sentence is read from standard input.

Example:
  trio word cat dog elephant at`,
	RunE: runWord,
}

// matrixCmd runs the matrix product task
var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Multiply the configured 2x3 and 3x4 matrices",
	Args:  cobra.NoArgs,
	RunE:  runMatrix,
}

// digitsCmd runs the unique digit check
var digitsCmd = &cobra.Command{
	Use:   "digits [number]",
	Short: "Check that a 4-digit number has no repeated digits",
	Long: `Accepts a number between 1000 and 9999 whose four digits are all different.
Without an argument the number is read from standard input. Negative
numbers are accepted as arguments and reported as out of range.

Example:
  trio digits 1234`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDigits,
}

// tasksCmd lists the available tasks
var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List the available tasks",
	Args:  cobra.NoArgs,
	RunE:  listTasks,
}

func init() {
	tasksCmd.Flags().BoolVar(&plainTasks, "plain", false, "Print markdown without terminal styling")
}

func runWord(cmd *cobra.Command, args []string) error {
	c := currentConfig()
	con := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), c.Input.MaxSentenceLength)

	var sentence string
	if len(args) > 0 {
		sentence = strings.Join(args, " ")
	} else {
		con.Prompt(menu.SentencePrompt)
		line, err := con.ReadLineContext(commandContext(cmd))
		if err != nil && !errors.Is(err, io.EOF) {
			logging.AuditFailure(menu.ChoiceWord.String(), err)
			return err
		}
		sentence = line
	}

	done := logging.AuditTimer(menu.ChoiceWord.String())
	word, ok := tasks.LongestEvenWord(sentence)
	done(menu.WordOutcome(word, ok))

	con.Println(menu.FormatWord(word, ok))
	return nil
}

func runMatrix(cmd *cobra.Command, args []string) error {
	a, b, err := currentConfig().Matrix.Operands()
	if err != nil {
		return err
	}

	done := logging.AuditTimer(menu.ChoiceMatrix.String())
	product := tasks.Multiply(a, b)
	done(menu.OutcomeComputed, product.String())

	fmt.Fprintln(cmd.OutOrStdout(), menu.FormatMatrix(product))
	return nil
}

func runDigits(cmd *cobra.Command, args []string) error {
	con := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), 0)

	var (
		n   int
		err error
	)
	if len(args) == 1 {
		n, err = console.ParseLeadingInt(args[0])
	} else {
		con.Prompt(menu.NumberPrompt)
		n, err = con.ReadIntContext(commandContext(cmd))
	}

	done := logging.AuditTimer(menu.ChoiceDigits.String())
	if err != nil {
		if !errors.Is(err, io.EOF) && !errors.Is(err, console.ErrNotANumber) {
			logging.AuditFailure(menu.ChoiceDigits.String(), err)
			return err
		}
		logger.Debug("number unreadable", zap.Error(err))
		err = tasks.ErrOutOfRange
	} else {
		err = tasks.ValidateUniqueDigits(n)
	}
	done(menu.DigitsOutcome(err))

	con.Println(menu.FormatDigits(err))
	return nil
}

// tasksMarkdown describes the menu as a markdown list.
func tasksMarkdown() string {
	var sb strings.Builder
	sb.WriteString("# trio tasks\n\n")
	for _, it := range menu.Items {
		fmt.Fprintf(&sb, "%d. **%s** (`trio %s`): %s\n", int(it.Choice), it.Title, it.Name, it.Description)
	}
	return sb.String()
}

func listTasks(cmd *cobra.Command, args []string) error {
	md := tasksMarkdown()
	if plainTasks {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render task list: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
