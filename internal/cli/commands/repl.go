package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/leapstack-labs/leaplogic/internal/cli/config"
	"github.com/leapstack-labs/leaplogic/internal/logic"
	"github.com/leapstack-labs/leaplogic/internal/render"
	"github.com/leapstack-labs/leaplogic/internal/truthtable"
)

var (
	replTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	replMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	replErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// replSession holds the per-session render settings that dot-commands
// can change.
type replSession struct {
	tableOpts  truthtable.Options
	renderOpts render.Options
}

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive truth-table session",
		Long: `Start an interactive session. Each entered expression is parsed and
its truth table printed; dot-commands adjust the session:

  .mode <name>   Switch output format (human|latex|markdown|csv|json)
  .bool <f>,<t>  Change the boolean display strings
  .help          Show help
  .quit / .exit  Leave the session`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd)
		},
	}
}

func runREPL(cmd *cobra.Command) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("repl requires an interactive terminal; pipe expressions to the table command instead")
	}

	cfg := config.GetCurrentConfig()
	renderOpts, err := cfg.RenderOptions()
	if err != nil {
		return err
	}
	session := &replSession{
		tableOpts:  cfg.TableOptions(),
		renderOpts: renderOpts,
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "leaplogic> ",
		HistoryFile:     historyFilePath(),
		AutoComplete:    newREPLCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, replTitleStyle.Render("LeapLogic Truth Table REPL"))
	_, _ = fmt.Fprintln(out, replMutedStyle.Render("Type an expression, .help for commands, .quit to exit"))
	_, _ = fmt.Fprintln(out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if quit := handleDotCommand(cmd, session, line); quit {
				break
			}
			continue
		}

		if err := evalAndRender(out, session, line); err != nil {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), replErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
		_, _ = fmt.Fprintln(out)
	}

	return nil
}

func evalAndRender(w io.Writer, session *replSession, expr string) error {
	stmt, err := logic.Parse(expr)
	if err != nil {
		return err
	}
	tbl, err := truthtable.Build([]*logic.Statement{stmt}, session.tableOpts)
	if err != nil {
		return err
	}
	return render.Render(w, tbl, session.renderOpts)
}

func handleDotCommand(cmd *cobra.Command, session *replSession, line string) (quit bool) {
	out := cmd.OutOrStdout()
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(out)

	case ".mode":
		if len(parts) < 2 {
			_, _ = fmt.Fprintf(out, "Current mode: %s (usage: .mode <name>)\n", session.renderOpts.Mode)
			return false
		}
		mode, err := render.ParseMode(parts[1])
		if err != nil {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), replErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
			return false
		}
		session.renderOpts.Mode = mode

	case ".bool":
		if len(parts) < 2 {
			_, _ = fmt.Fprintf(out, "Current bool display: %s,%s (usage: .bool <false>,<true>)\n",
				session.renderOpts.FalseStr, session.renderOpts.TrueStr)
			return false
		}
		falseStr, trueStr, err := render.ParseBoolPair(parts[1])
		if err != nil {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), replErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
			return false
		}
		session.renderOpts.FalseStr, session.renderOpts.TrueStr = falseStr, trueStr

	case ".clear":
		fmt.Print("\033[H\033[2J")

	default:
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help           Show this help message
  .mode <name>    Switch output format (human|latex|markdown|csv|json)
  .bool <f>,<t>   Change boolean display strings (e.g. .bool 0,1)
  .clear          Clear the screen
  .quit / .exit   Exit the REPL

Expressions:
  Variables are single uppercase letters (A-Z).
  Operators: not, and, or, => (impl), <=> (eq); plus true/false.
  Use parentheses when chaining operators of the same kind.
`
	_, _ = fmt.Fprintln(w, help)
}

// historyFilePath returns the per-user history location, or empty if
// no home directory is available (readline then keeps history only in
// memory).
func historyFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".leaplogic_history")
}

// newREPLCompleter creates a readline completer for dot-commands and
// expression keywords.
func newREPLCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".mode",
			readline.PcItem("human"),
			readline.PcItem("latex"),
			readline.PcItem("markdown"),
			readline.PcItem("csv"),
			readline.PcItem("json"),
		),
		readline.PcItem(".bool"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
		readline.PcItem("not"),
		readline.PcItem("and"),
		readline.PcItem("or"),
		readline.PcItem("true"),
		readline.PcItem("false"),
	)
}
