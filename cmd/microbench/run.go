package main

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agucova/microbench"
)

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

var runCmd = &cobra.Command{
	Use:   "run [flags] -- command [args...]",
	Short: "Benchmark an external command",
	Long: `Run executes the given command repeatedly and reports timing
statistics. A non-zero exit status drops that sample and reduces the
success count, but does not stop the run.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		op := &commandOperation{name: args[0], args: args[1:]}
		label := strings.Join(args, " ")

		var report bytes.Buffer
		_, err := microbench.Benchmark(label, op,
			microbench.WithLoops(viper.GetInt("loops")),
			microbench.WithIterations(viper.GetInt("iterations")),
			microbench.WithPrecision(viper.GetInt("precision")),
			microbench.WithOutput(&report),
		)
		if err != nil {
			return fmt.Errorf("benchmark failed: %w", err)
		}

		out := cmd.OutOrStdout()
		for _, line := range strings.Split(strings.TrimRight(report.String(), "\n"), "\n") {
			switch {
			case strings.HasPrefix(line, "benchmark:"):
				fmt.Fprintln(out, headerStyle.Render(line))
			case strings.Contains(line, "warning:"):
				fmt.Fprintln(out, warningStyle.Render(line))
			default:
				fmt.Fprintln(out, line)
			}
		}
		return nil
	},
}

func init() {
	runCmd.Flags().IntP("loops", "l", 0, "Timed invocations per iteration (0 = derive automatically)")
	runCmd.Flags().IntP("iterations", "i", 7, "Independent measurement passes")
	runCmd.Flags().IntP("precision", "p", 3, "Fractional digits in reported durations")

	viper.BindPFlag("loops", runCmd.Flags().Lookup("loops"))
	viper.BindPFlag("iterations", runCmd.Flags().Lookup("iterations"))
	viper.BindPFlag("precision", runCmd.Flags().Lookup("precision"))

	rootCmd.AddCommand(runCmd)
}

// commandOperation runs one external command per invocation. Command
// output is discarded so terminal I/O does not dominate the measurement.
type commandOperation struct {
	name string
	args []string
}

// Execute implements microbench.Operation.
func (c *commandOperation) Execute() error {
	cmd := exec.Command(c.name, c.args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run()
}
