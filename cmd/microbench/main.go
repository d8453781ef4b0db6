package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "microbench",
	Short: "Wall-clock micro-benchmarks for shell commands",
	Long: `microbench times an operation over repeated loops and iterations and
reports mean, standard deviation, best/worst samples, and a cache-skew
warning when the spread between samples is suspiciously large.`,
	SilenceUsage: true,
}

func init() {
	viper.SetEnvPrefix("MICROBENCH")
	viper.AutomaticEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
