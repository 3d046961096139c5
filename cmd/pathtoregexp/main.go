package main

import (
	"fmt"
	"os"

	"github.com/dunglas/go-pathtoregexp"
	"github.com/spf13/cobra"
)

var (
	flagSensitive bool
	flagStrict    bool
	flagEnd       bool
	flagStart     bool
	flagDelimiter string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pathtoregexp",
		Short: "Inspect and exercise path patterns",
		Long: `pathtoregexp compiles route templates such as /user/:id and exposes the
resulting regular expression, matcher and path builder from the command
line. The printed source and flags are the exact artifact a pattern
safety scanner consumes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&flagSensitive, "sensitive", false, "case-sensitive matching")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "disallow the optional trailing delimiter")
	rootCmd.PersistentFlags().BoolVar(&flagEnd, "end", true, "anchor the match at the end of the path")
	rootCmd.PersistentFlags().BoolVar(&flagStart, "start", true, "anchor the match at the start of the path")
	rootCmd.PersistentFlags().StringVar(&flagDelimiter, "delimiter", "/", "segment delimiter")

	rootCmd.AddCommand(
		inspectCmd(),
		matchCmd(),
		buildCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// patternOptions translates the shared flags into library options.
func patternOptions() []pathtoregexp.Option {
	opts := []pathtoregexp.Option{
		pathtoregexp.WithEnd(flagEnd),
		pathtoregexp.WithStart(flagStart),
		pathtoregexp.WithDelimiter(flagDelimiter),
	}

	if flagSensitive {
		opts = append(opts, pathtoregexp.WithSensitive())
	}
	if flagStrict {
		opts = append(opts, pathtoregexp.WithStrict())
	}

	return opts
}
