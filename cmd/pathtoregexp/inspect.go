package main

import (
	"fmt"

	"github.com/dunglas/go-pathtoregexp"
	"github.com/spf13/cobra"
)

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <pattern>",
		Short: "Print the compiled regular expression and keys of a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			compiled, err := pathtoregexp.Compile(args[0], patternOptions()...)
			if err != nil {
				return err
			}

			fmt.Printf("source: %s\n", compiled.Source)
			fmt.Printf("flags:  %s\n", compiled.Flags)

			for i, key := range compiled.Keys {
				if key.Pattern == "" {
					fmt.Printf("key %d:  %s\n", i, key.Name)
				} else {
					fmt.Printf("key %d:  %s (%s)\n", i, key.Name, key.Pattern)
				}
			}

			return nil
		},
	}
}
