package main

import (
	"encoding/json"
	"fmt"

	"github.com/dunglas/go-pathtoregexp"
	"github.com/spf13/cobra"
)

func matchCmd() *cobra.Command {
	var decodeURI bool

	cmd := &cobra.Command{
		Use:   "match <pattern> <path>",
		Short: "Match a path against a pattern and print the extracted parameters",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := patternOptions()
			if decodeURI {
				opts = append(opts, pathtoregexp.WithDecode(pathtoregexp.DecodeURIComponent))
			}

			match, err := pathtoregexp.NewMatcher(args[0], opts...)
			if err != nil {
				return err
			}

			result, ok := match(args[1])
			if !ok {
				return fmt.Errorf("%q does not match %q", args[1], args[0])
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}

			fmt.Println(string(out))

			return nil
		},
	}

	cmd.Flags().BoolVar(&decodeURI, "decode-uri", false, "percent-decode captured values")

	return cmd
}
