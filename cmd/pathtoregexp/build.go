package main

import (
	"fmt"
	"strings"

	"github.com/dunglas/go-pathtoregexp"
	"github.com/spf13/cobra"
)

func buildCmd() *cobra.Command {
	var encodeURI bool

	cmd := &cobra.Command{
		Use:   "build <pattern> [key=value]...",
		Short: "Render a concrete path from parameter values",
		Long: `Render a concrete path from parameter values. Repeat a key to supply the
value list of a repeated parameter:

  pathtoregexp build "{/:segment}+" segment=a segment=b`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := pathtoregexp.Values{}
			for _, arg := range args[1:] {
				key, value, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("invalid argument %q, expected key=value", arg)
				}

				switch existing := values[key].(type) {
				case nil:
					values[key] = value
				case string:
					values[key] = []string{existing, value}
				case []string:
					values[key] = append(existing, value)
				}
			}

			opts := patternOptions()
			if encodeURI {
				opts = append(opts, pathtoregexp.WithEncode(pathtoregexp.EncodeURIComponent))
			}

			build, err := pathtoregexp.NewBuilder(args[0], opts...)
			if err != nil {
				return err
			}

			path, err := build(values)
			if err != nil {
				return err
			}

			fmt.Println(path)

			return nil
		},
	}

	cmd.Flags().BoolVar(&encodeURI, "encode-uri", false, "percent-encode parameter values")

	return cmd
}
