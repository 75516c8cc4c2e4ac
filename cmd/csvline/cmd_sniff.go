package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shapestone/csvline/internal/input"
	"github.com/shapestone/csvline/pkg/csv"
)

func newSniffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sniff <file>",
		Short: "Guess the delimiter and whether the first row is a header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := input.ReadFile(args[0])
			if err != nil {
				return err
			}
			if len(data) > sniffSample {
				data = data[:sniffSample]
			}

			sniffer := csv.NewSniffer(data)
			fmt.Fprintf(cmd.OutOrStdout(), "delimiter: %q\nheader: %t\n", sniffer.DetectDelimiter(), sniffer.HasHeader())
			return nil
		},
	}
}
