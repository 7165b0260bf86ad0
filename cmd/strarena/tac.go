package main

import (
	"bufio"

	"github.com/spf13/cobra"
)

func newTacCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tac [file...]",
		Short: "Print input lines in reverse order",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := opts.newArena()
			if _, err := opts.loadLines(cmd, args, s); err != nil {
				return err
			}

			out := bufio.NewWriter(cmd.OutOrStdout())
			it := s.Iter()
			for line, ok := it.NextBack(); ok; line, ok = it.NextBack() {
				_, _ = out.Write(line)
				_ = out.WriteByte('\n')
			}
			return out.Flush()
		},
	}
}
