package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wundergraph/go-strarena/internal/logger"
)

func newStatsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file...]",
		Short: "Load input lines into an arena and report its size",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := opts.newArena()
			lines, err := opts.loadLines(cmd, args, s)
			if err != nil {
				return err
			}

			longest := 0
			for _, b := range s.All() {
				longest = max(longest, len(b))
			}
			peakBytes, peakStrings := s.Peak()

			logger.L.Info("arena stats",
				zap.Int("strings", s.Len()),
				zap.Int("bytes", s.Size()),
				zap.Int("capacity", s.Cap()),
				zap.Int("peak_bytes", peakBytes),
				zap.Int("peak_strings", peakStrings),
				zap.Int("longest", longest),
			)

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "strings=%d bytes=%d capacity=%d longest=%d\n",
				lines, s.Size(), s.Cap(), longest)
			return err
		},
	}
}
