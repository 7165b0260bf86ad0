package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wundergraph/go-strarena/internal/logger"
)

func newCatCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "cat [file...]",
		Short: "Read each input whole into the arena, then print them in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := opts.newArena()
			err := forEachInput(cmd, args, func(name string, r io.Reader) error {
				idx, err := s.Consume(r)
				if err != nil {
					return fmt.Errorf("reading %s: %w", name, err)
				}
				logger.L.Debug("consumed input",
					zap.String("input", name),
					zap.Int("index", idx),
					zap.Int("bytes", len(s.Index(idx))),
				)
				return nil
			})
			if err != nil {
				return err
			}

			out := bufio.NewWriter(cmd.OutOrStdout())
			for _, b := range s.All() {
				_, _ = out.Write(b)
			}
			return out.Flush()
		},
	}
}
