package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wundergraph/go-strarena"
	"github.com/wundergraph/go-strarena/internal/config"
	"github.com/wundergraph/go-strarena/internal/logger"
)

type options struct {
	configPath string
	logLevel   string
	cfg        *config.Config
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "strarena",
		Short:         "Load text into a string arena and play it back",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if opts.logLevel != "" {
				cfg.LogLevel = opts.logLevel
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			opts.cfg = cfg
			return logger.Init(cfg.LogLevel)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(newTacCommand(opts))
	rootCmd.AddCommand(newCatCommand(opts))
	rootCmd.AddCommand(newStatsCommand(opts))

	return rootCmd
}

func (o *options) newArena() *strarena.StringArena {
	return strarena.WithCapacity(o.cfg.Arena.Bytes, o.cfg.Arena.Strings)
}

func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if stat.IsDir() {
		f.Close()
		return nil, fmt.Errorf("'%s' is a directory, please provide a file", path)
	}
	return f, nil
}

// forEachInput calls fn for every file in paths, or once for stdin when paths is empty.
func forEachInput(cmd *cobra.Command, paths []string, fn func(name string, r io.Reader) error) error {
	if len(paths) == 0 {
		return fn("-", cmd.InOrStdin())
	}
	for _, path := range paths {
		f, err := openFile(path)
		if err != nil {
			return err
		}
		err = fn(path, f)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// loadLines pushes every line of every input into s, one string per line, and
// returns the number of lines read.
func (o *options) loadLines(cmd *cobra.Command, paths []string, s *strarena.StringArena) (int, error) {
	total := 0
	err := forEachInput(cmd, paths, func(name string, r io.Reader) error {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, min(64*1024, o.cfg.MaxLineBytes)), o.cfg.MaxLineBytes)
		lines := 0
		for sc.Scan() {
			w := s.Writer()
			_, _ = w.Write(sc.Bytes())
			w.Finish()
			lines++
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}
		logger.L.Debug("loaded input", zap.String("input", name), zap.Int("lines", lines))
		total += lines
		return nil
	})
	return total, err
}
