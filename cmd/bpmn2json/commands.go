// MIT License
//
// Copyright (c) 2023 Lack
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/vine-io/bpmn/bpmn"
	"github.com/vine-io/bpmn/converter"
	log "github.com/vine-io/vine/lib/logger"
)

type app struct {
	configPath string
	cfg        *Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "bpmn2json",
		Short:         "Convert BPMN 2.0 documents into editor shapes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", DefaultConfigPath, "path of the configuration file")
	flags.String("log-level", "", "log level (trace, debug, info, warn, error, fatal)")
	flags.Bool("strict", false, "fail on unsupported BPMN elements")
	flags.Int("pool-size", 0, "number of processes converted concurrently")
	flags.Bool("skip-missing", false, "drop nodes without diagram shape")
	flags.Int("indent", 0, "indentation of written XML, 0 for a single line")

	root.AddCommand(a.convertCmd(), a.formatCmd(), a.validateCmd())

	return root
}

// setup loads the configuration, applies the flags on top of it and
// configures the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("strict") {
		cfg.Strict, _ = flags.GetBool("strict")
	}
	if flags.Changed("pool-size") {
		cfg.PoolSize, _ = flags.GetInt("pool-size")
	}
	if flags.Changed("skip-missing") {
		cfg.SkipMissing, _ = flags.GetBool("skip-missing")
	}
	if flags.Changed("indent") {
		cfg.Indent, _ = flags.GetInt("indent")
	}

	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level, err := log.GetLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if err = log.DefaultLogger.Init(log.WithLevel(level)); err != nil {
		return err
	}

	a.cfg = cfg
	return nil
}

func (a *app) parseOptions() []bpmn.ParseOption {
	if a.cfg.Strict {
		return []bpmn.ParseOption{bpmn.WithStrict()}
	}
	return nil
}

func (a *app) load(path string) (*bpmn.Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	d, err := bpmn.FromBytes(data, a.parseOptions()...)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	log.Infof("loaded %s with %d processes", path, len(d.Processes))
	return d, nil
}

func (a *app) convertCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Write the shape JSON of a BPMN document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.load(args[0])
			if err != nil {
				return err
			}

			c, err := converter.New(
				converter.WithPoolSize(a.cfg.PoolSize),
				converter.WithSkipMissing(a.cfg.SkipMissing),
			)
			if err != nil {
				return err
			}
			defer c.Release()

			canvas, err := c.Convert(context.Background(), d)
			if err != nil {
				return fmt.Errorf("convert %s: %w", args[0], err)
			}
			stats := c.Stats()
			log.Infof("converted %d processes into %d shapes, %d skipped", stats.Processes, stats.Shapes, stats.Skipped)

			var data []byte
			if a.cfg.Indent > 0 {
				data, err = json.MarshalIndent(canvas, "", strings.Repeat(" ", a.cfg.Indent))
			} else {
				data, err = json.Marshal(canvas)
			}
			if err != nil {
				return err
			}

			return writeOutput(cmd.OutOrStdout(), output, data)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, stdout when empty")

	return cmd
}

func (a *app) formatCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "format <file>",
		Short: "Re-serialize a BPMN document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.load(args[0])
			if err != nil {
				return err
			}

			data, err := d.WriteToBytes(bpmn.WithIndent(a.cfg.Indent))
			if err != nil {
				return fmt.Errorf("write %s: %w", args[0], err)
			}

			return writeOutput(cmd.OutOrStdout(), output, data)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, stdout when empty")

	return cmd
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a BPMN document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.load(args[0])
			if err != nil {
				return err
			}
			if err = d.Validate(); err != nil {
				return fmt.Errorf("%s is invalid: %w", args[0], err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", args[0])
			return err
		},
	}
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		if _, err := stdout.Write(data); err != nil {
			return err
		}
		_, err := io.WriteString(stdout, "\n")
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.Infof("written to %s", path)
	return nil
}
