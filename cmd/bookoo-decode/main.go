package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gitlab.com/d21d3q/gobookoo/pkg/bookoo"
)

var errPassthrough = errors.New("frame not decoded")

type app struct {
	in  io.Reader
	out io.Writer
	log *logrus.Logger
	cfg config

	configPath string
	logLevel   string
	output     string
	strict     bool
}

func newRootCmd(in io.Reader, out io.Writer, log *logrus.Logger) *cobra.Command {
	a := &app{in: in, out: out, log: log}
	rootCmd := &cobra.Command{
		Use:   "bookoo-decode [hex]",
		Short: "Decode Bookoo scale notification frames",
		Long:  "bookoo-decode decodes 20-byte Bookoo Mini and Ultra weight notifications given as hex.",
		Args:  cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.runInteractive(cmd.Context())
			}
			return a.runDecode(args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a TOML config file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&a.output, "output", "", "output format: json or text")
	flags.BoolVar(&a.strict, "strict", false, "fail when a frame is not decoded")

	rootCmd.AddCommand(newEncodeCmd(a))
	return rootCmd
}

func (a *app) configure(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		lvl, err := logrus.ParseLevel(a.logLevel)
		if err != nil {
			return fmt.Errorf("parse --log-level: %w", err)
		}
		cfg.LogLevel = lvl
	}
	if flags.Changed("output") {
		cfg.Output = strings.ToLower(a.output)
	}
	if flags.Changed("strict") {
		cfg.Strict = a.strict
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.log.SetLevel(cfg.LogLevel)
	return nil
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	ctx := context.Background()
	if err := newRootCmd(os.Stdin, os.Stdout, log).ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}

func (a *app) runInteractive(ctx context.Context) error {
	scanner := bufio.NewScanner(a.in)
	a.log.Info("bookoo decode mode. Paste a hex frame and press Enter (Ctrl+D to exit).")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(a.out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := a.runDecode(line); err != nil {
			a.log.WithError(err).Error("failed to decode frame")
		}
	}
	return scanner.Err()
}

func (a *app) runDecode(hex string) error {
	result, err := bookoo.DecodeHex(hex, bookoo.DecodeOptions{Logger: a.log})
	if err != nil {
		return err
	}
	switch a.cfg.Output {
	case outputText:
		fmt.Fprintln(a.out, formatText(result))
	default:
		fmt.Fprintln(a.out, result.String())
	}
	if a.cfg.Strict && !result.Decoded() {
		return fmt.Errorf("%w: format %s", errPassthrough, result.Format)
	}
	return nil
}

func formatText(r bookoo.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "format=%s", r.Format)
	fields := r.Message.Fields()
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	if !r.Decoded() {
		fmt.Fprintf(&b, " passthrough=%s", r.RawHex)
	}
	if r.SoftError != nil {
		fmt.Fprintf(&b, " error=%q", r.SoftError.Error())
	}
	return b.String()
}
