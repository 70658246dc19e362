package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gitlab.com/d21d3q/gobookoo/pkg/bookoo"
)

type encodeFlags struct {
	timer     float64
	weight    float64
	flowRate  float64
	battery   int
	unit      int
	standby   int
	buzzer    int
	smoothing int
}

func newEncodeCmd(a *app) *cobra.Command {
	encodeCmd := &cobra.Command{
		Use:   "encode",
		Short: "Build a notification frame from field values",
	}
	encodeCmd.AddCommand(
		newEncodeFormatCmd(a, "mini", "Build a checksummed Mini frame", bookoo.EncodeMini),
		newEncodeFormatCmd(a, "ultra", "Build an Ultra frame", bookoo.EncodeUltra),
	)
	return encodeCmd
}

func newEncodeFormatCmd(a *app, name, short string, encode func(*bookoo.Message) ([]byte, error)) *cobra.Command {
	var f encodeFlags
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			msg := f.message(cmd)
			raw, err := encode(msg)
			if err != nil {
				return err
			}
			a.log.WithField("format", name).Debug("encoded frame")
			fmt.Fprintln(a.out, strings.ToUpper(hex.EncodeToString(raw)))
			return nil
		},
	}
	flags := cmd.Flags()
	flags.Float64Var(&f.weight, "weight", 0, "weight in grams")
	flags.IntVar(&f.battery, "battery", 0, "battery percent")
	flags.IntVar(&f.standby, "standby", 0, "standby time")
	flags.IntVar(&f.buzzer, "buzzer", 0, "buzzer gear")
	if name == "mini" {
		flags.Float64Var(&f.timer, "timer", 0, "timer in seconds")
		flags.Float64Var(&f.flowRate, "flow-rate", 0, "flow rate in grams per second")
		flags.IntVar(&f.unit, "unit", 0, "unit code")
		flags.IntVar(&f.smoothing, "smoothing", 0, "flow rate smoothing")
	}
	return cmd
}

func (f encodeFlags) message(cmd *cobra.Command) *bookoo.Message {
	changed := cmd.Flags().Changed
	msg := &bookoo.Message{}
	if changed("timer") {
		msg.Timer = &f.timer
	}
	if changed("weight") {
		msg.Weight = &f.weight
	}
	if changed("flow-rate") {
		msg.FlowRate = &f.flowRate
	}
	if changed("battery") {
		msg.Battery = &f.battery
	}
	if changed("unit") {
		msg.Unit = &f.unit
	}
	if changed("standby") {
		msg.StandbyTime = &f.standby
	}
	if changed("buzzer") {
		msg.BuzzerGear = &f.buzzer
	}
	if changed("smoothing") {
		msg.FlowRateSmoothing = &f.smoothing
	}
	return msg
}
