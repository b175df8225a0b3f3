//go:build !release

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/garrettladley/arcslider/internal/angle"
	"github.com/garrettladley/arcslider/internal/config"
	"github.com/garrettladley/arcslider/internal/slider"
)

func probeCmd() *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   "probe <x> <y>",
		Short: "Show what a pointer at x,y would hit",
		Long:  "Prints the pointer angle, the value under it and the handle a press there would drive, in the slider's own pixel space.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid x: %w", err)
			}
			y, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid y: %w", err)
			}

			cfg, err := config.Read()
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}
			file, err := config.Load(cfg.ConfigPath)
			if err != nil {
				return err
			}
			if index < 0 || index >= len(file.Sliders) {
				return fmt.Errorf("slider %d out of range (file has %d)", index, len(file.Sliders))
			}

			c, _ := slider.Normalize(file.Sliders[index].ToConfig())
			l := slider.NewLayout(c, angle.Point{})
			p := angle.Point{X: x, Y: y}

			out := cmd.OutOrStdout()
			deg, ok := angle.PointerAngle(p, l.Center, c.AngleType)
			if !ok {
				_, err := fmt.Fprintln(out, "pointer is on the centre; angle undefined")
				return err
			}

			handle := slider.Resolve(deg, slider.HandleAngles(c), slider.NoHandle, c.Disabled)
			name, hit := "none", false
			if handle != slider.NoHandle {
				name = strconv.Itoa(handle + 1)
				hit = p.Dist(l.Knob(c.Handle(handle).Value, c)) <= l.HandleSize
			}

			_, err = fmt.Fprintf(out, "angle: %.3f° (%s)\nvalue: %g\nhandle: %s\nhit: %v\n",
				deg, c.AngleType, slider.AngleToValue(deg, c), name, hit)
			return err
		},
	}

	cmd.Flags().IntVar(&index, "slider", 0, "index of the slider in the file")
	return cmd
}
