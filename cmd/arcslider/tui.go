package main

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/garrettladley/arcslider/internal/config"
	"github.com/garrettladley/arcslider/internal/tui"
	"github.com/garrettladley/arcslider/internal/xslog"
)

const examplesFlag = "examples"

func tuiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive sliders",
		Long:  "Opens a full-screen view of the configured sliders. Drag knobs with the mouse or step them with the arrow keys.",
		RunE:  runTUI,
	}
	cmd.Flags().Bool(examplesFlag, false, "show the built-in example sliders")
	return cmd
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Read()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	examples, err := cmd.Flags().GetBool(examplesFlag)
	if err != nil {
		return err
	}

	file := config.Examples()
	if !examples && !cfg.Examples {
		if file, err = config.Load(cfg.ConfigPath); err != nil {
			return fmt.Errorf("failed to load sliders: %w", err)
		}
	}

	logger, closer, err := xslog.NewFileLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	logger.Info("starting tui", xslog.Version(), xslog.Path(cfg.ConfigPath), xslog.Count(len(file.Sliders)))

	sliders := make([]tui.Slider, len(file.Sliders))
	for i, s := range file.Sliders {
		sliders[i] = tui.Slider{Label: s.Label, Config: s.ToConfig()}
	}

	model := tui.New(tui.Deps{Logger: logger, Sliders: sliders})
	p := tea.NewProgram(&model)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return nil
}
