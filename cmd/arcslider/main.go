package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/garrettladley/arcslider/internal/version"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "arcslider",
		Short:   "Circular range sliders in your terminal",
		Version: version.Get(),
		RunE:    runTUI,
	}
	rootCmd.Flags().Bool(examplesFlag, false, "show the built-in example sliders")

	rootCmd.AddCommand(tuiCmd())
	rootCmd.AddCommand(svgCmd())
	rootCmd.AddCommand(configCmd())
	addDevCommands(rootCmd)

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}
