package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/garrettladley/arcslider/internal/config"
	"github.com/garrettladley/arcslider/internal/xerrors"
	"github.com/garrettladley/arcslider/internal/xslog"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit the slider file",
		Long: "Reads and writes the slider file named by ARCSLIDER_CONFIG. Paths use dotted notation,\n" +
			"for example handle1.value, angleType.axis or sliders.1.arcColor.",
	}

	cmd.AddCommand(configShowCmd())
	cmd.AddCommand(configGetCmd())
	cmd.AddCommand(configSetCmd())
	cmd.AddCommand(configValidateCmd())

	return cmd
}

func configShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the slider file with defaults filled in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Read()
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			file, err := config.Load(cfg.ConfigPath)
			if err != nil {
				return err
			}

			f, err := config.FormatOf(cfg.ConfigPath)
			if format != "" {
				f, err = config.ParseFormat(format)
			}
			if err != nil {
				return err
			}

			b, err := file.Encode(f)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "output format: toml or json (default: the file's own)")
	return cmd
}

func configGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <path>",
		Short: "Print the value stored at a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Read()
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			doc, err := config.ReadDocument(cfg.ConfigPath)
			if err != nil {
				return err
			}

			r, ok := doc.Get(args[0])
			if !ok {
				return xerrors.NotFound(xerrors.WithMessage(fmt.Sprintf("nothing stored at %q", args[0])))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), r.String())
			return err
		},
	}
}

func configSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <path> <value>",
		Short: "Store a value at a path",
		Long:  "Stores value at path, creating the slider file if needed. Numbers and true/false are stored as such.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Read()
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			doc, err := config.ReadDocument(cfg.ConfigPath)
			if err != nil {
				return err
			}
			if err := doc.Set(args[0], args[1]); err != nil {
				return err
			}
			return doc.WriteFile(cfg.ConfigPath)
		},
	}
}

func configValidateCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the slider file",
		Long: "Loads the slider file and reports every field that would be corrected before use.\n" +
			"Corrections are warnings unless --strict is set.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Read()
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			ctx := xslog.WithLogger(cmd.Context(), xslog.NewLogger(os.Stderr, cfg.LogLevel))
			ctx = xslog.WithAttrs(ctx, xslog.Path(cfg.ConfigPath))
			logger := xslog.FromContext(ctx)

			file, err := config.Load(cfg.ConfigPath)
			if err != nil {
				xerrors.Log(ctx, err)
				return err
			}

			if err := file.ValidateStrict(); err != nil {
				if strict {
					xerrors.Log(ctx, err)
					return err
				}
				for field, reason := range xerrors.As(err).Validation.Fields {
					logger.WarnContext(ctx, "field will be corrected", xslog.Field(field), slog.String("reason", reason))
				}
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d slider(s) ok\n", cfg.ConfigPath, len(file.Sliders))
			return err
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any field needs correcting")
	return cmd
}
