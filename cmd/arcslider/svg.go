package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/garrettladley/arcslider/internal/arcpath"
	"github.com/garrettladley/arcslider/internal/config"
	"github.com/garrettladley/arcslider/internal/slider"
)

type svgOptions struct {
	output string
	value1 float64
	value2 float64
	set1   bool
	set2   bool
}

func svgCmd() *cobra.Command {
	var opts svgOptions

	cmd := &cobra.Command{
		Use:   "svg [files...]",
		Short: "Render sliders as SVG",
		Long: "Renders every slider in the given files, or in the configured slider file when none are given.\n" +
			"With one output, -o names the file; with several, -o names a directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.set1 = cmd.Flags().Changed("value1")
			opts.set2 = cmd.Flags().Changed("value2")

			if len(args) == 0 {
				cfg, err := config.Read()
				if err != nil {
					return fmt.Errorf("failed to read config: %w", err)
				}
				args = []string{cfg.ConfigPath}
			}

			docs, err := renderFiles(cmd.Context(), args, opts)
			if err != nil {
				return err
			}
			return writeDocs(cmd.OutOrStdout(), opts.output, docs)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file or directory (default stdout)")
	cmd.Flags().Float64Var(&opts.value1, "value1", 0, "override the value of handle 1")
	cmd.Flags().Float64Var(&opts.value2, "value2", 0, "override the value of handle 2, adding it if missing")

	return cmd
}

type svgDoc struct {
	name string
	body []byte
}

// renderFiles loads and renders every file concurrently. Documents come
// back in argument order, one per slider.
func renderFiles(ctx context.Context, paths []string, opts svgOptions) ([]svgDoc, error) {
	results := make([][]svgDoc, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			docs, err := renderFile(path, opts)
			if err != nil {
				return fmt.Errorf("failed to render %s: %w", path, err)
			}
			results[i] = docs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var docs []svgDoc
	for _, r := range results {
		docs = append(docs, r...)
	}
	return docs, nil
}

func renderFile(path string, opts svgOptions) ([]svgDoc, error) {
	file, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	docs := make([]svgDoc, 0, len(file.Sliders))
	for i, s := range file.Sliders {
		var buf bytes.Buffer
		if err := arcpath.Render(&buf, applyValues(s.ToConfig(), opts)); err != nil {
			return nil, err
		}
		name := base
		if len(file.Sliders) > 1 {
			name = fmt.Sprintf("%s-%d", base, i+1)
		}
		docs = append(docs, svgDoc{name: name + ".svg", body: buf.Bytes()})
	}
	return docs, nil
}

func applyValues(c slider.Config, opts svgOptions) slider.Config {
	if opts.set1 {
		c.Handle1.Value = opts.value1
	}
	if opts.set2 {
		c.Handle2 = &slider.Handle{Value: opts.value2}
	}
	return c
}

func writeDocs(stdout io.Writer, output string, docs []svgDoc) error {
	switch {
	case output == "":
		for _, d := range docs {
			if _, err := stdout.Write(d.body); err != nil {
				return fmt.Errorf("failed to write svg: %w", err)
			}
		}
		return nil
	case len(docs) == 1:
		return writeFile(output, docs[0].body)
	default:
		for _, d := range docs {
			if err := writeFile(filepath.Join(output, d.name), d.body); err != nil {
				return err
			}
		}
		return nil
	}
}

func writeFile(path string, body []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
