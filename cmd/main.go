package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/AndrivA89/canvas-editor/internal/config"
	"github.com/AndrivA89/canvas-editor/internal/repository"
	"github.com/AndrivA89/canvas-editor/internal/ui"
	"github.com/AndrivA89/canvas-editor/internal/usecase"
)

var bad = color.New(color.FgRed)

type options struct {
	configPath string
	ids        string
	dangling   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		bad.Fprintf(os.Stderr, "canvas-editor: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "canvas-editor",
		Short:         "Diagram editor for shapes and database schemas",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a TOML config file")
	root.PersistentFlags().StringVar(&opts.ids, "ids", "", "Id strategy: counter or uuid")
	root.PersistentFlags().StringVar(&opts.dangling, "dangling", "", "Edges of removed nodes: keep or cascade")

	for _, page := range []usecase.Page{usecase.PageShapes, usecase.PageDatabase} {
		root.AddCommand(pageCmd(page, opts))
	}
	return root
}

func pageCmd(page usecase.Page, opts *options) *cobra.Command {
	short := map[usecase.Page]string{
		usecase.PageShapes:   "Open the shape canvas",
		usecase.PageDatabase: "Open the database schema canvas",
	}
	return &cobra.Command{
		Use:   string(page),
		Short: short[page],
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			uc, err := newCanvas(page, cfg)
			if err != nil {
				return err
			}

			c := uc.Canvas()
			log.Printf("Opening %s page with %d nodes and %d edges", page, len(c.Nodes), len(c.Edges))
			ui.ShowCanvasUI(uc, page, cfg)
			return nil
		},
	}
}

// load reads the config and applies flag overrides.
func (o *options) load() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.ids != "" {
		cfg.Canvas.IDs = o.ids
	}
	if o.dangling != "" {
		cfg.Canvas.DanglingEdges = o.dangling
	}
	return cfg, nil
}

func newCanvas(page usecase.Page, cfg *config.Config) (*usecase.CanvasUseCase, error) {
	policy, err := usecase.ParseDanglingPolicy(cfg.Canvas.DanglingEdges)
	if err != nil {
		return nil, err
	}

	repo := repository.NewCanvasRepository(page.Preset())
	uc, err := usecase.NewCanvas(page, repo, usecase.IDStrategy(cfg.Canvas.IDs), usecase.WithDanglingPolicy(policy))
	if err != nil {
		return nil, fmt.Errorf("%s page: %w", page, err)
	}
	return uc, nil
}
