package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/mathbox"
	"github.com/gogpu/mathbox/internal/config"
	"github.com/gogpu/mathbox/text"
)

// renderOpts holds the flags of the render command. Flags that were set
// explicitly override the config file.
type renderOpts struct {
	configPath  string
	output      string
	font        string
	size        float64
	shaper      string
	parallelism int
}

func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [sample]",
		Short: "Render a sample formula to PNG",
		Long: "Render lays out one of the built-in sample formulas and writes it as PNG.\n" +
			"Run 'mathbox samples' for the list; the default is " + defaultSample + ".",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := defaultSample
			if len(args) == 1 {
				name = args[0]
			}
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runRender(cmd, name, cfg, opts.output)
		},
	}

	d := config.Default()
	f := cmd.Flags()
	f.StringVarP(&opts.output, "out", "o", "", "output PNG path (default <sample>.png)")
	f.StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	f.StringVar(&opts.font, "font", "", "TTF/OTF font file (default Go Regular)")
	f.Float64VarP(&opts.size, "size", "s", d.Size, "font size in pixels")
	f.StringVar(&opts.shaper, "shaper", d.Shaper, "text shaper: builtin or gotext")
	f.IntVarP(&opts.parallelism, "parallel", "p", d.Parallelism, "goroutines used to plan each row")
	return cmd
}

// resolveConfig loads the config file, if any, and applies changed flags.
func resolveConfig(cmd *cobra.Command, opts renderOpts) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return config.Config{}, err
		}
	}

	f := cmd.Flags()
	if f.Changed("font") {
		cfg.Font = opts.font
	}
	if f.Changed("size") {
		cfg.Size = opts.size
	}
	if f.Changed("shaper") {
		cfg.Shaper = opts.shaper
	}
	if f.Changed("parallel") {
		cfg.Parallelism = opts.parallelism
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runRender(cmd *cobra.Command, name string, cfg config.Config, output string) error {
	logger := loggerFromContext(cmd.Context())

	node, err := lookupSample(name)
	if err != nil {
		return err
	}
	if output == "" {
		output = name + ".png"
	}

	src, err := loadFont(cfg.Font)
	if err != nil {
		return err
	}
	defer src.Close()

	var shaper text.Shaper = text.BuiltinShaper{}
	if cfg.Shaper == config.ShaperGoText {
		shaper = text.NewGoTextShaper()
	}
	measurer := mathbox.NewFontMeasurer(src,
		mathbox.WithShaper(shaper),
		mathbox.WithCacheSize(cfg.CacheSize),
	)
	planner := mathbox.NewPlanner(measurer,
		mathbox.WithScriptScale(cfg.ScriptScale),
		mathbox.WithParallelism(cfg.Parallelism),
	)

	ink, err := cfg.InkColor()
	if err != nil {
		return err
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return err
	}

	start := time.Now()
	logger.Debug("rendering", "sample", name, "node", node, "font", src.Name(), "size", cfg.Size, "shaper", cfg.Shaper)
	surface, err := planner.Render(node, cfg.Size, mathbox.WithInk(ink), mathbox.WithBackground(bg))
	if err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	if err := surface.SavePNG(output); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	logger.Infof("Wrote %s (%dx%d, %s)", output, surface.Width(), surface.Height(),
		time.Since(start).Round(time.Millisecond))
	return nil
}

// loadFont opens path, or the built-in Go Regular font when path is empty.
func loadFont(path string) (*text.FontSource, error) {
	if path == "" {
		return text.NewFontSource(goregular.TTF)
	}
	return text.NewFontSourceFromFile(path)
}
