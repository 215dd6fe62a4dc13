package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/particle-rings/internal/asset"
	"github.com/iburimskiy/particle-rings/internal/layout"
	"github.com/iburimskiy/particle-rings/internal/palette"
)

type layoutReport struct {
	Image     string        `yaml:"image"`
	Canvas    [2]int        `yaml:"canvas"`
	Particles int           `yaml:"particles"`
	Palette   []string      `yaml:"palette"`
	Rings     []layout.Ring `yaml:"rings"`
}

func Layout() *cobra.Command {
	var o Options
	var format string
	cmd := &cobra.Command{
		Use:          "layout",
		Short:        "Print the ring layout for an image",
		Long:         "Generate the particle layout without opening a window and print per-ring statistics",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(cmd, &o)
			if err != nil {
				return err
			}
			if cfg.Image == "" {
				return fmt.Errorf("layout needs an image: pass --image")
			}
			img, err := asset.Load(cfg.Image)
			if err != nil {
				return err
			}
			l, err := layout.Generate(img, float64(cfg.Canvas.Width), float64(cfg.Canvas.Height), cfg.Layout)
			if err != nil {
				return err
			}
			pal, err := palette.Viridis(cfg.Palette.Shades)
			if err != nil {
				return err
			}
			report := layoutReport{
				Image:     cfg.Image,
				Canvas:    [2]int{cfg.Canvas.Width, cfg.Canvas.Height},
				Particles: l.Count(),
				Palette:   pal.Hex(),
				Rings:     l.Rings,
			}
			return writeReport(cmd.OutOrStdout(), report, format)
		},
	}
	DefineFlags(cmd, &o)
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or yaml")
	return cmd
}

func writeReport(w io.Writer, r layoutReport, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "image\t%s\n", r.Image)
		fmt.Fprintf(tw, "canvas\t%dx%d\n", r.Canvas[0], r.Canvas[1])
		fmt.Fprintf(tw, "particles\t%d\n", r.Particles)
		if n := len(r.Palette); n > 0 {
			fmt.Fprintf(tw, "palette\t%d shades, %s .. %s\n", n, r.Palette[0], r.Palette[n-1])
		}
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "ring\tradius\tdot radius\tcount")
		for _, ring := range r.Rings {
			fmt.Fprintf(tw, "%d\t%.1f\t%.2f\t%d\n", ring.Index, ring.Radius, ring.DotRadius, ring.Count)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
