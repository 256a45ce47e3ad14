// Command gcview opens an interactive viewport over a sliced print's
// bounds and layers.
package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/image/font"
	"gopkg.in/yaml.v3"

	"github.com/gekko3d/gcview"
	"github.com/gekko3d/gcview/glfwhost"
	"github.com/gekko3d/gcview/hud"
)

var (
	version    = "0.1.0"
	cfgPath    string
	projection string
	verbose    bool
	width      int
	height     int
	layers     int
	boundsFlag string
	fontPath   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gcview",
		Short: "Inspect a sliced print in an interactive 3D viewport",
		Long: `gcview opens a window with a trackball camera over the build plate.

  left drag     rotate
  right drag    pan
  wheel         step layers (zoom with the zoom modifier, shift by default)
  u / d         layer up / down
  f / r         fit model / reset view`,
		Version:      version,
		SilenceUsage: true,
		RunE:         runViewer,
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&projection, "projection", "", "orthographic or perspective (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().IntVar(&layers, "layers", 0, "layer count of the model")
	rootCmd.PersistentFlags().StringVar(&boundsFlag, "bounds", "", "model bounds as minx,miny,minz,maxx,maxy,maxz")

	rootCmd.Flags().IntVar(&width, "width", 1024, "window width")
	rootCmd.Flags().IntVar(&height, "height", 768, "window height")

	rootCmd.AddCommand(labelCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (gcview.Config, error) {
	cfg := gcview.DefaultConfig()
	if cfgPath != "" {
		var err error
		if cfg, err = gcview.LoadConfig(cfgPath); err != nil {
			return cfg, err
		}
	}
	if projection != "" {
		cfg.Projection = projection
	}
	if verbose {
		cfg.Debug = true
	}
	return cfg, cfg.Validate()
}

// newViewer builds a viewer and loads the model described by the flags.
func newViewer(cfg gcview.Config, hooks gcview.Hooks) (*gcview.Viewer, gcview.Logger, error) {
	base := gcview.NewDefaultLogger("gcview", cfg.Debug)
	v, err := gcview.NewViewer(cfg, hooks, base)
	if err != nil {
		return nil, nil, err
	}
	log := base.With(v.ID.String()[:8])

	model, ok, err := modelFromFlags(layers, boundsFlag)
	if err != nil {
		return nil, nil, err
	}
	if ok {
		v.LoadModel(model)
	}
	return v, log, nil
}

func runViewer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	win := glfwhost.NewWindow(width, height, "gcview", gcview.NewDefaultLogger("glfw", cfg.Debug))
	if err := win.Open(); err != nil {
		return err
	}
	defer win.Close()

	var log gcview.Logger
	v, log, err := newViewer(cfg, win.Hooks(func(ev gcview.PointerEvent) {
		log.Infof("double click at (%.0f, %.0f)", ev.X, ev.Y)
	}))
	if err != nil {
		return err
	}
	win.Attach(v)
	if v.HasModel() {
		v.Fit()
	}

	lastStatus := ""
	win.Run(func() {
		f := v.Frame()
		status := hud.FromFrame(f, v.ModelVisible()).String()
		if status != lastStatus {
			log.Infof("%s", status)
			lastStatus = status
		}
		log.Debugf("frame view=%v", f.View)
	})
	return nil
}

func labelCmd() *cobra.Command {
	var (
		out   string
		layer int
	)
	cmd := &cobra.Command{
		Use:   "label",
		Short: "Render the status label for the flagged model to a PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			v, _, err := newViewer(cfg, gcview.Hooks{})
			if err != nil {
				return err
			}
			v.Resize(width, height)
			v.Fit()
			if layer > 0 {
				v.ShowLayer(layer)
			}

			var face font.Face
			if fontPath != "" {
				if face, err = hud.LoadFace(fontPath, 14); err != nil {
					return err
				}
			}

			img := hud.Label(hud.FromFrame(v.Frame(), v.ModelVisible()), face)
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := png.Encode(f, img); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d)\n", out, img.Bounds().Dx(), img.Bounds().Dy())
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "label.png", "output file")
	cmd.Flags().IntVar(&layer, "layer", 0, "show layers up to n (default all)")
	cmd.Flags().StringVar(&fontPath, "font", "", "TrueType/OpenType font (default built-in 7x13)")
	cmd.Flags().IntVar(&width, "width", 1024, "viewport width")
	cmd.Flags().IntVar(&height, "height", 768, "viewport height")
	return cmd
}
