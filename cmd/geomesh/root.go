package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/geomesh/geo"
	"github.com/katalvlaran/geomesh/mesh"
	"github.com/katalvlaran/geomesh/state"
	"github.com/katalvlaran/geomesh/svgexport"
)

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "geomesh",
		Short:         "Interactive geodesic mesh refinement",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd.Context())
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.close()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.key, "session", "default", "session key in the store")
	pf.StringVar(&a.lattice, "lattice", "icosahedron", "seed lattice: icosahedron or polarband")
	pf.Float64Var(&a.lonOffset, "lon-offset", 0, "rotate the seed lattice by this many degrees of longitude")
	pf.IntVar(&a.historyLimit, "history-limit", 0, "keep at most this many undo snapshots (0 = unlimited)")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus text metrics to this file on exit")

	root.AddCommand(
		newSeedCmd(a),
		newClickCmd(a),
		newSubdivideCmd(a),
		newHistoryCmd(a, "undo", "Restore the previous mesh", (*state.Controller).Undo),
		newHistoryCmd(a, "redo", "Re-apply the last undone change", (*state.Controller).Redo),
		newResetCmd(a),
		newStatsCmd(a),
		newFacesCmd(a),
		newSVGCmd(a),
	)

	return root
}

// mutate loads the session, applies fn and saves the result.
func (a *app) mutate(ctx context.Context, fn func(*state.Controller) error) error {
	c, err := a.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(c); err != nil {
		return err
	}

	return a.save(ctx, c)
}

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Start the session over from a fresh seed mesh, discarding history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := a.controllerOptions()
			if err != nil {
				return err
			}
			c := state.NewController(opts...)
			if err := a.save(cmd.Context(), c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %s: %d faces\n", a.key, len(c.Mesh().Faces))

			return nil
		},
	}
}

// pointFlags registers --lat/--lon and returns a resolver that yields nil
// unless both were given.
func pointFlags(cmd *cobra.Command) func() (*geo.Coordinate, error) {
	var lat, lon float64
	cmd.Flags().Float64Var(&lat, "lat", 0, "split point latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "split point longitude")

	return func() (*geo.Coordinate, error) {
		fl := cmd.Flags()
		if !fl.Changed("lat") && !fl.Changed("lon") {
			return nil, nil
		}
		if !fl.Changed("lat") || !fl.Changed("lon") {
			return nil, fmt.Errorf("--lat and --lon must be given together")
		}
		c := geo.New(lat, lon)
		if err := c.Validate(); err != nil {
			return nil, err
		}

		return &c, nil
	}
}

func newClickCmd(a *app) *cobra.Command {
	var face string
	var times int
	cmd := &cobra.Command{
		Use:   "click",
		Short: "Click a face; the eleventh click subdivides it",
		Args:  cobra.NoArgs,
	}
	point := pointFlags(cmd)
	cmd.Flags().StringVar(&face, "face", "", "face id")
	cmd.Flags().IntVar(&times, "times", 1, "number of clicks")
	_ = cmd.MarkFlagRequired("face")
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		p, err := point()
		if err != nil {
			return err
		}
		if times < 1 {
			return fmt.Errorf("--times must be at least 1")
		}

		return a.mutate(cmd.Context(), func(c *state.Controller) error {
			for i := 0; i < times; i++ {
				tr := c.ClickAt(face, p)
				if f, ok := c.Mesh().Face(face); ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (clicks %d)\n", face, tr, f.Clicks)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", face, tr)
				}
				if tr == state.Subdivided || tr == state.None {
					break
				}
			}

			return nil
		})
	}

	return cmd
}

func newSubdivideCmd(a *app) *cobra.Command {
	var face string
	cmd := &cobra.Command{
		Use:   "subdivide",
		Short: "Split a face into three children immediately",
		Args:  cobra.NoArgs,
	}
	point := pointFlags(cmd)
	cmd.Flags().StringVar(&face, "face", "", "face id")
	_ = cmd.MarkFlagRequired("face")
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		p, err := point()
		if err != nil {
			return err
		}

		return a.mutate(cmd.Context(), func(c *state.Controller) error {
			tr, err := c.Subdivide(face, p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", face, tr)

			return nil
		})
	}

	return cmd
}

func newHistoryCmd(a *app, use, short string, step func(*state.Controller) bool) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.mutate(cmd.Context(), func(c *state.Controller) error {
				if !step(c) {
					fmt.Fprintf(cmd.OutOrStdout(), "nothing to %s\n", use)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d faces\n", use, len(c.Mesh().Faces))

				return nil
			})
		},
	}
}

func newResetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Replace the mesh with a fresh seed (undoable)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.mutate(cmd.Context(), func(c *state.Controller) error {
				c.Reset()
				fmt.Fprintf(cmd.OutOrStdout(), "reset: %d faces\n", len(c.Mesh().Faces))

				return nil
			})
		},
	}
}

func newStatsCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print mesh statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			st := c.Stats()
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(st)
			}
			h := c.History()
			fmt.Fprintf(out, "vertices   %d\n", st.TotalVertices)
			fmt.Fprintf(out, "faces      %d\n", st.TotalFaces)
			fmt.Fprintf(out, "max level  %d\n", st.MaxLevel)
			fmt.Fprintf(out, "clicks     %d\n", st.TotalClicks)
			fmt.Fprintf(out, "exhausted  %d\n", st.Exhausted)
			fmt.Fprintf(out, "area km2   %.0f\n", st.AreaKm2)
			fmt.Fprintf(out, "undo/redo  %d/%d\n", len(h.Past), len(h.Future))
			for lvl := 0; lvl <= st.MaxLevel; lvl++ {
				if n := st.CountsByLevel[lvl]; n > 0 {
					fmt.Fprintf(out, "  level %-2d %d\n", lvl, n)
				}
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	return cmd
}

func newFacesCmd(a *app) *cobra.Command {
	var level int
	cmd := &cobra.Command{
		Use:   "faces",
		Short: "List active faces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			for _, f := range c.Mesh().Faces {
				if level >= 0 && f.Level != level {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s level %-2d clicks %-2d %s\n", f.ID, f.Level, f.Clicks, f.Color)
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&level, "level", -1, "only faces at this level")

	return cmd
}

func newSVGCmd(a *app) *cobra.Command {
	var (
		out    string
		proj   string
		labels bool
		vp     = geo.Viewport{Width: 1024, Height: 1024}
	)
	cmd := &cobra.Command{
		Use:   "svg",
		Short: "Render the visible faces to SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch proj {
			case "mercator", "webmercator":
				vp.Projection = geo.WebMercator
			case "equirectangular", "platecarree":
				vp.Projection = geo.Equirectangular
			default:
				return fmt.Errorf("unknown projection %q", proj)
			}
			c, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			var opts []svgexport.Option
			if labels {
				opts = append(opts, svgexport.WithLabels())
			}
			m := c.Mesh()
			if out == "" || out == "-" {
				if err := svgexport.Write(cmd.OutOrStdout(), m, vp, opts...); err != nil {
					return err
				}
			} else if err := writeSVGFile(out, m, vp, opts...); err != nil {
				return err
			}
			a.log.Info("svg_written", "out", out, "visible", len(mesh.VisibleFaces(m, vp)), "faces", len(m.Faces))

			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&out, "out", "o", "-", "output file (- for stdout)")
	fl.StringVar(&proj, "projection", "mercator", "mercator or equirectangular")
	fl.Float64Var(&vp.Zoom, "zoom", 2, "zoom level")
	fl.Float64Var(&vp.Center.Latitude, "center-lat", 0, "viewport centre latitude")
	fl.Float64Var(&vp.Center.Longitude, "center-lon", 0, "viewport centre longitude")
	fl.IntVar(&vp.Width, "width", 1024, "width in pixels")
	fl.IntVar(&vp.Height, "height", 1024, "height in pixels")
	fl.Float64Var(&vp.Rotation, "rotation", 0, "clockwise rotation in degrees")
	fl.BoolVar(&labels, "labels", false, "draw face ids")

	return cmd
}

// writeSVGFile renders m into path, reporting the close error when the
// render itself succeeded.
func writeSVGFile(path string, m mesh.Mesh, vp geo.Viewport, opts ...svgexport.Option) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := svgexport.Write(f, m, vp, opts...); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
