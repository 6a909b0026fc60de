// Command tinmesh is a thin CLI wrapper around package tin. It is an
// external collaborator, not part of the refinement core spec.md
// describes, but is carried here so the module is runnable end to end.
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tin"
)

var log = slog.New(slog.NewTextHandler(os.Stderr, nil))

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error("tinmesh failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tinmesh",
		Short: "Greedy Delaunay terrain-mesh simplifier",
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newVerifyCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var (
		gridPath   string
		configPath string
		maxError   float64
		out        string
		histogram  int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Refine an .asc height grid into a TIN and write an OBJ",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := fileConfig{Grid: gridPath, MaxError: maxError, Out: out, Histogram: histogram}
			if configPath != "" {
				fromFile, err := loadConfig(configPath)
				if err != nil {
					return fmt.Errorf("loading config: %w", err)
				}
				// --max-error always carries a value (default 1), so it only
				// overrides the file when given explicitly; the default
				// applies when neither sets it.
				flagMaxError := 0.0
				if cmd.Flags().Changed("max-error") {
					flagMaxError = maxError
				}
				cfg = fromFile.applyDefaults(gridPath, flagMaxError, out, histogram)
				if cfg.MaxError == 0 {
					cfg.MaxError = maxError
				}
			}
			if cfg.Grid == "" {
				return fmt.Errorf("no grid supplied: pass --grid or set grid: in --config")
			}

			f, err := os.Open(cfg.Grid)
			if err != nil {
				return fmt.Errorf("opening grid: %w", err)
			}
			defer f.Close()

			hg, err := tin.LoadASCGrid(f)
			if err != nil {
				return fmt.Errorf("loading grid: %w", err)
			}
			log.Info("loaded grid", "width", hg.Width(), "height", hg.Height())

			m, err := tin.NewMesh(hg)
			if err != nil {
				return fmt.Errorf("building mesh: %w", err)
			}

			if err := m.Run(cfg.MaxError); err != nil {
				return fmt.Errorf("refining mesh: %w", err)
			}
			log.Info("refined mesh",
				"vertices", m.VertexCount(),
				"triangles", m.TriangleCount(),
				"max_error", m.MaxError(),
				"rmsd", m.RMSD(),
			)

			if cfg.Histogram > 0 {
				log.Info("error histogram", "buckets", m.ErrorHistogram(cfg.Histogram))
			}

			if cfg.Out == "" {
				cfg.Out = "mesh.obj"
			}
			outFile, err := os.Create(cfg.Out)
			if err != nil {
				return fmt.Errorf("creating output: %w", err)
			}
			defer outFile.Close()

			return tin.WriteOBJ(outFile, m)
		},
	}

	cmd.Flags().StringVar(&gridPath, "grid", "", "path to an .asc height grid")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config (see config.go)")
	cmd.Flags().Float64Var(&maxError, "max-error", 1, "maximum allowed vertical error")
	cmd.Flags().StringVar(&out, "out", "", "output .obj path (default mesh.obj)")
	cmd.Flags().IntVar(&histogram, "histogram", 0, "log an N-bucket error histogram after refinement")

	return cmd
}

func newVerifyCmd() *cobra.Command {
	var (
		gridPath string
		samples  int
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check the integer in-circle predicate against a floating one on random triangles",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(gridPath)
			if err != nil {
				return fmt.Errorf("opening grid: %w", err)
			}
			defer f.Close()

			hg, err := tin.LoadASCGrid(f)
			if err != nil {
				return fmt.Errorf("loading grid: %w", err)
			}

			m, err := tin.NewMesh(hg)
			if err != nil {
				return fmt.Errorf("building mesh: %w", err)
			}
			if err := m.Run(0.5); err != nil {
				return err
			}

			coords := m.Coords()
			tris := m.Triangles()
			rng := rand.New(rand.NewSource(1))
			mismatches := 0
			for i := 0; i < samples; i++ {
				ti := rng.Intn(len(tris) / 3)
				a, b, c := tris[3*ti], tris[3*ti+1], tris[3*ti+2]
				pi := int32(rng.Intn(len(coords) / 2))

				ax, ay := coords[2*a], coords[2*a+1]
				bx, by := coords[2*b], coords[2*b+1]
				cx, cy := coords[2*c], coords[2*c+1]
				px, py := coords[2*pi], coords[2*pi+1]

				exact := tin.InCircle(ax, ay, bx, by, cx, cy, px, py)
				approx := tin.FloatInCircle(float32(ax), float32(ay), float32(bx), float32(by), float32(cx), float32(cy), float32(px), float32(py))
				if exact != approx {
					mismatches++
					log.Warn("predicate disagreement",
						"triangle", ti, "point", pi, "exact", exact, "approx", approx)
				}
			}
			log.Info("verify complete", "samples", samples, "mismatches", mismatches)
			return nil
		},
	}

	cmd.Flags().StringVar(&gridPath, "grid", "", "path to an .asc height grid")
	cmd.Flags().IntVar(&samples, "samples", 100, "number of random triangles to cross-check")
	_ = cmd.MarkFlagRequired("grid")

	return cmd
}
