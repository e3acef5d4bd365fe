package cliadapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"svw.info/sudoku-solve/internal/domain"
	"svw.info/sudoku-solve/internal/generator"
	"svw.info/sudoku-solve/internal/infrastructure/storage"
	"svw.info/sudoku-solve/internal/ports"
	"svw.info/sudoku-solve/internal/solver"
	"svw.info/sudoku-solve/internal/usecase"
	"svw.info/sudoku-solve/internal/validator"
)

// Handler carries the shared CLI state: global flags and logger.
type Handler struct {
	engine   string
	logLevel string
	timeout  time.Duration
	prof     bool

	logger   *slog.Logger
	profiler interface{ Stop() }
}

// NewRootCommand builds the fully wired root command.
func NewRootCommand() *cobra.Command {
	h := &Handler{}
	root := &cobra.Command{
		Use:           "sudoku-solve",
		Short:         "Solve, check, and generate 9x9 Sudoku puzzles",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&h.engine, "engine", "propagate", "solver engine: propagate|backtrack|sat")
	pf.StringVar(&h.logLevel, "log-level", "info", "debug|info|warn|error")
	pf.DurationVar(&h.timeout, "timeout", 30*time.Second, "abort an operation after this long")
	pf.BoolVar(&h.prof, "profile", false, "write a CPU profile for this run")

	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		h.logger = newLogger(h.logLevel)
		if h.prof {
			h.profiler = profile.Start(profile.ProfilePath("."))
		}
	}
	root.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if h.profiler != nil {
			h.profiler.Stop()
		}
	}

	root.AddCommand(h.solveCommand(), h.checkCommand(), h.generateCommand())
	return root
}

func newLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// service wires providers for the selected engine.
func (h *Handler) service() *usecase.Service {
	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(h.engine)) {
	case "backtrack", "backtracking":
		s = solver.NewBacktrackingSolver()
	case "sat":
		s = solver.NewSATSolver()
	default:
		s = solver.NewEngine()
	}
	return usecase.NewService(s, generator.NewUniqueGenerator(s), validator.New(), storage.NewFS())
}

func (h *Handler) solveCommand() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Solve a puzzle file and print the solution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), h.timeout)
			defer cancel()
			uc := h.service()
			b, err := uc.Load(ctx, args[0])
			if err != nil {
				return err
			}
			h.logger.Debug("loaded", "file", args[0], "givens", b.Givens())
			solved, st, err := uc.Solve(ctx, b)
			if err != nil {
				return err
			}
			if ok, conflicts, _ := uc.Validate(ctx, solved); !ok {
				return fmt.Errorf("solver produced an invalid board (%d conflicts)", len(conflicts))
			}
			h.logger.Info("solved",
				"file", args[0],
				"engine", h.engine,
				"nodes", st.Nodes,
				"dur", st.Duration.Round(time.Microsecond),
			)
			fmt.Fprint(cmd.OutOrStdout(), solved.String())
			if outPath != "" {
				return uc.Save(ctx, outPath, solved)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "also write the solution to this file")
	return cmd
}

func (h *Handler) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Report conflicting givens in a puzzle file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), h.timeout)
			defer cancel()
			uc := h.service()
			b, err := uc.Load(ctx, args[0])
			if err != nil {
				return err
			}
			ok, conflicts, err := uc.Validate(ctx, b)
			if err != nil {
				return err
			}
			if !ok {
				for _, cc := range conflicts {
					fmt.Fprintf(cmd.OutOrStdout(), "conflict at row %d, col %d\n", cc.Row+1, cc.Col+1)
				}
				return fmt.Errorf("%d conflicting givens", len(conflicts))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d givens, no conflicts\n", b.Givens())
			return nil
		},
	}
}

func (h *Handler) generateCommand() *cobra.Command {
	var (
		diff    string
		seed    int64
		outPath string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle with a unique solution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), h.timeout)
			defer cancel()
			uc := h.service()
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			p, st, err := uc.Generate(ctx, seed, domain.ParseDifficulty(diff))
			if err != nil {
				return err
			}
			h.logger.Info("generated",
				"difficulty", p.Difficulty,
				"seed", p.Seed,
				"givens", p.Board.Givens(),
				"nodes", st.Nodes,
				"dur", st.Duration.Round(time.Millisecond),
			)
			fmt.Fprint(cmd.OutOrStdout(), p.Board.String())
			if outPath != "" {
				return uc.Save(ctx, outPath, &p.Board)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&diff, "difficulty", "medium", "easy|medium|hard|expert")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: current time)")
	cmd.Flags().StringVar(&outPath, "out", "", "write the puzzle to this file")
	return cmd
}
