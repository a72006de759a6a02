// Command linsolve-demo builds a diagonally dominant tridiagonal system,
// solves it with conjugate gradient, steepest descent and the direct solver,
// and prints each solution's distance to an independent reference solve.
//
//	linsolve-demo [-config linsolve.yaml]
//
// The config path may also come from LINSOLVE_CONFIG (environment or .env).
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/linsolve/internal/config"
	"github.com/katalvlaran/linsolve/internal/report"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Width(26)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; falls back to $LINSOLVE_CONFIG, then linsolve.yaml)")
	flag.Parse()

	path := config.ResolvePath(cfgPath)
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("failed to load config %s: %v", path, err)
	}

	rep, err := runAll(cfg)
	if err != nil {
		log.Fatalf("solve failed: %v", err)
	}
	rep.CreatedAt = time.Now().UTC()

	fmt.Println(render(rep))

	if p := cfg.Output.ReportPath; p != "" {
		if err := report.Save(p, rep); err != nil {
			log.Fatalf("failed to write report: %v", err)
		}
		fmt.Println(dimStyle.Render("report: " + p))
	}
	if p := cfg.Output.PlotPath; p != "" {
		err := report.PlotHistory(p, rep.Runs)
		switch {
		case errors.Is(err, report.ErrNothingToPlot):
			fmt.Fprintln(os.Stderr, dimStyle.Render("plot skipped: "+err.Error()))
		case err != nil:
			log.Fatalf("failed to write plot: %v", err)
		default:
			fmt.Println(dimStyle.Render("plot:   " + p))
		}
	}
}

// render formats the "<method> vs ref" table.
func render(rep *report.Report) string {
	header := headerStyle.Render(fmt.Sprintf("linsolve: n=%d tol=%g cap=%d", rep.Dimension, rep.Tolerance, rep.MaxIterations))

	lines := header
	for _, run := range rep.Runs {
		status := okStyle.Render("converged")
		if !run.Converged {
			status = warnStyle.Render("not converged")
		}
		lines += fmt.Sprintf("\n%s %.3e  %s  %s",
			labelStyle.Render(run.Method+" vs ref"),
			run.ErrorVsRef,
			status,
			dimStyle.Render(fmt.Sprintf("iters=%d residual=%.3e", run.Iterations, run.ResidualNorm)),
		)
	}

	return boxStyle.Render(lines)
}
