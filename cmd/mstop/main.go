// Command mstop solves a multi-source team orienteering problem instance
// and reports the heuristic, metaheuristic, and intensive-metaheuristic
// results, optionally alongside a separated single-source baseline,
// reproducing the benchmark loop from the original tooling.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"mstop/alphatuner"
	"mstop/bra"
	"mstop/heuristic"
	"mstop/instance"
	"mstop/internal/obslog"
	"mstop/internal/runconfig"
	"mstop/metaheuristic"
	"mstop/model"
	"mstop/pjs"
	"mstop/routeexport"
	"mstop/savings"
)

// benchHeader matches the original tooling's per-problem benchmark CSV
// header: the multi-source problem name, up to three single-source
// partition files it's benchmarked against, and the cost/revenue/
// wall-clock columns for each of the four strategies this driver runs.
var benchHeader = []string{
	"Problem", "P1", "P2", "P3",
	"HeurC", "HeurR", "HeurT",
	"RTMetaC", "RTMetaR", "RTMetaT",
	"IntMetaC", "IntMetaR", "IntMetaT",
	"SepHeurC", "SepHeurR", "SepHeurT",
}

func main() {
	instancePath := flag.String("instance", "", "path to a multi-source instance file")
	singlePath := flag.String("single", "", "path to a single-source instance file for the separated baseline")
	manifestPath := flag.String("manifest", "", "path to a CSV manifest (multi,p1,p2,p3 per row) of problems to benchmark in one run")
	configPath := flag.String("config", "", "path to a YAML run configuration")
	alpha := flag.Float64("alpha", -1, "savings blend alpha in [0,1]; negative tunes it automatically")
	bench := flag.Bool("bench", false, "emit CSV benchmark rows instead of a text report")
	dotPath := flag.String("dot", "", "write the best solution's route graph as Graphviz DOT to this path (single-instance mode only)")
	seed := flag.Int64("seed", 1, "base RNG seed")
	flag.Parse()

	if *instancePath == "" && *manifestPath == "" {
		fmt.Fprintln(os.Stderr, "mstop: -instance or -manifest is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*instancePath, *singlePath, *manifestPath, *configPath, *alpha, *bench, *dotPath, *seed); err != nil {
		obslog.Error("FATAL", err.Error())
		os.Exit(1)
	}
}

func run(instancePath, singlePath, manifestPath, configPath string, alpha float64, bench bool, dotPath string, seed int64) error {
	cfg, err := runconfig.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Output.Format == "csv" {
		bench = true
	}

	if manifestPath != "" {
		return runManifest(manifestPath, cfg, alpha, seed, bench)
	}

	rng := rand.New(rand.NewSource(seed))
	result, err := solveProblem(instancePath, singlePaths(singlePath), cfg, alpha, rng, bench)
	if err != nil {
		return err
	}

	if dotPath != "" {
		out, err := os.Create(dotPath)
		if err != nil {
			return fmt.Errorf("mstop: creating %s: %w", dotPath, err)
		}
		defer out.Close()
		if err := routeexport.WriteDOT(out, bestOf(result.heuristicSol, result.metaSol, result.intensiveSol)); err != nil {
			return err
		}
	}

	if bench {
		w := csv.NewWriter(os.Stdout)
		defer w.Flush()
		if err := w.Write(benchHeader); err != nil {
			return err
		}
		return w.Write(result.row(instancePath, singlePaths(singlePath)))
	}
	return nil
}

// runManifest reproduces the original tooling's filenames-table benchmark
// loop: each manifest row names a multi-source problem and up to three
// single-source partition files benchmarked against it, and every row
// contributes one CSV line under a single shared header.
func runManifest(manifestPath string, cfg runconfig.Config, alpha float64, seed int64, bench bool) error {
	mf, err := os.Open(manifestPath)
	if err != nil {
		return fmt.Errorf("mstop: opening manifest: %w", err)
	}
	defer mf.Close()

	rows, err := csv.NewReader(mf).ReadAll()
	if err != nil {
		return fmt.Errorf("mstop: reading manifest: %w", err)
	}

	var w *csv.Writer
	if bench {
		w = csv.NewWriter(os.Stdout)
		defer w.Flush()
		if err := w.Write(benchHeader); err != nil {
			return err
		}
	}

	for i, row := range rows {
		multiPath, singles, err := parseManifestRow(row)
		if err != nil {
			return fmt.Errorf("mstop: manifest row %d: %w", i+1, err)
		}

		// Derive a per-row RNG stream so results are reproducible from the
		// manifest's row order regardless of how many rows precede it.
		rng := bra.Derive(rand.New(rand.NewSource(seed)), uint64(i))

		result, err := solveProblem(multiPath, singles, cfg, alpha, rng, bench)
		if err != nil {
			return fmt.Errorf("mstop: %s: %w", multiPath, err)
		}

		if bench {
			if err := w.Write(result.row(multiPath, singles)); err != nil {
				return err
			}
		}
	}
	return nil
}

// parseManifestRow reads one manifest line: the multi-source problem path,
// followed by up to three single-source partition paths (blank entries and
// missing trailing columns are both allowed, matching the original's
// filenames table where not every problem has three partitions).
func parseManifestRow(row []string) (multiPath string, singles []string, err error) {
	if len(row) == 0 || row[0] == "" {
		return "", nil, fmt.Errorf("missing problem path")
	}
	multiPath = row[0]
	for i := 1; i < len(row) && i <= 3; i++ {
		if row[i] != "" {
			singles = append(singles, row[i])
		}
	}
	return multiPath, singles, nil
}

func singlePaths(singlePath string) []string {
	if singlePath == "" {
		return nil
	}
	return []string{singlePath}
}

// benchResult carries every metric row needs, plus the three Solutions
// used for -dot export in single-instance mode.
type benchResult struct {
	heuristicSol        *model.Solution
	metaSol             *model.Solution
	intensiveSol        *model.Solution
	heurElapsed         time.Duration
	metaElapsed         time.Duration
	intensiveElapsed    time.Duration
	sepCost, sepRevenue float64
	sepElapsed          time.Duration
}

// solveProblem runs the full per-problem pipeline: tune-or-accept alpha,
// set savings, then the heuristic, metaheuristic, and intensive
// metaheuristic passes, plus the separated-PJS baseline summed across
// singlePaths. obslog output is suppressed in bench mode so it doesn't
// interleave with the CSV stream on stdout.
func solveProblem(instancePath string, singlePaths []string, cfg runconfig.Config, alpha float64, rng *rand.Rand, bench bool) (*benchResult, error) {
	f, err := os.Open(instancePath)
	if err != nil {
		return nil, fmt.Errorf("mstop: opening instance: %w", err)
	}
	defer f.Close()

	p, err := instance.ParseMultiSource(f)
	if err != nil {
		return nil, fmt.Errorf("mstop: parsing instance: %w", err)
	}

	logSection := func(title string) {
		if !bench {
			obslog.Section(title)
		}
	}
	logStats := func(key string, value float64) {
		if !bench {
			obslog.Stats(key, value)
		}
	}

	logSection("Alpha")
	if alpha < 0 {
		alpha, err = alphatuner.Tune(p, rng)
		if err != nil {
			return nil, err
		}
	}
	if err := savings.Set(p, alpha); err != nil {
		return nil, err
	}
	logStats("alpha", alpha)

	result := &benchResult{}

	logSection("Heuristic")
	start := time.Now()
	result.heuristicSol, err = heuristic.Run(p, rng, bra.GreedyBeta)
	if err != nil {
		return nil, err
	}
	result.heurElapsed = time.Since(start)
	logStats("revenue", result.heuristicSol.TotalRevenue)
	logStats("cost", result.heuristicSol.TotalCost)

	logSection("Metaheuristic")
	start = time.Now()
	result.metaSol, err = metaheuristic.Run(p, rng, cfg.Metaheuristic.MinBeta, cfg.Metaheuristic.MaxBeta, cfg.Metaheuristic.MaxIter)
	if err != nil {
		return nil, err
	}
	result.metaElapsed = time.Since(start)
	logStats("revenue", result.metaSol.TotalRevenue)
	logStats("cost", result.metaSol.TotalCost)

	logSection("Intensive metaheuristic")
	start = time.Now()
	result.intensiveSol, err = metaheuristic.RunIntensive(p, rng, cfg.Metaheuristic.MinBeta, cfg.Metaheuristic.MaxBeta, cfg.Metaheuristic.MaxIter, cfg.Metaheuristic.NElites)
	if err != nil {
		return nil, err
	}
	result.intensiveElapsed = time.Since(start)
	logStats("revenue", result.intensiveSol.TotalRevenue)
	logStats("cost", result.intensiveSol.TotalCost)

	if len(singlePaths) > 0 {
		logSection("Separated baseline")
		for _, sp := range singlePaths {
			cost, revenue, elapsed, err := runSeparated(sp, rng)
			if err != nil {
				return nil, err
			}
			result.sepCost += cost
			result.sepRevenue += revenue
			result.sepElapsed += elapsed
		}
		logStats("revenue", result.sepRevenue)
		logStats("cost", result.sepCost)
	}

	return result, nil
}

// row renders this result as one benchHeader-shaped CSV row. singlePaths
// fills the P1/P2/P3 columns in order, left blank past the third entry or
// when fewer partitions were benchmarked.
func (r *benchResult) row(name string, singlePaths []string) []string {
	var p1, p2, p3 string
	if len(singlePaths) > 0 {
		p1 = singlePaths[0]
	}
	if len(singlePaths) > 1 {
		p2 = singlePaths[1]
	}
	if len(singlePaths) > 2 {
		p3 = singlePaths[2]
	}

	return []string{
		name, p1, p2, p3,
		fmt.Sprintf("%d", int(r.heuristicSol.TotalCost)), fmt.Sprintf("%g", r.heuristicSol.TotalRevenue), fmt.Sprintf("%d", r.heurElapsed.Milliseconds()),
		fmt.Sprintf("%d", int(r.metaSol.TotalCost)), fmt.Sprintf("%g", r.metaSol.TotalRevenue), fmt.Sprintf("%d", r.metaElapsed.Milliseconds()),
		fmt.Sprintf("%d", int(r.intensiveSol.TotalCost)), fmt.Sprintf("%g", r.intensiveSol.TotalRevenue), fmt.Sprintf("%d", r.intensiveElapsed.Milliseconds()),
		fmt.Sprintf("%d", int(r.sepCost)), fmt.Sprintf("%g", r.sepRevenue), fmt.Sprintf("%d", r.sepElapsed.Milliseconds()),
	}
}

// runSeparated reproduces original_source/src/main.cc's "separated
// heuristic approaches" path: the single-source instance file is parsed
// into its own Problem, and one PJS build is run at bra.GreedyBeta over
// that problem's own source and customers, independent of the
// multi-source problem passed to every other strategy.
func runSeparated(singlePath string, rng *rand.Rand) (cost, revenue float64, elapsed time.Duration, err error) {
	sf, err := os.Open(singlePath)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("mstop: opening single-source instance: %w", err)
	}
	defer sf.Close()

	sp, err := instance.ParseSingleSource(sf)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("mstop: parsing single-source instance: %w", err)
	}

	if len(sp.SourceIDs) == 0 {
		return 0, 0, 0, nil
	}

	start := time.Now()
	sol, err := pjs.Build(sp, sp.SourceIDs[0], sp.CustomerIDs, rng, bra.GreedyBeta)
	if err != nil {
		return 0, 0, 0, err
	}
	elapsed = time.Since(start)

	return sol.Cost, sol.Revenue, elapsed, nil
}

func bestOf(solutions ...*model.Solution) *model.Solution {
	best := solutions[0]
	for _, s := range solutions[1:] {
		if s.TotalRevenue > best.TotalRevenue {
			best = s
		}
	}
	return best
}
