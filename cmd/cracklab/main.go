package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/cracklab/internal/assess"
	"github.com/san-kum/cracklab/internal/batch"
	"github.com/san-kum/cracklab/internal/config"
	"github.com/san-kum/cracklab/internal/report"
	"github.com/san-kum/cracklab/internal/storage"
	"github.com/san-kum/cracklab/internal/tui"
)

var (
	dataDir string

	// assess flags
	crackType      string
	orientation    string
	crackA         float64
	sectionW       float64
	semiC          float64
	locationRadius float64
	stress         float64
	toughness      float64
	yieldStrength  float64
	parisC         float64
	parisM         float64
	designLife     float64
	requiredSF     float64
	materialName   string
	configFile     string
	saveRun        bool

	// batch flags
	workers int

	// growth/export/report flags
	plotWidth int
	outFile   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cracklab",
		Short: "fracture mechanics and fatigue crack-growth assessment lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".cracklab", "data directory")

	assessCmd := &cobra.Command{
		Use:   "assess [scenario]",
		Short: "assess one crack specification",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAssess,
	}
	assessCmd.Flags().StringVar(&crackType, "type", "through", "crack type (edge, double_edge, through, elliptical_surface, corner)")
	assessCmd.Flags().StringVar(&orientation, "orientation", "axial", "crack orientation (axial, circumferential, radial)")
	assessCmd.Flags().Float64Var(&crackA, "a", config.DefaultCrackDepth, "crack size a (mm)")
	assessCmd.Flags().Float64Var(&sectionW, "w", config.DefaultSectionWidth, "section width W (mm)")
	assessCmd.Flags().Float64Var(&semiC, "c", 0, "crack semi-width c (mm, elliptical/corner)")
	assessCmd.Flags().Float64Var(&locationRadius, "radius", 0, "crack location radius (mm, rotor geometries)")
	assessCmd.Flags().Float64Var(&stress, "stress", config.DefaultStress, "applied stress (MPa)")
	assessCmd.Flags().Float64Var(&toughness, "kic", 0, "fracture toughness K_IC (MPa·√m)")
	assessCmd.Flags().Float64Var(&yieldStrength, "yield", 0, "yield strength (MPa)")
	assessCmd.Flags().Float64Var(&parisC, "paris-c", 0, "Paris law C (m/cycle)")
	assessCmd.Flags().Float64Var(&parisM, "paris-m", 0, "Paris law m")
	assessCmd.Flags().Float64Var(&designLife, "life", config.DefaultDesignLife, "design life (cycles)")
	assessCmd.Flags().Float64Var(&requiredSF, "required-sf", config.DefaultRequiredSF, "required fracture safety factor")
	assessCmd.Flags().StringVar(&materialName, "material", "", "material preset name")
	assessCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	assessCmd.Flags().BoolVar(&saveRun, "save", false, "save the run to the data directory")

	batchCmd := &cobra.Command{
		Use:   "batch [deck.yaml]",
		Short: "assess every case in a deck",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().IntVar(&workers, "workers", 4, "concurrent evaluations")

	growthCmd := &cobra.Command{
		Use:   "growth [run_id]",
		Short: "plot the growth trace of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotGrowth,
	}
	growthCmd.Flags().IntVar(&plotWidth, "width", 70, "plot width")

	watchCmd := &cobra.Command{
		Use:   "watch [run_id]",
		Short: "replay a saved growth trace live",
		Args:  cobra.ExactArgs(1),
		RunE:  watchRun,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a run, growth trace included, as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")

	reportCmd := &cobra.Command{
		Use:   "report [run_id]",
		Short: "write a PDF report for a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  pdfReport,
	}
	reportCmd.Flags().StringVar(&outFile, "out", "", "output file (default <run_id>.pdf)")

	materialsCmd := &cobra.Command{
		Use:   "materials",
		Short: "list material presets",
		RunE:  listMaterials,
	}

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list scenario presets",
		RunE:  listScenarios,
	}

	rootCmd.AddCommand(assessCmd, batchCmd, growthCmd, watchCmd, listCmd, exportCmd, reportCmd, materialsCmd, scenariosCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig layers scenario preset, config file, and explicit flags,
// flags winning.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if len(args) > 0 {
		preset := config.GetScenario(args[0])
		if preset == nil {
			return nil, fmt.Errorf("unknown scenario: %s (available: %v)", args[0], config.ListScenarios())
		}
		cfg = preset
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if materialName != "" {
		mat, ok := config.GetMaterial(materialName)
		if !ok {
			return nil, fmt.Errorf("unknown material: %s (available: %v)", materialName, config.ListMaterials())
		}
		cfg.Material = mat
	}

	flags := cmd.Flags()
	if flags.Changed("type") {
		cfg.Crack.Type = crackType
	}
	if flags.Changed("orientation") {
		cfg.Crack.Orientation = orientation
	}
	if flags.Changed("a") {
		cfg.Crack.A = crackA
	}
	if flags.Changed("w") {
		cfg.Crack.W = sectionW
	}
	if flags.Changed("c") {
		cfg.Crack.C = semiC
	}
	if flags.Changed("radius") {
		cfg.Crack.LocationRadius = locationRadius
	}
	if flags.Changed("stress") {
		cfg.Assessment.AppliedStress = stress
	}
	if flags.Changed("kic") {
		cfg.Material.FractureToughness = toughness
	}
	if flags.Changed("yield") {
		cfg.Material.YieldStrength = yieldStrength
	}
	if flags.Changed("paris-c") {
		cfg.Material.ParisC = parisC
	}
	if flags.Changed("paris-m") {
		cfg.Material.ParisM = parisM
	}
	if flags.Changed("life") {
		cfg.Assessment.DesignLifeCycles = designLife
	}
	if flags.Changed("required-sf") {
		cfg.Assessment.RequiredFractureSF = requiredSF
	}

	return cfg, nil
}

func runAssess(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	spec, err := cfg.BuildSpec()
	if err != nil {
		return err
	}
	mat := cfg.BuildMaterial()

	start := time.Now()
	result, err := cfg.BuildEvaluator().Evaluate(spec, mat)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := report.Render(os.Stdout, spec, mat, result); err != nil {
		return err
	}
	fmt.Printf("\nevaluated in %v\n", elapsed)

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg.Name, spec, mat, result)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	deck, err := batch.LoadDeck(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("assessing %d cases...\n", len(deck.Cases))
	start := time.Now()
	results := batch.Run(context.Background(), deck, workers)
	elapsed := time.Since(start)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CASE\tSTATUS\tFRACTURE SF\tCYCLES TO FAILURE")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "%s\terror\t-\t%v\n", r.Name, r.Err)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n",
			r.Name,
			r.Assessment.Status,
			r.Assessment.Fracture.SafetyFactor,
			r.Assessment.Fatigue.CyclesToFailure,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	byStatus, errs := batch.Summary(results)
	fmt.Printf("\n%d acceptable, %d marginal, %d unacceptable, %d errors (%v)\n",
		byStatus[assess.StatusAcceptable],
		byStatus[assess.StatusMarginal],
		byStatus[assess.StatusUnacceptable],
		errs, elapsed)
	return nil
}

func plotGrowth(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	history, err := st.LoadHistory(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s crack, a=%.3gmm W=%.3gmm\n\n", meta.ID, meta.CrackType, meta.A, meta.W)
	fmt.Println(report.GrowthPlot(history, plotWidth))
	fmt.Println()
	fmt.Println(report.IntensityPlot(history, plotWidth))
	return nil
}

func watchRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	history, err := st.LoadHistory(args[0])
	if err != nil {
		return err
	}
	return tui.Run(meta.ID, history, meta.Assessment)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tTIME\tSTATUS\tFRACTURE SF\tCYCLES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%s\n",
			run.ID,
			run.CrackType,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Assessment.Status,
			run.Assessment.Fracture.SafetyFactor,
			run.Assessment.Fatigue.CyclesToFailure,
		)
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	history, err := st.LoadHistory(args[0])
	if err != nil {
		return err
	}

	if outFile == "" {
		return storage.ExportJSON(os.Stdout, meta, history)
	}
	if err := storage.ExportJSONFile(outFile, meta, history); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", outFile)
	return nil
}

func pdfReport(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	history, err := st.LoadHistory(args[0])
	if err != nil {
		return err
	}

	path := outFile
	if path == "" {
		path = args[0] + ".pdf"
	}
	if err := report.WritePDF(path, meta, history); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func listMaterials(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tMATERIAL\tK_IC\tYIELD\tPARIS C\tPARIS M")
	for _, name := range config.ListMaterials() {
		m, _ := config.GetMaterial(name)
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.0f\t%.2e\t%.2f\n",
			name, m.Name, m.FractureToughness, m.YieldStrength, m.ParisC, m.ParisM)
	}
	return w.Flush()
}

func listScenarios(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tTYPE\ta (mm)\tW (mm)\tSTRESS\tMATERIAL")
	for _, name := range config.ListScenarios() {
		cfg := config.GetScenario(name)
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.0f\t%s\n",
			name, cfg.Crack.Type, cfg.Crack.A, cfg.Crack.W,
			cfg.Assessment.AppliedStress, cfg.Material.Name)
	}
	return w.Flush()
}
