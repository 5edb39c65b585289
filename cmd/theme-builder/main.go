package main

import (
	"fmt"
	"os"

	themebuilder "github.com/hellenic-development/theme-builder"
	"github.com/hellenic-development/theme-builder/pkg/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = themebuilder.Version

var (
	configFile string
	envFile    string
	rowsPath   string
	scalePath  string
	outputPath string
	modulesDir string
	marker     string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaults := config.Defaults()

	rootCmd := &cobra.Command{
		Use:   "theme-builder",
		Short: "Build the theme stylesheet from design tokens",
		Long:  "Resolves CSS custom properties from a variables table against a design-token color scale and appends them to the upstream Primer stylesheets",
		Args:  cobra.NoArgs,
		RunE:  run,

		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "TOML config file (default: "+config.DefaultFile+" if present)")
	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "File with THEMEBUILDER_* variables to load if present")
	rootCmd.Flags().StringVarP(&rowsPath, "rows", "r", defaults.Rows, "Variables table (CSV)")
	rootCmd.Flags().StringVarP(&scalePath, "scale", "s", defaults.Scale, "Token scale (JSON)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", defaults.Output, "Output stylesheet")
	rootCmd.Flags().StringVarP(&modulesDir, "modules-dir", "m", defaults.ModulesDir, "Directory the upstream stylesheets are installed in")
	rootCmd.Flags().StringVar(&marker, "marker", defaults.Marker, "Comment placed between the upstream CSS and the theme overrides")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("theme-builder version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)
	return rootCmd
}

// resolveConfig layers defaults, the config file, the environment and the
// explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.LoadDotEnv(envFile); err != nil {
		return nil, err
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.LookupEnv)

	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Rows = rowsPath
	}
	if flags.Changed("scale") {
		cfg.Scale = scalePath
	}
	if flags.Changed("output") {
		cfg.Output = outputPath
	}
	if flags.Changed("modules-dir") {
		cfg.ModulesDir = modulesDir
	}
	if flags.Changed("marker") {
		cfg.Marker = marker
	}

	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)

	cyan.Println("\n🎨 Theme Builder")
	cyan.Println("================")
	cyan.Println()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.File() != "" {
		color.New(color.FgYellow).Printf("Using config %s\n", cfg.File())
	}

	opts := themebuilder.Options{
		RowsPath:   cfg.Rows,
		ScalePath:  cfg.Scale,
		OutputPath: cfg.Output,
		ModulesDir: cfg.ModulesDir,
		Sources:    cfg.Sources,
		Marker:     cfg.Marker,
		Logger:     &cliLogger{},
	}

	result, err := themebuilder.Build(opts)
	if err != nil {
		return err
	}

	cyan.Println("\n📊 Build Summary:")
	fmt.Printf("  • Rows: %d\n", result.RowCount)
	fmt.Printf("  • Declarations: %d\n", len(result.Batch.Declarations()))
	fmt.Printf("  • Skipped rows: %d\n", len(result.Batch.Skipped))
	fmt.Printf("  • Failed variables: %d\n", len(result.Batch.Failed()))
	fmt.Printf("  • Upstream files: %d read, %d missing\n",
		len(result.Upstream.Files)-len(result.Upstream.Missing()),
		len(result.Upstream.Missing()))

	green.Printf("\n✨ Successfully built %s\n\n", cfg.Output)
	return nil
}

// cliLogger implements themebuilder.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
