// Package main provides the entry point for the hush CLI application.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/hush-sh/hush/internal/audio"
	"github.com/hush-sh/hush/internal/catalog"
	"github.com/hush-sh/hush/internal/mixer"
	"github.com/hush-sh/hush/internal/preset"
	"github.com/hush-sh/hush/internal/timer"
	"github.com/hush-sh/hush/ui"
)

var (
	// Version as provided by goreleaser.
	Version = ""
	// CommitSHA as provided by goreleaser.
	CommitSHA = ""

	configFile  string
	catalogPath string
	soundsDir   string
	presetDir   string
	mouse       bool
	width       uint
	volume      int
	noAudio     bool

	rootCmd = &cobra.Command{
		Use:   "hush",
		Short: "Mix ambient sounds on the CLI, peacefully",
		Long: paragraph(
			fmt.Sprintf("\nMix looping ambient sounds on the CLI, %s.", keyword("peacefully")),
		),
		SilenceErrors:    false,
		SilenceUsage:     true,
		TraverseChildren: true,
		Args:             cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return validateOptions(cmd)
		},
		RunE: func(*cobra.Command, []string) error {
			return runTUI()
		},
	}
)

func validateOptions(cmd *cobra.Command) error {
	// grab config values from Viper
	width = viper.GetUint("width")
	mouse = viper.GetBool("mouse")
	catalogPath = viper.GetString("catalog")
	soundsDir = viper.GetString("sounds")
	presetDir = viper.GetString("presets")
	volume = viper.GetInt("volume")
	noAudio = viper.GetBool("noaudio")

	if catalogPath != "" && soundsDir != "" {
		return fmt.Errorf("cannot use both --catalog and --sounds-dir")
	}

	// Detect terminal width
	if !cmd.Flags().Changed("width") {
		isTerminal := term.IsTerminal(int(os.Stdout.Fd()))
		if isTerminal && width == 0 {
			w, _, err := term.GetSize(int(os.Stdout.Fd()))
			if err == nil {
				width = uint(w) //nolint:gosec
			}
			if width > 120 {
				width = 120
			}
		}
		if width == 0 {
			width = 80
		}
	}
	return nil
}

// expandPath resolves a leading ~ in user-supplied paths.
func expandPath(path string) string {
	if path == "" {
		return path
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}

// buildCatalog resolves the sound catalog from flags: a user catalog file, a
// scanned directory of audio files, or the embedded default.
func buildCatalog(cfg ui.Config) (*catalog.Catalog, error) {
	switch {
	case cfg.CatalogPath != "":
		return catalog.Load(expandPath(cfg.CatalogPath))
	case cfg.SoundsDir != "":
		return catalog.ScanDir(expandPath(cfg.SoundsDir))
	default:
		return catalog.Default(), nil
	}
}

func runTUI() error {
	// Read environment to get debugging stuff
	cfg, err := env.ParseAs[ui.Config]()
	if err != nil {
		return fmt.Errorf("error parsing config: %v", err)
	}

	if catalogPath != "" {
		cfg.CatalogPath = catalogPath
	}
	if soundsDir != "" {
		cfg.SoundsDir = soundsDir
	}
	if presetDir != "" {
		cfg.PresetDir = presetDir
	}
	cfg.EnableMouse = mouse
	cfg.Width = width
	if volume > 0 {
		cfg.DefaultVolume = volume
	}
	if noAudio {
		cfg.AudioEnabled = false
	}

	cat, err := buildCatalog(cfg)
	if err != nil {
		return fmt.Errorf("unable to load catalog: %w", err)
	}

	var backend audio.Backend
	if cfg.AudioEnabled {
		engine, err := audio.NewEngine(cfg.SampleRate)
		if err != nil {
			log.Warn("audio device unavailable, running silent", "error", err)
		} else {
			backend = engine
		}
	}

	dispatcher := audio.NewDispatcher(backend)
	if cfg.CatalogPath != "" {
		dispatcher.LoadCatalog(expandPath(cfg.CatalogPath))
	}
	store := mixer.NewStore(mixer.FromCatalog(cat.All()), dispatcher)
	controls := mixer.NewControls(store)
	if cfg.DefaultVolume > 0 && cfg.DefaultVolume != mixer.DefaultVolume {
		controls.SetMasterVolume(cfg.DefaultVolume)
	}

	eng := timer.New()
	eng.OnComplete(controls.PauseAll)

	dir := cfg.PresetDir
	if dir == "" {
		dir, err = preset.DefaultDir()
		if err != nil {
			return fmt.Errorf("unable to resolve preset directory: %w", err)
		}
	}
	presets, err := preset.NewStore(expandPath(dir))
	if err != nil {
		return fmt.Errorf("unable to open preset store: %w", err)
	}

	deps := ui.Deps{
		Catalog:  cat,
		Store:    store,
		Controls: controls,
		Timer:    eng,
		Presets:  presets,
	}

	// Run Bubble Tea program
	if _, err := ui.NewProgram(cfg, deps).Run(); err != nil {
		return fmt.Errorf("unable to run tui program: %w", err)
	}

	// Let in-flight backend commands settle before tearing the device down.
	dispatcher.Wait()
	if backend != nil {
		if err := backend.Close(); err != nil {
			log.Debug("audio close", "error", err)
		}
	}
	return nil
}

func main() {
	closer, err := setupLog()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		_ = closer()
		os.Exit(1)
	}
	_ = closer()
}

func init() {
	tryLoadConfigFromDefaultPlaces()
	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		Version = "unknown (built from source)"
	}
	rootCmd.Version = Version
	rootCmd.InitDefaultCompletionCmd()

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", fmt.Sprintf("config file (default %s)", viper.GetViper().ConfigFileUsed()))
	rootCmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", "sound catalog JSON file")
	rootCmd.Flags().StringVarP(&soundsDir, "sounds-dir", "d", "", "build the catalog by scanning a directory of audio files")
	rootCmd.Flags().StringVar(&presetDir, "preset-dir", "", "directory for saved presets")
	rootCmd.Flags().UintVarP(&width, "width", "w", 0, "render width (set to 0 to auto-detect)")
	rootCmd.Flags().IntVarP(&volume, "volume", "v", 0, "starting volume for every sound (1-100)")
	rootCmd.Flags().BoolVarP(&mouse, "mouse", "m", false, "enable mouse wheel")
	_ = rootCmd.Flags().MarkHidden("mouse")
	rootCmd.Flags().BoolVar(&noAudio, "no-audio", false, "run without an audio device")

	// Config bindings
	_ = viper.BindPFlag("catalog", rootCmd.Flags().Lookup("catalog"))
	_ = viper.BindPFlag("sounds", rootCmd.Flags().Lookup("sounds-dir"))
	_ = viper.BindPFlag("presets", rootCmd.Flags().Lookup("preset-dir"))
	_ = viper.BindPFlag("width", rootCmd.Flags().Lookup("width"))
	_ = viper.BindPFlag("volume", rootCmd.Flags().Lookup("volume"))
	_ = viper.BindPFlag("mouse", rootCmd.Flags().Lookup("mouse"))
	_ = viper.BindPFlag("noaudio", rootCmd.Flags().Lookup("no-audio"))

	viper.SetDefault("width", 0)
	viper.SetDefault("mouse", false)

	rootCmd.AddCommand(configCmd, manCmd)
}

func tryLoadConfigFromDefaultPlaces() {
	scope := gap.NewScope(gap.User, "hush")
	dirs, err := scope.ConfigDirs()
	if err != nil {
		fmt.Println("Could not load find configuration directory.")
		os.Exit(1)
	}

	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		dirs = append([]string{filepath.Join(c, "hush")}, dirs...)
	}

	if c := os.Getenv("HUSH_CONFIG_HOME"); c != "" {
		dirs = append([]string{c}, dirs...)
	}

	for _, v := range dirs {
		viper.AddConfigPath(v)
	}

	viper.SetConfigName("hush")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("hush")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn("Could not parse configuration file", "err", err)
		}
	}

	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("Using configuration file", "path", viper.ConfigFileUsed())
		return
	}

	if viper.ConfigFileUsed() == "" {
		configFile = filepath.Join(dirs[0], "hush.yml")
	}
	if err := ensureConfigFile(); err != nil {
		log.Error("Could not create default configuration", "error", err)
	}
}
