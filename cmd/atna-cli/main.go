package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/persistorai/atna/internal/config"
	"github.com/persistorai/atna/internal/models"
	"github.com/persistorai/atna/internal/service"
)

// Build-time variables set via ldflags.
var (
	commit    = ""
	buildDate = ""
)

var (
	appCfg *config.Config
	svc    *service.MessageService
	log    = logrus.New()

	flagFormat      string
	flagIndent      int
	flagDeclaration bool
	flagOutput      string
	flagLogLevel    string
	flagMetricsFile string
	flagSystemName  string
	flagHostname    string
	flagProfile     string
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("atna version %s (commit: %s, built: %s)", config.Version, commit, buildDate)
	}
	return fmt.Sprintf("atna version %s", config.Version)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "atna",
		Short:   "Build IHE ATNA / DICOM audit messages",
		Version: versionString(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return writeMetrics()
		},
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagFormat, "format", "xml", "Output format: xml|json|jcs (env: ATNA_FORMAT)")
	pf.IntVar(&flagIndent, "indent", 4, "XML indent width, 0 for compact (env: ATNA_INDENT)")
	pf.BoolVar(&flagDeclaration, "declaration", false, "Prefix XML output with a declaration (env: ATNA_XML_DECLARATION)")
	pf.StringVarP(&flagOutput, "output", "o", "", "Write output to file instead of stdout")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level (env: LOG_LEVEL)")
	pf.StringVar(&flagMetricsFile, "metrics-file", "", "Write Prometheus metrics to this .prom file on exit (env: ATNA_METRICS_FILE)")
	pf.StringVar(&flagSystemName, "system-name", "", "Reporting system name (env: ATNA_SYSTEM_NAME)")
	pf.StringVar(&flagHostname, "hostname", "", "Reporting host name (env: ATNA_HOSTNAME)")
	pf.StringVar(&flagProfile, "profile", "", "Config file profile (default: active_profile)")

	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newAppActivityCmd())
	rootCmd.AddCommand(newAuditLogUsedCmd())
	rootCmd.AddCommand(newNodeAuthCmd())
	rootCmd.AddCommand(newBatchCmd())
	rootCmd.AddCommand(newStreamCmd())
	rootCmd.AddCommand(newDoctorCmd())

	return rootCmd
}

// setup resolves configuration (flag > env > config file > default) and
// builds the logger and message service.
func setup(cmd *cobra.Command) error {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	path, file, err := loadConfigFile()
	switch {
	case err == nil:
		applyConfigFile(cfg, file.resolve(flagProfile))
	case path != "" && !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	configureLogger(cfg)
	appCfg = cfg
	svc = service.NewMessageService(cfg, log)

	return nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("format") {
		f, err := models.ParseFormat(flagFormat)
		if err != nil {
			return fmt.Errorf("--format: %w", err)
		}
		cfg.Format = f
	}
	if flags.Changed("indent") {
		cfg.Indent = flagIndent
	}
	if flags.Changed("declaration") {
		cfg.XMLDeclaration = flagDeclaration
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = strings.ToLower(flagLogLevel)
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = flagMetricsFile
	}
	if flags.Changed("system-name") {
		cfg.SystemName = flagSystemName
	}
	if flags.Changed("hostname") {
		cfg.Hostname = flagHostname
	}

	return nil
}

func configureLogger(cfg *config.Config) {
	log.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{})
	}
}

func writeMetrics() error {
	if appCfg == nil || appCfg.MetricsFile == "" {
		return nil
	}

	if err := prometheus.WriteToTextfile(appCfg.MetricsFile, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}

	return nil
}
