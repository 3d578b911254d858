package cmd

import (
	"context"
	goflag "flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/vladimirvivien/csdview/application"
	"github.com/vladimirvivien/csdview/buildinfo"
	"github.com/vladimirvivien/csdview/config"
)

var (
	examples = `
# Start %[1]s with the built-in persistent and variable elements
%[1]s

# Start %[1]s with a synthetic signal to try the overlay
%[1]s --demo

# Refuse new elements once all six marker shapes are in use
%[1]s --elements elements.yaml --palette-policy reject

# Write the default configuration to $HOME/.csdview/config.yaml
%[1]s --init-config
`
)

type csdviewCmdOptions struct {
	configFile   string
	initConfig   bool
	elementsFile string
	palette      string
	markerHeight float64
	columns      int
	showLines    bool
	demo         bool
	logFile      string
	klogFlags    *goflag.FlagSet
}

// NewCSDViewCmd returns the root command of csdview
func NewCSDViewCmd() *cobra.Command {
	return newCSDViewCmdOptions().command()
}

func newCSDViewCmdOptions() *csdviewCmdOptions {
	o := &csdviewCmdOptions{klogFlags: goflag.NewFlagSet("klog", goflag.ContinueOnError)}
	klog.InitFlags(o.klogFlags)
	return o
}

func (o *csdviewCmdOptions) command() *cobra.Command {
	program := filepath.Base(os.Args[0])
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:          fmt.Sprintf("%s [flags]", program),
		Short:        "Overlays element charge state m/q indicators on a charge state distribution",
		Example:      fmt.Sprintf(examples, program),
		Version:      buildinfo.String(),
		SilenceUsage: true,
		RunE: func(c *cobra.Command, args []string) error {
			return o.runCSDView(c, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&o.configFile, "config", "", "Configuration file (default $HOME/.csdview/config.yaml)")
	flags.BoolVar(&o.initConfig, "init-config", false, "Write the default configuration file and exit")
	flags.StringVar(&o.elementsFile, "elements", defaults.ElementsFile, "YAML file replacing the built-in persistent and variable elements")
	flags.StringVar(&o.palette, "palette-policy", defaults.PalettePolicy, "What to do when every marker shape is in use: cycle (reuse the least used shape) or reject")
	flags.Float64Var(&o.markerHeight, "marker-height", defaults.MarkerHeight, "Height of the marker row as a fraction of the y range")
	flags.IntVar(&o.columns, "columns", defaults.Columns, "Columns of the custom element toggle grid")
	flags.BoolVar(&o.showLines, "show-lines", defaults.ShowLines, "Draw guide lines through plotted indicators")
	flags.BoolVar(&o.demo, "demo", defaults.Demo, "Display a synthetic signal with peaks at the built-in elements")
	flags.StringVar(&o.logFile, "log-file", defaults.LogFile, "Log file (default csdview.log in the temp directory)")
	flags.AddGoFlagSet(o.klogFlags)
	return cmd
}

// buildConfig layers the configuration: file, then CSDVIEW_* environment,
// then the flags set on the command line.
func (o *csdviewCmdOptions) buildConfig(flags *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.LoadConfig(o.configFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.FromEnv(); err != nil {
		return nil, err
	}

	if flags.Changed("elements") {
		cfg.ElementsFile = o.elementsFile
	}
	if flags.Changed("palette-policy") {
		cfg.PalettePolicy = o.palette
	}
	if flags.Changed("marker-height") {
		cfg.MarkerHeight = o.markerHeight
	}
	if flags.Changed("columns") {
		cfg.Columns = o.columns
	}
	if flags.Changed("show-lines") {
		cfg.ShowLines = o.showLines
	}
	if flags.Changed("demo") {
		cfg.Demo = o.demo
	}
	if flags.Changed("log-file") {
		cfg.LogFile = o.logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// setupLogging sends klog output to a file since tview owns the terminal.
func (o *csdviewCmdOptions) setupLogging(logFile string) error {
	if logFile == "" {
		logFile = filepath.Join(os.TempDir(), "csdview.log")
	}
	for name, value := range map[string]string{
		"logtostderr":      "false",
		"alsologtostderr":  "false",
		"log_file":         logFile,
		"skip_log_headers": "true",
	} {
		if err := o.klogFlags.Set(name, value); err != nil {
			return fmt.Errorf("klog flag %s: %w", name, err)
		}
	}
	return nil
}

func (o *csdviewCmdOptions) runCSDView(c *cobra.Command, args []string) error {
	if o.initConfig {
		if err := config.CreateDefaultConfigFile(o.configFile); err != nil {
			return err
		}
		fmt.Fprintf(c.OutOrStdout(), "Configuration file: %s\n", config.GetConfigPath(o.configFile))
		return nil
	}

	cfg, err := o.buildConfig(c.Flags())
	if err != nil {
		return err
	}
	if err := o.setupLogging(cfg.LogFile); err != nil {
		return err
	}
	defer klog.Flush()

	elements, err := config.LoadElements(cfg.ElementsFile)
	if err != nil {
		klog.ErrorS(err, "Failed to load elements", "file", cfg.ElementsFile)
		return err
	}
	klog.InfoS("Loaded elements",
		"file", cfg.ElementsFile,
		"persistent", len(elements.Persistent),
		"variable", len(elements.Variable),
	)

	app, err := application.New(cfg, elements)
	if err != nil {
		klog.ErrorS(err, "Failed to create application")
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// launch application
	appErr := make(chan error, 1)
	go func() {
		appErr <- app.Run(ctx)
	}()

	select {
	case err := <-appErr:
		if err != nil {
			return fmt.Errorf("app error: %w", err)
		}
	case <-ctx.Done():
		app.Stop()
		<-appErr
	}
	return nil
}
