package commands

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yigit/registrar/internal/app/services"
	"github.com/yigit/registrar/internal/bootstrap"
	"github.com/yigit/registrar/internal/cli"
	"github.com/yigit/registrar/internal/config"
	"github.com/yigit/registrar/internal/pkg/logger"
)

var (
	configPath string
	logLevel   string

	cfg *config.Config
	lgr zerolog.Logger
)

// Execute runs the registrar command line
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "registrar",
		Short:         "In-memory course registration manager",
		Long:          "Runs the interactive registration menu. Use 'serve' for the HTTP API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, lgr, err = bootstrap.LoadConfigAndSetupLogger(configPath, errOut)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}
			// stdout carries the menu protocol; logs go to errOut, pretty
			// only when a person is watching it.
			logger.Configure(logger.Config{
				Level:  logger.ParseLevel(cfg.Logging.Level),
				Pretty: isTerminal(errOut),
				Output: errOut,
			})
			lgr = logger.Get()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			menu := cli.NewMenu(svc, in, out, cli.Options{
				Banner: cfg.CLI.Banner,
				Logger: lgr,
			})
			return menu.Run(cmd.Context())
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the YAML config file (default "+config.DefaultPath+")")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level (debug, info, warn, error, disabled)")

	root.AddCommand(serveCmd(), coursesCmd(out))
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	return root
}

func newService() (services.RegistrationService, error) {
	deps, err := bootstrap.BuildDependencies(lgr)
	if err != nil {
		return nil, err
	}
	return deps.RegistrationService, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
