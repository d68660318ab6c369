package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/kubev2v/hello-server/internal/config"
	"github.com/kubev2v/hello-server/internal/handlers"
	"github.com/kubev2v/hello-server/internal/server"
	"github.com/kubev2v/hello-server/pkg/log"
)

const shutdownTimeout = 10 * time.Second

func NewRunCommand() *cobra.Command {
	v := config.NewViper()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server.

The running mode and the port are read from the environment:

  APP_ENV (or NODE_ENV)   development, test or production
  PORT                    listen port

In production, security headers are sent unless DISABLE_SECURITY_HEADERS
(or DISABLE_HELMET) is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), v)
		},
	}

	cobra.CheckErr(registerFlags(cmd.Flags(), v))

	return cmd
}

// registerFlags adds the optional settings to flags. Defaults stay empty so
// the environment and the configuration defaults apply when a flag is unset.
func registerFlags(flags *pflag.FlagSet, v *viper.Viper) error {
	flags.String(config.KeyBasePath, "", "base path of the API routes (default \"/api\")")
	flags.String(config.KeyStaticsFolder, "", "folder of the static files (default \"public\")")
	flags.String(config.KeyLogLevel, "", "log level: debug, info, warn, error (default \"info\")")
	flags.String(config.KeyLogFormat, "", "log format: console or json (default \"console\")")
	return v.BindPFlags(flags)
}

func run(ctx context.Context, out io.Writer, v *viper.Viper) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logger, err := log.NewLogger(cfg.LogFormat, cfg.LogLevel, cfg.Server.Mode == config.ModeDevelopment)
	if err != nil {
		return err
	}
	undo := zap.ReplaceGlobals(logger)
	defer func() {
		_ = logger.Sync()
		undo()
	}()

	zap.S().Named("run").Debugw("configuration loaded", "config", cfg.Fields())

	srv, err := server.NewServer(cfg, logger, handlers.NewRoutes())
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	printBanner(out, cfg)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}
	return nil
}

func printBanner(out io.Writer, cfg *config.Configuration) {
	title := color.New(color.FgGreen, color.Bold)
	label := color.New(color.FgCyan)

	title.Fprintf(out, "hello-server %s listening on http://localhost%s\n", version, cfg.Addr())
	label.Fprint(out, "  mode: ")
	fmt.Fprintln(out, cfg.Server.Mode)
	label.Fprint(out, "  api:  ")
	fmt.Fprintln(out, cfg.Server.BasePath)
	label.Fprint(out, "  docs: ")
	fmt.Fprintln(out, path.Join(cfg.Server.BasePath, "docs"))
}
