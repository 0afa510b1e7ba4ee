/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/eslsoft/toeicprep/internal/app"
	"github.com/eslsoft/toeicprep/internal/infrastructure/config"
	"github.com/eslsoft/toeicprep/internal/infrastructure/database"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the connect HTTP server and the gRPC health server",
	RunE: func(cmd *cobra.Command, args []string) error {
		autoMigrate, _ := cmd.Flags().GetBool("migrate")

		if autoMigrate {
			_, drv, _, cleanup, err := openDatabase()
			if err != nil {
				return err
			}
			err = database.Migrate(cmd.Context(), drv)
			cleanup()
			if err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		container, cleanup, err := app.Initialize(cfg)
		if err != nil {
			return fmt.Errorf("initialize: %w", err)
		}
		defer cleanup()

		logger := container.Logger
		srv := container.Server

		// Run gRPC & HTTP concurrently
		errCh := make(chan error, 2)
		go func() { errCh <- srv.StartGRPC() }()
		go func() { errCh <- srv.StartHTTP() }()

		// Graceful shutdown
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case sig := <-sigCh:
			logger.Infof("received signal: %s, shutting down", sig)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		case err := <-errCh:
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
			return err
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Bool("migrate", false, "create or upgrade the schema before serving")
	serveCmd.Flags().Int("http-port", 0, "HTTP port for the connect services (overrides server.http_port)")
	serveCmd.Flags().Int("grpc-port", 0, "gRPC port for the health service (overrides server.grpc_port)")

	bindFlagToViper("server.http_port", serveCmd.Flags().Lookup("http-port"))
	bindFlagToViper("server.grpc_port", serveCmd.Flags().Lookup("grpc-port"))
}
