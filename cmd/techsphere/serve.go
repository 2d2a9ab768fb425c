package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/san-kum/techsphere/internal/layout"
	"github.com/san-kum/techsphere/internal/log"
	"github.com/san-kum/techsphere/internal/server"
)

const shutdownTimeout = 5 * time.Second

var (
	addr    string
	envFile string
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve icon positions and orbit steps over HTTP",
		RunE:  serve,
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address (env TECHSPHERE_ADDR)")
	cmd.Flags().StringVar(&envFile, "env", ".env", "dotenv file loaded before reading the environment")
	cmd.Flags().IntVarP(&numIcons, "icons", "n", len(layout.DefaultIcons()), "number of icons in the catalog")
	cmd.Flags().Float64Var(&radius, "radius", layout.Radius, "default sphere radius")
	return cmd
}

func serve(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if v := os.Getenv("TECHSPHERE_ADDR"); v != "" && !cmd.Flags().Changed("addr") {
		addr = v
	}
	if os.Getenv("GO_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := layout.Validate(numIcons, radius); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.New(layout.Icons(numIcons), radius).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", addr, "icons", numIcons, "radius", radius)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
