package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amonks/todolist/web"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// td serve
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the todo list as a web page",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var (
	serveAddr  string
	serveTitle string
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:8080", "Address to listen on")
	serveCmd.Flags().StringVar(&serveTitle, "title", "", "Page title")
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	listener, err := net.Listen("tcp", serveAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", serveAddr, err)
	}

	server := &http.Server{
		Handler:           web.NewHandler(a.session, web.Options{Title: serveTitle, Logger: a.logger}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()

	fmt.Fprintf(cmd.ErrOrStderr(), "Serving %s on http://%s\n", a.settings.Key, listener.Addr())
	a.logger.Debug("server started", zap.String("addr", listener.Addr().String()))

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
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}
