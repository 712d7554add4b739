package cli

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/dastudio/da-assistant/internal/version"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func NewStartCommand(build BuildServerFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the assistant gRPC server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(build)
		},
	}

	return cmd
}

func runServer(build BuildServerFunc) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Info().Str("version", version.GetVersion()).Msg("Starting assistant service")

	srv, address, err := build(ctx)
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)

	go func() {
		log.Info().Str("address", address).Msg("gRPC server listening")
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info().Msg("Shutting down gRPC server")
		srv.GracefulStop()
		return nil
	}
}
