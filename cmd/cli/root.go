package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
)

// BuildServerFunc assembles the configured gRPC server and returns it with
// the address it should listen on.
type BuildServerFunc func(ctx context.Context) (*grpc.Server, string, error)

func NewRootCommand(build BuildServerFunc) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "da-assistant",
		Short: "Da Assistant intent server",
		Long: `Da Assistant is the intent-recognition core of the loyalty marketing
platform: it classifies free-form user text into intents, extracts entities
and dispatches them over a gRPC chat and execution surface.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(NewStartCommand(build))
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// Execute runs the root command
func Execute(build BuildServerFunc) {
	if err := NewRootCommand(build).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
