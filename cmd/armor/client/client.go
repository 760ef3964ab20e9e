// Package client provides commands that call a running armor gRPC server
package client

import (
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/armor-builder/internal/errors"
	"github.com/KirkDiggler/armor-builder/internal/handlers/armor/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all remote commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running armor server",
	Long:  `Client commands run the armor set operations against a server started with "armor serve".`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(getSetCmd)
	ClientCmd.AddCommand(listSetsCmd)
	ClientCmd.AddCommand(getPieceCmd)
}

// createArmorClient dials the server; call the returned func when done
func createArmorClient() (*v1alpha1.Client, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to connect to %s", serverAddr)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewClient(conn), cleanup, nil
}
