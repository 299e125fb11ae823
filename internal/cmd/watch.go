package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomasbasham/cli-runtime/iooption"
	"github.com/tomasbasham/cli-runtime/templates"

	"uplink/internal/client"
)

type WatchOptions struct {
	Server   string
	Interval time.Duration

	iooption.IOStreams
}

var (
	watchLong = templates.LongDesc(`
		Probe the server's /health endpoint immediately and then on a fixed
		interval until interrupted.`)

	watchExample = templates.Examples(`
		# Check every minute
		uploader watch --server http://localhost:3000

		# Check every ten seconds
		uploader watch --server http://localhost:3000 --interval 10s`)
)

func NewWatchOptions(streams iooption.IOStreams) *WatchOptions {
	return &WatchOptions{
		IOStreams: streams,
	}
}

func NewWatchCommand(o *WatchOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "watch",
		Short:   "Watch server health",
		Long:    watchLong,
		Example: watchExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&o.Server, "server", "s", "", "Server base URL (default: $"+EnvServer+")")
	cmd.Flags().DurationVarP(&o.Interval, "interval", "i", client.DefaultHealthInterval, "Time between health probes")

	return cmd
}

func (o *WatchOptions) Complete(cmd *cobra.Command, args []string) error {
	o.Server = envDefault(o.Server, EnvServer)
	return nil
}

func (o *WatchOptions) Validate() error {
	if o.Server == "" {
		return fmt.Errorf("--server or $%s is required", EnvServer)
	}
	if o.Interval <= 0 {
		return fmt.Errorf("--interval must be positive")
	}
	return nil
}

func (o *WatchOptions) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	renderer := client.NewTerminalRenderer(o.Out)
	c := client.New(o.Server, "")
	client.NewHealthMonitor(c, o.Interval, renderer.ReportHealth).Run(ctx)
	return nil
}
