package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cliflag "github.com/tomasbasham/cli-runtime/flag"
	"github.com/tomasbasham/cli-runtime/iooption"
	"github.com/tomasbasham/cli-runtime/printer"
	"github.com/tomasbasham/cli-runtime/templates"
)

// Environment variables read when the matching flag is not set.
const (
	EnvServer = "UPLINK_SERVER"
	EnvToken  = "UPLINK_TOKEN"
)

var (
	rootLong = templates.LongDesc(`
		Upload files to an uplink server and watch its health.`)

	rootExamples = templates.Examples(`
		# Upload a PNG
		uploader upload cat.png --server http://localhost:3000 --token "$TOKEN"

		# Check the server every minute
		uploader watch --server http://localhost:3000`)

	// Injected at build time using ldflags.
	version = ""
	commit  = ""
)

// UploaderOptions defines the options for the `uploader` command.
type UploaderOptions struct {
	iooption.IOStreams
}

// NewUploaderOptions provides an initialised UploaderOptions instance.
func NewUploaderOptions(streams iooption.IOStreams) *UploaderOptions {
	return &UploaderOptions{
		IOStreams: streams,
	}
}

// NewRootCommand creates the `uploader` command with default arguments.
func NewRootCommand() *cobra.Command {
	options := NewUploaderOptions(iooption.IOStreams{
		In:     os.Stdin,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	})

	return NewRootCommandWithArgs(options)
}

// NewRootCommandWithArgs creates the `uploader` command and its nested
// children.
func NewRootCommandWithArgs(o *UploaderOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "uploader [command]",
		Version:               versionInfo(),
		DisableFlagsInUseLine: true,
		Short:                 "Upload client for the uplink service",
		Long:                  rootLong,
		Example:               rootExamples,
		SilenceErrors:         true,
		SilenceUsage:          true,
	}

	printerOpts := printer.WarningPrinterOptions{Color: true}
	printer := printer.NewWarningPrinter(o.ErrOut, printerOpts)
	cmd.SetGlobalNormalizationFunc(cliflag.WarnWordSepNormalizeFunc(printer))

	cmd.AddCommand(NewUploadCommand(NewUploadOptions(o.IOStreams)))
	cmd.AddCommand(NewWatchCommand(NewWatchOptions(o.IOStreams)))

	cmd.SetGlobalNormalizationFunc(cliflag.WordSepNormalizeFunc())

	return cmd
}

func versionInfo() string {
	if version == "" {
		return ""
	}
	return fmt.Sprintf("%s (commit: %s)", version, commit)
}

// envDefault returns value, or the environment variable when value is empty.
func envDefault(value, env string) string {
	if value != "" {
		return value
	}
	return os.Getenv(env)
}
