package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tomasbasham/cli-runtime/iooption"
	"github.com/tomasbasham/cli-runtime/templates"

	"uplink/internal/client"
	"uplink/internal/domain"
)

// ErrUploadFailed is returned after the failure has already been rendered.
var ErrUploadFailed = errors.New("upload failed")

type UploadOptions struct {
	encoding domain.Encoding

	Path     string
	Server   string
	Token    string
	Encoding string
	Project  string

	iooption.IOStreams
}

var (
	uploadLong = templates.LongDesc(`
		Upload a single file. JPEG, PNG, PDF and plain text files up to 10MB
		are accepted by the server. Progress is printed while the file is sent.`)

	uploadExample = templates.Examples(`
		# Upload a document as multipart form data
		uploader upload report.pdf --server http://localhost:3000 --token "$TOKEN"

		# Upload as base64 JSON and tag it with a project
		uploader upload cat.png --encoding json --project p1`)
)

func NewUploadOptions(streams iooption.IOStreams) *UploadOptions {
	return &UploadOptions{
		IOStreams: streams,
	}
}

func NewUploadCommand(o *UploadOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "upload FILE",
		DisableFlagsInUseLine: true,
		Short:                 "Upload a file",
		Long:                  uploadLong,
		Example:               uploadExample,
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
	cmd.Flags().StringVarP(&o.Token, "token", "t", "", "Bearer token (default: $"+EnvToken+")")
	cmd.Flags().StringVarP(&o.Encoding, "encoding", "e", string(domain.EncodingMultipart), "Request encoding: multipart or json")
	cmd.Flags().StringVarP(&o.Project, "project", "p", "", "Project ID to attach to the upload")

	return cmd
}

func (o *UploadOptions) Complete(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("FILE is required")
	}
	o.Path = args[0]
	o.Server = envDefault(o.Server, EnvServer)
	o.Token = envDefault(o.Token, EnvToken)
	return nil
}

func (o *UploadOptions) Validate() error {
	if o.Server == "" {
		return fmt.Errorf("--server or $%s is required", EnvServer)
	}
	if o.Token == "" {
		return fmt.Errorf("--token or $%s is required", EnvToken)
	}
	e, ok := domain.ParseEncoding(o.Encoding)
	if !ok {
		return fmt.Errorf("unknown encoding %q: use multipart or json", o.Encoding)
	}
	o.encoding = e
	return nil
}

func (o *UploadOptions) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	f, err := client.OpenFile(o.Path)
	if err != nil {
		return err
	}

	c := client.New(o.Server, o.Token,
		client.WithEncoding(o.encoding),
		client.WithProjectID(o.Project),
	)
	renderer := client.NewTerminalRenderer(o.Out)

	fmt.Fprintf(o.Out, "Uploading %s (%s, %d bytes)...\n", f.Name, f.ContentType, f.Size())
	if _, err := client.NewOrchestrator(c, renderer).Submit(ctx, f); err != nil {
		return ErrUploadFailed
	}
	return nil
}
