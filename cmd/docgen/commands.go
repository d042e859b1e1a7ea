package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"docgen/internal/config"
	"docgen/internal/document"
	"docgen/internal/logger"
	"docgen/internal/render"
	"docgen/internal/service"
)

// errInvalidModel makes validate and render exit non-zero after the
// messages are printed.
var errInvalidModel = errors.New("model is invalid")

type cli struct {
	in       io.Reader
	out      io.Writer
	errOut   io.Writer
	registry *document.Registry
	verbose  bool
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	c := &cli{in: in, out: out, errOut: errOut, registry: document.Default()}

	root := &cobra.Command{
		Use:           "docgen",
		Short:         "Render business documents as PDF",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log generation events to stderr")

	root.AddCommand(c.typesCmd(), c.sampleCmd(), c.validateCmd(), c.renderCmd())
	return root
}

func (c *cli) service() service.DocumentService {
	cfg := config.Load()
	log := zap.NewNop()
	if c.verbose {
		log = logger.New(c.errOut, cfg.Location(), cfg.LogLevel)
	}
	return service.NewDocumentService(nil, nil, service.Options{
		Render: render.Options{
			Author:        cfg.PDF.Author,
			Creator:       cfg.PDF.Creator,
			OwnerPassword: cfg.PDF.OwnerPassword,
		},
		Logger: log,
	})
}

func (c *cli) lookup(slug string) (document.Descriptor, error) {
	d, ok := c.registry.Lookup(slug)
	if !ok {
		return nil, fmt.Errorf("unknown document type %q (see \"docgen types\")", slug)
	}
	return d, nil
}

func (c *cli) typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List supported document types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TYPE\tTITLE\tSAMPLE ONLY")
			for _, d := range c.registry.All() {
				fmt.Fprintf(tw, "%s\t%s\t%t\n", d.Slug(), d.Title(), d.SampleOnly())
			}
			return tw.Flush()
		},
	}
}

func (c *cli) sampleCmd() *cobra.Command {
	var (
		asJSON bool
		output string
	)
	cmd := &cobra.Command{
		Use:   "sample <type>",
		Short: "Write the sample document, or its model with --json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.lookup(args[0])
			if err != nil {
				return err
			}
			if asJSON {
				b, err := json.MarshalIndent(d.Sample(), "", "  ")
				if err != nil {
					return err
				}
				return c.write(output, append(b, '\n'))
			}

			out, err := c.service().Generate(cmd.Context(), d, d.Sample())
			if err != nil {
				return err
			}
			return c.write(output, out.Content)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "write the sample model as JSON")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func (c *cli) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <type> <model.json|->",
		Short: "Check a model against the type's rules",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, m, err := c.decode(args[0], args[1])
			if err != nil {
				return err
			}
			res := d.Validate(m)
			enc := json.NewEncoder(c.out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				return err
			}
			if !res.Valid {
				return errInvalidModel
			}
			return nil
		},
	}
}

func (c *cli) renderCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render <type> <model.json|->",
		Short: "Validate a model and render it as PDF",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, m, err := c.decode(args[0], args[1])
			if err != nil {
				return err
			}
			if d.SampleOnly() {
				return fmt.Errorf("%s only renders its sample", d.Slug())
			}
			if res := d.Validate(m); !res.Valid {
				fmt.Fprintln(c.errOut, strings.Join(res.Messages, "\n"))
				return errInvalidModel
			}

			out, err := c.service().Generate(cmd.Context(), d, m)
			if err != nil {
				return err
			}
			if output == "" {
				output = out.Filename
			}
			if err := c.write(output, out.Content); err != nil {
				return err
			}
			if output != "-" {
				fmt.Fprintf(c.errOut, "wrote %s (%d bytes)\n", output, len(out.Content))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", `output file, "-" for stdout (default: the document's filename)`)
	return cmd
}

// decode reads a model from path, or from stdin when path is "-".
func (c *cli) decode(slug, path string) (document.Descriptor, any, error) {
	d, err := c.lookup(slug)
	if err != nil {
		return nil, nil, err
	}

	var body []byte
	if path == "-" {
		body, err = io.ReadAll(c.in)
	} else {
		body, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read model: %w", err)
	}

	m, err := d.Decode(body)
	if err != nil {
		return nil, nil, err
	}
	return d, m, nil
}

func (c *cli) write(path string, b []byte) error {
	if path == "" || path == "-" {
		_, err := c.out.Write(b)
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
