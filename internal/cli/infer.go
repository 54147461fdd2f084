package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"

	"contract-mapper/internal/app"
	"contract-mapper/internal/contract"
)

type inferOptions struct {
	Name       string
	Output     string
	Save       bool
	GoPackages []string
	GoDir      string
}

func newInferCommand() *cobra.Command {
	opts := inferOptions{}
	cmd := &cobra.Command{
		Use:   "infer [file.csv]",
		Short: "Infer a contract from a CSV sample or from Go structs",
		Long: "Infer a contract from the header and sample rows of a CSV file, or with\n" +
			"--go-package from the exported structs of Go packages.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfer(cmd.Context(), cmd, args, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Name, "name", "", "Contract id (defaults to the file or package name)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write the contract YAML to this file instead of stdout")
	cmd.Flags().BoolVar(&opts.Save, "save", false, "Store the contract in the contract repository")
	cmd.Flags().StringSliceVar(&opts.GoPackages, "go-package", nil, "Go package patterns to derive the contract from")
	cmd.Flags().StringVar(&opts.GoDir, "go-dir", ".", "Directory Go package patterns are resolved from")
	return cmd
}

func runInfer(ctx context.Context, cmd *cobra.Command, args []string, opts inferOptions) error {
	if len(opts.GoPackages) == 0 && len(args) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("infer needs a CSV file or --go-package")
	}

	b, err := newAppService(ctx, nil)
	if err != nil {
		return err
	}
	defer b.Close()

	var c *contract.Contract
	if len(opts.GoPackages) > 0 {
		c, err = b.service.Import(ctx, app.ImportRequest{
			Name:     opts.Name,
			Dir:      opts.GoDir,
			Patterns: opts.GoPackages,
			Save:     opts.Save,
		})
	} else {
		c, err = inferCSV(ctx, b.service, args[0], opts)
	}
	if err != nil {
		return err
	}

	if opts.Output != "" {
		if err := contract.WriteFile(c, opts.Output); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote contract %s with %d fields to %s\n", c.ID, c.FieldCount(), opts.Output)
		return nil
	}

	data, err := contract.Marshal(c)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func inferCSV(ctx context.Context, service app.Service, path string, opts inferOptions) (*contract.Contract, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("sample file not found: " + path).
			WithCause(err)
	}
	defer f.Close()

	name := opts.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return service.Infer(ctx, app.InferRequest{Name: name, Reader: f, Save: opts.Save})
}
