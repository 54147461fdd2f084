package cli

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"

	"contract-mapper/internal/app"
	"contract-mapper/internal/common"
	"contract-mapper/internal/mapping"
)

type validateOptions struct {
	Source  string
	Target  string
	Mapping string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate mapping rules against their contracts",
		Long: "Validate the rules of a mapping file, or the stored rules for a contract pair.\n" +
			"Exits with status 3 when any rule has an error finding.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Source, "source", "", "Source contract id (defaults to the mapping file's)")
	cmd.Flags().StringVar(&opts.Target, "target", "", "Target contract id (defaults to the mapping file's)")
	cmd.Flags().StringVarP(&opts.Mapping, "mapping", "m", "", "Mapping file to validate")
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions) error {
	req := app.ValidateRequest{
		SourceID: resolveString(cmd, opts.Source, "source", "source"),
		TargetID: resolveString(cmd, opts.Target, "target", "target"),
		Stored:   opts.Mapping == "",
	}

	if opts.Mapping != "" {
		set, err := mapping.LoadFile(opts.Mapping)
		if err != nil {
			return err
		}
		req.SourceID = common.FirstNonEmpty(req.SourceID, set.Source)
		req.TargetID = common.FirstNonEmpty(req.TargetID, set.Target)
		req.Rules = set.Rules
	}

	b, err := newAppService(ctx, nil)
	if err != nil {
		return err
	}
	defer b.Close()

	result, err := b.service.Validate(ctx, req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	report := result.Report
	if findings := report.Findings(); len(findings) > 0 {
		printFindings(out, findings)
	}
	for _, info := range report.Infos {
		fmt.Fprintf(out, "info: %s\n", info.Message)
	}
	fmt.Fprintln(out, report.Summary())

	if report.HasErrors() {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("%s: %d error findings", validationFailedMsg, len(report.Errors))).
			WithCause(report.Error())
	}

	return nil
}
