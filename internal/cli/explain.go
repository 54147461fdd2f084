package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"contract-mapper/internal/app"
)

type explainOptions struct {
	Source string
	Target string
	Field  string
	Limit  int
}

func newExplainCommand() *cobra.Command {
	opts := explainOptions{}
	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Show the ranked target candidates for one source field",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExplain(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Source, "source", "", "Source contract id")
	cmd.Flags().StringVar(&opts.Target, "target", "", "Target contract id")
	cmd.Flags().StringVar(&opts.Field, "field", "", "Source field path (model.field)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 5, "Maximum number of candidates")
	return cmd
}

func runExplain(ctx context.Context, cmd *cobra.Command, opts explainOptions) error {
	b, err := newAppService(ctx, nil)
	if err != nil {
		return err
	}
	defer b.Close()

	result, err := b.service.Explain(ctx, app.ExplainRequest{
		SourceID:    resolveString(cmd, opts.Source, "source", "source"),
		TargetID:    resolveString(cmd, opts.Target, "target", "target"),
		SourceField: opts.Field,
		Limit:       resolveInt(cmd, opts.Limit, "explain_limit", "limit"),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "candidates for %s\n", result.SourceField)
	if len(result.Candidates) == 0 {
		fmt.Fprintln(out, "no target fields")
		return nil
	}

	printCandidates(out, result.Candidates)
	if result.Ambiguous {
		fmt.Fprintln(out, "ambiguous: the two best candidates are too close to call")
	}

	return nil
}
