package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"contract-mapper/internal/app"
	"contract-mapper/internal/mapping"
)

type suggestOptions struct {
	Source  string
	Target  string
	Output  string
	Persist bool
	Refresh bool
}

func newSuggestCommand() *cobra.Command {
	opts := suggestOptions{}
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest field mappings from a source contract to a target contract",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSuggest(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Source, "source", "", "Source contract id")
	cmd.Flags().StringVar(&opts.Target, "target", "", "Target contract id")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write the suggestions to this mapping file")
	cmd.Flags().BoolVar(&opts.Persist, "persist", false, "Merge the suggestions into the stored rules")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "Ignore cached suggestions")
	_ = viper.BindPFlag("source", cmd.Flags().Lookup("source"))
	_ = viper.BindPFlag("target", cmd.Flags().Lookup("target"))
	return cmd
}

func runSuggest(ctx context.Context, cmd *cobra.Command, opts suggestOptions) error {
	b, err := newAppService(ctx, nil)
	if err != nil {
		return err
	}
	defer b.Close()

	result, err := b.service.Suggest(ctx, app.SuggestRequest{
		SourceID: resolveString(cmd, opts.Source, "source", "source"),
		TargetID: resolveString(cmd, opts.Target, "target", "target"),
		Persist:  opts.Persist,
		Refresh:  opts.Refresh,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	writeSuggestResult(out, result)

	if opts.Output != "" {
		set := mapping.NewSet(result.Source.ID, result.Target.ID, result.Rules)
		if err := mapping.WriteFile(set, opts.Output); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %d rules to %s\n", len(result.Rules), opts.Output)
	}

	return nil
}

func writeSuggestResult(w io.Writer, result app.SuggestResult) {
	fmt.Fprintf(w, "%s → %s: %d suggestions", result.Source.DisplayName(), result.Target.DisplayName(), len(result.Rules))
	if result.Cached {
		fmt.Fprint(w, " (cached)")
	}
	fmt.Fprintln(w)

	if len(result.Rules) > 0 {
		printRules(w, result.Rules)
	}

	for _, u := range result.Unmatched {
		if u.BestTarget == "" {
			fmt.Fprintf(w, "unmatched: %s\n", u.SourcePath)
			continue
		}
		fmt.Fprintf(w, "unmatched: %s (best %s at %.2f)\n", u.SourcePath, u.BestTarget, u.BestScore)
	}

	for _, a := range result.Ambiguous {
		fmt.Fprintf(w, "ambiguous: %s → %s (%.2f), runner-up %s (%.2f)\n",
			a.SourcePath, a.Chosen, a.ChosenScore, a.RunnerUp, a.RunnerScore)
	}
}
