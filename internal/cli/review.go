package cli

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"contract-mapper/internal/app"
	"contract-mapper/internal/mapping"
	"contract-mapper/internal/tui"
)

type reviewOptions struct {
	Mapping        string
	Action         string
	TargetField    string
	Transformation string
}

func newReviewCommand() *cobra.Command {
	opts := reviewOptions{}
	cmd := &cobra.Command{
		Use:   "review [rule-id]",
		Short: "Confirm, reject or modify suggested rules",
		Long: "With --mapping, opens the interactive review screen for a mapping file.\n" +
			"With a rule id, applies --action to the stored rule.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Mapping != "" {
				return runReviewScreen(cmd.Context(), opts)
			}
			if len(args) == 0 {
				return errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg("review needs a rule id or --mapping")
			}
			return runReview(cmd.Context(), cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Mapping, "mapping", "m", "", "Mapping file to review interactively")
	cmd.Flags().StringVar(&opts.Action, "action", "", "Review action (confirm|reject|modify)")
	cmd.Flags().StringVar(&opts.TargetField, "target-field", "", "New target field for modify")
	cmd.Flags().StringVar(&opts.Transformation, "transformation", "", "New transformation hint for modify")
	return cmd
}

func runReview(ctx context.Context, cmd *cobra.Command, ruleID string, opts reviewOptions) error {
	action, err := mapping.ParseAction(opts.Action)
	if err != nil {
		return err
	}

	b, err := newAppService(ctx, nil)
	if err != nil {
		return err
	}
	defer b.Close()

	result, err := b.service.Review(ctx, app.ReviewRequest{
		RuleID:         ruleID,
		Action:         action,
		TargetField:    opts.TargetField,
		Transformation: opts.Transformation,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, result.Rule.String())
	if len(result.Findings) > 0 {
		printFindings(out, result.Findings)
	}

	return nil
}

func runReviewScreen(ctx context.Context, opts reviewOptions) error {
	set, err := mapping.LoadFile(opts.Mapping)
	if err != nil {
		return err
	}

	b, err := newAppService(ctx, nil)
	if err != nil {
		return err
	}
	defer b.Close()

	source, err := b.service.Contract(ctx, set.Source)
	if err != nil {
		return err
	}
	target, err := b.service.Contract(ctx, set.Target)
	if err != nil {
		return err
	}

	reviewed, err := tui.Run(set, source, target, opts.Mapping)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("review screen failed").
			WithCause(err)
	}

	counts := reviewed.CountByStatus()
	log.Info().
		Str("mapping", opts.Mapping).
		Int("confirmed", counts[mapping.StatusConfirmed]).
		Int("modified", counts[mapping.StatusModified]).
		Int("rejected", counts[mapping.StatusRejected]).
		Msg("review finished")

	return nil
}
