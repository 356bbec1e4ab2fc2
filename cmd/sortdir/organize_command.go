package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"sortdir/internal/classify"
	"sortdir/internal/history"
	"sortdir/internal/logging"
	"sortdir/internal/organizer"
	"sortdir/internal/preflight"
	"sortdir/internal/services"
)

func runOrganize(cmd *cobra.Command, cmdCtx *commandContext, target string, dryRun bool) error {
	cfg, err := cmdCtx.ensureConfig()
	if err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	root, err := organizer.ResolveRoot(target)
	if err != nil {
		return err
	}

	if result := preflight.CheckScanRoot(root, dryRun); !result.Passed {
		return fmt.Errorf("%s: %s", result.Name, result.Detail)
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	colorize := stdoutIsTerminal()

	fmt.Fprintf(out, "Organizing folder: %s\n", root)
	if dryRun {
		fmt.Fprintln(out, "Dry-run mode: no files will be copied.")
	} else {
		fmt.Fprintln(out, "Safe mode: files are copied; originals are left intact.")
	}

	runID := uuid.NewString()
	runCtx := services.WithRunID(cmd.Context(), runID)
	runCtx = services.WithScanRoot(runCtx, root)

	org := organizer.New(cfg, logger)
	summary, err := org.Run(runCtx, root, organizer.Options{
		DryRun: dryRun,
		OnEvent: func(event organizer.Event) {
			switch event.Kind {
			case organizer.EventCopied:
				fmt.Fprintf(out, "%s '%s' -> '%s'\n", colorLabel("Copied:", ansiGreen, colorize), event.Source, event.Destination)
			case organizer.EventWouldCopy:
				fmt.Fprintf(out, "%s '%s' -> '%s'\n", colorLabel("Would copy:", ansiBlue, colorize), event.Source, event.Destination)
			case organizer.EventError:
				fmt.Fprintf(errOut, "%s '%s': %v\n", colorLabel("Failed:", ansiRed, colorize), event.Source, event.Err)
			}
		},
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Summary:")
	fmt.Fprintln(out, renderSummaryTable(summary))

	recordHistory(runCtx, cmdCtx, summary, logger)
	return nil
}

func renderSummaryTable(summary *organizer.Summary) string {
	rows := make([][]string, 0, len(classify.Order))
	for _, category := range classify.Order {
		rows = append(rows, []string{string(category), strconv.Itoa(summary.Counts[category])})
	}
	return renderTable(
		[]string{"Category", "Count"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
	)
}

// recordHistory persists the finished run on a best-effort basis; a history
// failure never fails the organize run itself.
func recordHistory(ctx context.Context, cmdCtx *commandContext, summary *organizer.Summary, logger *slog.Logger) {
	cfg, err := cmdCtx.ensureConfig()
	if err != nil || !cfg.Organize.History {
		return
	}

	store, err := history.Open(cfg)
	if err != nil {
		logger.Warn("history store unavailable", logging.Error(err))
		return
	}
	defer store.Close()

	run := history.Run{
		RunID:      summary.RunID,
		Root:       summary.Root,
		DryRun:     summary.DryRun,
		StartedAt:  summary.StartedAt,
		FinishedAt: summary.FinishedAt,
		Counts:     summary.Counts,
	}
	if err := store.Record(ctx, run); err != nil {
		logger.Warn("failed to record run history", logging.Error(err))
	}
}
