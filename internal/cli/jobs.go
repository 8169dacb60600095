package cli

import (
	"context"
	"errors"
	"fmt"
	"training-reels/internal/core/domain"
)

// ErrJobFailed is returned by waiting commands when the job ends failed or cancelled
var ErrJobFailed = errors.New("processing did not complete")

func (a *App) Status(ctx context.Context, args []string) error {
	fs := a.flagSet("status")
	wait := fs.Bool("wait", false, "poll until the job settles")
	rest, err := a.parseArgs(fs, args, 1)
	if err != nil {
		return err
	}
	if *wait {
		return a.follow(ctx, rest[0])
	}

	status, err := a.services.Processing.GetStatus(ctx, rest[0])
	if err != nil {
		return err
	}
	a.printStatus(*status)
	return nil
}

func (a *App) Retry(ctx context.Context, args []string) error {
	fs := a.flagSet("retry")
	wait := fs.Bool("wait", false, "poll until the job settles")
	rest, err := a.parseArgs(fs, args, 1)
	if err != nil {
		return err
	}
	if err := a.services.Processing.RetryJob(ctx, rest[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Job %s queued again\n", rest[0])
	if *wait {
		return a.follow(ctx, rest[0])
	}
	return nil
}

func (a *App) CancelJob(ctx context.Context, args []string) error {
	rest, err := a.parseArgs(a.flagSet("cancel-job"), args, 1)
	if err != nil {
		return err
	}
	if err := a.services.Processing.CancelJob(ctx, rest[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Job %s cancelled\n", rest[0])
	return nil
}

// follow polls jobID until it settles and reports the final state
func (a *App) follow(ctx context.Context, jobID string) error {
	final, err := a.services.Processing.PollStatus(ctx, jobID, func(status domain.ProcessingStatus) {
		a.progressLine("Processing %s %5.1f%% %s", a.paint(string(status.Status)), status.Progress, status.Stage)
	}, 0)
	a.endProgress()
	if err != nil {
		return err
	}

	a.printStatus(*final)
	if final.Status != domain.JobStatusCompleted {
		return fmt.Errorf("%w: job %s is %s", ErrJobFailed, jobID, final.Status)
	}
	return nil
}

func (a *App) printStatus(status domain.ProcessingStatus) {
	fmt.Fprintf(a.out, "Job %s: %s %.0f%%", status.JobID, a.paint(string(status.Status)), status.Progress)
	if status.Stage != "" {
		fmt.Fprintf(a.out, " (%s)", status.Stage)
	}
	fmt.Fprintln(a.out)
	if status.VideoID != "" {
		fmt.Fprintf(a.out, "Video: %s\n", status.VideoID)
	}
	if status.Error != "" {
		fmt.Fprintf(a.out, "Error: %s\n", status.Error)
	}
}
