package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"training-reels/internal/adapters/storage/local"
	"training-reels/internal/core/domain"
)

func (a *App) Upload(ctx context.Context, args []string) error {
	fs := a.flagSet("upload")
	title := fs.String("title", "", "video title, defaults to the file name")
	description := fs.String("description", "", "video description")
	tags := fs.String("tags", "", "comma separated tags")
	contentType := fs.String("content-type", "", "override the sniffed content type")
	wait := fs.Bool("wait", false, "poll processing until it settles")
	rest, err := a.parseArgs(fs, args, 1)
	if err != nil {
		return err
	}

	file, err := local.Open(rest[0])
	if err != nil {
		return err
	}
	defer file.Close()

	req := domain.InitiateUploadRequest{
		FileName:    file.BaseName(),
		ContentType: file.ContentType(),
		Size:        file.Size(),
		Title:       *title,
		Description: *description,
		Tags:        splitList(*tags),
	}
	if *contentType != "" {
		req.ContentType = *contentType
	}
	if req.Title == "" {
		req.Title = strings.TrimSuffix(req.FileName, filepath.Ext(req.FileName))
	}

	session, result, err := a.services.Uploads.Upload(ctx, req, file, a.uploadProgress(req.FileName))
	a.endProgress()
	if err != nil {
		var chunkErr *domain.ChunkError
		if session != nil && errors.As(err, &chunkErr) {
			fmt.Fprintf(a.out, "Upload stopped at chunk %d, session %s is still open\n", chunkErr.Index, session.ID)
			fmt.Fprintf(a.out, "Resume with: reelctl resume %s %s %s\n", session.ID, session.UploadURL, rest[0])
		}
		return err
	}

	return a.reportUpload(ctx, result, *wait)
}

func (a *App) Resume(ctx context.Context, args []string) error {
	fs := a.flagSet("resume")
	wait := fs.Bool("wait", false, "poll processing until it settles")
	rest, err := a.parseArgs(fs, args, 3)
	if err != nil {
		return err
	}
	sessionID, resumeURL, path := rest[0], rest[1], rest[2]

	file, err := local.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	session, err := a.services.Uploads.ResumeUpload(ctx, sessionID, resumeURL)
	if err != nil {
		return err
	}

	err = a.services.Uploads.UploadFile(ctx, file, session.UploadURL, a.uploadProgress(file.BaseName()))
	a.endProgress()
	if err != nil {
		return err
	}

	result, err := a.services.Uploads.CompleteUpload(ctx, session.ID)
	if err != nil {
		return err
	}
	return a.reportUpload(ctx, result, *wait)
}

func (a *App) CancelUpload(ctx context.Context, args []string) error {
	rest, err := a.parseArgs(a.flagSet("cancel-upload"), args, 1)
	if err != nil {
		return err
	}
	if err := a.services.Uploads.CancelUpload(ctx, rest[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Upload session %s cancelled\n", rest[0])
	return nil
}

func (a *App) uploadProgress(name string) func(float64) {
	return func(percent float64) {
		a.progressLine("Uploading %s %5.1f%%", name, percent)
	}
}

func (a *App) reportUpload(ctx context.Context, result *domain.CompleteUploadResult, wait bool) error {
	fmt.Fprintf(a.out, "Uploaded: video %s, processing job %s\n", result.VideoID, result.JobID)
	if !wait {
		return nil
	}
	return a.follow(ctx, result.JobID)
}
