package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/skillbridge/marketplace-client/internal/core/domain"
	"github.com/skillbridge/marketplace-client/internal/core/ports"
)

func (a *App) cmdWorks(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(a.errOut, "usage: marketctl works <add|list|mine>")
		return 2
	}

	switch args[0] {
	case "add":
		return a.cmdWorksAdd(ctx, args[1:])
	case "list":
		return a.cmdWorksList(ctx, false)
	case "mine":
		return a.cmdWorksList(ctx, true)
	default:
		fmt.Fprintf(a.errOut, "unknown works subcommand %q\n", args[0])
		return 2
	}
}

// cmdWorksAdd uploads the file to the media CDN first, then attaches the
// resulting URL as a new portfolio item through the backend. The two steps
// are independent services; a backend failure does not roll back the
// upload.
func (a *App) cmdWorksAdd(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("works add", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	title := fs.String("title", "", "work title")
	description := fs.String("description", "", "work description")
	file := fs.String("file", "", "media file to upload")
	mediaURL := fs.String("url", "", "already-uploaded media URL (skips upload)")
	mediaType := fs.String("type", domain.MediaImage, "media type when -url is used")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *title == "" {
		fmt.Fprintln(a.errOut, "a title is required")
		return 2
	}
	if *file == "" && *mediaURL == "" {
		fmt.Fprintln(a.errOut, "pass -file to upload media, or -url for an existing URL")
		return 2
	}
	if a.requireUser(ctx) == nil {
		return 1
	}

	url, kind := *mediaURL, *mediaType
	if *file != "" {
		result, err := a.uploadFile(ctx, *file)
		if err != nil {
			return a.fail("media upload failed", err)
		}
		url, kind = result.URL, result.Kind
	}

	work, err := a.backend.CreateWork(ctx, ports.WorkInput{
		Title:       *title,
		Description: *description,
		MediaURL:    url,
		MediaType:   kind,
	})
	if err != nil {
		return a.fail("failed to create work", err)
	}
	fmt.Fprintf(a.out, "Added %q to your portfolio (%s)\n", work.Title, work.ID)
	return 0
}

func (a *App) cmdWorksList(ctx context.Context, mine bool) int {
	var (
		works []domain.Work
		err   error
	)
	if mine {
		if a.requireUser(ctx) == nil {
			return 1
		}
		works, err = a.backend.MyWorks(ctx)
	} else {
		works, err = a.backend.ListWorks(ctx)
	}
	if err != nil {
		return a.fail("failed to list works", err)
	}
	if len(works) == 0 {
		fmt.Fprintln(a.out, "The gallery is empty.")
		return 0
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tTYPE\tURL")
	for _, w := range works {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", w.ID, w.Title, w.MediaType, w.MediaURL)
	}
	tw.Flush()
	return 0
}

// uploadFile opens a local file and pushes it through the media uploader,
// inferring the declared MIME type from the extension.
func (a *App) uploadFile(ctx context.Context, path string) (*ports.UploadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return a.uploader.Upload(ctx, ports.UploadFile{
		Name:        filepath.Base(path),
		ContentType: mimeTypeByExtension(path),
		Reader:      f,
	})
}
