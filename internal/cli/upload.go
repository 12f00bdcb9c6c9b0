package cli

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
)

// cmdUpload pushes a file to the media CDN and prints the resulting secure
// URL. Nothing is persisted; use `works add` or `profile -image` to attach
// the URL.
func (a *App) cmdUpload(ctx context.Context, args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(a.errOut, "usage: marketctl upload <file>")
		return 2
	}

	result, err := a.uploadFile(ctx, args[0])
	if err != nil {
		return a.fail("upload failed", err)
	}
	fmt.Fprintf(a.out, "%s (%s)\n", result.URL, result.Kind)
	return 0
}

// mimeTypeByExtension returns the file's declared MIME type, defaulting to
// a generic binary type when the extension is unknown.
func mimeTypeByExtension(path string) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}
	return "application/octet-stream"
}
