package domain

import "errors"

var (
	// ErrNotAuthenticated is returned by operations that require a stored
	// session credential when none is present.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrUploadNotConfigured means the media service account or upload
	// preset is missing from configuration. No network call is made.
	ErrUploadNotConfigured = errors.New("media upload is not configured")

	// ErrUploadInProgress means the uploader already has an upload in
	// flight; only one is allowed per uploader instance.
	ErrUploadInProgress = errors.New("an upload is already in progress")

	// ErrUploadFailed covers any non-success response from the media
	// service. The service does not return structured errors on the
	// unsigned upload endpoint, so there is nothing more specific to say.
	ErrUploadFailed = errors.New("upload failed")
)
