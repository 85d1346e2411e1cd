// Package constants provides shared constants used throughout the gutenberg
// client. This includes timeouts, limits, file permissions, and other
// configuration values that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for API requests to the print server
	DefaultHTTPTimeout = 30 * time.Second

	// UploadTimeout is the timeout for submitting a document to the print queue
	UploadTimeout = 5 * time.Minute

	// ConvertTimeout is the timeout for a single external converter invocation
	ConvertTimeout = 2 * time.Minute

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute

	// DialTimeout is the timeout for establishing network connections
	DialTimeout = 10 * time.Second

	// KeepAliveInterval is the interval between keep-alive probes
	KeepAliveInterval = 30 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// SecureFilePermissions is for sensitive files like print tokens (rw-------)
	SecureFilePermissions = 0600
)

// Limit constants define various limits and capacities
const (
	// MaxUploadSize is the maximum document size accepted for upload (64 MB)
	MaxUploadSize = 64 * 1024 * 1024

	// MaxCopies is the maximum number of copies accepted for a single job
	MaxCopies = 100

	// MaxFilenameLength is the maximum allowed length for uploaded filenames
	MaxFilenameLength = 255
)

// Default values
const (
	// DefaultServerURL is the print server used when none is configured
	DefaultServerURL = "https://print.gutenberg.example.org"

	// DefaultCopies is the number of copies when none is specified
	DefaultCopies = 1

	// DefaultWorkDirPrefix is the prefix for per-job conversion scratch directories
	DefaultWorkDirPrefix = "gutenberg-print-"
)

// Path constants
const (
	// DefaultConfigName is the config file name searched for in the home directory
	DefaultConfigName = ".gutenberg"

	// DefaultConfigType is the config file format
	DefaultConfigType = "yaml"
)

// Format constants
const (
	// TimeFormatFilename is the format appended to stored job filenames,
	// matching the server's PRINT_DATE_FORMAT
	TimeFormatFilename = "2006-01-02T15-04-05.000000"

	// TimeFormatHuman is a human-readable time format for CLI output
	TimeFormatHuman = "Jan 2, 2006 at 3:04pm MST"
)
