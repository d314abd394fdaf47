// Package metrics exposes runtime counters via expvar.
package metrics

import "expvar"

var (
	FilesProcessed      = expvar.NewInt("files_processed")
	FilesFailed         = expvar.NewInt("files_failed")
	RowsStaged          = expvar.NewInt("rows_staged")
	RowsInserted        = expvar.NewInt("rows_inserted")
	DuplicatesSkipped   = expvar.NewInt("duplicates_skipped")
	NotificationsSent   = expvar.NewInt("notifications_sent")
	NotificationsFailed = expvar.NewInt("notifications_failed")
)
