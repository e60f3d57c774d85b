package model

import "time"

// ReportDocument holds the metadata header and transcript body of one
// rendered Markdown report. It exists only for the duration of the write.
type ReportDocument struct {
	SourceFile    string
	TranscribedAt time.Time
	FileSizeBytes int64
	Body          string
}

// FileSizeMiB returns the source file size in MiB for the report header.
func (d ReportDocument) FileSizeMiB() float64 {
	return float64(d.FileSizeBytes) / (1024 * 1024)
}
