package model

// Archive is an opened distribution archive held in memory
type Archive interface {
	// Files returns entry names in archive order
	Files() []string

	// Extract writes all entries below dir. When stripRoot is true, the single
	// top-level directory shared by every entry is removed from the paths.
	Extract(dir string, stripRoot bool) (*ExtractResult, error)

	// Close releases the archive
	Close() error
}

// DownloadedRelease pairs a release with its opened distribution archive.
// The owner must call Close when the archive is no longer needed.
type DownloadedRelease struct {
	Release *Release
	Archive Archive
}

// Close releases the archive handle
func (x *DownloadedRelease) Close() error {
	if x == nil || x.Archive == nil {
		return nil
	}
	return x.Archive.Close()
}

// ExtractResult represents the result of extracting a release archive
type ExtractResult struct {
	Dir   string   // Destination directory
	Files []string // Extracted file paths relative to Dir
	Size  int64    // Total uncompressed size in bytes
}
