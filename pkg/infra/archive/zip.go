package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/stencil/pkg/domain/interfaces"
	"github.com/m-mizutani/stencil/pkg/domain/model"
)

type zipOpener struct{}

// NewZipOpener creates an ArchiveOpener for zip payloads
func NewZipOpener() interfaces.ArchiveOpener {
	return &zipOpener{}
}

// Open parses data as a zip archive held in memory
func (o *zipOpener) Open(data []byte) (model.Archive, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create zip reader", goerr.V("size", len(data)))
	}

	return &zipArchive{reader: reader}, nil
}

type zipArchive struct {
	reader *zip.Reader
}

// Files returns entry names in archive order
func (a *zipArchive) Files() []string {
	if a.reader == nil {
		return nil
	}

	names := make([]string, 0, len(a.reader.File))
	for _, file := range a.reader.File {
		names = append(names, file.Name)
	}
	return names
}

// Close drops the reference to the in-memory archive
func (a *zipArchive) Close() error {
	a.reader = nil
	return nil
}

// Extract extracts all entries below destDir
func (a *zipArchive) Extract(destDir string, stripRoot bool) (*model.ExtractResult, error) {
	if a.reader == nil {
		return nil, goerr.New("archive is already closed")
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create destination directory", goerr.V("dir", destDir))
	}

	root := ""
	if stripRoot {
		root = commonRoot(a.reader.File)
	}

	result := &model.ExtractResult{Dir: destDir}

	for _, file := range a.reader.File {
		name := strings.TrimPrefix(file.Name, root)
		if name == "" {
			continue
		}

		if err := extractFile(file, destDir, name); err != nil {
			return nil, goerr.Wrap(err, "failed to extract file", goerr.V("file", file.Name))
		}

		if !file.FileInfo().IsDir() {
			result.Files = append(result.Files, name)
			result.Size += int64(file.UncompressedSize64)
		}
	}

	return result, nil
}

// commonRoot returns the top-level directory ("dir/") shared by all entries,
// or "" if there is none
func commonRoot(files []*zip.File) string {
	if len(files) == 0 {
		return ""
	}

	first, _, found := strings.Cut(files[0].Name, "/")
	if !found {
		return ""
	}

	prefix := first + "/"
	for _, file := range files {
		if !strings.HasPrefix(file.Name, prefix) {
			return ""
		}
	}
	return prefix
}

// extractFile extracts a single entry to destDir/name
func extractFile(file *zip.File, destDir, name string) error {
	// Security check: prevent path traversal attacks
	destPath := filepath.Join(destDir, name)
	if !strings.HasPrefix(destPath, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return goerr.New("invalid file path detected",
			goerr.V("file", file.Name),
			goerr.V("dest", destPath),
		)
	}

	if file.FileInfo().IsDir() {
		return os.MkdirAll(destPath, 0755)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return goerr.Wrap(err, "failed to create parent directories", goerr.V("dir", filepath.Dir(destPath)))
	}

	rc, err := file.Open()
	if err != nil {
		return goerr.Wrap(err, "failed to open file in zip")
	}
	defer rc.Close()

	mode := file.FileInfo().Mode().Perm()
	if mode == 0 {
		mode = 0644
	}

	destFile, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return goerr.Wrap(err, "failed to create destination file", goerr.V("path", destPath))
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, rc); err != nil {
		return goerr.Wrap(err, "failed to copy file content", goerr.V("path", destPath))
	}

	return nil
}
