package archive_test

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/stencil/pkg/infra/archive"
)

type entry struct {
	name    string
	content string
}

func createZip(t *testing.T, entries []entry) []byte {
	t.Helper()

	var buf bytes.Buffer
	zipWriter := zip.NewWriter(&buf)

	for _, e := range entries {
		writer, err := zipWriter.Create(e.name)
		gt.NoError(t, err)

		_, err = writer.Write([]byte(e.content))
		gt.NoError(t, err)
	}

	gt.NoError(t, zipWriter.Close())
	return buf.Bytes()
}

var skeleton = []entry{
	{name: "laravel-laravel-abc123/"},
	{name: "laravel-laravel-abc123/README.md", content: "# Laravel"},
	{name: "laravel-laravel-abc123/artisan", content: "#!/usr/bin/env php"},
	{name: "laravel-laravel-abc123/app/Models/User.php", content: "<?php"},
}

func TestZipOpener_Open(t *testing.T) {
	opener := archive.NewZipOpener()

	t.Run("valid zip", func(t *testing.T) {
		a, err := opener.Open(createZip(t, skeleton))
		gt.NoError(t, err)
		defer a.Close()

		gt.A(t, a.Files()).Length(4)
		gt.Equal(t, a.Files()[1], "laravel-laravel-abc123/README.md")
	})

	t.Run("invalid zip", func(t *testing.T) {
		a, err := opener.Open([]byte("this is not valid zip data"))
		gt.Error(t, err)
		gt.Value(t, a).Nil()
	})

	t.Run("empty payload", func(t *testing.T) {
		_, err := opener.Open(nil)
		gt.Error(t, err)
	})
}

func TestZipArchive_Extract(t *testing.T) {
	a, err := archive.NewZipOpener().Open(createZip(t, skeleton))
	gt.NoError(t, err)
	defer a.Close()

	t.Run("keep root directory", func(t *testing.T) {
		dir := t.TempDir()
		result, err := a.Extract(dir, false)
		gt.NoError(t, err)

		gt.Equal(t, result.Dir, dir)
		gt.A(t, result.Files).Length(3)
		gt.Number(t, result.Size).Greater(int64(0))

		content, err := os.ReadFile(filepath.Join(dir, "laravel-laravel-abc123", "README.md"))
		gt.NoError(t, err)
		gt.Equal(t, string(content), "# Laravel")
	})

	t.Run("strip root directory", func(t *testing.T) {
		dir := t.TempDir()
		result, err := a.Extract(dir, true)
		gt.NoError(t, err)

		gt.A(t, result.Files).Length(3)
		gt.Equal(t, result.Files[0], "README.md")

		_, err = os.Stat(filepath.Join(dir, "app", "Models", "User.php"))
		gt.NoError(t, err)
	})
}

func TestZipArchive_Extract_NoCommonRoot(t *testing.T) {
	a, err := archive.NewZipOpener().Open(createZip(t, []entry{
		{name: "README.md", content: "readme"},
		{name: "src/main.php", content: "<?php"},
	}))
	gt.NoError(t, err)

	dir := t.TempDir()
	result, err := a.Extract(dir, true)
	gt.NoError(t, err)
	gt.A(t, result.Files).Length(2)

	_, err = os.Stat(filepath.Join(dir, "src", "main.php"))
	gt.NoError(t, err)
}

func TestZipArchive_Extract_PathTraversal(t *testing.T) {
	a, err := archive.NewZipOpener().Open(createZip(t, []entry{
		{name: "../evil.sh", content: "rm -rf /"},
	}))
	gt.NoError(t, err)

	_, err = a.Extract(t.TempDir(), false)
	gt.Error(t, err)
}

func TestZipArchive_Closed(t *testing.T) {
	a, err := archive.NewZipOpener().Open(createZip(t, skeleton))
	gt.NoError(t, err)

	gt.NoError(t, a.Close())
	gt.A(t, a.Files()).Length(0)

	_, err = a.Extract(t.TempDir(), false)
	gt.Error(t, err)
}
