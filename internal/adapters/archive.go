package adapters

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"android-provision/internal/ports"
)

type ArchiveAdapter struct{}

func NewArchiveAdapter() ArchiveAdapter {
	return ArchiveAdapter{}
}

func (a ArchiveAdapter) Unzip(src string, destDir string) error {
	reader, err := zip.OpenReader(src)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to open zip archive " + src).
			WithCause(err)
	}
	defer reader.Close()
	for _, file := range reader.File {
		if err := extractZipEntry(file, destDir); err != nil {
			return err
		}
	}
	return nil
}

func (a ArchiveAdapter) ExtractTarGz(src string, destDir string) error {
	file, err := os.Open(src)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to open archive " + src).
			WithCause(err)
	}
	defer file.Close()
	gz, err := gzip.NewReader(file)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read gzip stream").
			WithCause(err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to read tar stream").
				WithCause(err)
		}
		if err := extractTarEntry(header, tr, destDir); err != nil {
			return err
		}
	}
}

func extractZipEntry(file *zip.File, destDir string) error {
	target, err := securePath(destDir, file.Name)
	if err != nil {
		return err
	}
	if file.FileInfo().IsDir() {
		return os.MkdirAll(target, file.Mode())
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()
	return writeFile(target, src, file.Mode())
}

func extractTarEntry(header *tar.Header, src io.Reader, destDir string) error {
	target, err := securePath(destDir, header.Name)
	if err != nil {
		return err
	}
	switch header.Typeflag {
	case tar.TypeDir:
		return os.MkdirAll(target, os.FileMode(header.Mode))
	case tar.TypeReg:
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		return writeFile(target, src, os.FileMode(header.Mode))
	default:
		return nil
	}
}

// securePath rejects entries that would escape the destination directory.
func securePath(destDir string, name string) (string, error) {
	target := filepath.Join(destDir, filepath.Clean(name))
	if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("archive entry escapes destination: " + name)
	}
	return target, nil
}

func writeFile(target string, src io.Reader, mode os.FileMode) error {
	dest, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer dest.Close()
	_, err = io.Copy(dest, src)
	return err
}

var _ ports.ArchivePort = ArchiveAdapter{}
