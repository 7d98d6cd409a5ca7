package ports

import "context"

// DownloaderPort fetches a remote artifact to a local path.
type DownloaderPort interface {
	Fetch(ctx context.Context, url string, dest string) error
}

// ArchivePort extracts downloaded archives.
type ArchivePort interface {
	Unzip(src string, destDir string) error
	ExtractTarGz(src string, destDir string) error
}
