package app

import (
	"time"

	"android-provision/internal/adapters"
	"android-provision/internal/ports"
)

type Service struct {
	System     ports.SystemPort
	Release    ports.OSReleasePort
	Filesystem ports.FilesystemPort
	Apt        ports.PackageManagerPort
	Downloader ports.DownloaderPort
	Archive    ports.ArchivePort
	Git        ports.GitPort
	LFS        ports.GitLFSPort
	Manifest   ports.ManifestPort
	Reporter   ports.ReporterPort
	Clock      func() time.Time
}

func NewService() Service {
	return Service{
		System:     adapters.NewSystemAdapter(),
		Release:    adapters.NewOSReleaseAdapter(),
		Filesystem: adapters.NewFilesystemAdapter(),
		Apt:        adapters.NewAptAdapter(),
		Downloader: adapters.NewHTTPDownloaderAdapter(),
		Archive:    adapters.NewArchiveAdapter(),
		Git:        adapters.NewGitAdapter(),
		LFS:        adapters.NewGitLFSAdapter(),
		Manifest:   adapters.NewManifestFileAdapter(),
		Reporter:   adapters.NewConsoleReporter(),
		Clock:      time.Now,
	}
}
