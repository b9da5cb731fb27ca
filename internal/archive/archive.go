package archive

import "context"

// Reader is the capability the extractor needs from an archive format:
// enumerate entries and unpack everything under a destination directory.
type Reader interface {
	ListEntries(ctx context.Context, archivePath string) ([]string, error)
	ExtractAll(ctx context.Context, archivePath, destDir string) error
}
