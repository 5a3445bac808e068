package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"os"

	"github.com/femnad/mare"
	"github.com/gabriel-vasile/mimetype"

	"github.com/femnad/zipguard/common"
	"github.com/femnad/zipguard/internal"
)

const zipMimeType = "application/zip"

var (
	ErrNotFound  = errors.New("zip not found")
	ErrMalformed = errors.New("not a valid zip archive")
)

// isZip accepts zip and the formats built on it, e.g. jar or docx.
func isZip(fileType *mimetype.MIME) bool {
	for m := fileType; m != nil; m = m.Parent() {
		if m.Is(zipMimeType) {
			return true
		}
	}
	return false
}

// EnsureExists returns an error wrapping ErrNotFound unless path is an existing regular file.
func EnsureExists(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	} else if err != nil {
		return err
	}

	if !common.IsRegularFile(info) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	return nil
}

func malformed(path string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrMalformed, path, cause)
}

// describeFailure names the detected file type when the file isn't zip based, otherwise the open error
// is the more precise cause.
func describeFailure(path string, openErr error) error {
	fileType, err := mimetype.DetectFile(path)
	if err != nil {
		internal.Log.Debugf("Error detecting file type of %s: %v", path, err)
		return openErr
	}
	internal.Log.Debugf("Detected file type %s for %s", fileType.String(), path)

	if isZip(fileType) {
		return openErr
	}
	return fmt.Errorf("detected file type %s", fileType.String())
}

// ListEntries returns the entry names of the zip at path in central directory order. Duplicate names are
// kept. Data preceding the archive, such as a self-extracting stub, is allowed.
func ListEntries(path string) ([]string, error) {
	if err := EnsureExists(path); err != nil {
		return nil, err
	}

	zipArchive, err := zip.OpenReader(path)
	if err != nil {
		return nil, malformed(path, describeFailure(path, err))
	}
	defer zipArchive.Close()

	names := mare.Map(zipArchive.File, func(f *zip.File) string {
		return f.Name
	})
	internal.Log.Debugf("Read %d entries from %s", len(names), path)

	return names, nil
}
