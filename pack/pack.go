package pack

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/femnad/mare"
	"golang.org/x/text/unicode/norm"

	"github.com/femnad/zipguard/common"
	"github.com/femnad/zipguard/internal"
)

// entryTime is the DOS epoch, stamped on every entry so packing the same tree yields the same bytes.
var entryTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

type stagedFile struct {
	info os.FileInfo
	name string
	path string
}

func entryName(root, file string) (string, error) {
	rel, err := filepath.Rel(root, file)
	if err != nil {
		return "", err
	}

	name := norm.NFC.String(filepath.ToSlash(rel))
	if strings.Contains(name, `\`) {
		return "", fmt.Errorf("file %s would produce entry %s containing a backslash", file, name)
	}

	return name, nil
}

func collectFiles(root, exclude string) ([]stagedFile, error) {
	var files []stagedFile
	err := filepath.WalkDir(root, func(file string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || file == exclude {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		if !common.IsRegularFile(info) {
			internal.Log.Debugf("Skipping non-regular file %s", file)
			return nil
		}

		name, err := entryName(root, file)
		if err != nil {
			return err
		}

		files = append(files, stagedFile{info: info, name: name, path: file})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].name < files[j].name
	})
	for i := 1; i < len(files); i++ {
		if files[i].name == files[i-1].name {
			return nil, fmt.Errorf("files %s and %s map to the same entry %s", files[i-1].path, files[i].path,
				files[i].name)
		}
	}

	return files, nil
}

func addFile(w *zip.Writer, file stagedFile) error {
	header, err := zip.FileInfoHeader(file.info)
	if err != nil {
		return err
	}
	header.Name = file.name
	header.Method = zip.Deflate
	header.Modified = entryTime

	dst, err := w.CreateHeader(header)
	if err != nil {
		return err
	}

	src, err := os.Open(file.path)
	if err != nil {
		return err
	}
	defer src.Close()

	_, err = io.Copy(dst, src)
	return err
}

func writeZip(zipPath string, files []stagedFile) (err error) {
	out, err := os.OpenFile(zipPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := out.Close()
		if err == nil {
			err = closeErr
		}
	}()

	w := zip.NewWriter(out)
	for _, file := range files {
		internal.Log.Debugf("Adding %s", file.name)
		if err = addFile(w, file); err != nil {
			return fmt.Errorf("error adding %s: %w", file.path, err)
		}
	}

	return w.Close()
}

// CreateFromDirectory packs every regular file under sourceDir into a new zip at zipPath. Any existing
// file at zipPath is removed first, so a failed run leaves no zip behind. Entry names are relative to
// sourceDir, use forward slashes, are NFC normalized, and are written in lexicographic order. It returns
// the number of entries written.
func CreateFromDirectory(sourceDir, zipPath string) (int, error) {
	absZip, err := filepath.Abs(zipPath)
	if err != nil {
		return 0, err
	}
	if err = internal.EnsureFileAbsent(absZip); err != nil {
		return 0, err
	}

	info, err := os.Stat(sourceDir)
	if err != nil {
		return 0, fmt.Errorf("error reading source directory: %w", err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("source %s is not a directory", sourceDir)
	}

	root, err := filepath.Abs(sourceDir)
	if err != nil {
		return 0, err
	}

	files, err := collectFiles(root, absZip)
	if err != nil {
		return 0, err
	}

	if err = mare.EnsureDir(filepath.Dir(absZip)); err != nil {
		return 0, err
	}

	internal.Log.Infof("Packing %d files from %s into %s", len(files), sourceDir, zipPath)
	if err = writeZip(absZip, files); err != nil {
		internal.EnsureFileAbsent(absZip)
		return 0, err
	}

	return len(files), nil
}
