package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// importExts are the file extensions picked up when scanning directories.
var importExts = map[string]bool{
	".jsonl":  true,
	".ndjson": true,
}

// Discover resolves command-line paths into import files. Directories are
// scanned recursively; plain files are taken as given regardless of extension.
// The result is sorted by path with duplicates removed.
func Discover(paths []string) ([]DiscoveredFile, error) {
	seen := make(map[string]bool)
	var files []DiscoveredFile

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}

		var found []DiscoveredFile
		if info.IsDir() {
			found, err = ScanDir(p)
			if err != nil {
				return nil, err
			}
		} else {
			found = []DiscoveredFile{fileFromInfo(p, info)}
		}

		for _, f := range found {
			if seen[f.Path] {
				continue
			}
			seen[f.Path] = true
			files = append(files, f)
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// ScanDir walks dir and returns every .jsonl or .ndjson file under it.
// A missing directory yields no files and no error.
func ScanDir(dir string) ([]DiscoveredFile, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	var files []DiscoveredFile

	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // intentionally skip unreadable entries
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !importExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return nil //nolint:nilerr // file vanished between listing and stat
		}
		files = append(files, fileFromInfo(path, fi))
		return nil
	})

	return files, err
}

func fileFromInfo(path string, info os.FileInfo) DiscoveredFile {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return DiscoveredFile{
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
}
