package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// containerExt is appended to the name of every compressed file.
const containerExt = ".huff"

// source is one input file, named relative to the argument it was found
// under so that outputs can mirror the input layout.
type source struct {
	root string
	rel  string
}

func (src source) path() string {
	return filepath.Join(src.root, src.rel)
}

func isAnyFile(string) bool { return true }

func isContainer(name string) bool {
	return strings.HasSuffix(name, containerExt)
}

func isNotContainer(name string) bool {
	return !isContainer(name)
}

// collectSources expands path into the regular files it names.  A file is
// returned as is; a directory is walked recursively and only the files
// accepted by match are returned, in lexical order.
func collectSources(path string, match func(string) bool) ([]source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []source{{root: filepath.Dir(path), rel: filepath.Base(path)}}, nil
	}

	var sources []source
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() || !match(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(path, p)
		if err != nil {
			return err
		}
		sources = append(sources, source{root: path, rel: rel})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sources, nil
}

// compressedPath returns where the container for src is written: next to
// src, or at the same relative path under outDir.
func compressedPath(outDir string, src source) string {
	return filepath.Join(outputRoot(outDir, src), src.rel+containerExt)
}

// decompressedPath returns where the output for container src is written.
// The container extension is stripped; a file without one gets ".out"
// appended instead, so the input is never overwritten.
func decompressedPath(outDir string, src source) string {
	rel := src.rel
	if isContainer(rel) && len(rel) > len(containerExt) {
		rel = strings.TrimSuffix(rel, containerExt)
	} else {
		rel += ".out"
	}
	return filepath.Join(outputRoot(outDir, src), rel)
}

func outputRoot(outDir string, src source) string {
	if outDir == "" {
		return src.root
	}
	return outDir
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// firstDifference returns the offset of the first byte at which a and b
// differ, or the length of the shorter one if it is a prefix of the other.
func firstDifference(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// compareTrees compares two files, or two directory trees file by file, and
// returns a description of every difference found.
func compareTrees(a, b string) ([]string, error) {
	infoA, err := os.Stat(a)
	if err != nil {
		return nil, err
	}
	infoB, err := os.Stat(b)
	if err != nil {
		return nil, err
	}

	switch {
	case !infoA.IsDir() && !infoB.IsDir():
		diff, err := compareFiles(a, b)
		if err != nil || diff == "" {
			return nil, err
		}
		return []string{diff}, nil
	case infoA.IsDir() != infoB.IsDir():
		return []string{fmt.Sprintf("%s and %s: one is a directory, the other is not", a, b)}, nil
	}

	filesA, err := collectSources(a, isAnyFile)
	if err != nil {
		return nil, err
	}
	filesB, err := collectSources(b, isAnyFile)
	if err != nil {
		return nil, err
	}

	inB := make(map[string]bool, len(filesB))
	for _, src := range filesB {
		inB[src.rel] = true
	}

	var diffs []string
	for _, src := range filesA {
		if !inB[src.rel] {
			diffs = append(diffs, fmt.Sprintf("%s: missing from %s", src.rel, b))
			continue
		}
		delete(inB, src.rel)
		diff, err := compareFiles(src.path(), filepath.Join(b, src.rel))
		if err != nil {
			return nil, err
		}
		if diff != "" {
			diffs = append(diffs, diff)
		}
	}

	var extra []string
	for rel := range inB {
		extra = append(extra, rel)
	}
	sort.Strings(extra)
	for _, rel := range extra {
		diffs = append(diffs, fmt.Sprintf("%s: missing from %s", rel, a))
	}
	return diffs, nil
}

// compareFiles returns "" if the two files hold the same bytes, and a
// description of the first difference otherwise.
func compareFiles(a, b string) (string, error) {
	dataA, err := os.ReadFile(a)
	if err != nil {
		return "", err
	}
	dataB, err := os.ReadFile(b)
	if err != nil {
		return "", err
	}
	if bytes.Equal(dataA, dataB) {
		return "", nil
	}
	return fmt.Sprintf("%s and %s differ at byte %d", a, b, firstDifference(dataA, dataB)), nil
}
