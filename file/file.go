package file

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

var sourceExts = []string{".eabc", ".abc"}

func IsSource(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, v := range sourceExts {
		if ext == v {
			return true
		}
	}
	return false
}

// GatherSourcePaths walks path and returns every EABC source under it. A
// maxNum of 0 means no limit.
func GatherSourcePaths(path string, maxNum int) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsSource(s) {
			if maxNum == 0 || len(res) < maxNum {
				res = append(res, s)
			}
		}
		return nil
	}
	if err := filepath.WalkDir(path, walk); err != nil {
		return nil, errors.Wrapf(err, "error walking %v", path)
	}
	return res, nil
}

// OutputPath maps an input file to outDir with its extension replaced.
func OutputPath(outDir string, input string, ext string) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, base+ext)
}
