package site

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rocky-jaiswal/static-site-cdk/config"
)

const s3Scheme = "s3://"

// ParseContents turns the configured content locator into a ContentSource.
// Local paths must exist and be a directory or a .zip archive; remote locators
// must have the form s3://bucket/key.zip. Only local paths touch the filesystem.
func ParseContents(contents string) (ContentSource, error) {
	if strings.TrimSpace(contents) == "" {
		return ContentSource{}, fmt.Errorf("%w: empty content path", ErrContentsMissing)
	}

	if rest, ok := strings.CutPrefix(contents, s3Scheme); ok {
		bucket, key, _ := strings.Cut(rest, "/")
		if bucket == "" || key == "" || !isZip(key) {
			return ContentSource{}, fmt.Errorf("%w: contents %q must look like s3://bucket/key.zip", config.ErrInvalidConfig, contents)
		}
		return ContentSource{Kind: SourceRemote, Bucket: bucket, Key: key}, nil
	}

	info, err := os.Stat(contents)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ContentSource{}, fmt.Errorf("%w: %s", ErrContentsMissing, contents)
		}
		return ContentSource{}, fmt.Errorf("failed to stat contents %s: %w", contents, err)
	}
	if !info.IsDir() && !isZip(contents) {
		return ContentSource{}, fmt.Errorf("%w: contents %s is neither a directory nor a zip archive", config.ErrInvalidConfig, contents)
	}
	return ContentSource{Kind: SourceLocal, Path: contents, Dir: info.IsDir()}, nil
}

// IsDir reports whether the source is a local directory.
func (c ContentSource) IsDir() bool {
	return c.Kind == SourceLocal && c.Dir
}

func (c ContentSource) String() string {
	if c.Kind == SourceRemote {
		return s3Scheme + c.Bucket + "/" + c.Key
	}
	return c.Path
}

// hasFile reports whether a local directory source contains name.
func (c ContentSource) hasFile(name string) bool {
	if !c.IsDir() {
		return false
	}
	info, err := os.Stat(filepath.Join(c.Path, name))
	return err == nil && !info.IsDir()
}

func isZip(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".zip")
}
