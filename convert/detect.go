package convert

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/h2non/filetype"
)

// enough for any matcher we are interested in
const headerSize = 262

func readHeader(r io.Reader) ([]byte, error) {
	head := make([]byte, headerSize)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return head[:n], nil
}

func fileHeader(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readHeader(f)
}

func hasExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return slices.ContainsFunc(exts, func(e string) bool {
		return strings.ToLower(e) == ext
	})
}

// isArchiveFile reports whether path names zip archive.
func isArchiveFile(path string) (bool, error) {
	head, err := fileHeader(path)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(filepath.Ext(path), ".zip") && filetype.Is(head, "zip"), nil
}

// isRTFFile reports whether file has one of exts and starts as RTF.
func isRTFFile(path string, exts []string) (bool, error) {
	if !hasExtension(path, exts) {
		return false, nil
	}
	head, err := fileHeader(path)
	if err != nil {
		return false, err
	}
	return filetype.Is(head, "rtf"), nil
}

func isRTFInArchive(f *zip.File, exts []string) (bool, error) {
	if !hasExtension(f.Name, exts) {
		return false, nil
	}
	r, err := f.Open()
	if err != nil {
		return false, err
	}
	defer r.Close()

	head, err := readHeader(r)
	if err != nil {
		return false, err
	}
	return filetype.Is(head, "rtf"), nil
}
