package dataplot

import (
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pierrec/lz4"
)

// unpackArchive unpacks a .zip, .gz or .lz4 file to a temporary file and
// returns its path. The source file is left in place. For any other
// extension it returns "" and the caller reads the path as-is.
func unpackArchive(filePath string) (string, error) {
	switch filepath.Ext(filePath) {
	case ".zip":
		return unpackZipArchive(filePath)
	case ".gz":
		return unpackStream(filePath, func(r io.Reader) (io.Reader, error) {
			return gzip.NewReader(r)
		})
	case ".lz4":
		return unpackStream(filePath, func(r io.Reader) (io.Reader, error) {
			return lz4.NewReader(r), nil
		})
	}
	return "", nil
}

func unpackStream(filePath string, wrap func(io.Reader) (io.Reader, error)) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	dr, err := wrap(file)
	if err != nil {
		return "", err
	}

	out, err := os.CreateTemp("", "dataplot-*.csv")
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, dr); err != nil {
		os.Remove(out.Name())
		return "", err
	}
	return out.Name(), nil
}

// unpackZipArchive extracts the largest file in the archive, which for data
// drops is the payload next to readme-style stowaways.
func unpackZipArchive(filePath string) (string, error) {
	r, err := zip.OpenReader(filePath)
	if err != nil {
		return "", err
	}
	defer r.Close()

	var largestFile *zip.File
	var largestSize uint64
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if f.UncompressedSize64 > largestSize {
			largestFile = f
			largestSize = f.UncompressedSize64
		}
	}
	if largestFile == nil {
		return "", fmt.Errorf("empty zip archive")
	}

	rc, err := largestFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	out, err := os.CreateTemp("", "dataplot-*.csv")
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		os.Remove(out.Name())
		return "", err
	}
	return out.Name(), nil
}
