package library

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	containerPath   = "META-INF/container.xml"
	maxMetadataSize = 1 << 20
)

var errNoTitle = errors.New("no title in package metadata")

// BookTitle returns the title of the book at path: the EPUB dc:title when
// the file is a readable EPUB, otherwise the file name stem in title case.
func BookTitle(path string) string {
	if title, ok := epubTitle(path); ok {
		return title
	}
	return stemTitle(path)
}

func epubTitle(path string) (string, bool) {
	if !strings.EqualFold(filepath.Ext(path), ".epub") {
		return "", false
	}
	title, err := EPUBTitle(path)
	return title, err == nil
}

// EPUBTitle reads dc:title from the package document of an EPUB file.
func EPUBTitle(file string) (string, error) {
	zr, err := zip.OpenReader(file)
	if err != nil {
		return "", err
	}
	defer zr.Close()

	var container struct {
		Rootfiles []struct {
			FullPath string `xml:"full-path,attr"`
		} `xml:"rootfiles>rootfile"`
	}
	if err := decodeEntry(&zr.Reader, containerPath, &container); err != nil {
		return "", err
	}
	if len(container.Rootfiles) == 0 {
		return "", fmt.Errorf("%s: no rootfile", containerPath)
	}

	var pkg struct {
		Titles []string `xml:"metadata>title"`
	}
	if err := decodeEntry(&zr.Reader, path.Clean(container.Rootfiles[0].FullPath), &pkg); err != nil {
		return "", err
	}
	for _, t := range pkg.Titles {
		if t = strings.TrimSpace(t); t != "" {
			return t, nil
		}
	}
	return "", errNoTitle
}

func decodeEntry(zr *zip.Reader, name string, v any) error {
	f, err := zr.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := xml.NewDecoder(io.LimitReader(f, maxMetadataSize)).Decode(v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func stemTitle(p string) string {
	stem := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
	words := strings.FieldsFunc(stem, func(r rune) bool {
		return r == '_' || r == '-' || r == ' ' || r == '.'
	})
	if len(words) == 0 {
		return "Untitled"
	}
	return cases.Title(language.Und).String(strings.Join(words, " "))
}
