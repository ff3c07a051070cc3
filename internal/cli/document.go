package cli

import (
	"os"

	"github.com/darasoba/iconset-builder/pkg/errors"
	"github.com/darasoba/iconset-builder/pkg/scene"
)

// readDocumentFile loads an icon document from path. "-" reads stdin.
func readDocumentFile(path string) (*scene.Document, error) {
	if path == "-" {
		return scene.ReadDocument(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "open %s", path)
	}
	defer f.Close()

	doc, err := scene.ReadDocument(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "read %s", path)
	}
	return doc, nil
}

// writeDocumentFile saves an icon document to path. "-" writes stdout.
func writeDocumentFile(doc *scene.Document, path string) error {
	if path == "-" {
		return scene.WriteDocument(doc, os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	if err := scene.WriteDocument(doc, f); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return f.Close()
}
