package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/errors"
)

// ReadJSON decodes an exported scale document from r. The tick list comes
// back exactly as written, so Write-then-Read is lossless.
func ReadJSON(r io.Reader) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
	}
	if doc.Name == "" {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "document has no scale name")
	}
	return &doc, nil
}

// ImportJSON reads an exported scale document from a file at path.
func ImportJSON(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
