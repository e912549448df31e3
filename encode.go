package expense

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeCollection reads a JSON array of expenses. Empty input is an empty collection.
func DecodeCollection(r io.Reader) (Collection, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Collection{}, nil
	}

	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("could not decode expenses: %w", err)
	}
	if c == nil {
		// a literal null
		c = Collection{}
	}
	return c, nil
}

// EncodeCollection writes the collection as a JSON array indented with two
// spaces, followed by a newline.
func EncodeCollection(w io.Writer, c Collection) error {
	if c == nil {
		c = Collection{}
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal expenses: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write expenses: %w", err)
	}
	return nil
}
