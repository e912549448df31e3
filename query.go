package expense

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against the JSON form of c, as it is
// stored on disk. For instance `$[?(@.amount > 10)].description` returns the
// descriptions of all expenses above 10.
func Query(c Collection, path string) (any, error) {
	var buf bytes.Buffer
	if err := EncodeCollection(&buf, c); err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(buf.Bytes(), &jobj); err != nil {
		return nil, fmt.Errorf("error decoding expenses: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return jval, nil
}

// Query loads the collection and evaluates path on it. See the Query function.
func (t *Tracker) Query(path string) (any, error) {
	c, err := t.store.Load()
	if err != nil {
		return nil, err
	}
	return Query(c, path)
}
