package sarif

import (
	"encoding/json"
	"io"
)

// Write serializes the log document to the writer as compact JSON.
func (l *Log) Write(w io.Writer) error {
	data, err := json.Marshal(l)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// PrettyWrite serializes the log document to the writer with indentation.
func (l *Log) PrettyWrite(w io.Writer) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
