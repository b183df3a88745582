package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// TurnRecord is one line of a match replay: the per-player aggregates
// after the turn resolved.
type TurnRecord struct {
	Turn    int             `json:"turn"`
	Players []PlayerSummary `json:"players"`
}

// Recorder writes a JSON-lines replay of a match. The simulator is
// deterministic given its seed and strategy set, so the record is a
// human- and tool-readable trace rather than the source of truth for
// reproduction.
type Recorder struct {
	enc    *json.Encoder
	closer io.Closer
}

// NewRecorder writes records to w.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{enc: json.NewEncoder(w)}
}

// NewFileRecorder writes records to the named file, truncating it.
func NewFileRecorder(path string) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create replay file: %w", err)
	}
	return &Recorder{enc: json.NewEncoder(f), closer: f}, nil
}

// Record appends one turn record.
func (r *Recorder) Record(rec TurnRecord) error {
	return r.enc.Encode(rec)
}

// Close closes the underlying file, if any.
func (r *Recorder) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}
