package storage

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Export writes every feedback record to w as zstd-compressed JSON lines,
// newest first. Used by `mundi feedback export` for backups.
func (s *Store) Export(w io.Writer) error {
	records, err := s.List(0)
	if err != nil {
		return err
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("creating zstd writer: %w", err)
	}

	enc := json.NewEncoder(zw)
	for _, fb := range records {
		if err := enc.Encode(fb); err != nil {
			_ = zw.Close()
			return fmt.Errorf("encoding feedback %s: %w", fb.ID, err)
		}
	}

	return zw.Close()
}
