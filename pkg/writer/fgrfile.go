package writer

import (
	"fmt"
	"os"

	"github.com/nersc/fgr/internal/routetable"
)

// WriteFGRFile persists a route table in the fgr text format.
func WriteFGRFile(path string, t routetable.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writer: create %s: %w", path, err)
	}
	defer f.Close()
	if err := routetable.WriteFGR(f, t); err != nil {
		return fmt.Errorf("writer: write %s: %w", path, err)
	}
	return nil
}

// ReadFGRFile loads a previously persisted route table.
func ReadFGRFile(path string) (routetable.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("writer: open %s: %w", path, err)
	}
	defer f.Close()
	t, err := routetable.ParseFGR(f)
	if err != nil {
		return nil, fmt.Errorf("writer: parse %s: %w", path, err)
	}
	return t, nil
}
