package topology

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadNIDList reads a line-oriented list of integer NIDs, used for both the
// optional failed-nodes file (subtracted from the client set) and the
// optional node-list file (which replaces the client set outright).
func LoadNIDList(path string) ([]int32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load nid list %s: %w", path, err)
	}
	defer f.Close()

	var out []int32
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := strconv.ParseInt(line, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("load nid list %s:%d: invalid nid %q: %w", path, lineNo, line, err)
		}
		out = append(out, int32(v))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("load nid list %s: %w", path, err)
	}
	return out, nil
}
