package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	m "github.com/mouse-blink/gafeval/internal/model"
)

// MappingSource loads node-to-interval mappings for the reference paths of a graph.
type MappingSource interface {
	LoadMappings(ctx context.Context, path m.Path) (m.Mappings, error)
}

// LocalMappingLoader reads mapping JSON documents from the local filesystem.
type LocalMappingLoader struct{}

// NewLocalMappingLoader constructs a LocalMappingLoader.
func NewLocalMappingLoader() *LocalMappingLoader {
	return &LocalMappingLoader{}
}

// LoadMappings opens and decodes the mapping file at path.
func (l *LocalMappingLoader) LoadMappings(ctx context.Context, path m.Path) (m.Mappings, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return nil, fmt.Errorf("open mappings %s: %w", path, err)
	}
	defer f.Close()

	mappings, err := DecodeMappings(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("read mappings %s: %w", path, err)
	}

	return mappings, nil
}

type rawInterval struct {
	Start *int64 `json:"start"`
	End   *int64 `json:"end"`
}

// DecodeMappings decodes {"path": {"node": {"start": s, "end": e}}}.
// Node keys are stored by magnitude, so "-7" and "7" name the same node.
func DecodeMappings(ctx context.Context, r io.Reader) (m.Mappings, error) {
	var raw map[string]map[string]rawInterval
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode mappings: %w", err)
	}

	mappings := make(m.Mappings, len(raw))

	for name, nodes := range raw {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		mapping, err := convertPathMapping(nodes)
		if err != nil {
			return nil, fmt.Errorf("path %q: %w", name, err)
		}

		mappings[name] = mapping
	}

	return mappings, nil
}

func convertPathMapping(nodes map[string]rawInterval) (m.PathMapping, error) {
	mapping := make(m.PathMapping, len(nodes))

	for key, raw := range nodes {
		node, err := parseNodeKey(key)
		if err != nil {
			return nil, err
		}

		if raw.Start == nil || raw.End == nil {
			return nil, fmt.Errorf("node %s: interval needs both start and end", key)
		}

		if *raw.End < *raw.Start {
			return nil, fmt.Errorf("node %s: interval end %d before start %d", key, *raw.End, *raw.Start)
		}

		if _, dup := mapping[node]; dup {
			return nil, fmt.Errorf("node %s: mapped more than once", key)
		}

		mapping[node] = m.Interval{Start: *raw.Start, End: *raw.End}
	}

	return mapping, nil
}

func parseNodeKey(key string) (m.NodeID, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(key), "-")
	digits = strings.TrimPrefix(digits, "+")

	id, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("node key %q: %w", key, err)
	}

	return m.NodeID(id), nil
}
