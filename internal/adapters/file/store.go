// Package file persists traces as NDJSON files, one step per line.
// The format is deliberately loose on read: lines are decoded into maps
// first and then mapped onto the typed step, so traces written by other
// tools (or by hand) replay fine as long as the values are sound.
package file

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/sortviz/sortviz/pkg/domain"
)

const traceExt = ".ndjson"

// Store persists traces under a single directory, one file per trace ID.
type Store struct {
	dir string
}

// New creates the directory if needed and returns a store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create trace dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+traceExt)
}

// Save writes the trace as NDJSON.
func (s *Store) Save(ctx context.Context, id string, trace domain.Trace) error {
	f, err := os.Create(s.path(id))
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for i, step := range trace {
		if err := enc.Encode(step); err != nil {
			return fmt.Errorf("failed to encode step %d: %w", i, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush trace file: %w", err)
	}
	return nil
}

// Load reads a stored trace back.
func (s *Store) Load(ctx context.Context, id string) (domain.Trace, error) {
	trace, err := ReadTrace(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrTraceNotFound
		}
		return nil, err
	}
	return trace, nil
}

// Delete removes a stored trace.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := os.Remove(s.path(id)); err != nil {
		if os.IsNotExist(err) {
			return domain.ErrTraceNotFound
		}
		return err
	}
	return nil
}

// List returns the IDs of stored traces.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read trace dir: %w", err)
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), traceExt) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), traceExt))
	}
	return ids, nil
}

// ReadTrace parses an NDJSON trace file at an arbitrary path.
func ReadTrace(path string) (domain.Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var trace domain.Trace
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var raw map[string]any
		if err := json.Unmarshal([]byte(text), &raw); err != nil {
			return nil, fmt.Errorf("line %d: invalid JSON: %w", line, err)
		}

		step, err := decodeStep(raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		trace = append(trace, step)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trace: %w", err)
	}
	return trace, nil
}

// decodeStep maps a loosely typed step onto the domain type.
// JSON numbers arrive as float64; the hook narrows them to int and rejects
// anything with a fractional part, surfacing ErrNotComparable instead of
// silently truncating.
func decodeStep(raw map[string]any) (domain.Step, error) {
	var step domain.Step
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: &step,
		DecodeHook: mapstructure.DecodeHookFuncType(func(from, to reflect.Type, data any) (any, error) {
			if from.Kind() == reflect.Float64 && to.Kind() == reflect.Int {
				f := data.(float64)
				if f != float64(int(f)) {
					return nil, fmt.Errorf("%v: %w", data, domain.ErrNotComparable)
				}
				return int(f), nil
			}
			return data, nil
		}),
	})
	if err != nil {
		return domain.Step{}, fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return domain.Step{}, err
	}
	if !step.Type.Valid() {
		return domain.Step{}, fmt.Errorf("unknown step type %q", step.Type)
	}
	return step, nil
}
