// Package catalog holds the fixed tables of CPU and GPU models and their
// benchmark scores.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Class names a hardware collection in the catalog.
type Class string

const (
	CPUs Class = "CPUs"
	GPUs Class = "GPUs"
)

var (
	// ErrNotFound matches any *NotFoundError via errors.Is.
	ErrNotFound     = errors.New("model not found")
	ErrUnknownClass = errors.New("unknown hardware class")
)

// NotFoundError reports a model name absent from its class. It signals a
// mismatch between the catalog and whatever supplied the name.
type NotFoundError struct {
	Class Class
	Name  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s model %q not found in catalog", e.Class, e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Entry is a single model and its relative performance score.
type Entry struct {
	Name  string
	Score float64
}

// Catalog is read-only once built and safe for concurrent use.
type Catalog struct {
	entries map[Class][]Entry
	scores  map[Class]map[string]float64
}

// New builds a catalog from the given collections, keeping their order.
// Names must be unique within a collection and scores strictly positive.
func New(cpus, gpus []Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make(map[Class][]Entry, 2),
		scores:  make(map[Class]map[string]float64, 2),
	}
	if err := c.add(CPUs, cpus); err != nil {
		return nil, err
	}
	if err := c.add(GPUs, gpus); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) add(class Class, entries []Entry) error {
	scores := make(map[string]float64, len(entries))
	ordered := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if strings.TrimSpace(entry.Name) == "" {
			return fmt.Errorf("%s: empty model name", class)
		}
		if _, exists := scores[entry.Name]; exists {
			return fmt.Errorf("%s: duplicate model %q", class, entry.Name)
		}
		if !(entry.Score > 0) {
			return fmt.Errorf("%s: model %q has non-positive score %v", class, entry.Name, entry.Score)
		}
		scores[entry.Name] = entry.Score
		ordered = append(ordered, entry)
	}
	c.entries[class] = ordered
	c.scores[class] = scores
	return nil
}

// ListModels returns the model names of a class in definition order.
func (c *Catalog) ListModels(class Class) ([]string, error) {
	entries, err := c.Entries(class)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name
	}
	return names, nil
}

// Entries returns a copy of the entries of a class in definition order.
func (c *Catalog) Entries(class Class) ([]Entry, error) {
	entries, ok := c.entries[class]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownClass, class)
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out, nil
}

// Score looks up the benchmark score of a model.
func (c *Catalog) Score(class Class, name string) (float64, error) {
	scores, ok := c.scores[class]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownClass, class)
	}
	score, ok := scores[name]
	if !ok {
		return 0, &NotFoundError{Class: class, Name: name}
	}
	return score, nil
}

// ParseClass maps user input such as "cpu", "GPUs" or "gpus" to a Class.
func ParseClass(value string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "cpu", "cpus":
		return CPUs, nil
	case "gpu", "gpus":
		return GPUs, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownClass, value)
	}
}
