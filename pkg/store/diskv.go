package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/docket/pkg/item"
)

// Kind distinguishes the two recorded activity streams.
type Kind int

const (
	Access Kind = iota
	Edit
)

// Persistence stores per-document activity histories across editor
// sessions. Documents are keyed by path; values are the full history
// with a lossy most-recent summary embedded for older readers.
type Persistence interface {
	History(path string) (item.History, bool)
	All(ctx context.Context) map[string]item.History
	Paths(ctx context.Context) []string
	Record(path string, kind Kind, t time.Time) error
	Prune(path string, cutoff time.Time) error
	Forget(path string) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(key string) (item.History, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return item.History{}, err
	}
	var h item.History
	if err := json.Unmarshal(val, &h); err != nil {
		return item.History{}, err
	}
	return h, nil
}

func (p *persistence) write(path string, h item.History) error {
	data, err := json.Marshal(h)
	if err != nil {
		return err
	}
	return p.d.Write(toKey(path), data)
}

func (p *persistence) History(path string) (item.History, bool) {
	h, err := p.read(toKey(path))
	if err != nil {
		return item.History{}, false
	}
	return h, true
}

func (p *persistence) All(ctx context.Context) map[string]item.History {
	all := make(map[string]item.History)
	for key := range p.d.Keys(ctx.Done()) {
		h, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all[fromKey(key)] = h
	}
	return all
}

func (p *persistence) Paths(ctx context.Context) []string {
	paths := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		paths = append(paths, fromKey(key))
	}
	sort.Strings(paths)
	return paths
}

func (p *persistence) Record(path string, kind Kind, t time.Time) error {
	if path == "" {
		return errors.New("store: document path required")
	}
	h, _ := p.History(path)
	switch kind {
	case Edit:
		h.Edit(t)
	default:
		h.Touch(t)
	}
	return p.write(path, h)
}

func (p *persistence) Prune(path string, cutoff time.Time) error {
	h, ok := p.History(path)
	if !ok {
		return nil
	}
	h.Prune(cutoff)
	if len(h.Accesses) == 0 && len(h.Edits) == 0 {
		return p.Forget(path)
	}
	return p.write(path, h)
}

func (p *persistence) Forget(path string) error {
	return p.d.Erase(toKey(path))
}

// Keys are the url-safe base64 of the document path, all in one flat
// directory under the base path.
func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{Path: []string{}, FileName: s}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}

func toKey(path string) string {
	return base64.URLEncoding.EncodeToString([]byte(path))
}

func fromKey(key string) string {
	path, err := base64.URLEncoding.DecodeString(key)
	if err != nil {
		return fmt.Sprintf("fromKey: %s", err)
	}
	return string(path)
}
