package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

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

// Keys are flat: one file per key directly under the base path. The keys
// themselves contain dashes (date keys), so no path splitting happens here.
func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{Path: []string{}, FileName: s}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

func (p *persistence) Read(key string) (string, bool, error) {
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("store: read %s: %w", key, err)
	}
	return string(val), true, nil
}

func (p *persistence) Write(key, value string) error {
	if err := p.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Erase(key string) error {
	if err := p.d.Erase(key); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Keys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if strings.HasPrefix(key, Namespace) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func (p *persistence) Snapshot(ctx context.Context) (map[string]string, error) {
	keys, err := p.Keys(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(keys))
	for _, key := range keys {
		val, ok, err := p.Read(key)
		if err != nil {
			return nil, err
		}
		if ok {
			out[key] = val
		}
	}
	return out, nil
}

func (p *persistence) Replace(ctx context.Context, data map[string]string) error {
	keys, err := p.Keys(ctx)
	if err != nil {
		return err
	}
	for _, key := range keys {
		if err := p.Erase(key); err != nil {
			return err
		}
	}
	for key, value := range data {
		if err := p.Write(key, value); err != nil {
			return err
		}
	}
	return nil
}
