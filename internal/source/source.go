// Package source reads column documents from a directory and watches it for
// changes.
package source

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// ErrEmpty is returned when a directory holds no column documents.
var ErrEmpty = errors.New("no column documents found")

// Document is the content of one column.
type Document struct {
	Name string // file name, used as the column title
	Path string
	Body string
}

// Lines splits the body into lines without trailing newline noise.
func (d Document) Lines() []string {
	body := strings.TrimRight(strings.ReplaceAll(d.Body, "\r\n", "\n"), "\n")
	if body == "" {
		return nil
	}
	return strings.Split(body, "\n")
}

// Load returns the regular, non-hidden files in dir ordered by name.
func Load(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read column dir %q: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrEmpty)
	}

	docs := make([]Document, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read column %q: %w", path, err)
		}
		docs = append(docs, Document{Name: name, Path: path, Body: string(data)})
	}
	return docs, nil
}

// Reload re-reads the bodies of docs in place. Order and membership never
// change; files that vanished keep their last body.
func Reload(docs []Document) []Document {
	out := make([]Document, len(docs))
	for i, d := range docs {
		out[i] = d
		data, err := os.ReadFile(d.Path)
		if err != nil {
			log.Printf("source.Reload: keeping previous content of %q: %v", d.Path, err)
			continue
		}
		out[i].Body = string(data)
	}
	return out
}

// Change reports that the file at Path changed.
type Change struct {
	Path string
	Op   fsnotify.Op
}

// Watch reports content changes in dir until ctx is done. The returned
// channel is closed when watching stops.
func Watch(ctx context.Context, dir string) (<-chan Change, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %q: %w", dir, err)
	}

	out := make(chan Change)
	go func() {
		defer close(out)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				select {
				case out <- Change{Path: event.Name, Op: event.Op}:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("source.Watch: %v", err)
			}
		}
	}()
	return out, nil
}
