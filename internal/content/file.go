package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/playerstyle/internal/validation"
	pserrors "github.com/alexisbeaulieu97/playerstyle/pkg/errors"
)

var (
	entryExtensions = []string{".yaml", ".yml", ".md"}
	frontMatterSep  = []byte("---")
)

// FileRepository reads entries from <root>/<collection>/<slug>.{yaml,yml,md}.
// Markdown files carry the entry as YAML front matter.
type FileRepository struct {
	root string
}

// NewFileRepository returns a repository rooted at dir. The directory must exist.
func NewFileRepository(dir string) (*FileRepository, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve content dir: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("content dir does not exist: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content path %s is not a directory", abs)
	}
	return &FileRepository{root: abs}, nil
}

// Root returns the absolute content directory.
func (r *FileRepository) Root() string {
	return r.root
}

// GetEntry implements Repository.
func (r *FileRepository) GetEntry(ctx context.Context, collection Collection, slug string) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}
	if err := checkCollection(collection); err != nil {
		return Entry{}, err
	}
	// A slug that could escape the collection directory simply does not exist.
	if validation.Var("slug", slug, "slug") != nil {
		return Entry{}, pserrors.NewNotFoundError(string(collection), slug)
	}

	for _, ext := range entryExtensions {
		path := filepath.Join(r.root, string(collection), slug+ext)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Entry{}, fmt.Errorf("read %s: %w", path, err)
		}
		return decodeEntry(path, slug, data)
	}

	return Entry{}, pserrors.NewNotFoundError(string(collection), slug)
}

// List implements Lister. Entries are sorted by slug; files that fail to
// parse abort the listing.
func (r *FileRepository) List(ctx context.Context, collection Collection) ([]Entry, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}

	dir := filepath.Join(r.root, string(collection))
	files, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	seen := map[string]struct{}{}
	entries := make([]Entry, 0, len(files))
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		ext := filepath.Ext(file.Name())
		if !isEntryExtension(ext) {
			continue
		}
		slug := strings.TrimSuffix(file.Name(), ext)
		if _, dup := seen[slug]; dup {
			continue
		}
		entry, err := r.GetEntry(ctx, collection, slug)
		if err != nil {
			if pserrors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		seen[slug] = struct{}{}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Slug < entries[j].Slug })
	return entries, nil
}

func isEntryExtension(ext string) bool {
	for _, candidate := range entryExtensions {
		if ext == candidate {
			return true
		}
	}
	return false
}

func decodeEntry(path, slug string, data []byte) (Entry, error) {
	if filepath.Ext(path) == ".md" {
		matter, ok := frontMatter(data)
		if !ok {
			return Entry{}, pserrors.NewParseError(path, 1, errors.New("missing front matter"))
		}
		data = matter
	}

	var entry Entry
	if err := yaml.Unmarshal(data, &entry); err != nil {
		return Entry{}, pserrors.NewYAMLParseError(path, err)
	}
	if entry.Slug == "" {
		entry.Slug = slug
	}
	if err := validation.Struct(entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// frontMatter returns the YAML block between the leading "---" line and
// the next "---" line.
func frontMatter(data []byte) ([]byte, bool) {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))
	lines := bytes.SplitAfter(data, []byte("\n"))
	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), frontMatterSep) {
		return nil, false
	}

	var block bytes.Buffer
	for _, line := range lines[1:] {
		if bytes.Equal(bytes.TrimSpace(line), frontMatterSep) {
			return block.Bytes(), true
		}
		block.Write(line)
	}
	return nil, false
}
