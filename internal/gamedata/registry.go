package gamedata

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/samdwyer/thefloor/internal/protocol"
)

// ErrUnknownCategory is returned when a category has no image folder.
var ErrUnknownCategory = errors.New("no image folder for category")

// SequenceRegistry resolves categories to image sequences from a directory
// tree laid out as <root>/<category>/##-Answer.ext. Results are cached.
type SequenceRegistry struct {
	fsys  fs.FS
	cache map[string]protocol.Sequence
}

// NewSequenceRegistry creates a registry over fsys. A nil fsys resolves
// every category to an empty sequence.
func NewSequenceRegistry(fsys fs.FS) *SequenceRegistry {
	return &SequenceRegistry{
		fsys:  fsys,
		cache: make(map[string]protocol.Sequence),
	}
}

// Resolve returns the sequence for category. When the category cannot be
// resolved it returns an empty sequence together with the reason, so callers
// can log and carry on.
func (r *SequenceRegistry) Resolve(category string) (protocol.Sequence, error) {
	if seq, ok := r.cache[category]; ok {
		return seq, nil
	}

	seq, err := r.load(category)
	if err != nil {
		return protocol.Sequence{}, err
	}
	r.cache[category] = seq
	return seq, nil
}

func (r *SequenceRegistry) load(category string) (protocol.Sequence, error) {
	if r.fsys == nil || category == "" || !fs.ValidPath(category) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	entries, err := fs.ReadDir(r.fsys, category)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnknownCategory, category, err)
	}

	seq := make(protocol.Sequence, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if card, ok := ParseCardName(e.Name()); ok {
			seq = append(seq, card)
		}
	}
	SortCards(seq)
	return seq, nil
}

// Categories returns the category folders available under the root.
func (r *SequenceRegistry) Categories() ([]string, error) {
	if r.fsys == nil {
		return nil, nil
	}
	entries, err := fs.ReadDir(r.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	var result []string
	for _, e := range entries {
		if e.IsDir() {
			result = append(result, e.Name())
		}
	}
	sort.Strings(result)
	return result, nil
}

// Count returns the number of cached categories.
func (r *SequenceRegistry) Count() int {
	return len(r.cache)
}
