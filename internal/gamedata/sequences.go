package gamedata

import (
	"cmp"
	"path"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/samdwyer/thefloor/internal/protocol"
)

// imageExtensions lists the file types a category folder may hold.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".gif":  true,
}

var titleCaser = cases.Title(language.Und)

// ParseCardName parses an image file name of the form "##-Answer.ext".
// Underscores in the answer become spaces; an all-lowercase answer is
// title-cased. The second result is false for names that do not match.
func ParseCardName(filename string) (protocol.Card, bool) {
	ext := strings.ToLower(path.Ext(filename))
	if !imageExtensions[ext] {
		return protocol.Card{}, false
	}

	base := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	key, answer, ok := strings.Cut(base, "-")
	if !ok {
		return protocol.Card{}, false
	}
	index, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil || index < 0 {
		return protocol.Card{}, false
	}

	answer = strings.Join(strings.Fields(strings.ReplaceAll(answer, "_", " ")), " ")
	if answer == "" {
		return protocol.Card{}, false
	}
	if answer == strings.ToLower(answer) {
		answer = titleCaser.String(answer)
	}
	return protocol.Card{Index: index, Answer: answer}, true
}

// SortCards orders cards ascending by index. Equal indices keep their order.
func SortCards(seq protocol.Sequence) {
	slices.SortStableFunc(seq, func(a, b protocol.Card) int {
		return cmp.Compare(a.Index, b.Index)
	})
}
