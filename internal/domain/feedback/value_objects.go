package feedback

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 500
	MaxTags          = 10
	MaxPhotoBytes    = 5 << 20
)

type Ratings struct {
	values map[Category]int
}

func NewRatings(in map[string]int) (Ratings, error) {
	values := make(map[Category]int, len(in))
	for k, v := range in {
		c := Category(strings.ToLower(strings.TrimSpace(k)))
		if !c.IsValid() {
			return Ratings{}, ErrInvalidCategory
		}
		if v < MinRating || v > MaxRating {
			return Ratings{}, ErrInvalidRating
		}
		values[c] = v
	}
	return Ratings{values: values}, nil
}

func (r Ratings) Get(c Category) (int, bool) {
	v, ok := r.values[c]
	return v, ok
}

func (r Ratings) Len() int { return len(r.values) }

func (r Ratings) Map() map[Category]int {
	out := make(map[Category]int, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// Mean is rounded half away from zero; zero when no category was rated.
func (r Ratings) Mean() int {
	if len(r.values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range r.values {
		sum += v
	}
	return int(math.Round(float64(sum) / float64(len(r.values))))
}

type Comment struct {
	text string
}

// NewComment trims the text; an empty comment is allowed.
func NewComment(s string) (Comment, error) {
	t := strings.TrimSpace(s)
	if utf8.RuneCountInString(t) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }
func (c Comment) IsEmpty() bool  { return c.text == "" }

type Tags struct {
	values []string
}

// NewTags trims, drops blanks and de-duplicates while keeping the first-seen order.
func NewTags(in []string) (Tags, error) {
	seen := make(map[string]struct{}, len(in))
	values := make([]string, 0, len(in))
	for _, raw := range in {
		t := strings.TrimSpace(raw)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		values = append(values, t)
	}
	if len(values) > MaxTags {
		return Tags{}, ErrTooManyTags
	}
	return Tags{values: values}, nil
}

func (t Tags) Values() []string {
	out := make([]string, len(t.values))
	copy(out, t.values)
	return out
}

type Photo struct {
	Data        []byte
	ContentType string
	Filename    string
}

func (p *Photo) validate() error {
	if len(p.Data) > MaxPhotoBytes {
		return ErrPhotoTooLarge
	}
	if !strings.HasPrefix(p.ContentType, "image/") {
		return ErrPhotoNotImage
	}
	return nil
}

// SortedCategories returns the rated categories in the canonical order.
func SortedCategories(m map[Category]int) []Category {
	order := make(map[Category]int, len(Categories))
	for i, c := range Categories {
		order[c] = i
	}
	out := make([]Category, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return order[out[i]] < order[out[j]] })
	return out
}
