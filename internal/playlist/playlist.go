package playlist

import (
	"errors"
	"iter"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultMaxTitleLength is the number of characters kept from a song title.
const DefaultMaxTitleLength = 99

// none marks an unset head or cursor index.
const none = -1

// Errors returned by Add.
var (
	ErrEmptyTitle = errors.New("empty title")
	ErrAllocation = errors.New("no room for another song")
)

// RemoveOutcome reports what Remove did.
type RemoveOutcome int

const (
	Removed RemoveOutcome = iota
	NotFound
	Empty
)

// String returns a human-readable representation of the outcome.
func (o RemoveOutcome) String() string {
	switch o {
	case Removed:
		return "removed"
	case NotFound:
		return "not_found"
	default:
		return "empty"
	}
}

// Entry is one song as seen by Songs.
type Entry struct {
	Title   string `json:"title"`
	Current bool   `json:"current"`
}

// slot is an arena cell. A live slot always has next pointing at another
// live slot.
type slot struct {
	title string
	next  int
	live  bool
}

// Playlist is a circular sequence of songs with a "currently playing" cursor.
// Songs live in an arena and link to each other by index, so the circle never
// holds owning references. The zero value is not usable; call New.
type Playlist struct {
	slots  []slot
	free   []int
	head   int
	cursor int
	size   int

	maxTitle int
	maxSongs int
	log      zerolog.Logger
}

// Option configures a Playlist.
type Option func(*Playlist)

// WithMaxTitleLength sets how many characters of a title are kept.
func WithMaxTitleLength(n int) Option {
	return func(p *Playlist) {
		if n > 0 {
			p.maxTitle = n
		}
	}
}

// WithCapacity limits the number of songs. Zero means unlimited.
func WithCapacity(n int) Option {
	return func(p *Playlist) {
		if n >= 0 {
			p.maxSongs = n
		}
	}
}

// WithLogger sets the logger used for add/remove/teardown records.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Playlist) {
		p.log = l
	}
}

// New creates an empty playlist.
func New(opts ...Option) *Playlist {
	p := &Playlist{
		head:     none,
		cursor:   none,
		maxTitle: DefaultMaxTitleLength,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Len returns the number of songs.
func (p *Playlist) Len() int {
	return p.size
}

// IsEmpty returns true if the playlist has no songs.
func (p *Playlist) IsEmpty() bool {
	return p.size == 0
}

// MaxTitleLength returns the number of characters kept from a title.
func (p *Playlist) MaxTitleLength() int {
	return p.maxTitle
}

// Capacity returns the song limit, or zero when unlimited.
func (p *Playlist) Capacity() int {
	return p.maxSongs
}

// Add appends a song at the tail and returns the title as stored.
// The first song added becomes the cursor.
func (p *Playlist) Add(title string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", ErrEmptyTitle
	}
	if p.maxSongs > 0 && p.size >= p.maxSongs {
		return "", ErrAllocation
	}

	title = p.truncate(title)
	i := p.alloc(title)

	if p.head == none {
		p.slots[i].next = i
		p.head = i
		p.cursor = i
	} else {
		tail := p.tail()
		p.slots[tail].next = i
		p.slots[i].next = p.head
	}
	p.size++

	p.log.Debug().Str("title", title).Int("size", p.size).Msg("song added")
	return title, nil
}

// Remove deletes the first song, counting from head, whose title equals the
// given one. If the cursor was on the removed song it moves to its successor.
func (p *Playlist) Remove(title string) RemoveOutcome {
	if p.size == 0 {
		return Empty
	}
	title = p.truncate(title)

	prev := none
	cur := p.head
	for n := 0; n < p.size; n++ {
		if p.slots[cur].title != title {
			prev = cur
			cur = p.slots[cur].next
			continue
		}

		next := p.slots[cur].next
		switch {
		case p.size == 1:
			p.head = none
			p.cursor = none
		case cur == p.head:
			tail := p.tail()
			p.head = next
			p.slots[tail].next = next
			if p.cursor == cur {
				p.cursor = next
			}
		default:
			p.slots[prev].next = next
			if p.cursor == cur {
				p.cursor = next
			}
		}
		p.release(cur)
		p.size--

		p.log.Debug().Str("title", title).Int("size", p.size).Msg("song removed")
		return Removed
	}

	return NotFound
}

// Songs yields every song once, starting at head, marking the cursor.
// Each range over the sequence starts again from head.
func (p *Playlist) Songs() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		if p.size == 0 {
			return
		}
		i := p.head
		for n, total := 0, p.size; n < total; n++ {
			if i < 0 || i >= len(p.slots) || !p.slots[i].live {
				return
			}
			if !yield(Entry{Title: p.slots[i].title, Current: i == p.cursor}) {
				return
			}
			i = p.slots[i].next
		}
	}
}

// Current returns the title under the cursor. It returns false when there is
// nothing to play.
func (p *Playlist) Current() (string, bool) {
	if p.cursor == none {
		return "", false
	}
	return p.slots[p.cursor].title, true
}

// Next advances the cursor, wrapping from tail to head.
func (p *Playlist) Next() (string, bool) {
	if p.cursor == none {
		return "", false
	}
	p.cursor = p.slots[p.cursor].next
	return p.Current()
}

// Previous moves the cursor back one song, wrapping from head to tail.
// Links only point forward, so this scans from head.
func (p *Playlist) Previous() (string, bool) {
	if p.cursor == none {
		return "", false
	}
	if p.size > 1 {
		i := p.head
		for p.slots[i].next != p.cursor {
			i = p.slots[i].next
		}
		p.cursor = i
	}
	return p.Current()
}

// Teardown releases every song and leaves the playlist empty. It returns the
// number of songs released.
func (p *Playlist) Teardown() int {
	released := 0
	i := p.head
	for n := 0; n < p.size; n++ {
		next := p.slots[i].next
		p.slots[i] = slot{}
		released++
		i = next
	}

	p.slots = nil
	p.free = nil
	p.head = none
	p.cursor = none
	p.size = 0

	if released > 0 {
		p.log.Debug().Int("released", released).Msg("playlist torn down")
	}
	return released
}

// tail returns the index of the song whose next is head. Caller ensures the
// playlist is not empty.
func (p *Playlist) tail() int {
	i := p.head
	for p.slots[i].next != p.head {
		i = p.slots[i].next
	}
	return i
}

func (p *Playlist) alloc(title string) int {
	if n := len(p.free); n > 0 {
		i := p.free[n-1]
		p.free = p.free[:n-1]
		p.slots[i] = slot{title: title, next: none, live: true}
		return i
	}
	p.slots = append(p.slots, slot{title: title, next: none, live: true})
	return len(p.slots) - 1
}

func (p *Playlist) release(i int) {
	p.slots[i] = slot{next: none}
	p.free = append(p.free, i)
}

// truncate keeps at most maxTitle characters, never splitting a rune.
func (p *Playlist) truncate(title string) string {
	n := 0
	for i := range title {
		if n == p.maxTitle {
			return title[:i]
		}
		n++
	}
	return title
}
