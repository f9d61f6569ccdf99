package fitfile

import (
	"fmt"

	"github.com/arloliu/fitcourse/errs"
	"github.com/arloliu/fitcourse/internal/hash"
	"github.com/arloliu/fitcourse/mesg"
	"github.com/arloliu/fitcourse/section"
)

// channelSlot is the state of one local message number.
type channelSlot struct {
	id      uint64 // xxHash64 of name
	name    string
	defined bool
	last    mesg.Definition // last definition emitted on this channel
}

// channelTable maps message names to local message numbers in first-use order.
// It has a fixed capacity of 16 entries, the range of the 4-bit wire field.
type channelTable struct {
	slots [section.LocalMesgNumCount]channelSlot
	n     int
}

// lookup returns the channel assigned to name.
func (t *channelTable) lookup(name string) (uint8, bool) {
	id := hash.ID(name)
	for i := range t.n {
		if t.slots[i].id == id && t.slots[i].name == name {
			return uint8(i), true //nolint:gosec
		}
	}

	return 0, false
}

// assign returns the channel of name, assigning the next free one on first use.
func (t *channelTable) assign(name string) (ch uint8, isNew bool, err error) {
	if ch, ok := t.lookup(name); ok {
		return ch, false, nil
	}

	if t.n >= len(t.slots) {
		return 0, false, fmt.Errorf("%w: cannot assign a channel to %q, all %d are in use",
			errs.ErrChannelExhausted, name, len(t.slots))
	}

	ch = uint8(t.n) //nolint:gosec
	t.slots[ch] = channelSlot{id: hash.ID(name), name: name}
	t.n++

	return ch, true, nil
}

// needsDefinition reports whether defn differs from the last definition
// emitted on its channel.
func (t *channelTable) needsDefinition(defn mesg.Definition) bool {
	slot := &t.slots[defn.Channel]
	return !slot.defined || !slot.last.Equal(defn)
}

// setDefinition records defn as the last definition emitted on its channel.
func (t *channelTable) setDefinition(defn mesg.Definition) {
	slot := &t.slots[defn.Channel]
	slot.last = defn.Clone()
	slot.defined = true
}

// len returns the number of assigned channels.
func (t *channelTable) len() int {
	return t.n
}

func (t *channelTable) reset() {
	*t = channelTable{}
}
