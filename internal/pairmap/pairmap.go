// Package pairmap implements an ordered map keyed by a lexicographically
// comparable pair of uint64s, supporting insert-or-get and point lookup
// in O(log n).
//
// It is a red-black tree, the same balancing scheme as the reference
// implementation this package is modeled on
// (_examples/original_source/microbpe_ext/rbtree.h, itself adapted from
// libuv's tree.h). Unlike that C original, which stores left/right/parent
// pointers and a color bit directly on an intrusive struct, nodes here
// live in a single growable slice ("arena") and are addressed by index;
// the color is an explicit int8 field rather than a pointer-tag bit. This
// avoids unsafe pointer tricks entirely and keeps every node contiguous,
// which also means the map never needs a node-level Free.
package pairmap

const (
	red   int8 = 0
	black int8 = 1
)

const nilIdx = -1

// Key is the pair type the map is ordered by. Components compare
// lexicographically: First first, then Second.
type Key struct {
	First  uint64
	Second uint64
}

func (a Key) less(b Key) bool {
	if a.First != b.First {
		return a.First < b.First
	}
	return a.Second < b.Second
}

func (a Key) equal(b Key) bool {
	return a.First == b.First && a.Second == b.Second
}

type node struct {
	key                 Key
	value               int64
	left, right, parent int
	color               int8
}

// Map is a red-black tree from Key to int64, ordered by Key; node
// indices are handed out in insertion order. Create one with New: the
// zero value is not ready to use.
type Map struct {
	nodes []node
	root  int
}

// New returns an empty Map with room for size entries preallocated.
func New(size int) *Map {
	m := &Map{root: nilIdx}
	if size > 0 {
		m.nodes = make([]node, 0, size)
	}
	return m
}

// Len returns the number of entries in the map.
func (m *Map) Len() int { return len(m.nodes) }

// Value returns the value stored at idx (an index returned by
// InsertOrGet or Lookup).
func (m *Map) Value(idx int) int64 { return m.nodes[idx].value }

// SetValue overwrites the value stored at idx.
func (m *Map) SetValue(idx int, v int64) { m.nodes[idx].value = v }

// Key returns the key stored at idx.
func (m *Map) Key(idx int) Key { return m.nodes[idx].key }

// Lookup finds the entry for key, if any, in O(log n).
func (m *Map) Lookup(key Key) (idx int, ok bool) {
	cur := m.root
	for cur != nilIdx {
		n := &m.nodes[cur]
		switch {
		case key.equal(n.key):
			return cur, true
		case key.less(n.key):
			cur = n.left
		default:
			cur = n.right
		}
	}
	return -1, false
}

// InsertOrGet returns the entry for key, inserting a fresh zero-valued
// entry if one did not already exist. wasNew reports which case
// occurred. O(log n).
func (m *Map) InsertOrGet(key Key) (idx int, wasNew bool) {
	if m.root == nilIdx {
		idx = m.newNode(key, nilIdx)
		m.root = idx
		m.nodes[idx].color = black
		return idx, true
	}

	cur := m.root
	for {
		n := &m.nodes[cur]
		switch {
		case key.equal(n.key):
			return cur, false
		case key.less(n.key):
			if n.left == nilIdx {
				idx = m.newNode(key, cur)
				m.nodes[cur].left = idx
				m.insertFixup(idx)
				return idx, true
			}
			cur = n.left
		default:
			if n.right == nilIdx {
				idx = m.newNode(key, cur)
				m.nodes[cur].right = idx
				m.insertFixup(idx)
				return idx, true
			}
			cur = n.right
		}
	}
}

func (m *Map) newNode(key Key, parent int) int {
	m.nodes = append(m.nodes, node{
		key:    key,
		left:   nilIdx,
		right:  nilIdx,
		parent: parent,
		color:  red,
	})
	return len(m.nodes) - 1
}

func (m *Map) insertFixup(z int) {
	for z != m.root && m.colorOf(m.nodes[z].parent) == red {
		p := m.nodes[z].parent
		gp := m.nodes[p].parent
		if p == m.nodes[gp].left {
			u := m.nodes[gp].right
			if m.colorOf(u) == red {
				m.nodes[p].color = black
				m.setColor(u, black)
				m.nodes[gp].color = red
				z = gp
			} else {
				if z == m.nodes[p].right {
					z = p
					m.rotateLeft(z)
					p = m.nodes[z].parent
					gp = m.nodes[p].parent
				}
				m.nodes[p].color = black
				m.nodes[gp].color = red
				m.rotateRight(gp)
			}
		} else {
			u := m.nodes[gp].left
			if m.colorOf(u) == red {
				m.nodes[p].color = black
				m.setColor(u, black)
				m.nodes[gp].color = red
				z = gp
			} else {
				if z == m.nodes[p].left {
					z = p
					m.rotateRight(z)
					p = m.nodes[z].parent
					gp = m.nodes[p].parent
				}
				m.nodes[p].color = black
				m.nodes[gp].color = red
				m.rotateLeft(gp)
			}
		}
	}
	m.nodes[m.root].color = black
}

func (m *Map) colorOf(idx int) int8 {
	if idx == nilIdx {
		return black
	}
	return m.nodes[idx].color
}

func (m *Map) setColor(idx int, c int8) {
	if idx != nilIdx {
		m.nodes[idx].color = c
	}
}

func (m *Map) rotateLeft(x int) {
	y := m.nodes[x].right
	m.nodes[x].right = m.nodes[y].left
	if m.nodes[y].left != nilIdx {
		m.nodes[m.nodes[y].left].parent = x
	}
	m.nodes[y].parent = m.nodes[x].parent
	if m.nodes[x].parent == nilIdx {
		m.root = y
	} else if x == m.nodes[m.nodes[x].parent].left {
		m.nodes[m.nodes[x].parent].left = y
	} else {
		m.nodes[m.nodes[x].parent].right = y
	}
	m.nodes[y].left = x
	m.nodes[x].parent = y
}

func (m *Map) rotateRight(x int) {
	y := m.nodes[x].left
	m.nodes[x].left = m.nodes[y].right
	if m.nodes[y].right != nilIdx {
		m.nodes[m.nodes[y].right].parent = x
	}
	m.nodes[y].parent = m.nodes[x].parent
	if m.nodes[x].parent == nilIdx {
		m.root = y
	} else if x == m.nodes[m.nodes[x].parent].right {
		m.nodes[m.nodes[x].parent].right = y
	} else {
		m.nodes[m.nodes[x].parent].left = y
	}
	m.nodes[y].right = x
	m.nodes[x].parent = y
}
