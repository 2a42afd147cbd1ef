// Trie implements a byte trie of function names for completion.
// It uses arrays instead of maps, lookups are one index per byte.
package trie // import "risp.io/risp/trie"

type Trie struct {
	// Children of this node
	children [256]*Trie
	// This node itself is a valid word in addition to maybe having children.
	valid bool
	leaf  bool // Only set on the shared endMarker.
}

// Shared end marker for all leaves, the only node with leaf set.
var endMarker = &Trie{valid: true, leaf: true}

func NewTrie() *Trie {
	return &Trie{}
}

func (t *Trie) Insert(word string) {
	l := len(word)
	for i := range l {
		char := word[i]
		last := i == l-1
		switch child := t.children[char]; {
		case child == nil && last:
			t.children[char] = endMarker
		case child == nil:
			t.children[char] = &Trie{}
		case child == endMarker && !last:
			// Was a complete word so far, now also a prefix of a longer one.
			t.children[char] = &Trie{valid: true}
		case last:
			child.valid = true
		}
		t = t.children[char]
	}
}

func (t *Trie) Contains(word string) bool {
	return t.Prefix(word).IsValid()
}

func (t *Trie) Prefix(word string) *Trie {
	for i := range len(word) {
		t = t.children[word[i]]
		if t == nil {
			return nil
		}
	}
	return t
}

func (t *Trie) IsLeaf() bool {
	return t != nil && t.leaf
}

func (t *Trie) IsValid() bool {
	return t != nil && t.valid
}

// PrefixAll returns all the words starting with prefix, in byte order, and
// the length of the longest prefix they all share (at least len(prefix) when
// there is any match).
func (t *Trie) PrefixAll(prefix string) (int, []string) {
	node := t.Prefix(prefix)
	if node == nil {
		return 0, nil
	}
	var words []string
	buf := []byte(prefix)
	node.collect(&buf, &words)
	if len(words) == 0 {
		return 0, nil
	}
	return commonPrefixLen(words), words
}

func (t *Trie) collect(buf *[]byte, words *[]string) {
	if t.valid {
		*words = append(*words, string(*buf))
	}
	for c, child := range t.children {
		if child == nil {
			continue
		}
		*buf = append(*buf, byte(c))
		child.collect(buf, words)
		*buf = (*buf)[:len(*buf)-1]
	}
}

func commonPrefixLen(words []string) int {
	l := len(words[0])
	for _, w := range words[1:] {
		l = min(l, len(w))
		for i := range l {
			if w[i] != words[0][i] {
				l = i
				break
			}
		}
	}
	return l
}

/*
  A-B
  A-B-C

  [A] -> [B] children[C] = endMarker
*/
