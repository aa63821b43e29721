package lexer

type nodeList map[rune]*node

// A node is a node in the search tree of a word list.
//
type node struct {
	c    nodeList // child nodes
	term bool     // a word ends here
}

// match returns the child node that matches the given rune.
//
func (n *node) match(r rune) *node {
	return n.c[r]
}

// Words is a Matcher for a fixed list of words, stored as a rune trie.
//
type Words struct {
	e *node
}

// NewWords returns a matcher accepting exactly the given words.
//
func NewWords(words ...string) *Words {
	w := &Words{e: &node{c: make(nodeList)}}
	for _, s := range words {
		w.Add(s)
	}
	return w
}

// Add registers s. Registering a word twice is a no-op.
//
func (w *Words) Add(s string) {
	n := w.e
	for _, r := range s {
		i, ok := n.c[r]
		if !ok {
			i = &node{c: make(nodeList)}
			n.c[r] = i
		}
		n = i
	}
	n.term = true
}

// Match returns true if s is one of the registered words.
//
func (w *Words) Match(s string) bool {
	n := w.e
	for _, r := range s {
		if n = n.match(r); n == nil {
			return false
		}
	}
	return n.term
}
