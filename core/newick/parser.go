// core/newick/parser.go
package newick

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"parsimony/tree"
)

// Parse reads a single rooted, strictly bifurcating Newick tree.
// Quoted labels and [] comments are accepted; a missing branch length is 0.
func Parse(s string) (*tree.Tree, error) {
	p := &parser{in: s, out: &tree.Tree{}}
	p.skipSpace()
	root, _, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eat(';') {
		return nil, p.errf("expected ';'")
	}
	p.skipSpace()
	if p.pos != len(p.in) {
		return nil, p.errf("trailing data after ';'")
	}
	if !root.Internal {
		return nil, fmt.Errorf("newick: tree must contain at least two taxa")
	}
	p.out.Root = root
	p.out.CreatePostorder()
	return p.out, nil
}

// ParseFile reads the first tree from path.
func ParseFile(path string) (*tree.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := Parse(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

type parser struct {
	in  string
	pos int
	out *tree.Tree
}

func (p *parser) errf(format string, args ...interface{}) error {
	return fmt.Errorf("newick: %s at offset %d", fmt.Sprintf(format, args...), p.pos)
}

func (p *parser) peek() byte {
	if p.pos >= len(p.in) {
		return 0
	}
	return p.in[p.pos]
}

func (p *parser) eat(c byte) bool {
	if p.peek() == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) skipSpace() {
	for p.pos < len(p.in) {
		switch c := p.in[p.pos]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			p.pos++
		case c == '[': // comment
			end := strings.IndexByte(p.in[p.pos:], ']')
			if end < 0 {
				p.pos = len(p.in)
				return
			}
			p.pos += end + 1
		default:
			return
		}
	}
}

// parseNode parses a leaf or an (a,b) clade, returning the node index and
// its branch length.
func (p *parser) parseNode() (tree.NodeIdx, float64, error) {
	p.skipSpace()
	if p.eat('(') {
		var children []tree.NodeIdx
		var blens []float64
		for {
			c, b, err := p.parseNode()
			if err != nil {
				return tree.NodeIdx{}, 0, err
			}
			children = append(children, c)
			blens = append(blens, b)
			p.skipSpace()
			if p.eat(',') {
				continue
			}
			break
		}
		if !p.eat(')') {
			return tree.NodeIdx{}, 0, p.errf("expected ')'")
		}
		if len(children) != 2 {
			return tree.NodeIdx{}, 0, fmt.Errorf("newick: node with %d children; the aligner requires a bifurcating tree", len(children))
		}
		label := p.parseLabel()
		blen := p.parseBranchLen()
		idx := len(p.out.Internals)
		p.out.Internals = append(p.out.Internals, tree.Node{ID: label})
		p.out.AddParent(idx, children[0], children[1], blens[0], blens[1])
		p.out.Internals[idx].BranchLen = blen
		return tree.Internal(idx), blen, nil
	}

	label := p.parseLabel()
	if label == "" {
		return tree.NodeIdx{}, 0, p.errf("expected leaf name")
	}
	blen := p.parseBranchLen()
	idx := len(p.out.Leaves)
	p.out.Leaves = append(p.out.Leaves, tree.Node{ID: label, BranchLen: blen})
	return tree.Leaf(idx), blen, nil
}

func (p *parser) parseLabel() string {
	p.skipSpace()
	if p.eat('\'') {
		start := p.pos
		for p.pos < len(p.in) && p.in[p.pos] != '\'' {
			p.pos++
		}
		label := p.in[start:p.pos]
		p.eat('\'')
		return label
	}
	start := p.pos
	for p.pos < len(p.in) && !strings.ContainsRune("(),:;[ \t\n\r", rune(p.in[p.pos])) {
		p.pos++
	}
	return p.in[start:p.pos]
}

func (p *parser) parseBranchLen() float64 {
	p.skipSpace()
	if !p.eat(':') {
		return 0
	}
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.in) && strings.ContainsRune("0123456789.eE+-", rune(p.in[p.pos])) {
		p.pos++
	}
	v, err := strconv.ParseFloat(p.in[start:p.pos], 64)
	if err != nil {
		return 0
	}
	return v
}
