package rtn

import (
	"fmt"
	"sort"
	"strings"
)

// Node is one position in the prefix-shared route tree.
//
// A node carries the literal anchor that must appear in the path at this
// position. A parameter node additionally captures a run of path characters
// before its anchor. Accepting nodes remember their route's name together
// with the full, ordered parameter name list of the original template, so
// structurally shared parameter edges still re-bind the right names on a
// match.
//
// Example tree for the routes /a, /b/{x} and /b/{x}/c:
//
//	"" (root)
//	 └── "/"
//	      ├── "a"            (accepts "a")
//	      └── "b/"
//	           └── {} ""     (accepts "b")
//	                └── "/c" (accepts "c")
//
// The zero value is an empty root, ready for Insert.
type Node struct {
	routeName           string
	routeParameterNames []string
	named               bool

	// anchor is the literal that follows this node's parameter capture,
	// or simply the literal to match when the node has no parameter.
	anchor       string
	hasParameter bool

	children []*Node
	parent   *Node
}

// RouteName reports the route accepted at this node, if any.
func (node *Node) RouteName() (string, bool) {
	return node.routeName, node.named
}

// RouteParameterNames lists the parameter names of the accepting route's
// template, in template order. Nil for non-accepting nodes.
func (node *Node) RouteParameterNames() []string {
	return node.routeParameterNames
}

// nodeLess orders siblings for traversal: longer anchors first, literal
// nodes before parameter nodes at equal length, then lexicographic.
// First-match traversal over this order is what makes a literal match win
// over a parameter capture at every decision point.
func nodeLess(a, b *Node) bool {
	if len(a.anchor) != len(b.anchor) {
		return len(a.anchor) > len(b.anchor)
	}
	if a.hasParameter != b.hasParameter {
		return !a.hasParameter
	}
	return a.anchor < b.anchor
}

func (node *Node) sortChildren() {
	sort.SliceStable(node.children, func(i, j int) bool {
		return nodeLess(node.children[i], node.children[j])
	})
}

func (node *Node) addChild(child *Node) {
	node.children = append(node.children, child)
	node.sortChildren()
}

func (node *Node) removeChild(child *Node) {
	for i, c := range node.children {
		if c == child {
			node.children = append(node.children[:i], node.children[i+1:]...)
			return
		}
	}
}

// findSimilarChild looks for the child a new (anchor, hasParameter) pair
// must be merged with: same parameter flag and either an identical anchor
// or a non-empty common anchor prefix. Siblings of the same kind are prefix
// disjoint, so at most one child qualifies.
func (node *Node) findSimilarChild(anchor string, hasParameter bool) (int, *Node) {
	for _, child := range node.children {
		if child.hasParameter != hasParameter {
			continue
		}
		if child.anchor == anchor {
			return len(anchor), child
		}
		common := commonPrefixLength(child.anchor, anchor)
		if common == 0 {
			continue
		}
		return common, child
	}

	return 0, nil
}

func commonPrefixLength(left, right string) int {
	limit := len(left)
	if len(right) < limit {
		limit = len(right)
	}

	index := 0
	for index < limit && left[index] == right[index] {
		index++
	}
	return index
}

// Insert compiles template and adds it to the tree, accepting under name.
// It returns the accepting node. The template is validated before the tree
// is touched, so a rejected template leaves matching behavior unchanged.
func (node *Node) Insert(name string, template string) (*Node, error) {
	pairs, err := ParseTemplatePairs(template)
	if err != nil {
		return nil, err
	}

	parameterNames := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		if pair.HasParameter {
			parameterNames = append(parameterNames, pair.Parameter)
		}
	}

	current := node
	for index, pair := range pairs {
		terminal := index == len(pairs)-1

		common, similar := current.findSimilarChild(pair.Anchor, pair.HasParameter)
		current, err = current.merge(similar, pair.Anchor, pair.HasParameter, terminal, name, parameterNames, common)
		if err != nil {
			return nil, err
		}
	}

	return current, nil
}

// merge places one template pair below parent, reusing or splitting the
// similar child found by findSimilarChild.
func (parent *Node) merge(child *Node, anchor string, hasParameter bool, terminal bool, name string, parameterNames []string, commonPrefixLen int) (*Node, error) {
	if child == nil {
		return parent.mergeNew(anchor, hasParameter, terminal, name, parameterNames), nil
	}

	commonPrefix := anchor[:commonPrefixLen]

	switch {
	case child.anchor == anchor:
		return child.mergeJoin(terminal, name, parameterNames)

	case child.anchor == commonPrefix:
		// The child's anchor is a prefix of the new anchor; descend into the
		// child with the remainder. The capture (if any) stays with the child.
		remainder := anchor[commonPrefixLen:]
		common, grandchild := child.findSimilarChild(remainder, false)
		return child.merge(grandchild, remainder, false, terminal, name, parameterNames, common)

	case anchor == commonPrefix:
		return parent.mergeAddAbove(child, anchor, hasParameter, terminal, name, parameterNames, commonPrefixLen), nil

	default:
		return parent.mergeIntermediate(child, anchor, hasParameter, terminal, name, parameterNames, commonPrefixLen), nil
	}
}

// mergeNew appends a fresh node; no child shares any anchor prefix.
func (parent *Node) mergeNew(anchor string, hasParameter bool, terminal bool, name string, parameterNames []string) *Node {
	child := &Node{
		anchor:       anchor,
		hasParameter: hasParameter,
		parent:       parent,
	}
	child.accept(terminal, name, parameterNames)
	parent.addChild(child)
	return child
}

// mergeJoin reuses an existing node with the identical anchor. Marking an
// already accepting node for a second route means both templates accept the
// same paths.
func (child *Node) mergeJoin(terminal bool, name string, parameterNames []string) (*Node, error) {
	if terminal && child.named {
		return nil, fmt.Errorf("%w: %q and %q accept the same paths", ErrAmbiguousRoute, child.routeName, name)
	}
	child.accept(terminal, name, parameterNames)
	return child, nil
}

// mergeAddAbove inserts the new node between parent and child: the new
// anchor is a proper prefix of the child's anchor, so the child keeps only
// its suffix and loses the capture to the new node.
func (parent *Node) mergeAddAbove(child *Node, anchor string, hasParameter bool, terminal bool, name string, parameterNames []string, commonPrefixLen int) *Node {
	next := &Node{
		anchor:       anchor,
		hasParameter: hasParameter,
		parent:       parent,
	}
	next.accept(terminal, name, parameterNames)

	parent.removeChild(child)
	parent.addChild(next)

	child.anchor = child.anchor[commonPrefixLen:]
	child.hasParameter = false
	child.parent = next
	next.addChild(child)

	return next
}

// mergeIntermediate splits at the divergence point: an unnamed node takes
// the common prefix (and the capture), with the stripped child and the new
// node as its children.
func (parent *Node) mergeIntermediate(child *Node, anchor string, hasParameter bool, terminal bool, name string, parameterNames []string, commonPrefixLen int) *Node {
	intermediate := &Node{
		anchor:       child.anchor[:commonPrefixLen],
		hasParameter: hasParameter,
		parent:       parent,
	}

	parent.removeChild(child)
	parent.addChild(intermediate)

	child.anchor = child.anchor[commonPrefixLen:]
	child.hasParameter = false
	child.parent = intermediate
	intermediate.addChild(child)

	next := &Node{
		anchor: anchor[commonPrefixLen:],
		parent: intermediate,
	}
	next.accept(terminal, name, parameterNames)
	intermediate.addChild(next)

	return next
}

func (node *Node) accept(terminal bool, name string, parameterNames []string) {
	if !terminal {
		return
	}
	node.named = true
	node.routeName = name
	node.routeParameterNames = parameterNames
}

// Parse matches path against the subtree rooted at node and returns the
// accepting node plus the captured parameter values in template order, or
// nil when nothing matches.
//
// A parameter node requires a non-empty remainder and captures up to the
// first occurrence of its anchor, scanning at most the anchor length plus
// maximumParameterValueLength bytes; an empty anchor captures the whole
// remainder. Children are tried in sibling order, so literal continuations
// are preferred over parameter captures.
func (node *Node) Parse(path string, maximumParameterValueLength int) (*Node, []string) {
	var value string

	if node.hasParameter {
		// a parameter value needs at least one character
		if path == "" {
			return nil, nil
		}

		index := len(path)
		if node.anchor != "" {
			window := len(node.anchor) + maximumParameterValueLength
			if window > len(path) {
				window = len(path)
			}
			index = strings.Index(path[:window], node.anchor)
			if index < 0 {
				return nil, nil
			}
		}

		value = path[:index]
		path = path[index+len(node.anchor):]
	} else {
		if !strings.HasPrefix(path, node.anchor) {
			return nil, nil
		}
		path = path[len(node.anchor):]
	}

	for _, child := range node.children {
		if leaf, values := child.Parse(path, maximumParameterValueLength); leaf != nil {
			if node.hasParameter {
				values = append([]string{value}, values...)
			}
			return leaf, values
		}
	}

	if path == "" && node.named {
		if node.hasParameter {
			return node, []string{value}
		}
		return node, nil
	}

	return nil, nil
}

// Stringify rebuilds the concrete path for the route accepted at this node.
// values must hold one entry per template parameter, in template order; this
// is the inverse of Parse for the same node.
func (node *Node) Stringify(values []string) string {
	index := len(values)
	var parts []string

	for current := node; current != nil; current = current.parent {
		parts = append(parts, current.anchor)
		if current.hasParameter {
			index--
			parts = append(parts, values[index])
		}
	}

	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteString(parts[i])
	}
	return b.String()
}

// String renders the subtree one node per line, for debugging and for
// comparing tree shapes in tests.
func (node *Node) String() string {
	var b strings.Builder
	node.dump(&b, 0)
	return b.String()
}

func (node *Node) dump(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	if node.hasParameter {
		b.WriteString("{} ")
	}
	fmt.Fprintf(b, "%q", node.anchor)
	if node.named {
		fmt.Fprintf(b, " name=%q", node.routeName)
	}
	b.WriteByte('\n')

	for _, child := range node.children {
		child.dump(b, depth+1)
	}
}
