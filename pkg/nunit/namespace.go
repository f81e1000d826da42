package nunit

import "strings"

// ResolveNamespace returns the dotted path of the namespace suites enclosing
// n, outermost first. It returns "" when n has no namespace ancestors.
func ResolveNamespace(n *Node) string {
	var names []string
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.IsNamespace() {
			names = append(names, p.Name)
		}
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, ".")
}
