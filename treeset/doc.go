/*
Package treeset implements an ordered set over an unbalanced binary
search tree, the element-only sibling of package treemap.

Like the map, it never rebalances, keeps no parent pointers, and walks
in-order through an explicit ancestor stack.
*/
package treeset
