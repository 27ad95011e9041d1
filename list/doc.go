/*
Package list implements the List ADT as a doubly-linked list, plus a
leaner singly-linked variant.

Lists are the sequence type returned by the binary-tree traversals: an
ordered, appendable container with forward read access. Operations that
need a non-empty list return errors matching adt.ErrEmptyList.
*/
package list
