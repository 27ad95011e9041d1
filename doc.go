/*
Package adt is the root of a small library of generic container abstract
data types: sequence containers (list, stack, queue), hashed and ordered
maps and sets, and a structurally shared binary tree.

The containers live in their own sub-packages; this package only holds the
error kinds they share. Partial operations (reading the front of an empty
queue, the element of an empty tree) return errors matching one of these
kinds under errors.Is, so callers can decide per call site whether a
condition is fatal or recoverable. The library itself never swallows them.

The sub-package of note is bintree: an immutable-shape binary tree whose
subtrees share storage with their parents. It comes in two flavors with
identical observable behavior: bintree, where the garbage collector owns
node lifetime, and bintree/counted, where an arena tracks explicit
per-node reference counts.
*/
package adt
