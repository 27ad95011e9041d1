/*
Package queue implements the Queue ADT over a singly-linked list of nodes.

The binary-tree level-order traversal stages pending nodes on one of
these. Partial operations return errors matching adt.ErrEmptyQueue.
*/
package queue
