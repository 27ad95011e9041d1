/*
Package stack implements the Stack ADT twice: once over a dynamic array
and once over a linked list of nodes.

The array-backed Stack is what the ordered map and set iterators use to
keep their pending-ancestor chains, since tree nodes carry no parent
pointers. Partial operations return errors matching adt.ErrEmptyStack.
*/
package stack
