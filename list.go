package dnd

import (
	"fmt"
	"slices"
)

// ReorderOp moves the element at From to position To: it is removed first,
// then inserted, so every element between the two shifts by one.
type ReorderOp struct {
	From, To int
}

// ApplyReorder applies op to items in place and returns items.
// Panics if either index is out of range.
func ApplyReorder[T any](op ReorderOp, items []T) []T {
	if op.From < 0 || op.From >= len(items) || op.To < 0 || op.To >= len(items) {
		panic(fmt.Sprintf("dnd: reorder %d->%d out of range [0,%d)", op.From, op.To, len(items)))
	}
	moved := items[op.From]
	if op.From < op.To {
		copy(items[op.From:op.To], items[op.From+1:op.To+1])
	} else {
		copy(items[op.To+1:op.From+1], items[op.To:op.From])
	}
	items[op.To] = moved
	return items
}

// InsertOp describes inserting a foreign payload at Index.
type InsertOp struct {
	Type  string
	Data  any
	Index int
}

// ApplyInsert returns items with op.Data inserted at op.Index. It fails when
// the index is out of range or the payload is not a T.
func ApplyInsert[T any](op InsertOp, items []T) ([]T, error) {
	v, ok := op.Data.(T)
	if !ok {
		return items, fmt.Errorf("dnd: insert %q: payload is %T, want %T", op.Type, op.Data, v)
	}
	if op.Index < 0 || op.Index > len(items) {
		return items, fmt.Errorf("dnd: insert %q: index %d out of range [0,%d]", op.Type, op.Index, len(items))
	}
	return slices.Insert(items, op.Index, v), nil
}

// ReorderChildren applies op to n's children, changing their paint order.
func (n *Node) ReorderChildren(op ReorderOp) {
	ApplyReorder(op, n.children)
	n.childrenSorted = false
}
