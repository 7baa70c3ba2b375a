package dnd

import (
	"fmt"
	"io"
	"log"
	"os"
)

// logger receives listener panics, protocol violations and, in debug mode,
// routing traces.
var logger = log.New(os.Stderr, "[dnd] ", 0)

// SetLogOutput redirects the package logger. Pass io.Discard to silence it,
// nil to restore stderr.
func SetLogOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	logger.SetOutput(w)
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool

// debugf logs only in debug mode.
func debugf(format string, args ...any) {
	if globalDebug {
		logger.Printf(format, args...)
	}
}

// debugCheckDisposed panics when a disposed node is used in a tree
// operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("dnd debug: %s on disposed node %q", op, n.Name))
	}
}

// debugMaxTreeDepth is the depth past which debugCheckTreeDepth warns.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Printf("warning: tree depth %d exceeds %d (node %q)", depth, debugMaxTreeDepth, n.Name)
	}
}

// zoneName names a zone for traces.
func zoneName(z *DropZone) string {
	if z == nil || z.Node == nil {
		return "<none>"
	}
	return z.Node.Name
}
