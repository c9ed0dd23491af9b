package split

import (
	"fmt"
	"io"

	"github.com/wendigo/ignite/ast"
)

// UnsupportedAggregate is returned when the splitter encounters an
// aggregate kind with no known algebraic decomposition. The only kinds
// with a decomposition are AVG, SUM, MIN, MAX, COUNT, and COUNT(*);
// anything else is this error, never a panic.
type UnsupportedAggregate struct {
	Kind ast.AggKind
	Node ast.Node
}

func (e *UnsupportedAggregate) Error() string {
	return fmt.Sprintf("unsupported aggregate: %s", e.Kind)
}

// WriteTo renders the error together with the offending node's SQL text.
func (e *UnsupportedAggregate) WriteTo(dst io.Writer) (int64, error) {
	return writeErrWithNode(dst, e.Error(), e.Node)
}

// InvariantViolated indicates a structural assumption the splitter
// relies on failed — for example a map-side aggregate emerging already
// wrapped in an alias, or an aggregate found nested inside another
// aggregate's argument. These indicate a bug in the splitter or in the
// caller's AST, never a recoverable condition; the splitter performs no
// retries.
type InvariantViolated struct {
	Message string
	Node    ast.Node
}

func (e *InvariantViolated) Error() string {
	return "invariant violated: " + e.Message
}

func (e *InvariantViolated) WriteTo(dst io.Writer) (int64, error) {
	return writeErrWithNode(dst, e.Error(), e.Node)
}

func writeErrWithNode(dst io.Writer, msg string, n ast.Node) (int64, error) {
	if n == nil {
		w, err := io.WriteString(dst, msg)
		return int64(w), err
	}
	w, err := fmt.Fprintf(dst, "%s (in %s)", msg, ast.String(n))
	return int64(w), err
}
