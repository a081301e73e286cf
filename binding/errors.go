package binding

import "fmt"

// IncompleteObjectError reports a node that cannot be encoded because a
// field the vocabulary requires is not set. The caller can fill in the
// field and encode again.
type IncompleteObjectError struct {
	Type  string // element name of the offending node, e.g. "atom:entry"
	Field string // logical name of the missing field
}

func (e *IncompleteObjectError) Error() string {
	return fmt.Sprintf("binding: %s requires %s", e.Type, e.Field)
}

// DispatchError reports a dispatch-table lookup for a name no table in
// the type's chain provides. It is a wiring defect in a vocabulary
// module, never a consequence of input data, and is raised as a panic
// value rather than returned.
type DispatchError struct {
	Dispatch string // name of the table the lookup started from
	Name     string // the logical field name that was requested
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("binding: %s has no decoder for %q", e.Dispatch, e.Name)
}
