package binding

// Table maps a logical field name ("link", "entry", ...) to the decode
// function for the child element carrying that field.
type Table map[string]Func

// Dispatch is a node type's effective dispatch table. Extending a
// Dispatch merges the parent entries under the child's at construction
// time, so lookup never walks a chain and a missing entry is always a
// wiring defect, never an input problem.
type Dispatch struct {
	name    string
	entries Table
}

// NewDispatch builds a root dispatch table. The name identifies the
// owning type in DispatchError messages.
func NewDispatch(name string, entries Table) *Dispatch {
	d := &Dispatch{name: name, entries: make(Table, len(entries))}
	for k, fn := range entries {
		d.entries[k] = fn
	}
	return d
}

// Extend derives a new table: the receiver's entries overlaid with the
// given ones, the derived type winning on collision. The receiver is not
// modified.
func (d *Dispatch) Extend(name string, entries Table) *Dispatch {
	nd := &Dispatch{name: name, entries: make(Table, len(d.entries)+len(entries))}
	for k, fn := range d.entries {
		nd.entries[k] = fn
	}
	for k, fn := range entries {
		nd.entries[k] = fn
	}
	return nd
}

// Resolve returns the decode function registered under name. A missing
// entry is a programming error in a vocabulary module and panics with a
// *DispatchError.
func (d *Dispatch) Resolve(name string) Func {
	fn, ok := d.entries[name]
	if !ok {
		panic(&DispatchError{Dispatch: d.name, Name: name})
	}
	return fn
}

// Has reports whether a decoder is registered under name.
func (d *Dispatch) Has(name string) bool {
	_, ok := d.entries[name]
	return ok
}
