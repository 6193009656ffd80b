package instance

import (
	"automapper/internal/attr"
	"automapper/internal/model"
)

// Observer receives the guarded writes that did not happen because the attribute was already
// specified. Suppression is silent unless an observer is installed.
type Observer interface {
	Suppressed(node model.Node, key attr.Key, attempted any)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(node model.Node, key attr.Key, attempted any)

// Suppressed implements Observer.
func (f ObserverFunc) Suppressed(node model.Node, key attr.Key, attempted any) { f(node, key, attempted) }

// negation is the state of a one-shot Not token.
type negation struct {
	spent bool
}

// intent returns false for the first boolean setter that consumes the token, true afterwards.
func (n *negation) intent() bool {
	if n.spent {
		return true
	}

	n.spent = true

	return false
}

// writer performs guarded writes on one node.
type writer struct {
	node model.Node
	obs  Observer
	neg  *negation
}

func newWriter(n model.Node, obs Observer) writer {
	return writer{node: n, obs: obs}
}

// negated returns a copy of the writer carrying a fresh Not token.
func (w writer) negated() writer {
	w.neg = &negation{}
	return w
}

// flag returns the boolean intent of the next boolean setter.
func (w writer) flag() bool {
	if w.neg == nil {
		return true
	}

	return w.neg.intent()
}

func (w writer) suppressed(n model.Node, k attr.Key, v any) {
	if w.obs != nil {
		w.obs.Suppressed(n, k, v)
	}
}

// set writes v unless k is already specified on the node.
func (w writer) set(k attr.Key, v any) bool {
	return w.setOn(w.node, k, v)
}

func (w writer) setOn(n model.Node, k attr.Key, v any) bool {
	if attr.SetIfAbsent(n, k, v) {
		return true
	}

	w.suppressed(n, k, v)

	return false
}

// setTogether writes v to every key, or to none of them when any key is already specified.
func (w writer) setTogether(v any, keys ...attr.Key) bool {
	for _, k := range keys {
		if w.node.IsSpecified(k) {
			w.suppressed(w.node, k, v)
			return false
		}
	}

	for _, k := range keys {
		w.node.Set(k, v)
	}

	return true
}

// setColumns writes a column attribute to every column, guarded by the first one.
func (w writer) setColumns(cols *model.Columns, k attr.Key, v any) bool {
	all := cols.All()
	if attr.SetAllIfAbsent(all, k, v) {
		return true
	}

	if len(all) > 0 {
		w.suppressed(all[0], k, v)
	}

	return false
}

// column replaces the columns with a single column called name, keeping the attributes of the
// first column. Nothing happens when the first column's name is already specified.
func (w writer) column(cols *model.Columns, name string) bool {
	all := cols.All()
	if len(all) > 0 && all[0].IsSpecified(attr.Name) {
		w.suppressed(all[0], attr.Name, name)
		return false
	}

	col := model.NewColumn("")
	if len(all) > 0 {
		col = all[0].Clone()
	}

	col.Set(attr.Name, name)
	cols.Clear()
	cols.Add(col)

	return true
}

// apply returns a closure writing k through the guard, used by sub-instances.
func (w writer) apply(k attr.Key) func(string) bool {
	return func(v string) bool { return w.set(k, v) }
}
