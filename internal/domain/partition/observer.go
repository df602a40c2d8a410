package partition

// Observer is notified once after every completed mutation.
type Observer interface {
	LayoutChanged(layout Layout)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(layout Layout)

// LayoutChanged calls f.
func (f ObserverFunc) LayoutChanged(layout Layout) {
	f(layout)
}

type observerEntry struct {
	id       int
	observer Observer
}

// Subscribe registers an observer and returns a function that removes it.
func (t *Tree) Subscribe(o Observer) (unsubscribe func()) {
	if o == nil {
		return func() {}
	}
	t.nextObserver++
	id := t.nextObserver
	t.observers = append(t.observers, observerEntry{id: id, observer: o})

	return func() {
		for i, entry := range t.observers {
			if entry.id == id {
				t.observers = append(t.observers[:i], t.observers[i+1:]...)
				return
			}
		}
	}
}

func (t *Tree) notify() {
	if len(t.observers) == 0 {
		return
	}
	layout := t.ComputeAbsoluteLayout()
	observers := make([]observerEntry, len(t.observers))
	copy(observers, t.observers)
	for _, entry := range observers {
		entry.observer.LayoutChanged(layout)
	}
}
