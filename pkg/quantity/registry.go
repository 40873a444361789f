package quantity

import "sort"

// The registry maps quantity names to their definitions. It is populated at
// process start by the preset declarations and queried by exact-match lookup.

var registry = map[string]*Quantity{}

func register(q *Quantity) *Quantity {
	registry[q.Name] = q
	return q
}

// Lookup returns the registered quantity with the given name.
func Lookup(name string) (*Quantity, error) {
	q, ok := registry[name]
	if !ok {
		return nil, &UnknownQuantityError{Name: name, Known: Names()}
	}
	return q, nil
}

// MustLookup is Lookup for names known at compile time; it panics on a miss.
func MustLookup(name string) *Quantity {
	q, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return q
}

// Names returns the names of all registered quantities, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
