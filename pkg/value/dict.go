package value

// dictPrimes is the fixed capacity schedule a Dict grows through, carried
// over verbatim from the original implementation.
var dictPrimes = []int{
	11, 23, 47, 97, 197, 397, 797, 1597, 3203, 6421, 12853, 25717, 51437,
	102877, 205759, 411527, 823117, 1646237, 3292489, 6584983, 13169977,
	26339969, 52679969, 105359939, 210719881, 421439783, 842879579, 1685759167,
}

// Dict is an open-addressed hash table keyed by value identity (object
// identity, not structural equality) with quadratic probing. Capacity
// follows the fixed prime schedule above and resizes once the load factor
// reaches 1/2.
type Dict struct {
	id      uint64
	keys    []Value
	values  []Value
	size    int
	primeIx int
}

// NewDict allocates a new, empty dict.
func NewDict() *Dict {
	d := &Dict{id: nextID(), primeIx: -1}
	d.resize()
	return d
}

func (d *Dict) Kind() Kind               { return KindDict }
func (d *Dict) TypeDesc() *TypeDescriptor { return DictType }
func (d *Dict) ID() uint64                { return d.id }
func (d *Dict) IsStatic() bool            { return false }
func (d *Dict) Size() int                 { return len(d.keys)*16 + 32 }
func (d *Dict) Len() int                  { return d.size }
func (d *Dict) String() string            { return renderToString(d) }

func (d *Dict) Trace(visit func(Value)) {
	for i, k := range d.keys {
		if k != nil {
			visit(k)
			visit(d.values[i])
		}
	}
}

func (d *Dict) Render(buf []byte) int {
	used := 0
	used += copyTrunc(safeTail(buf, used), "{")
	for i, k := range d.keys {
		if k == nil {
			continue
		}
		if used >= len(buf) {
			return used
		}
		used += k.Render(safeTail(buf, used))
		used += copyTrunc(safeTail(buf, used), " : ")
		used += d.values[i].Render(safeTail(buf, used))
		used += copyTrunc(safeTail(buf, used), ", ")
	}
	used += copyTrunc(safeTail(buf, used), "}")
	if used > len(buf) {
		return len(buf)
	}
	return used
}

// findIndex returns the slot index for key, and whether key is already
// present there. If key is absent and the table is full (every probe
// revisited without finding an empty slot), found is false and index is -1.
func (d *Dict) findIndex(key Value) (index int, found bool) {
	capacity := len(d.keys)
	hash := int(key.ID() % uint64(capacity))
	for i := 0; i < capacity; i++ {
		j := (hash + i*i) % capacity
		if d.keys[j] == nil {
			return j, false
		}
		if d.keys[j].ID() == key.ID() {
			return j, true
		}
	}
	return -1, false
}

// resize grows the table to the next prime in the schedule, rehashing all
// existing entries.
func (d *Dict) resize() error {
	if d.primeIx+1 >= len(dictPrimes) {
		return Errorf(ErrResource, "dict is already at maximum size")
	}
	oldKeys, oldValues := d.keys, d.values
	d.primeIx++
	newSize := dictPrimes[d.primeIx]
	d.keys = make([]Value, newSize)
	d.values = make([]Value, newSize)
	d.size = 0
	for i, k := range oldKeys {
		if k != nil {
			d.setItemNoResize(k, oldValues[i])
		}
	}
	return nil
}

func (d *Dict) setItemNoResize(key, val Value) {
	i, found := d.findIndex(key)
	d.keys[i] = key
	d.values[i] = val
	if !found {
		d.size++
	}
}

// Set stores value under key (compared by identity), resizing if the load
// factor would exceed 1/2, and fails with ErrResource if the capacity
// schedule is exhausted.
func (d *Dict) Set(key, val Value) error {
	i, found := d.findIndex(key)
	if i < 0 {
		return Errorf(ErrResource, "dict full somehow")
	}
	d.keys[i] = key
	d.values[i] = val
	if !found {
		d.size++
		if d.size > len(d.keys)/2 {
			return d.resize()
		}
	}
	return nil
}

// Get returns the value stored under key and true, or (nil, false) if key
// is absent. The boolean return is the "sentinel distinct from any stored
// value" the spec calls for.
func (d *Dict) Get(key Value) (Value, bool) {
	i, found := d.findIndex(key)
	if !found {
		return nil, false
	}
	return d.values[i], true
}
