package wbplot

// StringPool interns the levels of a categorical axis. The index of a
// level is its position on the axis.
type StringPool struct {
	pool []string
}

func NewStringPool() *StringPool {
	return &StringPool{pool: make([]string, 0, 16)}
}

// Add returns the index of s, appending it if it is new.
func (sp *StringPool) Add(s string) int {
	if i := sp.Find(s); i != -1 {
		return i
	}
	sp.pool = append(sp.pool, s)
	return len(sp.pool) - 1
}

// Find returns the index of s or -1.
func (sp *StringPool) Find(s string) int {
	for i, t := range sp.pool {
		if t == s {
			return i
		}
	}
	return -1
}

func (sp *StringPool) Get(i int) string {
	if i < 0 || i >= len(sp.pool) {
		return "--NA--"
	}
	return sp.pool[i]
}

// Len is the number of distinct levels.
func (sp *StringPool) Len() int {
	if sp == nil {
		return 0
	}
	return len(sp.pool)
}

// Elements returns the levels in insertion order.
func (sp *StringPool) Elements() []string {
	if sp == nil {
		return nil
	}
	return append([]string(nil), sp.pool...)
}
