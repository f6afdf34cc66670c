package cache

// CustomerIndex counts queued records per customer id. Ids are not unique, so
// an id stays indexed until every record carrying it has left the queues.
type CustomerIndex struct {
	entries map[int]int
}

func NewCustomerIndex() *CustomerIndex {
	return &CustomerIndex{
		entries: make(map[int]int),
	}
}

func (c *CustomerIndex) Add(id int) {
	c.entries[id]++
}

func (c *CustomerIndex) Remove(id int) {
	n, found := c.entries[id]
	if !found {
		return
	}
	if n <= 1 {
		delete(c.entries, id)
		return
	}
	c.entries[id] = n - 1
}

func (c *CustomerIndex) Contains(id int) bool {
	_, found := c.entries[id]
	return found
}

// Count reports how many queued records carry id.
func (c *CustomerIndex) Count(id int) int {
	return c.entries[id]
}

// Len is the number of distinct queued ids.
func (c *CustomerIndex) Len() int {
	return len(c.entries)
}
