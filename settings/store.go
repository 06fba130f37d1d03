package settings

// OptionStore is the host boundary for persisted records: an opaque
// key-value slot per settings page. Get returns an empty record for an
// unknown name. Implementations decide about transactional guarantees;
// concurrent submissions are last-write-wins.
type OptionStore interface {
	Get(name string) (map[string]any, error)
	Set(name string, record map[string]any) error
}

// CachedStore memoizes reads of an OptionStore so a record is fetched
// at most once per request. It is meant to live for a single request
// and is not safe for concurrent use.
type CachedStore struct {
	next  OptionStore
	cache map[string]map[string]any
}

// NewCachedStore wraps an OptionStore with per-request read memoization.
func NewCachedStore(next OptionStore) *CachedStore {
	return &CachedStore{
		next:  next,
		cache: make(map[string]map[string]any),
	}
}

// Get returns the memoized record, reading through on the first call.
func (c *CachedStore) Get(name string) (map[string]any, error) {
	if record, ok := c.cache[name]; ok {
		return record, nil
	}

	record, err := c.next.Get(name)
	if err != nil {
		return nil, err
	}

	c.cache[name] = record

	return record, nil
}

// Set writes through and refreshes the memoized record.
func (c *CachedStore) Set(name string, record map[string]any) error {
	if err := c.next.Set(name, record); err != nil {
		return err
	}

	c.cache[name] = cloneRecord(record)

	return nil
}

// MemoryStore is an in-memory OptionStore for tests and demos.
type MemoryStore struct {
	records map[string]map[string]any
}

// NewMemoryStore creates an empty in-memory option store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]map[string]any)}
}

// Get returns a copy of the stored record, or an empty record for an
// unknown name.
func (m *MemoryStore) Get(name string) (map[string]any, error) {
	return cloneRecord(m.records[name]), nil
}

// Set stores a copy of the record.
func (m *MemoryStore) Set(name string, record map[string]any) error {
	m.records[name] = cloneRecord(record)

	return nil
}
