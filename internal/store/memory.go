package store

// MemKV is a map-backed KV for tests and ephemeral runs. Nothing survives
// the process.
type MemKV struct {
	data map[string]string
}

func NewMemKV() *MemKV {
	return &MemKV{data: map[string]string{}}
}

func (m *MemKV) Get(key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemKV) Set(key, value string) error {
	m.data[key] = value
	return nil
}

func (m *MemKV) Delete(key string) error {
	delete(m.data, key)
	return nil
}
