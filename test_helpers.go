package webcompile

// testStore is a map-backed Store shared by the package tests. Missing
// keys read as empty values, matching how callers treat unset entries.
type testStore struct {
	data map[string]string
}

func newTestStore() *testStore {
	return &testStore{data: make(map[string]string)}
}

func (s *testStore) Get(key string) (string, error) {
	return s.data[key], nil
}

func (s *testStore) Set(key, value string) error {
	s.data[key] = value
	return nil
}
