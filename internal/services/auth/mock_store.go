package auth

// MockStore is an in-memory auth store for testing.
type MockStore struct {
	token string
	set   bool

	// Err, when non-nil, is returned by every method.
	Err error
}

func NewMockStore() *MockStore {
	return &MockStore{}
}

func (m *MockStore) SetToken(token string) error {
	if m.Err != nil {
		return m.Err
	}
	m.token, m.set = token, true
	return nil
}

func (m *MockStore) GetToken() (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if !m.set {
		return "", ErrTokenNotFound
	}
	return m.token, nil
}

func (m *MockStore) DeleteToken() error {
	if m.Err != nil {
		return m.Err
	}
	if !m.set {
		return ErrTokenNotFound
	}
	m.token, m.set = "", false
	return nil
}
