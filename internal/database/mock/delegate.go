package mock

import (
	"errors"

	"arkhive.dev/appstub/internal/entity"
)

var ErrNotOpen = errors.New("database not open")

// MockDelegate keeps everything in memory. Each Fail flag makes the
// matching operation return Error.
type MockDelegate struct {
	FailOpen      bool
	FailMigration bool
	FailStore     bool
	FailConsent   bool
	Error         error

	Opened       bool
	Migrated     bool
	Handoffs     []entity.Handoff
	ConsentFlags map[string]string
}

func (m *MockDelegate) Open() error {
	if m.FailOpen {
		return m.Error
	}
	m.Opened = true
	if m.ConsentFlags == nil {
		m.ConsentFlags = make(map[string]string)
	}
	return nil
}

func (m *MockDelegate) Close() error {
	m.Opened = false
	return nil
}

func (m *MockDelegate) Migrate() error {
	if m.FailMigration {
		return m.Error
	}
	m.Migrated = true
	return nil
}

func (m *MockDelegate) StoreHandoff(handoff *entity.Handoff) error {
	if !m.Opened {
		return ErrNotOpen
	}
	if m.FailStore {
		return m.Error
	}
	m.Handoffs = append(m.Handoffs, *handoff)
	return nil
}

func (m *MockDelegate) GetHandoffs() ([]entity.Handoff, error) {
	if !m.Opened {
		return nil, ErrNotOpen
	}
	return m.Handoffs, nil
}

func (m *MockDelegate) GetConsentFlag(name string) (*entity.ConsentFlag, error) {
	if !m.Opened {
		return nil, ErrNotOpen
	}
	if m.FailConsent {
		return nil, m.Error
	}
	value, ok := m.ConsentFlags[name]
	if !ok {
		return nil, nil
	}
	return &entity.ConsentFlag{Name: name, Value: value}, nil
}

func (m *MockDelegate) SetConsentFlag(flag *entity.ConsentFlag) error {
	if !m.Opened {
		return ErrNotOpen
	}
	if m.FailConsent {
		return m.Error
	}
	m.ConsentFlags[flag.Name] = flag.Value
	return nil
}
