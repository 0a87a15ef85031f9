package sqlite_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"arkhive.dev/appstub/internal/database/delegate/sqlite"
	"arkhive.dev/appstub/internal/entity"
	"github.com/stretchr/testify/assert"
)

func openTestDelegate(t *testing.T) *sqlite.SQLiteDelegate {
	s := &sqlite.SQLiteDelegate{
		Path: filepath.Join(t.TempDir(), "data", "appstub.sqlite3"),
	}
	if err := s.Open(); err != nil {
		t.Fatal(err)
	}
	if err := s.Migrate(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenAndClose(t *testing.T) {
	s := sqlite.SQLiteDelegate{
		Path: filepath.Join(t.TempDir(), "appstub.sqlite3"),
	}
	if err := s.Open(); err != nil {
		t.Log(err)
		t.Fail()
	}
	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}

func TestOpenAfterFirstCreation(t *testing.T) {
	s := sqlite.SQLiteDelegate{
		Path: filepath.Join(t.TempDir(), "appstub.sqlite3"),
	}
	if err := s.Open(); err != nil {
		t.Log(err)
		t.Fail()
	}
	s.Close()
	if err := s.Open(); err != nil {
		t.Log(err)
		t.Fail()
	}
	s.Close()
}

func TestStoreHandoffs(t *testing.T) {
	s := openTestDelegate(t)

	first := entity.Handoff{
		ID:            "first",
		SelfPath:      "/Applications/Foo.app/Contents/MacOS/Foo",
		CompanionPath: "/Applications/Foo.app/Contents/MacOS/launch.scpt",
		Interpreter:   "/usr/bin/osascript",
		PID:           12,
	}
	second := first
	second.ID = "second"
	second.PID = 0
	second.Error = sql.NullString{String: "no such file or directory", Valid: true}

	if err := s.StoreHandoff(&first); err != nil {
		t.Fatal(err)
	}
	if err := s.StoreHandoff(&second); err != nil {
		t.Fatal(err)
	}
	assert.Error(t, s.StoreHandoff(&first), "duplicated primary key")

	handoffs, err := s.GetHandoffs()
	if err != nil {
		t.Fatal(err)
	}
	if assert.Len(t, handoffs, 2) {
		assert.Equal(t, "first", handoffs[0].ID)
		assert.Equal(t, 12, handoffs[0].PID)
		assert.False(t, handoffs[0].Error.Valid)
		assert.Equal(t, "second", handoffs[1].ID)
		assert.Equal(t, "no such file or directory", handoffs[1].Error.String)
		assert.False(t, handoffs[1].InsertionDate.IsZero())
	}
}

func TestConsentFlags(t *testing.T) {
	s := openTestDelegate(t)

	flag, err := s.GetConsentFlag("analytics-consent")
	assert.NoError(t, err)
	assert.Nil(t, flag)

	assert.NoError(t, s.SetConsentFlag(&entity.ConsentFlag{Name: "analytics-consent", Value: "true"}))
	assert.NoError(t, s.SetConsentFlag(&entity.ConsentFlag{Name: "analytics-consent", Value: "false"}))

	flag, err = s.GetConsentFlag("analytics-consent")
	if assert.NoError(t, err) && assert.NotNil(t, flag) {
		assert.Equal(t, "false", flag.Value)
	}
}
