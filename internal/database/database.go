package database

import (
	"database/sql"

	"arkhive.dev/appstub/internal/database/delegate"
	"arkhive.dev/appstub/internal/entity"
	"arkhive.dev/appstub/internal/launcher"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Database struct {
	delegate delegate.DatabaseDelegate
}

func NewDatabase(delegate delegate.DatabaseDelegate) (instance *Database) {
	instance = &Database{
		delegate: delegate,
	}
	return
}

func (d *Database) Initialize() (err error) {
	logrus.Info("Connecting to database")
	if err = d.delegate.Open(); err != nil {
		return
	}
	logrus.Info("Applying database migrations")
	if err = d.delegate.Migrate(); err != nil {
		d.delegate.Close()
		return
	}
	return
}

func (d *Database) Deinitialize() {
	if err := d.delegate.Close(); err != nil {
		logrus.Errorf("%+v", err)
	}
}

// RecordHandoff stores a launch attempt. It is meant to be subscribed to
// the launcher handoff events, so failures are logged and never returned.
func (d *Database) RecordHandoff(handoff launcher.Handoff) {
	record := entity.Handoff{
		ID:            uuid.NewString(),
		SelfPath:      handoff.SelfPath.String(),
		CompanionPath: handoff.CompanionPath.String(),
		Interpreter:   handoff.Interpreter,
		PID:           handoff.PID,
	}
	if handoff.Err != nil {
		record.Error = sql.NullString{String: handoff.Err.Error(), Valid: true}
	}
	if err := d.delegate.StoreHandoff(&record); err != nil {
		logrus.Error("Cannot store the handoff")
		logrus.Errorf("%+v", err)
	}
}

func (d *Database) GetHandoffs() ([]entity.Handoff, error) {
	return d.delegate.GetHandoffs()
}

// Value returns the raw value of a consent flag and whether it is set.
func (d *Database) Value(flag string) (value string, found bool, err error) {
	var consentFlag *entity.ConsentFlag
	if consentFlag, err = d.delegate.GetConsentFlag(flag); err != nil || consentFlag == nil {
		return
	}
	return consentFlag.Value, true, nil
}

func (d *Database) SetValue(flag string, value string) error {
	return d.delegate.SetConsentFlag(&entity.ConsentFlag{Name: flag, Value: value})
}
