package delegate

import "arkhive.dev/appstub/internal/entity"

type DatabaseDelegate interface {
	Open() error
	Close() error
	Migrate() error
	StoreHandoff(handoff *entity.Handoff) error
	GetHandoffs() ([]entity.Handoff, error)
	GetConsentFlag(name string) (*entity.ConsentFlag, error)
	SetConsentFlag(flag *entity.ConsentFlag) error
}
