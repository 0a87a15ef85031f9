package sqlite

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	"arkhive.dev/appstub/internal/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type SQLiteDelegate struct {
	Path     string
	database *gorm.DB
}

func (sqliteDelegate *SQLiteDelegate) Open() (err error) {
	if err = os.MkdirAll(filepath.Dir(sqliteDelegate.Path), 0755); err != nil {
		return
	}
	dialector := sqlite.Open(sqliteDelegate.Path)
	if sqliteDelegate.database, err = gorm.Open(dialector, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	}); err != nil {
		return
	}
	return
}

func (sqliteDelegate *SQLiteDelegate) Migrate() (err error) {
	return sqliteDelegate.database.AutoMigrate(&entity.Handoff{}, &entity.ConsentFlag{})
}

func (sqliteDelegate *SQLiteDelegate) Close() (err error) {
	if sqliteDelegate.database == nil {
		return
	}
	var database *sql.DB
	if database, err = sqliteDelegate.database.DB(); err != nil {
		return
	}
	if err = database.Close(); err != nil {
		return
	}
	sqliteDelegate.database = nil
	return
}

func (sqliteDelegate *SQLiteDelegate) StoreHandoff(handoff *entity.Handoff) error {
	if result := sqliteDelegate.database.Create(handoff); result.Error != nil {
		return result.Error
	}
	return nil
}

func (sqliteDelegate *SQLiteDelegate) GetHandoffs() (handoffs []entity.Handoff, err error) {
	if result := sqliteDelegate.database.Order("insertion_date").Order("rowid").Find(&handoffs); result.Error != nil {
		err = result.Error
	}
	return
}

// GetConsentFlag returns nil without error when the flag was never set.
func (sqliteDelegate *SQLiteDelegate) GetConsentFlag(name string) (flag *entity.ConsentFlag, err error) {
	flag = new(entity.ConsentFlag)
	if result := sqliteDelegate.database.First(flag, "name = ?", name); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return
}

func (sqliteDelegate *SQLiteDelegate) SetConsentFlag(flag *entity.ConsentFlag) error {
	if result := sqliteDelegate.database.Clauses(clause.OnConflict{
		UpdateAll: true,
	}).Create(flag); result.Error != nil {
		return result.Error
	}
	return nil
}
