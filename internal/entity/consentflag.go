package entity

type ConsentFlag struct {
	Name  string `gorm:"primaryKey"`
	Value string `gorm:"not null"`
}
