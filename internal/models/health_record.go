package models

import "time"

type HealthRecord struct {
	ID          uint      `gorm:"primaryKey"`
	Username    string    `gorm:"not null;uniqueIndex"`
	Weight      float64   `gorm:"not null"`
	Height      float64   `gorm:"not null"`
	BMI         float64   `gorm:"column:bmi"`
	LastUpdated time.Time `gorm:"not null"`
}

func (HealthRecord) TableName() string {
	return "health_data"
}

func (record *HealthRecord) KeyUsername() string { return record.Username }
func (record *HealthRecord) RecordID() uint      { return record.ID }
func (record *HealthRecord) AssignID(id uint)    { record.ID = id }
