package db

import (
	"errors"

	"gorm.io/gorm"
)

var ErrUpsertUsernameRequired = errors.New("upsert username required")

// UsernameKeyed is a row that exists at most once per username.
type UsernameKeyed interface {
	KeyUsername() string
	RecordID() uint
	AssignID(id uint)
}

// UpsertByUsername inserts record when no row exists for its username and
// otherwise overwrites the listed columns of the existing row. The lookup and
// the write share one transaction.
func UpsertByUsername[T any, PT interface {
	*T
	UsernameKeyed
}](database *gorm.DB, record PT, columns ...string) (created bool, err error) {
	username := record.KeyUsername()
	if username == "" {
		return false, ErrUpsertUsernameRequired
	}

	err = database.Transaction(func(tx *gorm.DB) error {
		existing, found, err := findByUsername[T, PT](tx, username, "id")
		if err != nil {
			return err
		}
		if !found {
			created = true
			return tx.Create(record).Error
		}

		record.AssignID(PT(&existing).RecordID())
		if len(columns) == 0 {
			return tx.Save(record).Error
		}
		return tx.Model(record).Select(columns).Updates(record).Error
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

func findByUsername[T any, PT interface {
	*T
	UsernameKeyed
}](database *gorm.DB, username string, fields ...string) (T, bool, error) {
	var entry T
	query := database.Model(PT(&entry))
	if len(fields) > 0 {
		query = query.Select(fields)
	}
	result := query.Where("username = ?", username).Limit(1).Find(&entry)
	if result.Error != nil {
		var zero T
		return zero, false, result.Error
	}
	if result.RowsAffected == 0 {
		var zero T
		return zero, false, nil
	}
	return entry, true, nil
}
