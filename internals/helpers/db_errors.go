package helper

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// IsDuplicateKey: deteksi pelanggaran unique constraint dari layer DB.
// gorm >= 1.25 menerjemahkan ke ErrDuplicatedKey; fallback cek teks driver.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "sqlstate 23505")
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
