package authhelpers

import (
	"crypto/md5"
	"encoding/hex"
)

// GetMD5Hash - хэш пароля для хранения в БД
func GetMD5Hash(text string) string {
	hash := md5.Sum([]byte(text))
	return hex.EncodeToString(hash[:])
}

// VerifyPassword сверяет пароль с хэшем из БД
func VerifyPassword(password, passwordHash string) bool {
	return GetMD5Hash(password) == passwordHash
}
