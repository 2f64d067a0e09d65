package service

import (
	"golang.org/x/crypto/bcrypt"
)

var (
	bcryptGenerate = bcrypt.GenerateFromPassword
	bcryptCompare  = bcrypt.CompareHashAndPassword
	bcryptCost     = bcrypt.DefaultCost
)

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串
func HashPassword(password string) (string, error) {
	hashBytes, err := bcryptGenerate([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword 比對明文密碼與 bcrypt 哈希，成功回傳 nil，失敗則回傳錯誤
func ComparePassword(hash, password string) error {
	return bcryptCompare([]byte(hash), []byte(password))
}
