package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword gera o hash bcrypt (com salt) de uma senha em texto puro.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compara uma senha em texto puro com o hash armazenado.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
