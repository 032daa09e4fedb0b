package auth

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt silently truncates anything past 72 bytes, so the limit is
// enforced here and surfaced as a domain error instead of the raw
// library message.
const (
	bcryptMaxBytes   = 72
	minPasswordRunes = 8
)

var (
	ErrPasswordTooShort = errors.New("パスワードは8文字以上で入力してください")
	ErrPasswordTooLong  = errors.New("パスワードは72バイト以内で入力してください（日本語などのマルチバイト文字を含む場合は文字数が少なくなります）")
)

func HashPassword(password string) (string, error) {
	if utf8.RuneCountInString(password) < minPasswordRunes {
		return "", ErrPasswordTooShort
	}
	if len(password) > bcryptMaxBytes {
		return "", ErrPasswordTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", err
	}
	return string(hashed), nil
}

func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
