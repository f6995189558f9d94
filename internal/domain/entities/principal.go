package entities

import "errors"

// ErrPrincipalNotFound возвращается, когда субъект токена не имеет учетной записи.
var ErrPrincipalNotFound = errors.New("authenticated user not found")

// Principal представляет аутентифицированного пользователя в рамках одного запроса.
// Не сохраняется отдельно от User, выводится из него и передается явным параметром.
type Principal struct {
	UserID string
	Email  string
}

// PrincipalFromUser строит Principal из сущности пользователя.
func PrincipalFromUser(user *User) *Principal {
	return &Principal{
		UserID: user.ID,
		Email:  user.Email,
	}
}
