package model

// User is a registered account. The password is kept as plain text for
// parity with the original assignment API; never expose it in responses.
type User struct {
	Username string `json:"username"`
	Password string `json:"-"`
}
