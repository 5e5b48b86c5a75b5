package models

// User is a registered account. Passwords are stored and compared as
// plaintext — hardening this is explicitly outside the service's scope and
// must not be changed without a migration plan for existing rows.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Password     string `json:"-"`
	Mobile       string `json:"mobile"`
	Gmail        string `json:"gmail"`
	RegisteredAt string `json:"registered_at"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Mobile   string `json:"mobile"`
	Gmail    string `json:"gmail"`
}

type LoginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	DeviceType string `json:"device_type"`
}
