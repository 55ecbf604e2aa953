package domain

// Credential is the identity the backend hands out on login. The token is
// opaque to this service; it is stored durably and attached as a bearer
// credential on admin calls until logout.
type Credential struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}
