package models

type CreateAccountResponse struct {
	UID   string `json:"uid"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}
