package entities

type RegisterPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Fullname string `json:"fullname"`
}

type LoginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AddedUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}
