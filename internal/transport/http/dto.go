package httptransport

type LoginData struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type CreatedResponse struct {
	ID int64 `json:"id"`
}

type AckResponse struct {
	Success bool `json:"success"`
}
