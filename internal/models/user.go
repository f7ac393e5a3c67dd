package models

/*
|--------------------------------------------------------------------------
| STORE MODEL (INTERNAL)
|--------------------------------------------------------------------------
| Full record, including the password hash. Never serialized directly.
*/
type User struct {
	ID       int
	Username string
	Password string
	FullName string
	Station  *int
	Role     string
}

/*
|--------------------------------------------------------------------------
| REQUEST
|--------------------------------------------------------------------------
*/
type InsertUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Station  *int   `json:"station"`
	Role     string `json:"role"`
}

/*
|--------------------------------------------------------------------------
| RESPONSE DTO
|--------------------------------------------------------------------------
| Same record minus the password.
*/
type UserResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Station  *int   `json:"station"`
	Role     string `json:"role"`
}

func ToUserResponse(u User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Station:  u.Station,
		Role:     u.Role,
	}
}
