package models

// User is the paying customer as the caller supplies it. The gateway only
// needs the JazzCash wallet number and the CNIC it is registered against;
// the rest identifies the user to us.
type User struct {
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
	Email     string `json:"email" validate:"omitempty,email"`
	PhoneNo   string `json:"phone_no" validate:"required,len=11,numeric"`
	IDCard    string `json:"id_card" validate:"required,len=13,numeric"`
	UserID    string `json:"user_id"`
}
