package entity

// User is the account behind the current session
type User struct {
	Name              string
	Email             string
	IsAccountVerified bool
}

// Initial returns the upper-cased first letter of the user's name
func (u *User) Initial() string {
	for _, r := range u.Name {
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		return string(r)
	}
	return "?"
}
