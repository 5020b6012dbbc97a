package domain

import "fmt"

// Role is the closed set of greeting profiles assigned when a user is seeded
type Role string

const (
	RoleFounder Role = "founder" // Greeted in the feminine form
	RolePartner Role = "partner" // Greeted in the masculine form
	RoleDefault Role = "default" // Neutral greeting
)

// ParseRole maps a stored label back to a Role, falling back to RoleDefault
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleFounder, RolePartner:
		return Role(s)
	default:
		return RoleDefault
	}
}

// User Model
type User struct {
	ID        uint       `gorm:"primaryKey"`                                     // Primary key
	Username  string     `gorm:"size:50;uniqueIndex;not null"`                   // Unique username
	Password  string     `gorm:"size:60;not null" json:"-"`                      // bcrypt hash
	Role      Role       `gorm:"size:20;not null"`                               // Greeting profile
	Movements []Movement `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"` // Owned cash movements
	Employees []Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"` // Owned payroll entries
}

// Welcome returns the dashboard greeting for the user
func (u *User) Welcome() string {
	switch ParseRole(string(u.Role)) {
	case RoleFounder:
		return fmt.Sprintf("Bem Vinda, %s", u.Username)
	case RolePartner:
		return fmt.Sprintf("Bem vindo, %s", u.Username)
	default:
		return fmt.Sprintf("Bem-vindo(a), %s!", u.Username)
	}
}
