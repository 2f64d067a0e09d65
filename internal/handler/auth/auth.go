// Package auth serves registration, login, admin login and the profile.
package auth

import (
	"sweet-shop/internal/service"
	"sweet-shop/internal/store"
)

const (
	MsgMissingFields      = "Please provide all required fields"
	MsgMissingCredentials = "Please provide email and password"
	MsgShortPassword      = "Password must be at least 8 characters"
	MsgReservedEmail      = "Super admin account is managed by the system. Use admin login."
	MsgUseAdminLogin      = "Use the admin login page for super admin access."
	MsgUserExists         = "User already exists"
	MsgInvalidCredentials = "Invalid email or password"
	MsgInvalidAdminLogin  = "Invalid admin credentials"
	MsgNotAuthorized      = "Not authorized"
	minPasswordLength     = 8
)

// TokenSigner is satisfied by *service.TokenService.
type TokenSigner interface {
	Sign(userID string) (string, error)
}

var (
	userExists       = store.UserExists
	createUser       = store.CreateUser
	getUserByEmail   = store.GetUserByEmail
	hashPassword     = service.HashPassword
	comparePassword  = service.ComparePassword
	ensureSuperAdmin = service.EnsureSuperAdmin
)
