package model

import "github.com/golang-jwt/jwt"

// DemoUserID is the owner key used when no bearer token accompanies a
// request. The demo stores are intentionally not wired to real auth.
const DemoUserID = "demo-user"

// UserClaims are the JWT claims carried by a dashboard bearer token.
type UserClaims struct {
	UserName string `json:"user_name"`
	jwt.StandardClaims
}
