package authutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func GetToken(login, secret string, expireInSec int) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"sub":   login,
		"admin": true,
		"exp":   time.Now().Add(time.Second * time.Duration(expireInSec)).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}
	}
	return claims
}

func GetLogin(ctx *fiber.Ctx) string {
	sub, _ := GetClaims(ctx)["sub"].(string)
	return sub
}
