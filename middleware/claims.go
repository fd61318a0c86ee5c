package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "hr-system-backend/lib/utils/auth-utils"
	"hr-system-backend/models"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	userID, _ := claims["sub"].(string)
	return userID
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	role, _ := claims["role"].(string)
	return models.UserRole(role)
}
