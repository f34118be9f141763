package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LAES18/proyecto-automatas/auth"
	"github.com/LAES18/proyecto-automatas/config"
	"github.com/LAES18/proyecto-automatas/models"
	"github.com/LAES18/proyecto-automatas/store"
)

// Register creates a new user account.
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud inválida"})
		return
	}

	if !auth.ValidEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email inválido. Debe tener formato: usuario@dominio.com"})
		return
	}
	if !auth.ValidPassword(req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Contraseña inválida. Debe tener mínimo 6 caracteres, al menos una letra y un número"})
		return
	}

	user, err := store.RegisterUser(config.DB, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El email ya está registrado"})
			return
		}
		log.Println("register:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear usuario"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuario creado exitosamente", "userId": user.ID})
}

// Login authenticates a user and returns a bearer token valid for seven days.
func Login(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Solicitud inválida"})
			return
		}

		if !auth.ValidEmail(req.Email) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email inválido"})
			return
		}
		if req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Contraseña requerida"})
			return
		}

		user, err := store.VerifyUser(config.DB, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, store.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciales inválidas"})
				return
			}
			log.Println("login:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al iniciar sesión"})
			return
		}

		token, err := auth.IssueToken(secret, user.ID)
		if err != nil {
			log.Println("issue token:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al iniciar sesión"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "userId": user.ID, "email": user.Email})
	}
}

// currentUserID pulls the authenticated user out of the request context.
func currentUserID(c *gin.Context) (uint, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := raw.(uint)
	return id, ok
}
