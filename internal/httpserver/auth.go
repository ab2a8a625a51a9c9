package httpserver

import (
	"net/http"

	"ecommerce/internal/domain"
	usersvc "ecommerce/internal/service/user"
	"github.com/gin-gonic/gin"
)

func signupHandler(users UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in usersvc.SignupInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, &domain.ValidationError{Reason: "invalid request body"})
			return
		}
		u, err := users.Signup(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusCreated, "account created", u)
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	TokenType    string       `json:"tokenType"`
	ExpiresIn    int          `json:"expiresIn"`
	User         *domain.User `json:"user"`
}

func loginHandler(users UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in loginRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, &domain.ValidationError{Reason: "invalid request body"})
			return
		}
		u, access, refresh, err := users.Login(c.Request.Context(), in.Username, in.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "login successful", loginResponse{
			AccessToken:  access,
			RefreshToken: refresh,
			TokenType:    "bearer",
			ExpiresIn:    users.AccessTTLSeconds(),
			User:         u,
		})
	}
}

func meHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		respond(c, http.StatusOK, "current user", currentUser(c))
	}
}

func updateMeHandler(users UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in usersvc.UpdateProfileInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, &domain.ValidationError{Reason: "invalid request body"})
			return
		}
		u, err := users.UpdateProfile(c.Request.Context(), currentPrincipal(c).UserID, in)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "profile updated", u)
	}
}
