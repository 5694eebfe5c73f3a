package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bread-orders/internal/domain"
	"bread-orders/internal/service"
	resp "bread-orders/internal/transport/http/response"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type registerIn struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

// Register handles POST /api/save-user.
func (h *UserHandler) Register(c *gin.Context) {
	var in registerIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, domain.Validation("Corps de requête invalide"))
		return
	}
	id, err := h.svc.Register(service.RegisterInput{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Address:  in.Address,
		Password: in.Password,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, http.StatusCreated, gin.H{"message": "Utilisateur enregistré", "userId": id})
}

// Find handles GET /api/find-user?email=. This is the login lookup:
// it resolves an email to a profile without any password check, the
// same contract the login page has always relied on.
func (h *UserHandler) Find(c *gin.Context) {
	u, err := h.svc.FindByEmail(c.Query("email"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, http.StatusOK, gin.H{"userId": u.ID, "user": u})
}

type changePasswordIn struct {
	UserID          string `json:"userId"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword handles POST /api/change-password.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var in changePasswordIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, domain.Validation("Corps de requête invalide"))
		return
	}
	if err := h.svc.ChangePassword(in.UserID, in.CurrentPassword, in.NewPassword); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, http.StatusOK, gin.H{"message": "Mot de passe mis à jour"})
}

type updateUserIn struct {
	UserID          string `json:"userId"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Update handles POST /api/update-user. A body carrying both password
// fields is a password change, anything else is a profile update.
func (h *UserHandler) Update(c *gin.Context) {
	var in updateUserIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, domain.Validation("Corps de requête invalide"))
		return
	}
	if in.CurrentPassword != "" && in.NewPassword != "" {
		if err := h.svc.ChangePassword(in.UserID, in.CurrentPassword, in.NewPassword); err != nil {
			resp.Error(c, err)
			return
		}
		resp.OK(c, http.StatusOK, gin.H{"message": "Mot de passe mis à jour"})
		return
	}
	applied, err := h.svc.UpdateProfile(in.UserID, in.Name, in.Phone)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, http.StatusOK, gin.H{"message": "Profil mis à jour", "updates": applied})
}
