// Package auth handles account registration, login and the current
// viewer identity.
package auth

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hackkaliboi/DXN/internal/middleware"
	"github.com/hackkaliboi/DXN/internal/models"
	jwtpkg "github.com/hackkaliboi/DXN/internal/pkg/jwt"
	"github.com/hackkaliboi/DXN/internal/pkg/response"
)

const tokenTTL = 30 * 24 * time.Hour

type RegisterDTO struct {
	Email       string `json:"email"        binding:"required,email"`
	Password    string `json:"password"     binding:"required,min=6"`
	DisplayName string `json:"display_name"`
}

type LoginDTO struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

type viewerResponse struct {
	ID            string               `json:"id"`
	Email         string               `json:"email"`
	IsAdmin       bool                 `json:"is_admin"`
	LastLoginTime *time.Time           `json:"last_login_time"`
	Profile       *models.ProfileModel `json:"profile,omitempty"`
}

type loginResponse struct {
	Token string          `json:"token"`
	User  *viewerResponse `json:"user"`
}

func toViewerResponse(u *models.UserModel) *viewerResponse {
	return &viewerResponse{
		ID:            u.ID,
		Email:         u.Email,
		IsAdmin:       u.IsAdmin,
		LastLoginTime: u.LastLoginTime,
		Profile:       u.Profile,
	}
}

type Service struct {
	db       *gorm.DB
	notifier *Notifier
}

func NewService(db *gorm.DB, notifier *Notifier) *Service {
	return &Service{db: db, notifier: notifier}
}

func (s *Service) GetByID(id string) (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.Preload("Profile").First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// Register creates an account with its profile row. The first account
// becomes the admin.
func (s *Service) Register(dto *RegisterDTO) (*models.UserModel, error) {
	var count int64
	if err := s.db.Model(&models.UserModel{}).Where("email = ?", dto.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var total int64
	if err := s.db.Model(&models.UserModel{}).Count(&total).Error; err != nil {
		return nil, err
	}

	u := models.UserModel{
		Email:    dto.Email,
		Password: string(hash),
		IsAdmin:  total == 0,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&u).Error; err != nil {
			return err
		}
		profile := models.ProfileModel{UserID: u.ID}
		if dto.DisplayName != "" {
			profile.DisplayName = &dto.DisplayName
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		u.Profile = &profile
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(Event{Kind: EventSignedIn, UserID: u.ID})
	return &u, nil
}

func (s *Service) Login(email, password string) (string, *models.UserModel, error) {
	var u models.UserModel
	if err := s.db.Preload("Profile").Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, fmt.Errorf("user not found")
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("wrong password")
	}

	now := time.Now()
	s.db.Model(&u).Update("last_login_time", now)
	u.LastLoginTime = &now

	token, err := jwtpkg.Sign(u.ID, tokenTTL)
	if err != nil {
		return "", nil, err
	}
	s.notifier.Publish(Event{Kind: EventSignedIn, UserID: u.ID})
	return token, &u, nil
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/auth")
	g.POST("/register", h.register)
	g.POST("/login", h.login)

	a := g.Group("", authMW)
	a.GET("/viewer", h.viewer)
	a.POST("/logout", h.logout)
	a.GET("/state", h.state)
}

// register POST /auth/register
func (h *Handler) register(c *gin.Context) {
	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.svc.Register(&dto)
	if err != nil {
		if err.Error() == "email already registered" {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, toViewerResponse(u))
}

// login POST /auth/login
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, u, err := h.svc.Login(dto.Email, dto.Password)
	if err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}
	response.OK(c, loginResponse{Token: token, User: toViewerResponse(u)})
}

// viewer GET /auth/viewer  [auth]
func (h *Handler) viewer(c *gin.Context) {
	u, err := h.svc.GetByID(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if u == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, toViewerResponse(u))
}

// logout POST /auth/logout  [auth]
// JWT is stateless; the client discards the token. Subscribers are
// still told so open sessions can refresh.
func (h *Handler) logout(c *gin.Context) {
	h.svc.notifier.Publish(Event{Kind: EventSignedOut, UserID: middleware.CurrentUserID(c)})
	response.NoContent(c)
}

// state GET /auth/state  [auth]
// Streams auth-state changes as server-sent events until the client
// disconnects.
func (h *Handler) state(c *gin.Context) {
	events, cancel := h.svc.notifier.Subscribe()
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("auth", ev)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
