package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/services"
)

// defaultAvatarID is assigned when a new user does not pick an avatar.
const defaultAvatarID = "1.png"

// UserHandler handles user-related requests.
type UserHandler struct {
	userService services.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService services.UserServicer) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest represents the request payload for creating a user
type CreateUserRequest struct {
	AvatarID string `json:"avatar_id"`
	Name     string `json:"name" binding:"required"`
	Surname  string `json:"surname" binding:"required"`
	Role     string `json:"role" binding:"required"`
	DOB      string `json:"dob" binding:"required"`
}

// UserResponse represents a user in the response
type UserResponse struct {
	ID            uint   `json:"id"`
	AvatarID      string `json:"avatar_id"`
	Name          string `json:"name"`
	Surname       string `json:"surname"`
	Role          string `json:"role"`
	DOB           string `json:"dob"`
	DoneTasks     int    `json:"done_tasks"`
	CreatedEvents int    `json:"created_events"`
	CreatedTasks  int    `json:"created_tasks"`
	Achievements  []uint `json:"has_achievement"`
}

func newUserResponse(user *models.User) UserResponse {
	achievements := user.Achievements
	if achievements == nil {
		achievements = []uint{}
	}
	return UserResponse{
		ID:            user.ID,
		AvatarID:      user.AvatarID,
		Name:          user.Name,
		Surname:       user.Surname,
		Role:          user.Role,
		DOB:           formatDate(user.DOB),
		DoneTasks:     user.DoneTasks,
		CreatedEvents: user.CreatedEvents,
		CreatedTasks:  user.CreatedTasks,
		Achievements:  achievements,
	}
}

// CreateUser handles the creation of a new household member
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	dob, err := parseDate(req.DOB)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if req.AvatarID == "" {
		req.AvatarID = defaultAvatarID
	}

	user, err := h.userService.CreateUser(req.AvatarID, req.Name, req.Surname, req.Role, dob)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(user))
}

// GetUsers returns every household member
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.GetUsers()
	if err != nil {
		respondWithError(c, err)
		return
	}

	response := make([]UserResponse, 0, len(users))
	for i := range users {
		response = append(response, newUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, response)
}

// GetUserByID returns a single user
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

// GetUserAchievements returns the achievements a user has unlocked
func (h *UserHandler) GetUserAchievements(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	achievements, err := h.userService.GetUserAchievements(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, achievements)
}

// UpdateAvatar changes a user's avatar reference
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	avatarID := c.Param("avatarId")
	user, err := h.userService.UpdateAvatar(id, avatarID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}
