package handlers

import (
	"context"

	"github.com/Gauraangst/shorty/internal/identity"
	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"
)

// UserHandler handles user profile synchronization.
type UserHandler struct {
	users  identity.Repository
	logger *zap.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(users identity.Repository, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// SyncUserRequest is the request body for syncing a user profile.
type SyncUserRequest struct {
	Body struct {
		UserID   string `doc:"Identity provider user ID" example:"user_2abc123"        json:"userId,omitempty"`
		Email    string `doc:"User email address"        example:"jane@example.com"    json:"email,omitempty"`
		FullName string `doc:"User full name"            example:"Jane Doe"            json:"fullName,omitempty"`
	}
}

// SyncUserResponse is the response for a successful user sync.
type SyncUserResponse struct {
	Body struct {
		Message  string `doc:"Result message"            json:"message"`
		UserID   string `doc:"Identity provider user ID" json:"userId"`
		Email    string `doc:"User email address"        json:"email"`
		FullName string `doc:"User full name"            json:"fullName,omitempty"`
	}
}

func (h *UserHandler) SyncUser(ctx context.Context, req *SyncUserRequest) (*SyncUserResponse, error) {
	if req.Body.UserID == "" {
		return nil, huma.Error401Unauthorized("authentication required")
	}

	if req.Body.Email == "" {
		return nil, huma.Error400BadRequest("email is required")
	}

	user, err := h.users.Upsert(ctx, &identity.User{
		ProviderUserID: req.Body.UserID,
		Email:          req.Body.Email,
		FullName:       req.Body.FullName,
	})
	if err != nil {
		h.logger.Error("failed to sync user",
			zap.String("userId", req.Body.UserID),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("failed to sync user")
	}

	resp := &SyncUserResponse{}
	resp.Body.Message = "user synced"
	resp.Body.UserID = user.ProviderUserID
	resp.Body.Email = user.Email
	resp.Body.FullName = user.FullName

	return resp, nil
}
