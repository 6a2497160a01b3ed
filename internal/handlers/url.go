package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Gauraangst/shorty/internal/analytics"
	"github.com/Gauraangst/shorty/internal/messaging"
	"github.com/Gauraangst/shorty/internal/shortener"
	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"
)

// LinkHandler handles short link creation and resolution.
type LinkHandler struct {
	allocator           *shortener.Allocator
	resolver            *shortener.Resolver
	baseDomain          string
	publishLinkCreated  messaging.Publish[analytics.LinkCreatedEvent]
	publishLinkResolved messaging.Publish[analytics.LinkResolvedEvent]
	logger              *zap.Logger
}

// NewLinkHandler creates a new link handler.
func NewLinkHandler(
	allocator *shortener.Allocator,
	resolver *shortener.Resolver,
	baseDomain string,
	publishLinkCreated messaging.Publish[analytics.LinkCreatedEvent],
	publishLinkResolved messaging.Publish[analytics.LinkResolvedEvent],
	logger *zap.Logger,
) *LinkHandler {
	return &LinkHandler{
		allocator:           allocator,
		resolver:            resolver,
		baseDomain:          baseDomain,
		publishLinkCreated:  publishLinkCreated,
		publishLinkResolved: publishLinkResolved,
		logger:              logger,
	}
}

func (h *LinkHandler) Shorten(ctx context.Context, req *ShortenRequest) (*ShortenResponse, error) {
	if req.Body.LongURL == "" {
		return nil, huma.Error400BadRequest("longUrl is required")
	}

	mapping, err := h.allocator.Allocate(ctx, req.Body.LongURL, req.Body.CustomCode)
	if err != nil {
		return nil, h.shortenError(req, err)
	}

	meta := RequestMetaFromContext(ctx)
	event := &analytics.LinkCreatedEvent{
		Code:      string(mapping.Code),
		LongURL:   mapping.LongURL,
		Custom:    req.Body.CustomCode != "",
		CreatedAt: mapping.CreatedAt,
		ClientIP:  meta.ClientIP,
		UserAgent: meta.UserAgent,
	}

	if err := h.publishLinkCreated(event); err != nil {
		h.logger.Error("failed to publish link created event",
			zap.String("code", event.Code),
			zap.Error(err),
		)
	}

	resp := &ShortenResponse{}
	resp.Body.ShortURL = h.baseDomain + string(mapping.Code)

	return resp, nil
}

// shortenError maps allocation failures to HTTP errors.
func (h *LinkHandler) shortenError(req *ShortenRequest, err error) error {
	switch {
	case errors.Is(err, shortener.ErrInvalidURL):
		return huma.Error400BadRequest("invalid URL: must be an absolute URL with a scheme and host")
	case errors.Is(err, shortener.ErrInvalidCode):
		return huma.Error400BadRequest(fmt.Sprintf(
			"invalid custom code: must be at least %d characters of lowercase letters, digits, '-' or '_'",
			shortener.MinCodeLength,
		))
	case errors.Is(err, shortener.ErrCodeTaken):
		code, _ := shortener.NormalizeCode(req.Body.CustomCode)

		return huma.Error409Conflict(fmt.Sprintf("short code '%s' is already taken", code))
	case errors.Is(err, shortener.ErrExhausted):
		h.logger.Error("exhausted attempts to generate a unique short code",
			zap.String("longUrl", req.Body.LongURL),
		)

		return huma.Error500InternalServerError("failed to generate a unique short code")
	default:
		h.logger.Error("failed to create short link", zap.Error(err))

		return huma.Error500InternalServerError("internal server error")
	}
}

func (h *LinkHandler) Redirect(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	mapping, err := h.resolver.Resolve(ctx, shortener.Code(req.Code))
	if err != nil {
		return nil, huma.Error404NotFound("short link not found")
	}

	meta := RequestMetaFromContext(ctx)
	event := &analytics.LinkResolvedEvent{
		Code:       string(mapping.Code),
		LongURL:    mapping.LongURL,
		ResolvedAt: time.Now().UTC(),
		ClientIP:   meta.ClientIP,
		UserAgent:  meta.UserAgent,
		Referrer:   meta.Referrer,
	}

	if err := h.publishLinkResolved(event); err != nil {
		h.logger.Error("failed to publish link resolved event",
			zap.String("code", event.Code),
			zap.Error(err),
		)
	}

	resp := &RedirectResponse{
		Status: http.StatusFound,
	}
	resp.Headers.Location = mapping.LongURL

	return resp, nil
}
