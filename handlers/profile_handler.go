package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stepsync/dance_marketplace/backend"
	"github.com/stepsync/dance_marketplace/dataset"
	"github.com/stepsync/dance_marketplace/models"
	"github.com/stepsync/dance_marketplace/stores"
)

type ProfileHandler struct {
	auth    *stores.AuthStore
	profile *stores.ProfileStore
	backend backend.Backend
	ds      *dataset.Dataset
}

func NewProfileHandler(auth *stores.AuthStore, profile *stores.ProfileStore, be backend.Backend, ds *dataset.Dataset) *ProfileHandler {
	return &ProfileHandler{auth: auth, profile: profile, backend: be, ds: ds}
}

type UpdateProfileRequest struct {
	Name   *string `json:"name"`
	Avatar *string `json:"avatar"`
}

type UpdateCurrencyRequest struct {
	Currency string `json:"currency" validate:"required,len=3,uppercase"`
}

type UploadAvatarRequest struct {
	URI  string `json:"uri" validate:"required"`
	Path string `json:"path" validate:"required"`
}

// actingUser resolves the caller from the JWT claims, the server-side
// analog of the app's auto-login effect. The store session is only trusted
// when it already belongs to the token's user; otherwise it is restored
// from the dataset, so a session left behind by another login is never
// served to the wrong caller.
func (h *ProfileHandler) actingUser(c *fiber.Ctx) *models.User {
	id := currentUserID(c)
	if user := h.auth.CurrentUser(); user != nil && user.ID == id {
		return user
	}
	user := h.ds.UserByID(id)
	if user == nil {
		return nil
	}
	h.auth.SetUser(user)
	return h.auth.CurrentUser()
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	user := h.actingUser(c)
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(user)
}

// UpdateProfile stages the supplied fields in the edit buffer and commits
// them in one step.
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	if h.actingUser(c) == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	h.profile.LoadFromUser()
	if req.Name != nil {
		h.profile.SetTempName(*req.Name)
	}
	if req.Avatar != nil {
		h.profile.SetTempAvatar(*req.Avatar)
	}
	if err := h.profile.ApplyChanges(); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}
	return c.JSON(h.auth.CurrentUser())
}

func (h *ProfileHandler) UpdateCurrency(c *fiber.Ctx) error {
	if h.actingUser(c) == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UpdateCurrencyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	h.auth.UpdateCurrency(req.Currency)
	return c.JSON(h.auth.CurrentUser())
}

// UploadAvatar pushes the image through the storage service and commits the
// resulting URL as the avatar.
func (h *ProfileHandler) UploadAvatar(c *fiber.Ctx) error {
	if h.actingUser(c) == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UploadAvatarRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	url, err := h.backend.Storage().UploadImage(c.Context(), req.URI, req.Path)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload image"})
	}

	h.profile.LoadFromUser()
	h.profile.SetTempAvatar(url)
	if err := h.profile.ApplyChanges(); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}
	return c.JSON(fiber.Map{"url": url, "user": h.auth.CurrentUser()})
}
