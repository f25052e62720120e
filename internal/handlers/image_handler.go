package handlers

import (
	"errors"

	"pinpost/internal/middleware"
	"pinpost/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ImageHandler handles HTTP requests for images.
type ImageHandler struct {
	service *services.ImageService
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(service *services.ImageService) *ImageHandler {
	return &ImageHandler{service: service}
}

// RegisterRoutes registers the image routes; all of them are protected.
func (h *ImageHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/images", h.HandleCreateImage)
	router.Get("/images", h.HandleListImages)
	router.Delete("/images/:id", h.HandleDeleteImage)
}

// HandleCreateImage records a freshly sourced external image owned by the
// acting principal.
func (h *ImageHandler) HandleCreateImage(c *fiber.Ctx) error {
	image, err := h.service.CreateImage(c.Context(), middleware.Principal(c))
	if err != nil {
		if errors.Is(err, services.ErrImageSourceUnavailable) {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "Image source unavailable",
			})
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(image)
}

// HandleListImages returns all images in creation order.
func (h *ImageHandler) HandleListImages(c *fiber.Ctx) error {
	images, err := h.service.ListImages()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(images)
}

// HandleDeleteImage deletes an owned image and cascades to its threads.
func (h *ImageHandler) HandleDeleteImage(c *fiber.Ctx) error {
	if err := h.service.DeleteImage(middleware.Principal(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
