package handlers

import (
	"pinpost/internal/middleware"
	"pinpost/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ThreadHandler handles HTTP requests for positioned comment threads.
type ThreadHandler struct {
	service *services.ThreadService
}

// NewThreadHandler creates a new ThreadHandler.
func NewThreadHandler(service *services.ThreadService) *ThreadHandler {
	return &ThreadHandler{service: service}
}

// RegisterRoutes registers the thread routes; all of them are protected.
func (h *ThreadHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/images/:id/threads", h.HandleCreateThread)
	router.Get("/images/:id/threads", h.HandleListThreads)
	router.Patch("/threads/:id", h.HandleUpdateThreadPosition)
	router.Delete("/threads/:id", h.HandleDeleteThread)
}

// createThreadRequest uses pointer coordinates so a missing field is
// distinguishable from an explicit zero; a non-numeric value fails parsing.
type createThreadRequest struct {
	X       *float64 `json:"x"`
	Y       *float64 `json:"y"`
	Comment string   `json:"comment"`
}

// HandleCreateThread attaches a positioned comment to an image.
func (h *ThreadHandler) HandleCreateThread(c *fiber.Ctx) error {
	var req createThreadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid thread data. x, y must be numbers and comment must be a string",
		})
	}

	thread, err := h.service.CreateThread(middleware.Principal(c), c.Params("id"), req.X, req.Y, req.Comment)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(thread)
}

// HandleListThreads returns the threads of an image in creation order.
func (h *ThreadHandler) HandleListThreads(c *fiber.Ctx) error {
	threads, err := h.service.ListThreadsForImage(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(threads)
}

type updatePositionRequest struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

// HandleUpdateThreadPosition moves an owned thread; each coordinate is
// optional per call.
func (h *ThreadHandler) HandleUpdateThreadPosition(c *fiber.Ctx) error {
	var req updatePositionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid position data. x and y must be numbers when present",
		})
	}

	thread, err := h.service.UpdateThreadPosition(middleware.Principal(c), c.Params("id"), req.X, req.Y)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(thread)
}

// HandleDeleteThread deletes an owned thread.
func (h *ThreadHandler) HandleDeleteThread(c *fiber.Ctx) error {
	if err := h.service.DeleteThread(middleware.Principal(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
