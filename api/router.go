package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// NewApp wires the scheduler routes under /api/v1. Every error is answered
// as {"error": message}.
func NewApp(handler SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "cpusched",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/priority", handler.Priority)
		v1.Post("/all", handler.AllAlgorithms)
	}

	return app
}

func errorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return ctx.Status(code).JSON(fiber.Map{"error": err.Error()})
}
