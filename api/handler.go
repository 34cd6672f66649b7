package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"os-scheduler/config"
	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	logger *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, logger: logger.With("component", "api")}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Priority)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	processes, quantum, err := s.parseRequest(ctx)
	if err != nil {
		return err
	}

	timelines, err := schedulers.ScheduleAll(processes, quantum)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	runID := uuid.NewString()
	result := make(map[string]responses.ScheduleResponse, len(timelines))
	for _, policy := range schedulers.Policies {
		result[policy.String()] = s.respond(runID, processes, policy, quantum, timelines[policy])
	}
	return ctx.JSON(result)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, policy schedulers.Policy) error {
	processes, quantum, err := s.parseRequest(ctx)
	if err != nil {
		return err
	}

	timeline, err := schedulers.Schedule(processes, policy, quantum)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return ctx.JSON(s.respond(uuid.NewString(), processes, policy, quantum, timeline))
}

// parseRequest decodes the body and falls back to the configured quantum.
func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) ([]core.Process, int, error) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		s.logger.Debug("rejecting request body", "path", ctx.Path(), "error", err)
		return nil, 0, fiber.NewError(fiber.StatusBadRequest, "invalid request format")
	}

	processes, err := request.ToProcesses()
	if err != nil {
		return nil, 0, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	quantum := request.TimeQuantum
	if quantum == 0 {
		quantum = s.config.RoundRobinTimeQuantum
	}
	return processes, quantum, nil
}

func (s *SchedulerHandlerImpl) respond(runID string, processes []core.Process, policy schedulers.Policy, quantum int, timeline core.Timeline) responses.ScheduleResponse {
	response := schedulers.Analyze(processes, timeline)
	response.RunID = runID
	response.Policy = policy.String()
	if policy == schedulers.RoundRobin {
		response.TimeQuantum = quantum
	}

	s.logger.Info("schedule computed",
		"run_id", runID,
		"policy", policy.String(),
		"processes", len(processes),
		"intervals", len(timeline),
		"total_time", response.TotalTime,
	)
	return response
}
