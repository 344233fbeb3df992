package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"cpu-scheduler-comparison/config"
	"cpu-scheduler-comparison/internal/core"
	"cpu-scheduler-comparison/internal/requests"
	"cpu-scheduler-comparison/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	PreemptiveShortestJobFirst(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// NewApp builds the fiber application with every route mounted under /api/v1.
func NewApp(cfg *config.SchedulerConfig) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	handler := NewSchedulerHandlerImpl(cfg)

	v1 := app.Group("/api").Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/srtf", handler.PreemptiveShortestJobFirst)
		v1.Post("/all", handler.AllAlgorithms)
	}
	return app
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.simulate(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.simulate(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.simulate(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) PreemptiveShortestJobFirst(ctx *fiber.Ctx) error {
	return s.simulate(ctx, schedulers.PreemptiveShortestJobFirst)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	workload, err := request.Workload(s.limits())
	if err != nil {
		return writeError(ctx, err)
	}
	response, err := schedulers.Compare(ctx.UserContext(), workload, s.options())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) simulate(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var workload core.Workload
	if algorithm == schedulers.RoundRobin {
		workload, err = request.Workload(s.limits())
	} else {
		workload.Processes, err = request.ProcessSet(s.limits())
	}
	if err != nil {
		return writeError(ctx, err)
	}

	logrus.WithField("algorithm", algorithm).Infof("simulating %d processes", workload.Processes.Len())
	response, err := schedulers.Simulate(ctx.UserContext(), algorithm, workload, s.options())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) limits() requests.Limits {
	return requests.Limits{
		DefaultQuantum: s.config.RoundRobinTimeQuantum,
		MaxProcesses:   s.config.MaxProcesses,
		MaxTotalBurst:  s.config.MaxTotalBurst,
	}
}

func (s *SchedulerHandlerImpl) options() schedulers.Options {
	return schedulers.Options{SRTF: schedulers.SRTFOptions{
		Strategy: schedulers.SRTFStrategy(s.config.SRTFStrategy),
		MaxTicks: s.config.SRTFMaxTicks,
	}}
}

// errBadBody marks a body that could not be decoded at all.
var errBadBody = errors.New("invalid request format")

func parseRequest(ctx *fiber.Ctx) (requests.ScheduleRequest, error) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		logrus.Debugf("rejecting request body: %v", err)
		return request, errBadBody
	}
	return request, nil
}

func writeError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errBadBody):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case requests.IsInvalidInput(err):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  err.Error(),
			"fields": core.FieldErrors(err),
		})
	case errors.Is(err, core.ErrStepBudgetExceeded):
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	default:
		logrus.Errorf("can not process request: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
	}
}
