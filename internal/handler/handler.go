package handler

import (
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/shift-scheduler/backend/internal/config"
	"github.com/sysu-ecnc-dev/shift-scheduler/backend/internal/repository"
	"github.com/sysu-ecnc-dev/shift-scheduler/backend/internal/schedule"
	"golang.org/x/crypto/bcrypt"
)

type Handler struct {
	validate     *validator.Validate
	config       *config.Config
	repository   *repository.Repository
	translator   ut.Translator
	eventChannel *amqp.Channel
	redisClient  *redis.Client

	// 排班表是单写者模型，所有读写都要拿这把锁
	mu     sync.Mutex
	roster *schedule.Roster

	operatorPasswordHash []byte

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, eventCh *amqp.Channel, rdb *redis.Client, roster *schedule.Roster) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	// 操作员密码只在启动时散列一次，登录时比较散列值
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Operator.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &Handler{
		validate:     validate,
		config:       cfg,
		repository:   repo,
		translator:   trans,
		eventChannel: eventCh,
		redisClient:  rdb,

		roster: roster,

		operatorPasswordHash: passwordHash,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 认证相关
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
	})

	// 以下 API 必须要在登录后才允许调用
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/scheduling-context", func(r chi.Router) {
			r.Get("/", h.GetSchedulingContext)
			r.Put("/", h.UpdateSchedulingContext)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.GetAllEmployees)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.employeeInfo)
				r.Get("/", h.GetEmployee)
				r.Get("/forbidden", h.CheckForbidden)
			})
		})

		r.Route("/locations", func(r chi.Router) {
			r.Get("/", h.GetAllLocations)
			r.Post("/", h.CreateLocation)
			r.Patch("/{name}/teams", h.UpdateLocationTeams)
		})
		r.Get("/teams", h.GetAllTeams)

		r.Route("/assignments", func(r chi.Router) {
			r.Post("/", h.CreateAssignment)
			r.Delete("/", h.DeleteAssignment)
			r.Post("/range", h.ApplyAssignmentRange)
			r.Get("/occupants", h.GetSlotOccupants)
		})

		r.Route("/schedule", func(r chi.Router) {
			r.Get("/slots", h.GetTimeSlots)
			r.Get("/export", h.ExportSchedule)
			r.Post("/import", h.ImportSchedule)
		})

		r.Route("/snapshots", func(r chi.Router) {
			r.Post("/", h.CreateSnapshot)
			r.Get("/", h.GetAllSnapshots)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.snapshotInfo)
				r.Get("/", h.GetSnapshot)
				r.Post("/restore", h.RestoreSnapshot)
				r.Delete("/", h.DeleteSnapshot)
			})
		})
	})
}
