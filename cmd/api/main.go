package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime/debug"
	"time"

	common_api "go-ngo/internal/common/api"
	"go-ngo/internal/common/apperr"
	"go-ngo/internal/config"
	"go-ngo/internal/database"
	"go-ngo/internal/features/activity"
	"go-ngo/internal/features/auth"
	"go-ngo/internal/features/blog"
	"go-ngo/internal/features/cause"
	"go-ngo/internal/features/contact"
	"go-ngo/internal/features/donation"
	"go-ngo/internal/features/event"
	"go-ngo/internal/features/job"
	"go-ngo/internal/features/role"
	"go-ngo/internal/features/upload"
	"go-ngo/internal/features/user"
	"go-ngo/internal/features/volunteer"
	"go-ngo/internal/logger"
	"go-ngo/internal/middleware"
	"go-ngo/internal/scheduler"
	"go-ngo/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates the Fiber app with the error handler that turns
// apperr values into the {success:false, message, ...} response shape.
func NewFiberServer(cfg *config.Config) *fiber.App {
	production := cfg.IsProduction()

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var appErr *apperr.Error
			if errors.As(err, &appErr) {
				body := fiber.Map{"success": false, "message": appErr.Message}
				if len(appErr.Errors) > 0 {
					body["errors"] = appErr.Errors
				}
				for k, v := range appErr.Details {
					body[k] = v
				}
				return c.Status(appErr.Code).JSON(body)
			}

			code := fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
			}
			body := fiber.Map{"success": false, "message": err.Error()}
			if !production {
				body["stack"] = string(debug.Stack())
			}
			return c.Status(code).JSON(body)
		},
	})

	app.Use(middleware.CORSMiddleware(cfg))

	return app
}

// AsRoute tags a constructor so Fx adds its result to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes calls Setup() on every collected route, then installs
// the 404 fallthrough.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Endpoint not found",
			"path":    c.Path(),
		})
	})
}

var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer runs Fiber in a goroutine and shuts it down with the app.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// InitializeIndexes ensures the unique indexes the services rely on.
func InitializeIndexes(
	lc fx.Lifecycle,
	lg *zap.Logger,
	userRepo user.UserRepository,
	roleRepo role.RoleRepository,
	blogRepo blog.BlogRepository,
	eventRepo event.EventRepository,
	causeRepo cause.CauseRepository,
	jobRepo job.JobRepository,
	volunteerRepo volunteer.VolunteerRepository,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				ensure := map[string]func(context.Context) error{
					"users":      userRepo.EnsureIndexes,
					"roles":      roleRepo.EnsureIndexes,
					"blogs":      blogRepo.EnsureIndexes,
					"events":     eventRepo.EnsureIndexes,
					"causes":     causeRepo.EnsureIndexes,
					"jobs":       jobRepo.EnsureIndexes,
					"volunteers": volunteerRepo.EnsureIndexes,
				}
				for name, fn := range ensure {
					if err := fn(ctx); err != nil {
						lg.Warn("failed to ensure indexes",
							zap.String("collection", name), zap.Error(err))
					}
				}
			}()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			NewFiberServer,
			database.NewDatabase,

			user.NewUserRepository,
			role.NewRoleRepository,
			blog.NewBlogRepository,
			event.NewEventRepository,
			cause.NewCauseRepository,
			donation.NewDonationRepository,
			job.NewJobRepository,
			contact.NewContactRepository,
			volunteer.NewVolunteerRepository,

			user.NewUserService,
			role.NewRoleService,
			auth.NewAuthService,
			blog.NewBlogService,
			event.NewEventService,
			cause.NewCauseService,
			donation.NewDonationService,
			job.NewJobService,
			contact.NewContactService,
			volunteer.NewVolunteerService,
			activity.NewActivityService,
			upload.NewUploadService,
			scheduler.NewScheduler,

			// Interface adapter: the user repository doubles as the
			// middleware's principal resolver.
			func(r user.UserRepository) middleware.PrincipalResolver { return r },

			auth.NewAuthController,
			user.NewUserController,
			role.NewRoleController,
			blog.NewBlogController,
			event.NewEventController,
			cause.NewCauseController,
			donation.NewDonationController,
			job.NewJobController,
			contact.NewContactController,
			volunteer.NewVolunteerController,
			activity.NewActivityController,
			upload.NewUploadController,

			AsRoute(auth.NewAuthApi),
			AsRoute(user.NewUserApi),
			AsRoute(role.NewRoleApi),
			AsRoute(blog.NewBlogApi),
			AsRoute(event.NewEventApi),
			AsRoute(cause.NewCauseApi),
			AsRoute(donation.NewDonationApi),
			AsRoute(job.NewJobApi),
			AsRoute(contact.NewContactApi),
			AsRoute(volunteer.NewVolunteerApi),
			AsRoute(activity.NewActivityApi),
			AsRoute(upload.NewUploadApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			func(cfg *config.Config) { utils.SetSecret(cfg.JWTSecret) },
			RegisterAllRoutesWithAnnotation,
			StartServer,
			func(lc fx.Lifecycle, sched *scheduler.Scheduler) {
				lc.Append(fx.Hook{
					OnStart: func(ctx context.Context) error {
						return sched.Start()
					},
					OnStop: func(ctx context.Context) error {
						return sched.Stop()
					},
				})
			},
			InitializeIndexes,
		),
	)

	app.Run()
}
