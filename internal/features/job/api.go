package job

import (
	"go-ngo/internal/middleware"
	"go-ngo/internal/rbac"

	"github.com/gofiber/fiber/v2"
)

type JobApi struct {
	controller *JobController
	resolver   middleware.PrincipalResolver
}

func NewJobApi(controller *JobController, resolver middleware.PrincipalResolver) *JobApi {
	return &JobApi{controller: controller, resolver: resolver}
}

// Setup registers job and job-application routes. Everything requires a
// session; literal paths go before the :id routes.
func (h *JobApi) Setup(app *fiber.App) {
	jobs := app.Group("/api/jobs", middleware.Authenticate(h.resolver))

	jobs.Post("/post", middleware.RequireModulePermission("jobs", rbac.ActionCreate), h.controller.CreateJob)
	jobs.Get("/applicants/:jobId", middleware.RequireModulePermission("jobs", rbac.ActionRead), h.controller.GetApplicantsForJob)
	jobs.Patch("/application-status", middleware.RequireModulePermission("jobs", rbac.ActionUpdate), h.controller.UpdateApplicationStatus)

	// Any signed-in account can browse jobs, apply and track its own
	// applications.
	jobs.Get("/my-applications", h.controller.GetMyApplications)
	jobs.Get("/", h.controller.ListJobs)
	jobs.Post("/:id/apply", h.controller.ApplyForJob)

	jobs.Put("/:id", middleware.RequireModulePermission("jobs", rbac.ActionUpdate), h.controller.UpdateJob)
	jobs.Delete("/:id", middleware.RequireModulePermission("jobs", rbac.ActionDelete), h.controller.DeleteJob)
	jobs.Get("/:id", h.controller.GetJob)
}
