package job

import (
	"go-ngo/internal/common/apperr"
	"go-ngo/internal/common/validation"
	"go-ngo/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type JobController struct {
	JobService JobService
}

func NewJobController(jobService JobService) *JobController {
	return &JobController{JobService: jobService}
}

type CreateJobRequest struct {
	Title       string `json:"title" validate:"required,min=1"`
	Description string `json:"description" validate:"required,min=1"`
	Company     string `json:"company" validate:"required,min=1"`
	Location    string `json:"location" validate:"required,min=1"`
	Salary      string `json:"salary"`
	JobType     string `json:"jobType" validate:"omitempty,oneof=Full-time Part-time Contract Internship"`
	ApplyLink   string `json:"applyLink" validate:"omitempty,url"`
}

type UpdateJobRequest struct {
	Title       string `json:"title" validate:"omitempty,min=1"`
	Description string `json:"description" validate:"omitempty,min=1"`
	Company     string `json:"company" validate:"omitempty,min=1"`
	Location    string `json:"location" validate:"omitempty,min=1"`
	Salary      string `json:"salary"`
	JobType     string `json:"jobType" validate:"omitempty,oneof=Full-time Part-time Contract Internship"`
	ApplyLink   string `json:"applyLink" validate:"omitempty,url"`
}

type ApplyRequest struct {
	Name        string `json:"name" validate:"required,min=1"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,min=10"`
	ResumeURL   string `json:"resumeUrl" validate:"omitempty,url"`
	CoverLetter string `json:"coverLetter"`
}

type ApplicationStatusRequest struct {
	ApplicationID string `json:"applicationId" validate:"required,len=24,hexadecimal"`
	Status        string `json:"status" validate:"required,oneof=pending shortlisted rejected hired"`
}

func (ctrl *JobController) CreateJob(c *fiber.Ctx) error {
	var req CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return apperr.Unauthenticated("Not authenticated")
	}

	job := &Job{
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		Location:    req.Location,
		Salary:      req.Salary,
		JobType:     req.JobType,
		ApplyLink:   req.ApplyLink,
	}
	if err := ctrl.JobService.CreatePosting(c.Context(), job, principal.ID); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "job": job})
}

func (ctrl *JobController) ListJobs(c *fiber.Ctx) error {
	jobs, err := ctrl.JobService.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "jobs": jobs})
}

func (ctrl *JobController) GetJob(c *fiber.Ctx) error {
	job, err := ctrl.JobService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "job": job})
}

func (ctrl *JobController) UpdateJob(c *fiber.Ctx) error {
	var req UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	set := bson.M{}
	fields := map[string]string{
		"title":       req.Title,
		"description": req.Description,
		"company":     req.Company,
		"location":    req.Location,
		"salary":      req.Salary,
		"job_type":    req.JobType,
		"apply_link":  req.ApplyLink,
	}
	for field, value := range fields {
		if value != "" {
			set[field] = value
		}
	}
	if len(set) == 0 {
		return apperr.BadRequest("Nothing to update")
	}

	job, err := ctrl.JobService.Update(c.Context(), c.Params("id"), set)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "job": job})
}

func (ctrl *JobController) DeleteJob(c *fiber.Ctx) error {
	if err := ctrl.JobService.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Job deleted"})
}

func (ctrl *JobController) ApplyForJob(c *fiber.Ctx) error {
	var req ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return apperr.Unauthenticated("Not authenticated")
	}
	jobID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return apperr.BadRequest("Invalid job id")
	}

	application := &JobApplication{
		JobID:       jobID,
		ApplicantID: principal.ID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ResumeURL:   req.ResumeURL,
		CoverLetter: req.CoverLetter,
	}
	if err := ctrl.JobService.Apply(c.Context(), application); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "application": application})
}

func (ctrl *JobController) GetMyApplications(c *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return apperr.Unauthenticated("Not authenticated")
	}

	applications, err := ctrl.JobService.MyApplications(c.Context(), principal.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "applications": applications})
}

func (ctrl *JobController) GetApplicantsForJob(c *fiber.Ctx) error {
	applications, err := ctrl.JobService.ApplicantsForJob(c.Context(), c.Params("jobId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "applications": applications})
}

func (ctrl *JobController) UpdateApplicationStatus(c *fiber.Ctx) error {
	var req ApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return err
	}

	application, err := ctrl.JobService.UpdateApplicationStatus(c.Context(), req.ApplicationID, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "application": application})
}

func (ctrl *JobController) DeleteApplication(c *fiber.Ctx) error {
	if err := ctrl.JobService.DeleteApplication(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Application deleted"})
}
