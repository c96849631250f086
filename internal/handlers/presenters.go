package handlers

import (
	"jobboard/internal/models"
)

// companyResource is the public projection of a company account.
func companyResource(company *models.User) map[string]interface{} {
	if company == nil {
		return nil
	}
	return map[string]interface{}{
		"name":           company.Name,
		"email":          company.Email,
		"company_detail": companyDetailsResource(company.Name, company.CompanyDetail),
	}
}

func companyDetailsResource(name string, detail *models.CompanyDetail) map[string]interface{} {
	if detail == nil {
		return nil
	}
	return map[string]interface{}{
		"name":        name,
		"site":        detail.Site,
		"logo":        detail.Logo,
		"description": detail.Description,
		"size":        detail.Size,
		"job_numbers": detail.JobNumbers,
	}
}

func userDetailsResource(detail *models.UserDetail) map[string]interface{} {
	if detail == nil {
		return nil
	}
	return map[string]interface{}{
		"gender":          detail.Gender,
		"marital_status":  detail.MaritalStatus,
		"military_status": detail.MilitaryStatus,
		"nationality":     detail.Nationality,
		"resume":          detail.Resume,
	}
}

// jobResource is the public projection of a single job. Jobs that are
// not yet accepted project to nothing; clients receive an empty data
// slot rather than a partial posting.
func jobResource(job *models.Job) map[string]interface{} {
	if job == nil || job.IsPublished != models.PublishAccepted {
		return nil
	}
	return map[string]interface{}{
		"id":                  job.ID,
		"title":               job.Title,
		"salary_range":        job.SalaryRange,
		"requirements":        job.Requirements,
		"description":         job.Description,
		"years_of_experience": job.YearsOfExperience,
		"company":             companyResource(job.Company),
		"type":                job.Type,
		"category":            job.Category,
		"location":            job.Location,
	}
}

// jobAppliedResource joins a job with the caller's application row.
func jobAppliedResource(job *models.Job, application *models.JobApplication) map[string]interface{} {
	if job == nil || application == nil {
		return nil
	}
	return map[string]interface{}{
		"id":                  job.ID,
		"title":               job.Title,
		"salary_range":        job.SalaryRange,
		"requirements":        job.Requirements,
		"description":         job.Description,
		"years_of_experience": job.YearsOfExperience,
		"company_status":      application.Status,
		"resume":              application.Resume,
		"company":             companyResource(job.Company),
		"type":                job.Type,
		"category":            job.Category,
		"location":            job.Location,
	}
}
