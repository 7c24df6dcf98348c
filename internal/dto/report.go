package dto

// EmailReportRequest carries the recipient for an emailed inventory report,
// bound from the email query parameter.
type EmailReportRequest struct {
	Email string `form:"email" binding:"required,email"`
}
