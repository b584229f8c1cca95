package domain

import (
	"errors"
	"time"
)

const (
	ReportStatusOpen     = "Open"
	ReportStatusResolved = "Resolved"

	ReportTargetFoodItem = "FoodItem"
	ReportTargetUser     = "User"
)

var (
	MessageSuccessCreateReport  = "report submitted successfully"
	MessageSuccessGetReports    = "reports retrieved successfully"
	MessageSuccessResolveReport = "report resolved successfully"

	MessageFailedCreateReport  = "failed to submit report"
	MessageFailedGetReports    = "failed to retrieve reports"
	MessageFailedResolveReport = "failed to resolve report"

	ErrReportNotFound = errors.New("report not found")
)

type (
	CreateReportRequest struct {
		TargetType string `json:"target_type" validate:"required,oneof=FoodItem User"`
		TargetID   string `json:"target_id" validate:"required,uuid"`
		Reason     string `json:"reason" validate:"required"`
		Comments   string `json:"comments" validate:"omitempty"`
	}

	Report struct {
		ID           string    `json:"id"`
		ReporterID   string    `json:"reporter_id"`
		ReporterName string    `json:"reporter_name,omitempty"`
		TargetType   string    `json:"target_type"`
		TargetID     string    `json:"target_id"`
		Reason       string    `json:"reason"`
		Comments     string    `json:"comments,omitempty"`
		Status       string    `json:"status"`
		CreatedAt    time.Time `json:"created_at"`
	}
)
