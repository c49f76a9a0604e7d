package models

import (
	"time"

	"github.com/stevenluongo/bna-wellness/internal/domain"
)

// GetWeekChecksRequest запрос чеков комнаты за неделю
type GetWeekChecksRequest struct {
	RoomID    string
	WeekKey   string
	TrainerID *string // опционально: только чеки этого тренера
}

// CheckResponse модель чека для вызывающего слоя
type CheckResponse struct {
	ID          string
	RoomID      string
	TrainerID   string
	ClientID    string
	TerminalID  string
	WeekStart   time.Time
	StartTime   time.Time
	EndTime     time.Time
	TrainerName *string
	ClientName  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CheckListResponse список чеков
type CheckListResponse struct {
	Checks []CheckResponse
}

// FromDomainCheck конвертирует доменный чек в ответ сервиса
func FromDomainCheck(check *domain.Check) *CheckResponse {
	return &CheckResponse{
		ID:          check.ID,
		RoomID:      check.RoomID,
		TrainerID:   check.TrainerID,
		ClientID:    check.ClientID,
		TerminalID:  check.TerminalID,
		WeekStart:   check.WeekStart,
		StartTime:   check.StartTime,
		EndTime:     check.EndTime,
		TrainerName: check.TrainerName,
		ClientName:  check.ClientName,
		CreatedAt:   check.CreatedAt,
		UpdatedAt:   check.UpdatedAt,
	}
}

// FromDomainCheckList конвертирует список доменных чеков
func FromDomainCheckList(checks []domain.Check) *CheckListResponse {
	out := make([]CheckResponse, len(checks))
	for i := range checks {
		out[i] = *FromDomainCheck(&checks[i])
	}
	return &CheckListResponse{Checks: out}
}
