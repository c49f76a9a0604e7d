package get_week_checks

import (
	"time"

	"github.com/stevenluongo/bna-wellness/internal/service/checks/models"
)

// CheckResponse модель чека в JSON-ответе
type CheckResponse struct {
	ID          string  `json:"id"`
	RoomID      string  `json:"roomId"`
	TrainerID   string  `json:"trainerId"`
	ClientID    string  `json:"clientId"`
	TerminalID  string  `json:"terminalId"`
	WeekStart   string  `json:"weekStart"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	TrainerName *string `json:"trainerName,omitempty"`
	ClientName  *string `json:"clientName,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// WeekChecksResponse список чеков комнаты за неделю
type WeekChecksResponse struct {
	RoomID  string          `json:"roomId"`
	WeekKey string          `json:"weekKey"`
	Checks  []CheckResponse `json:"checks"`
}

// FromServiceResponse конвертирует ответ сервиса в JSON-модель
func FromServiceResponse(roomID, weekKey string, list *models.CheckListResponse) *WeekChecksResponse {
	out := make([]CheckResponse, len(list.Checks))
	for i := range list.Checks {
		check := &list.Checks[i]
		out[i] = CheckResponse{
			ID:          check.ID,
			RoomID:      check.RoomID,
			TrainerID:   check.TrainerID,
			ClientID:    check.ClientID,
			TerminalID:  check.TerminalID,
			WeekStart:   check.WeekStart.Format(time.RFC3339),
			StartTime:   check.StartTime.Format(time.RFC3339),
			EndTime:     check.EndTime.Format(time.RFC3339),
			TrainerName: check.TrainerName,
			ClientName:  check.ClientName,
			CreatedAt:   check.CreatedAt.Format(time.RFC3339),
			UpdatedAt:   check.UpdatedAt.Format(time.RFC3339),
		}
	}

	return &WeekChecksResponse{
		RoomID:  roomID,
		WeekKey: weekKey,
		Checks:  out,
	}
}
