package create_check

import (
	"fmt"
	"time"

	createCheck "github.com/stevenluongo/bna-wellness/internal/usecase/create_check"
)

// CreateCheckRequest HTTP request model
type CreateCheckRequest struct {
	RoomID     string `json:"roomId"`
	ClientID   string `json:"clientId"`
	TerminalID string `json:"terminalId"`
	StartTime  string `json:"startTime"` // RFC3339
	EndTime    string `json:"endTime"`   // RFC3339
}

// CheckResponse HTTP response model созданного чека
type CheckResponse struct {
	ID          string  `json:"id"`
	RoomID      string  `json:"roomId"`
	TrainerID   string  `json:"trainerId"`
	ClientID    string  `json:"clientId"`
	TerminalID  string  `json:"terminalId"`
	WeekKey     string  `json:"weekKey"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	TrainerName *string `json:"trainerName,omitempty"`
	ClientName  *string `json:"clientName,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// ToUseCaseRequest создает запрос use case из HTTP запроса
func (r *CreateCheckRequest) ToUseCaseRequest(trainerID string) (*createCheck.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid startTime: %w", err)
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid endTime: %w", err)
	}

	return &createCheck.Request{
		TrainerID:  trainerID,
		ClientID:   r.ClientID,
		TerminalID: r.TerminalID,
		RoomID:     r.RoomID,
		StartTime:  startTime,
		EndTime:    endTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createCheck.Response) *CheckResponse {
	return &CheckResponse{
		ID:          resp.ID,
		RoomID:      resp.RoomID,
		TrainerID:   resp.TrainerID,
		ClientID:    resp.ClientID,
		TerminalID:  resp.TerminalID,
		WeekKey:     resp.WeekKey,
		StartTime:   resp.StartTime.Format(time.RFC3339),
		EndTime:     resp.EndTime.Format(time.RFC3339),
		TrainerName: resp.TrainerName,
		ClientName:  resp.ClientName,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
