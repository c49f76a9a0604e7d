package get_week_schedule

import (
	"time"

	getWeekSchedule "github.com/stevenluongo/bna-wellness/internal/usecase/get_week_schedule"
)

// ScheduleResponse HTTP response model недельного расписания
type ScheduleResponse struct {
	RoomID       string     `json:"roomId"`
	RoomLocation string     `json:"roomLocation"`
	WeekKey      string     `json:"weekKey"`
	PrevWeekKey  string     `json:"prevWeekKey"`
	NextWeekKey  string     `json:"nextWeekKey"`
	Dates        []string   `json:"dates"`
	Times        []string   `json:"times"`
	Days         []Day      `json:"days"`
	StepMinutes  int        `json:"stepMinutes"`
}

// Day колонка расписания: один календарный день
type Day struct {
	Date  string `json:"date"`
	Cells []Cell `json:"cells"`
}

// Cell одна ячейка сетки
type Cell struct {
	Time  string     `json:"time"`
	State string     `json:"state"`
	Span  int        `json:"span,omitempty"`
	Check *CheckCell `json:"check,omitempty"`
}

// CheckCell чек в занятой ячейке
type CheckCell struct {
	ID          string  `json:"id"`
	TrainerID   string  `json:"trainerId"`
	ClientID    string  `json:"clientId"`
	TrainerName *string `json:"trainerName,omitempty"`
	ClientName  *string `json:"clientName,omitempty"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeekSchedule.Response) *ScheduleResponse {
	dates := make([]string, len(resp.Dates))
	for i, d := range resp.Dates {
		dates[i] = d.Format(time.RFC3339)
	}

	times := make([]string, len(resp.Times))
	for i, t := range resp.Times {
		times[i] = t.Format(time.RFC3339)
	}

	days := make([]Day, len(resp.Days))
	for i, day := range resp.Days {
		cells := make([]Cell, len(day.Cells))
		for j, cell := range day.Cells {
			out := Cell{
				Time:  cell.Key,
				State: string(cell.State),
				Span:  cell.Span,
			}
			if cell.Check != nil {
				out.Check = &CheckCell{
					ID:          cell.Check.ID,
					TrainerID:   cell.Check.TrainerID,
					ClientID:    cell.Check.ClientID,
					TrainerName: cell.Check.TrainerName,
					ClientName:  cell.Check.ClientName,
					StartTime:   cell.Check.StartTime.Format(time.RFC3339),
					EndTime:     cell.Check.EndTime.Format(time.RFC3339),
				}
			}
			cells[j] = out
		}
		days[i] = Day{Date: dates[i], Cells: cells}
	}

	return &ScheduleResponse{
		RoomID:       resp.RoomID,
		RoomLocation: resp.RoomLocation,
		WeekKey:      resp.WeekKey,
		PrevWeekKey:  resp.PrevWeekKey,
		NextWeekKey:  resp.NextWeekKey,
		Dates:        dates,
		Times:        times,
		Days:         days,
		StepMinutes:  resp.StepMinutes,
	}
}
