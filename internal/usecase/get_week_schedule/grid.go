package get_week_schedule

import (
	"time"

	"github.com/stevenluongo/bna-wellness/internal/domain"
	"github.com/stevenluongo/bna-wellness/internal/schedule"
)

// buildGrid собирает классифицированную сетку недели: произведение
// (дата x слот) по семи дням. Чистая функция над выборкой чеков.
//
// Классификация ячейки:
//   - occupied: чек видимого тренера начинается ровно в этот момент;
//     ячейка несёт чек и row-span из его длительности
//   - blocked: момент накрыт продолжением чека; ячейка не рендерится
//   - empty: свободный слот, кликабелен для нового чека
func buildGrid(
	room *domain.Room,
	week schedule.Week,
	checks []domain.Check,
	viewerID *string,
	stepMinutes int,
) ([]time.Time, []Day) {
	occ := schedule.BuildOccupancy(checks, viewerID, stepMinutes)

	// Чеки, видимые наблюдателю, индексированные по ключу момента начала.
	// Occupied-ячейка ставится только на точное совпадение начала чека с
	// границей слота; остальные накрытые слоты гасятся через blocked.
	starts := make(map[string]*domain.Check, len(checks))
	for i := range checks {
		if viewerID != nil && !checks[i].IsOwnedBy(*viewerID) {
			continue
		}
		starts[schedule.TimeKey(checks[i].StartTime)] = &checks[i]
	}

	// Заголовки строк: времена суток, заякоренные на первый день недели
	times := schedule.Slots(room.OpenTime, room.CloseTime, week.Dates[0], stepMinutes)

	days := make([]Day, len(week.Dates))
	for d, date := range week.Dates {
		slots := schedule.Slots(room.OpenTime, room.CloseTime, date, stepMinutes)

		cells := make([]Cell, len(slots))
		for i, slot := range slots {
			key := schedule.TimeKey(slot)
			cell := Cell{Time: slot, Key: key}

			switch {
			case starts[key] != nil:
				check := starts[key]
				cell.State = CellOccupied
				cell.Span = occ.SpanOf(*check)
				cell.Check = &CheckCell{
					ID:          check.ID,
					TrainerID:   check.TrainerID,
					ClientID:    check.ClientID,
					TrainerName: check.TrainerName,
					ClientName:  check.ClientName,
					StartTime:   check.StartTime,
					EndTime:     check.EndTime,
				}
			case occ.IsBlocked(slot):
				cell.State = CellBlocked
			default:
				cell.State = CellEmpty
			}

			cells[i] = cell
		}

		days[d] = Day{Date: date, Cells: cells}
	}

	return times, days
}
