package get_week_schedule

import "time"

// Request модель запроса недельного расписания комнаты
type Request struct {
	RoomID   string  // ID комнаты
	WeekKey  *string // Ключ недели (nil - неделя, содержащая "сегодня")
	ViewerID *string // Тренер-наблюдатель (nil - блокируют чеки всех тренеров)
}

// CellState классификация ячейки сетки (дата x слот)
type CellState string

const (
	// CellEmpty свободный слот, доступен для нового чека
	CellEmpty CellState = "empty"

	// CellBlocked слот занят продолжением чека, ячейка не отображается
	CellBlocked CellState = "blocked"

	// CellOccupied слот, с которого начинается чек: рендерится с row-span
	CellOccupied CellState = "occupied"
)

// CheckCell чек, отображаемый в занятой ячейке
type CheckCell struct {
	ID          string
	TrainerID   string
	ClientID    string
	TrainerName *string
	ClientName  *string
	StartTime   time.Time
	EndTime     time.Time
}

// Cell одна ячейка сетки расписания
type Cell struct {
	Time  time.Time // Конкретный момент слота (дата + время суток)
	Key   string    // Канонический ключ слота
	State CellState
	Span  int        // Число строк, занимаемых чеком (только для occupied)
	Check *CheckCell // Чек (только для occupied)
}

// Day колонка сетки: один календарный день недели
type Day struct {
	Date  time.Time
	Cells []Cell
}

// Response недельное расписание комнаты
type Response struct {
	RoomID       string
	RoomLocation string
	WeekKey      string
	PrevWeekKey  string // Ключ предыдущей недели для навигации
	NextWeekKey  string // Ключ следующей недели для навигации
	Dates        []time.Time
	Times        []time.Time // Времена слотов одного дня (заголовки строк)
	Days         []Day
	StepMinutes  int
}
