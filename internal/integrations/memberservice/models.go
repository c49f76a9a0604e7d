package memberservice

// Trainer сотрудник студии, владелец чеков в расписании
type Trainer struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

// FullName возвращает отображаемое имя тренера
func (t *Trainer) FullName() string {
	return t.FirstName + " " + t.LastName
}

// StudioClient клиент студии, участник тренировки
type StudioClient struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// FullName возвращает отображаемое имя клиента
func (c *StudioClient) FullName() string {
	return c.FirstName + " " + c.LastName
}
