package get_available_slots

import (
	"time"

	"github.com/Daniil2209/Cleandins/pkg/types"
)

// Request модель запроса на получение слотов на дату
type Request struct {
	Date      time.Time // Дата для получения слотов (без времени)
	TotalBins int       // Количество баков (опционально, 0 = не указано)
}

// Response модель ответа со слотами на дату
type Response struct {
	Date                time.Time // Дата, на которую запрашивались слоты
	SlotDurationMinutes int       // Длительность одного слота
	RequiredSlots       int       // Сколько слотов займет работа (0, если баки не указаны)
	Slots               []Slot    // Полная сетка дня с признаками доступности
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeLabel // Метка слота (например, "3:30 PM")
	Index     int             // Порядковый номер в сетке дня
	Available bool            // Слот не занят существующим бронированием
	Bookable  bool            // С него можно начать работу на указанное число баков
}
