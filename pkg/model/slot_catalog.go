package model

// GenerateSlotCatalog enumerates the weekly grid of candidate slots: one-hour lecture slots starting on
// every hour of the operating window and labLength-hour lab slots wherever they fit inside it.
func GenerateSlotCatalog(startHour, endHour, labLength int) []TimeSlot {
	catalog := make([]TimeSlot, 0, len(WorkingDays)*(endHour-startHour)*2)

	for _, day := range WorkingDays {
		//** Lecture slots
		for hour := startHour; hour+1 <= endHour; hour++ {
			catalog = append(catalog, TimeSlot{
				Day:   day,
				Start: NewClockTime(hour, 0),
				End:   NewClockTime(hour+1, 0),
			})
		}

		//** Lab slots
		if labLength <= 0 {
			continue
		}
		for hour := startHour; hour+labLength <= endHour; hour++ {
			catalog = append(catalog, TimeSlot{
				Day:       day,
				Start:     NewClockTime(hour, 0),
				End:       NewClockTime(hour+labLength, 0),
				IsLabSlot: true,
			})
		}
	}

	return catalog
}
