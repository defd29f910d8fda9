package models

// BookingDraft holds the fields a customer fills in across wizard steps.
// It stays ephemeral until submission, at which point a Booking is created.
type BookingDraft struct {
	ServiceType ServiceType `json:"serviceType,omitempty"`
	Address     string      `json:"address,omitempty"`
	HomeType    string      `json:"homeType,omitempty"`
	HomeSizeM2  int         `json:"homeSizeM2,omitempty"`
	Location    *GeoPoint   `json:"location,omitempty"`

	// Step 1: schedule.
	Date  string `json:"date,omitempty"` // "YYYY-MM-DD"
	Time  string `json:"time,omitempty"` // "HH:MM"
	Hours int    `json:"hours,omitempty"`

	// Step 2: tasks, e.g. "dusting", "kitchen".
	Tasks []string `json:"tasks,omitempty"`

	Details BookingDetails `json:"details"`

	// Step 3: personal info.
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`

	// Step 4: payment.
	Payment PaymentProgress `json:"payment"`
}

// HasTask reports whether the given task key is selected.
func (d *BookingDraft) HasTask(key string) bool {
	for _, t := range d.Tasks {
		if t == key {
			return true
		}
	}
	return false
}

// ToggleTask adds the task key if absent and removes it if present.
func (d *BookingDraft) ToggleTask(key string) {
	for i, t := range d.Tasks {
		if t == key {
			d.Tasks = append(d.Tasks[:i], d.Tasks[i+1:]...)
			return
		}
	}
	d.Tasks = append(d.Tasks, key)
}
