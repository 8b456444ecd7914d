package model

import "time"

// Availability is the period a volunteer can commit to
type Availability string

const (
	AvailabilityMorning   Availability = "morning"
	AvailabilityAfternoon Availability = "afternoon"
	AvailabilityEvening   Availability = "evening"
	AvailabilityWeekends  Availability = "weekends"
	AvailabilityFullTime  Availability = "full-time"
)

// Availabilities lists every accepted availability label in declaration order
var Availabilities = []Availability{
	AvailabilityMorning,
	AvailabilityAfternoon,
	AvailabilityEvening,
	AvailabilityWeekends,
	AvailabilityFullTime,
}

func (a Availability) IsValid() bool {
	for _, v := range Availabilities {
		if a == v {
			return true
		}
	}
	return false
}

func (a Availability) String() string {
	return string(a)
}

// Status is the registration state of a volunteer
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusPending  Status = "pending"
)

var Statuses = []Status{
	StatusActive,
	StatusInactive,
	StatusPending,
}

func (s Status) IsValid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// Volunteer represents a registered volunteer
// Records are never physically removed; deletion flips Status to inactive
type Volunteer struct {
	// Primary key - assigned sequentially from 1, never reused
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`

	// Core fields
	Name         string       `gorm:"column:name;type:VARCHAR(100);not null"`
	Email        string       `gorm:"column:email;type:VARCHAR(255);not null;uniqueIndex:idx_volunteer_email"` // 이메일 (unique)
	Phone        string       `gorm:"column:phone;type:VARCHAR(100);not null"`
	DesiredRole  string       `gorm:"column:desired_role;type:VARCHAR(255);not null"`
	Availability Availability `gorm:"column:availability;type:VARCHAR(20);not null;index"`
	Status       Status       `gorm:"column:status;type:VARCHAR(20);not null;index"`

	BaseEntity
}

// TableName specifies the table name for Volunteer
func (*Volunteer) TableName() string {
	return "volunteer"
}

// NewVolunteer creates an active volunteer stamped with registeredAt
// ID is assigned by the store on insert
func NewVolunteer(name, email, phone, desiredRole string, availability Availability, registeredAt time.Time) *Volunteer {
	return &Volunteer{
		Name:         name,
		Email:        email,
		Phone:        phone,
		DesiredRole:  desiredRole,
		Availability: availability,
		Status:       StatusActive,
		BaseEntity: BaseEntity{
			RegisteredAt: registeredAt,
		},
	}
}
