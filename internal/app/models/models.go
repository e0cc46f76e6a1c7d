package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "ADMIN"
	RoleFaculty RoleType = "FACULTY"
	RoleStudent RoleType = "STUDENT"
)

// Valid reports whether the role is one of the known roles
func (r RoleType) Valid() bool {
	switch r {
	case RoleAdmin, RoleFaculty, RoleStudent:
		return true
	}
	return false
}

// DayType distinguishes weekday and weekend cohorts. The short codes are
// embedded in group names (Y1.S2.WE.COMPUTING.1).
type DayType string

const (
	DayTypeWeekday DayType = "WD"
	DayTypeWeekend DayType = "WE"
)

// Valid reports whether the day type is one of the known codes
func (d DayType) Valid() bool {
	return d == DayTypeWeekday || d == DayTypeWeekend
}

// TimetableType matches a timetable to its cohort's day type
type TimetableType string

const (
	TimetableWeekday TimetableType = "WEEKDAY"
	TimetableWeekend TimetableType = "WEEKEND"
)

// Valid reports whether the timetable type is known
func (t TimetableType) Valid() bool {
	return t == TimetableWeekday || t == TimetableWeekend
}

// SessionKind is the kind of a timetable session
type SessionKind string

const (
	SessionLecture SessionKind = "LECTURE_TUTORIAL"
	SessionLab     SessionKind = "LAB"
)

// Valid reports whether the session kind is known
func (k SessionKind) Valid() bool {
	return k == SessionLecture || k == SessionLab
}

// VenueType classifies a bookable venue
type VenueType string

const (
	VenueLectureHall VenueType = "LECTURE_HALL"
	VenueComputerLab VenueType = "COMPUTER_LAB"
	VenueScienceLab  VenueType = "SCIENCE_LAB"
	VenueAuditorium  VenueType = "AUDITORIUM"
	VenueBoardRoom   VenueType = "BOARD_ROOM"
)

// Valid reports whether the venue type is known
func (v VenueType) Valid() bool {
	switch v {
	case VenueLectureHall, VenueComputerLab, VenueScienceLab, VenueAuditorium, VenueBoardRoom:
		return true
	}
	return false
}

// ResourceType is an equipment item requested with a booking
type ResourceType string

const (
	ResourceLecturerLaptops ResourceType = "LAPTOPS_FOR_LECTURER"
	ResourceProjector       ResourceType = "PROJECTOR"
)

// Valid reports whether the resource type is known
func (r ResourceType) Valid() bool {
	return r == ResourceLecturerLaptops || r == ResourceProjector
}
