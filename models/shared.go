package models

// CurrentSchemaVersion is stamped onto every document at creation time.
// The original deployment stored records with no version marker, so any
// shape change silently corrupted old data; bump this on any structural
// change to a stored model.
const CurrentSchemaVersion = 1

// Address is the postal address embedded in doctor and patient records.
type Address struct {
	Street  string `bson:"street" json:"street"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	Pincode string `bson:"pincode" json:"pincode"`
}

// DayOfWeek is an English weekday name as produced by time.Weekday.String().
type DayOfWeek string

const (
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
	Saturday  DayOfWeek = "Saturday"
	Sunday    DayOfWeek = "Sunday"
)

// ValidDays holds every recognised weekday name for input validation.
var ValidDays = map[DayOfWeek]bool{
	Monday: true, Tuesday: true, Wednesday: true, Thursday: true,
	Friday: true, Saturday: true, Sunday: true,
}
