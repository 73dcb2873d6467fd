package attendee

import "strings"

type Field string

const (
	FIRST_NAME Field = "first_name"
	LAST_NAME  Field = "last_name"
	EMAIL      Field = "email"
	PHONE      Field = "phone"
)

// Attendee is the buyer's identity for one checkout. Values are stored as
// typed and are not format checked.
type Attendee struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

func (a *Attendee) SetField(field Field, value string) error {
	switch field {
	case FIRST_NAME:
		a.FirstName = value
	case LAST_NAME:
		a.LastName = value
	case EMAIL:
		a.Email = value
	case PHONE:
		a.Phone = value
	default:
		return NewUnknownFieldError(field)
	}

	return nil
}

func (a Attendee) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}
