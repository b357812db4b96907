package graph

import (
	"encoding/json"
	"errors"
	"time"
)

const isoLayout = "2006-01-02T15:04:05.000Z07:00"

var ErrInvalidDateTime = errors.New("Invalid DateTime value")

// DateTime is the DateTime scalar. It serializes as an ISO-8601 UTC string
// with millisecond precision and accepts only strings as input.
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

func (DateTime) ImplementsGraphQLType(name string) bool {
	return name == "DateTime"
}

func (d *DateTime) UnmarshalGraphQL(input interface{}) error {
	s, ok := input.(string)
	if !ok {
		return ErrInvalidDateTime
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return ErrInvalidDateTime
}

func (d DateTime) String() string {
	return d.Time.UTC().Format(isoLayout)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
