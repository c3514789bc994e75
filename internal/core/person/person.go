// Package person defines the closed set of payer tags shared by income
// entries and expenses. The household has two people plus a joint pool and a
// meal-allowance pool; every monetary record is attributed to exactly one tag.
package person

import "fmt"

type Tag string

const (
	Person1   Tag = "person1"
	Person2   Tag = "person2"
	Joint     Tag = "joint"
	Allowance Tag = "allowance"
)

var allTags = []Tag{Person1, Person2, Joint, Allowance}

func All() []Tag {
	tags := make([]Tag, len(allTags))
	copy(tags, allTags)
	return tags
}

func (t Tag) Valid() bool {
	switch t {
	case Person1, Person2, Joint, Allowance:
		return true
	}
	return false
}

func (t Tag) String() string {
	return string(t)
}

// Parse returns the tag for a wire value, or an error for anything outside
// the enumeration. Free-form payer strings are rejected rather than stored.
func Parse(s string) (Tag, error) {
	t := Tag(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown person tag %q", s)
	}
	return t, nil
}
