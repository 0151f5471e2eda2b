package models

type Category struct {
	ID   int
	Name string
}

// Slot keeps the timestamps exactly as the booking API sent them, parsing
// happens when the slot is projected onto a week.
type Slot struct {
	ID        int
	Category  Category
	StartTime string
	EndTime   string
	User      *string
}

func (s Slot) IsFree() bool {
	return s.User == nil || *s.User == ""
}

type User struct {
	ID       int
	Username string
}

// Identity is decoded from the access credential. IsAdmin only drives what
// a client shows, the booking API authorizes every privileged call itself.
type Identity struct {
	Authenticated bool
	Username      string
	IsAdmin       bool
	UserID        *int
}

// PreferenceSet holds the category ids a user marked as interesting.
type PreferenceSet map[int]struct{}

func NewPreferenceSet(categoryIDs ...int) PreferenceSet {
	set := make(PreferenceSet, len(categoryIDs))
	for _, id := range categoryIDs {
		set[id] = struct{}{}
	}
	return set
}

func (p PreferenceSet) Contains(categoryID int) bool {
	_, ok := p[categoryID]
	return ok
}

// Principal is the caller of a request: the credential forwarded to the
// booking API and what it decodes to. SessionID is empty when the
// credential came from an Authorization header.
type Principal struct {
	SessionID  string
	Credential string
	Identity   Identity
}
