package lineup

import "strings"

type Status string

const (
	StatusStarter      Status = "starter"
	StatusStarterDoubt Status = "starter_doubt"
	StatusDoubt        Status = "doubt"
	StatusAbsent       Status = "absent"
)

// AbsenceReason refines StatusAbsent. It is empty for every other status.
type AbsenceReason string

const (
	AbsenceSuspended AbsenceReason = "suspended"
	AbsenceRuledOut  AbsenceReason = "ruled_out"
)

// TagKind is the meaning of an inline marker.
type TagKind string

const (
	TagNone      TagKind = ""
	TagDoubt     TagKind = "doubt"
	TagSuspended TagKind = "suspended"
	TagOut       TagKind = "out"
	// TagUnknown is a non-empty marker the tag table does not know.
	TagUnknown TagKind = "unknown"
)

// TagTable maps printed marker text to its kind.
type TagTable map[string]TagKind

// DefaultTagTable returns the markers printed by the lineup document.
func DefaultTagTable() TagTable {
	return TagTable{
		"QUES": TagDoubt,
		"SUS":  TagSuspended,
		"OUT":  TagOut,
	}
}

// Kind resolves marker text. Lookup ignores case and surrounding space.
func (t TagTable) Kind(tag string) TagKind {
	tag = strings.ToUpper(strings.TrimSpace(tag))
	if tag == "" {
		return TagNone
	}
	if kind, ok := t[tag]; ok {
		return kind
	}
	return TagUnknown
}

// ClassifyStatus derives the lineup status from the section an entry was
// listed in and its inline marker kind.
func ClassifyStatus(section Section, tag TagKind) (Status, AbsenceReason) {
	switch tag {
	case TagSuspended:
		return StatusAbsent, AbsenceSuspended
	case TagOut:
		return StatusAbsent, AbsenceRuledOut
	}

	if section == SectionInjuries {
		return StatusDoubt, ""
	}
	if tag == TagDoubt {
		return StatusStarterDoubt, ""
	}
	return StatusStarter, ""
}
