package entity

import "github.com/pkg/errors"

// OrgKind identifies which kind of organizational entity an affiliation
// points at. It selects the affiliation column the matcher filters on.
type OrgKind string

const (
	// OrgKindProvider is a telecom provider (single-value affiliation).
	OrgKindProvider OrgKind = "provider"
	// OrgKindClub is a sports club or team (set-membership affiliation).
	OrgKindClub OrgKind = "club"
	// OrgKindInstitution is a school, college or other institution (single-value affiliation).
	OrgKindInstitution OrgKind = "institution"
)

// ErrUnknownOrgKind is returned when a string does not name a known entity kind.
var ErrUnknownOrgKind = errors.New("unknown organizational entity kind")

// ParseOrgKind converts a string to an OrgKind.
func ParseOrgKind(s string) (OrgKind, error) {
	switch OrgKind(s) {
	case OrgKindProvider, OrgKindClub, OrgKindInstitution:
		return OrgKind(s), nil
	default:
		return "", errors.Wrapf(ErrUnknownOrgKind, "%q", s)
	}
}

// String implements fmt.Stringer.
func (k OrgKind) String() string {
	return string(k)
}
