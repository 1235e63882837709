package entity

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// GeoPoint is an optional WGS84 coordinate attached to a store.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// Store is a physical establishment that reviews are attached to.
// A store is identified by its normalized name and address pair.
type Store struct {
	ID                uuid.UUID
	Name              string    // Name as printed on the first receipt seen.
	Address           string    // Address as printed on the first receipt seen.
	NormalizedName    string    // Matching key derived from Name.
	NormalizedAddress string    // Matching key derived from Address.
	City              string    // Supported-region label the address resolved to.
	Geo               *GeoPoint // Coordinates from place search; nil when unknown.
	PlaceID           string    // External place identifier; empty when unknown.
	Category          string    // External category name; empty when unknown.
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewStore builds an unsaved store with its matching keys filled in.
func NewStore(name, address, city string, now time.Time) *Store {
	return &Store{
		ID:                uuid.Must(uuid.NewV7()),
		Name:              strings.TrimSpace(name),
		Address:           strings.TrimSpace(address),
		NormalizedName:    NormalizeStoreKey(name),
		NormalizedAddress: NormalizeStoreKey(address),
		City:              city,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// StoreIdentity is the normalized (name, address) pair used for matching.
type StoreIdentity struct {
	Name    string
	Address string
}

// NewStoreIdentity normalizes raw receipt text into a matching key.
func NewStoreIdentity(name, address string) StoreIdentity {
	return StoreIdentity{
		Name:    NormalizeStoreKey(name),
		Address: NormalizeStoreKey(address),
	}
}

// Empty reports whether either half of the identity normalized to nothing.
func (id StoreIdentity) Empty() bool {
	return id.Name == "" || id.Address == ""
}

// LockKey is the advisory lock key guarding creation of this identity.
func (id StoreIdentity) LockKey() string {
	return "store:" + id.Name + "|" + id.Address
}

// NormalizeStoreKey folds compatibility forms (NFKC), lowercases,
// turns punctuation and symbols into spaces, and collapses whitespace,
// so "(주)일미닭갈비 ＃2" and "(주) 일미닭갈비 #2" both become "주 일미닭갈비 2".
func NormalizeStoreKey(s string) string {
	folded := strings.ToLower(norm.NFKC.String(s))

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			b.WriteRune(' ')
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
