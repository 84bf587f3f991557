// Package bloodtype defines the closed set of blood types and the canonical
// donor/recipient compatibility table.
package bloodtype

// BloodType is one of the eight ABO/Rh groups.
type BloodType string

const (
	APositive  BloodType = "A+"
	ANegative  BloodType = "A-"
	BPositive  BloodType = "B+"
	BNegative  BloodType = "B-"
	ABPositive BloodType = "AB+"
	ABNegative BloodType = "AB-"
	OPositive  BloodType = "O+"
	ONegative  BloodType = "O-"
)

// All lists every blood type in display order.
var All = []BloodType{
	APositive, ANegative,
	BPositive, BNegative,
	ABPositive, ABNegative,
	OPositive, ONegative,
}

// compatibility maps a recipient's blood type to the donor types whose blood
// the recipient can receive.
var compatibility = map[BloodType][]BloodType{
	APositive:  {APositive, ANegative, OPositive, ONegative},
	ANegative:  {ANegative, ONegative},
	BPositive:  {BPositive, BNegative, OPositive, ONegative},
	BNegative:  {BNegative, ONegative},
	ABPositive: {APositive, ANegative, BPositive, BNegative, ABPositive, ABNegative, OPositive, ONegative},
	ABNegative: {ANegative, BNegative, ABNegative, ONegative},
	OPositive:  {OPositive, ONegative},
	ONegative:  {ONegative},
}

// Valid reports whether t is one of the eight known blood types.
func Valid(t BloodType) bool {
	_, ok := compatibility[t]
	return ok
}

// CompatibleDonors returns the donor types a recipient of type t can receive
// from. The result is a copy; callers may modify it. Unknown types yield nil.
func CompatibleDonors(t BloodType) []BloodType {
	donors, ok := compatibility[t]
	if !ok {
		return nil
	}
	out := make([]BloodType, len(donors))
	copy(out, donors)
	return out
}

// CanDonateTo reports whether blood of type donor can be given to a recipient
// of type recipient.
func CanDonateTo(donor, recipient BloodType) bool {
	for _, d := range compatibility[recipient] {
		if d == donor {
			return true
		}
	}
	return false
}
