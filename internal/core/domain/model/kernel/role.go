package kernel

// Role is the capacity in which a Party acts on a record. Authorization is a
// per-operation check of the caller against the roles the record assigns.
type Role int

const (
	NoRole Role = iota
	Buyer
	Seller
	Courier
	Arbitrator
	Owner
)

func (r Role) String() string {
	switch r {
	case Buyer:
		return "Buyer"
	case Seller:
		return "Seller"
	case Courier:
		return "Courier"
	case Arbitrator:
		return "Arbitrator"
	case Owner:
		return "Owner"
	case NoRole:
		return "None"
	}
	return "None"
}

// RoleAssignment maps roles to the parties holding them on one record.
type RoleAssignment map[Role]Party

// Holds reports whether caller holds any of roles. Unassigned roles and the
// null identity never match.
func (a RoleAssignment) Holds(caller Party, roles ...Role) bool {
	if caller.IsZero() {
		return false
	}
	for _, role := range roles {
		holder, ok := a[role]
		if ok && !holder.IsZero() && holder.IsEqual(caller) {
			return true
		}
	}
	return false
}
