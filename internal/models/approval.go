package models

// Amount tiers selecting how deep an approval chain goes. Values are in the
// wallet's currency units.
const (
	ApprovalTierExecutive = 10000.0 // three-level chain at or above this amount
	ApprovalTierFinance   = 1000.0  // two-level chain at or above this amount
)

// ApprovalLevel is one role-gated step of an approval chain. RequireAll=false
// means any single holder of one of the listed roles satisfies the level;
// role membership itself is resolved by the authorization layer, not here.
type ApprovalLevel struct {
	Level      int      `json:"level"`
	Name       string   `json:"name"`
	Roles      []string `json:"roles"`
	RequireAll bool     `json:"require_all"`
}

// ApprovalChain is the ordered set of levels a pending transaction must pass
// before its balance effect is applied.
type ApprovalChain struct {
	Levels []ApprovalLevel `json:"levels"`
}

// ChainForAmount selects the approval chain configuration by amount tier.
func ChainForAmount(amount float64) *ApprovalChain {
	switch {
	case amount >= ApprovalTierExecutive:
		return &ApprovalChain{Levels: []ApprovalLevel{
			{Level: 1, Name: "Management", Roles: []string{"Manager"}},
			{Level: 2, Name: "Finance", Roles: []string{"CFO", "Finance Director"}},
			{Level: 3, Name: "Executive", Roles: []string{"CEO", "President"}},
		}}
	case amount >= ApprovalTierFinance:
		return &ApprovalChain{Levels: []ApprovalLevel{
			{Level: 1, Name: "Management", Roles: []string{"Manager"}},
			{Level: 2, Name: "Finance", Roles: []string{"Finance Manager", "CFO"}},
		}}
	default:
		return &ApprovalChain{Levels: []ApprovalLevel{
			{Level: 1, Name: "Management", Roles: []string{"Manager"}},
		}}
	}
}
