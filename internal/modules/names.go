package modules

import "github.com/mindstep/aiplan/internal/usertype"

// Name is a training-module name from the fixed per-type table.
type Name string

const (
	AdvantageExpand Name = "优势能力拓展模块"
	BalancedTrain   Name = "能力均衡训练模块"
	PotentialExpand Name = "认知潜能拓展模块"
	CoreStrengthen  Name = "核心能力强化模块"
	RelatedEnhance  Name = "关联能力提升训练模块"
	BasicStable     Name = "基础能力稳控模块"
	StepUp          Name = "阶梯式提升模块"
)

// Names holds the two module names for one user type: the primary module
// (expand, core, or basic) and the secondary one.
type Names struct {
	Primary   Name
	Secondary Name
}

// NameTable maps each user type to its module names.
type NameTable map[usertype.UserType]Names

// DefaultNames returns the production name table.
func DefaultNames() NameTable {
	return NameTable{
		usertype.Advantage: {Primary: AdvantageExpand, Secondary: BalancedTrain},
		usertype.Potential: {Primary: PotentialExpand, Secondary: BalancedTrain},
		usertype.Special:   {Primary: CoreStrengthen, Secondary: RelatedEnhance},
		usertype.Growth:    {Primary: BasicStable, Secondary: StepUp},
	}
}

// For returns the names for t, falling back to the potential entry.
func (nt NameTable) For(t usertype.UserType) Names {
	if n, ok := nt[t]; ok {
		return n
	}
	return nt[usertype.Potential]
}
