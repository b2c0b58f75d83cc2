// Package traits holds the five-dimensional branch state carried by every team and
// the read-only GM title classification computed from it.
package traits

// Vector is the named five-field trait record. Values are unbounded in both directions.
type Vector struct {
	CapitalFlexibility int `json:"capital_flexibility" yaml:"capital_flexibility" gorm:"not null;default:0"`
	StarPower          int `json:"star_power" yaml:"star_power" gorm:"not null;default:0"`
	DataTrust          int `json:"data_trust" yaml:"data_trust" gorm:"not null;default:0"`
	Culture            int `json:"culture" yaml:"culture" gorm:"not null;default:0"`
	RiskHeat           int `json:"risk_heat" yaml:"risk_heat" gorm:"not null;default:0"`
}

// Add returns the component-wise sum of v and d.
func (v Vector) Add(d Vector) Vector {
	return Vector{
		CapitalFlexibility: v.CapitalFlexibility + d.CapitalFlexibility,
		StarPower:          v.StarPower + d.StarPower,
		DataTrust:          v.DataTrust + d.DataTrust,
		Culture:            v.Culture + d.Culture,
		RiskHeat:           v.RiskHeat + d.RiskHeat,
	}
}

// IsZero reports whether every component is zero.
func (v Vector) IsZero() bool {
	return v == Vector{}
}
