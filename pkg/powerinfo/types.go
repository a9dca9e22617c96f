package powerinfo

// BatteryState represents the charging state of the battery.
type BatteryState int

const (
	// Discharging indicates the battery is discharging.
	Discharging BatteryState = iota
	// Charging indicates the battery is charging.
	Charging
	// Full indicates the battery is full.
	Full
)

func (s BatteryState) String() string {
	switch s {
	case Charging:
		return "charging"
	case Full:
		return "full"
	default:
		return "discharging"
	}
}

// Battery is the host battery reduced to what the icon needs.
// Units:
// - Current, Full: mWh
// - ChargeRate: mW (negative when discharging)
type Battery struct {
	State      BatteryState `json:"State"`
	Current    float64      `json:"Current"`
	Full       float64      `json:"Full"`
	ChargeRate float64      `json:"ChargeRate"`
}

// Level returns the charge as a whole percentage of full capacity.
func (b *Battery) Level() int {
	if b.Full <= 0 {
		return 0
	}
	level := int(b.Current/b.Full*100 + 0.5)
	if level > 100 {
		level = 100
	}
	return level
}
