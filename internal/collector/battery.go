package collector

import (
	"github.com/distatus/battery"

	"sysdash/internal/snapshot"
)

// gatherBattery reads the first battery, if any. Desktops and probe
// failures degrade to a plain informational string.
func gatherBattery() snapshot.Value {
	batteries, err := battery.GetAll()
	if err != nil || len(batteries) == 0 {
		return "No battery information available"
	}

	b := batteries[0]
	state := b.State.String()

	percent := snapshot.Value(snapshot.NA)
	if b.Full > 0 {
		percent = b.Current / b.Full * 100
	}

	secondsLeft := snapshot.Value(snapshot.NA)
	if state == "Discharging" && b.ChargeRate > 0 {
		secondsLeft = int64(b.Current / b.ChargeRate * 3600)
	}

	return snapshot.Mapping{
		{Key: "Percent", Value: percent},
		{Key: "Seconds Left", Value: secondsLeft},
		{Key: "Power Plugged", Value: state == "Charging" || state == "Full"},
	}
}
