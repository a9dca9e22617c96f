// Package powerinfo reads the host battery for the icon subcommand.
package powerinfo

import (
	"github.com/distatus/battery"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrNoBattery is returned when the host reports no battery.
var ErrNoBattery = errors.New("no batteries found")

var getAll = battery.GetAll

// readBatteries is replaced in tests.
var readBatteries = func() ([]Battery, error) {
	batteries, err := getAll()

	// Errors lines up with batteries. Other errors mean nothing was read.
	var errs battery.Errors
	if err != nil && !errors.As(err, &errs) {
		return nil, err
	}

	res := make([]Battery, 0, len(batteries))
	for i, bat := range batteries {
		if bat == nil {
			continue
		}
		if i < len(errs) && !usable(errs[i]) {
			logrus.WithError(errs[i]).WithField("index", i).Debug("skipping unreadable battery")
			continue
		}

		state := Discharging
		switch bat.State {
		case battery.Charging:
			state = Charging
		case battery.Full:
			state = Full
		}

		rate := bat.ChargeRate
		if state == Discharging {
			rate = -rate
		}

		res = append(res, Battery{
			State:      state,
			Current:    bat.Current,
			Full:       bat.Full,
			ChargeRate: rate,
		})
	}

	if len(res) == 0 && err != nil {
		return nil, err
	}

	return res, nil
}

// usable reports whether a battery read with err still has its charge.
func usable(err error) bool {
	if err == nil {
		return true
	}

	var partial battery.ErrPartial
	if errors.As(err, &partial) {
		return partial.Current == nil && partial.Full == nil
	}

	return false
}

// GetBattery returns the first battery of the host.
func GetBattery() (*Battery, error) {
	batteries, err := readBatteries()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read batteries")
	}

	if len(batteries) == 0 {
		return nil, ErrNoBattery
	}
	if len(batteries) > 1 {
		logrus.WithField("count", len(batteries)).Debug("multiple batteries found, using the first one")
	}

	bat := batteries[0]
	return &bat, nil
}
