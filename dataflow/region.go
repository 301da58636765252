package dataflow

import "github.com/sirupsen/logrus"

// Region groups a piece of sub-dataflow construction under a name, for
// debugging and scheduling (spec §4.2's region(name, f)). It mirrors
// original_source's region_named: at this engine's scale there is no
// separate scheduling domain to create, so Region's only observable effect
// is a debug-level log line bracketing f's construction — useful when
// reading logs to see which rule gadget produced a given arrangement.
func Region(name string, f func()) {
	logrus.WithField("region", name).Debug("entering region")
	f()
	logrus.WithField("region", name).Debug("leaving region")
}
