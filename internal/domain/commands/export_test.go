package commands

// WarnPinConflicts exports warnPinConflicts for testing.
var WarnPinConflicts = warnPinConflicts //nolint:gochecknoglobals // test export
