package types

// The withdrawal gate combines two independent predicates: a platform-wide
// recurring safety cycle and a per-user request/cooldown/enable sequence. Both
// operate on ledger time (unix seconds), never wall clocks.

// WithdrawWindowState is the per-user gate state derived from the stored
// enable start time.
type WithdrawWindowState int

const (
	// WindowIdle means no withdraw request is outstanding.
	WindowIdle WithdrawWindowState = iota
	// WindowCooling means a request was made and its pending period has not
	// elapsed yet.
	WindowCooling
	// WindowEnabled means the user is inside their enable window.
	WindowEnabled
	// WindowExpired means the enable window has passed without a withdrawal.
	WindowExpired
)

// InSafetyWindow reports whether now falls inside the recurring platform-wide
// blackout. The cycle alternates withdrawPeriod seconds of open time with
// safetyPeriod seconds of blackout, anchored at unix epoch zero.
func InSafetyWindow(now, withdrawPeriod, safetyPeriod int64) bool {
	return now%(withdrawPeriod+safetyPeriod) >= withdrawPeriod
}

// InUserEnableWindow reports whether now falls inside the user's enable
// window [enableStart, enableStart+enablePeriod]. A zero enableStart means no
// request is outstanding.
func InUserEnableWindow(now, enableStart, enablePeriod int64) bool {
	return enableStart != 0 && now >= enableStart && now <= enableStart+enablePeriod
}

// UserWindowState classifies the user's gate state at the given time.
func UserWindowState(now, enableStart, enablePeriod int64) WithdrawWindowState {
	switch {
	case enableStart == 0:
		return WindowIdle
	case now < enableStart:
		return WindowCooling
	case now <= enableStart+enablePeriod:
		return WindowEnabled
	default:
		return WindowExpired
	}
}

// WithdrawEnabled reports whether a withdrawal may execute right now: the
// global cycle must be open and the user must be inside their enable window.
func WithdrawEnabled(now, enableStart int64, p Params) bool {
	return !InSafetyWindow(now, p.WithdrawPeriod, p.SafetyPeriod) &&
		InUserEnableWindow(now, enableStart, p.WithdrawRequestEnablePeriod)
}
