package tui

// appMode is the top-level state of the application. Every mode change goes
// through transition.
type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

func (m appMode) String() string {
	switch m {
	case modeLogin:
		return "login"
	case modeMain:
		return "main"
	default:
		return "unknown"
	}
}

type appEvent int

const (
	eventLoginSucceeded appEvent = iota
	eventRegistered
	eventLogout
)

// transition returns the mode reached from mode on event. Events that make
// no sense in mode leave it unchanged.
func transition(mode appMode, event appEvent) appMode {
	switch {
	case mode == modeLogin && (event == eventLoginSucceeded || event == eventRegistered):
		return modeMain
	case mode == modeMain && event == eventLogout:
		return modeLogin
	}

	return mode
}

type screen int

const (
	screenLogin screen = iota
	screenList
	screenDetail
	screenAdd
)
