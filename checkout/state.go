//go:generate go tool stringer -type=State

package checkout

type State int

const (
	SELECTING_TICKETS State = iota
	ENTERING_DETAILS
	REVIEWING
	CREATING_ORDER
	AWAITING_GATEWAY
	VERIFYING
	CONFIRMED
	FAILED
)

// ParseState is the inverse of State.String.
func ParseState(s string) (State, bool) {
	for st := SELECTING_TICKETS; st <= FAILED; st++ {
		if st.String() == s {
			return st, true
		}
	}
	return 0, false
}
