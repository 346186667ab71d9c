package allocator

// Ledger records the (date, window) pairs already booked for each student,
// so one student never sits with two mentors at the same time.
type Ledger struct {
	keys map[string]map[string]struct{}
}

func NewLedger() *Ledger {
	return &Ledger{keys: make(map[string]map[string]struct{})}
}

func ledgerKey(date, window string) string {
	return date + "-" + window
}

// Has reports whether the student already holds the window on date.
func (l *Ledger) Has(studentID, date, window string) bool {
	_, ok := l.keys[studentID][ledgerKey(date, window)]
	return ok
}

// Add records the window for the student. It returns false if it was
// already present.
func (l *Ledger) Add(studentID, date, window string) bool {
	if l.Has(studentID, date, window) {
		return false
	}
	set, ok := l.keys[studentID]
	if !ok {
		set = make(map[string]struct{})
		l.keys[studentID] = set
	}
	set[ledgerKey(date, window)] = struct{}{}
	return true
}
