package tabunganku

import "time"

// GeneralClass is the fallback class label for students whose class is not
// known, typically rows imported without a second column.
const GeneralClass = "Umum"

// Student is a member of the savings roster.
//
// Balance is derived state: it always equals the sum of deposits minus the
// sum of withdrawals referencing the student, and is only ever changed by
// [Ledger.Apply]. ID and JoinDate are assigned at creation and immutable.
type Student struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ClassName string    `json:"className"`
	Balance   Money     `json:"balance"`
	JoinDate  time.Time `json:"joinDate"`
}

// Candidate is a student-to-be: a validated name and class that has not yet
// been admitted to a ledger. The import reconciler produces these.
type Candidate struct {
	Name      string
	ClassName string
}
