package tabunganku

import (
	"fmt"
	"iter"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Ledger owns the student roster and the transaction history, treated as one
// consistency domain: after every mutation each student's balance equals the
// net effect of the transactions referencing them.
//
// Mutations are serialized by a single-writer lock. Queries copy the state
// they need under a read lock, so a reader can never observe a transaction
// without its balance update or vice versa. In-memory transaction order is
// most-recent-first; queries that promise chronological order re-sort
// explicitly instead of relying on it.
type Ledger struct {
	mu           sync.RWMutex
	students     []Student
	transactions []Transaction       // most-recent-first
	index        map[string]int      // student id -> position in students
	onChange     func(*Ledger) error // persistence hook, see OnChange
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{index: make(map[string]int)}
}

// RestoreLedger rebuilds a ledger from previously persisted state. Balances
// are taken as persisted; the loader is trusted to hand back what Snapshot
// produced.
func RestoreLedger(students []Student, transactions []Transaction) *Ledger {
	l := NewLedger()
	l.students = append(l.students, students...)
	l.transactions = append(l.transactions, transactions...)
	for i, s := range l.students {
		l.index[s.ID] = i
	}
	l.stableSort()
	return l
}

// OnChange registers a hook invoked after every successful mutation, outside
// the write lock. The command layer uses it to re-persist state so that the
// saved files never lag the in-memory ledger by more than one mutation.
// A hook failure is logged, never propagated: the mutation already succeeded.
func (l *Ledger) OnChange(fn func(*Ledger) error) {
	l.onChange = fn
}

func (l *Ledger) notify() {
	if l.onChange == nil {
		return
	}
	if err := l.onChange(l); err != nil {
		log.Printf("warning: could not persist ledger: %v", err)
	}
}

// stableSort orders the history most-recent-first. The sort is stable, so
// transactions sharing a timestamp keep their relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.After(l.transactions[j].Date)
	})
}

// AddStudent appends a new student with a fresh id and a zero balance.
// It fails with ErrValidation if name or class is empty.
func (l *Ledger) AddStudent(name, className string) (Student, error) {
	students, err := l.AddStudents([]Candidate{{Name: name, ClassName: className}})
	if err != nil {
		return Student{}, err
	}
	return students[0], nil
}

// AddStudents appends all candidates as a single order-preserving batch.
// Validation happens up front: one bad candidate rejects the whole batch and
// the roster is left untouched. Ids come from uuid so two batches admitted
// within the same timestamp tick can never collide.
func (l *Ledger) AddStudents(candidates []Candidate) ([]Student, error) {
	for _, c := range candidates {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("%w: student name is empty", ErrValidation)
		}
		if strings.TrimSpace(c.ClassName) == "" {
			return nil, fmt.Errorf("%w: class name is empty", ErrValidation)
		}
	}

	now := time.Now()
	added := make([]Student, 0, len(candidates))
	l.mu.Lock()
	for _, c := range candidates {
		s := Student{
			ID:        uuid.NewString(),
			Name:      strings.TrimSpace(c.Name),
			ClassName: strings.TrimSpace(c.ClassName),
			Balance:   0,
			JoinDate:  now,
		}
		l.index[s.ID] = len(l.students)
		l.students = append(l.students, s)
		added = append(added, s)
	}
	l.mu.Unlock()

	l.notify()
	return added, nil
}

// DeleteStudent removes the student with that id from the roster. It fails
// with ErrNotFound if the id is unknown. Past transactions referencing the
// student are deliberately kept: history shows the roster as it was.
func (l *Ledger) DeleteStudent(id string) error {
	l.mu.Lock()
	i, ok := l.index[id]
	if !ok {
		l.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	l.students = append(l.students[:i], l.students[i+1:]...)
	delete(l.index, id)
	for j := i; j < len(l.students); j++ {
		l.index[l.students[j].ID] = j
	}
	l.mu.Unlock()

	l.notify()
	return nil
}

// Apply records a deposit or withdrawal for the given student and updates the
// balance in the same critical section, so no reader can see one without the
// other. On any failure the ledger is left exactly as it was.
//
// A withdrawal exceeding the current balance fails with
// *InsufficientFundsError carrying that balance. An empty note defaults to
// the type's standard wording.
func (l *Ledger) Apply(studentID string, typ TransactionType, amount Money, note string) (Transaction, error) {
	if typ != Deposit && typ != Withdrawal {
		return Transaction{}, fmt.Errorf("%w: unknown transaction type %q", ErrValidation, typ)
	}
	if !amount.IsPositive() {
		return Transaction{}, fmt.Errorf("%w: amount must be positive, got %s", ErrValidation, amount)
	}

	l.mu.Lock()
	i, ok := l.index[studentID]
	if !ok {
		l.mu.Unlock()
		return Transaction{}, fmt.Errorf("%w: %q", ErrNotFound, studentID)
	}
	student := &l.students[i]

	if typ == Withdrawal && amount > student.Balance {
		balance := student.Balance
		name := student.Name
		l.mu.Unlock()
		return Transaction{}, &InsufficientFundsError{StudentName: name, Balance: balance, Requested: amount}
	}

	if strings.TrimSpace(note) == "" {
		note = typ.DefaultNote()
	}
	tx := Transaction{
		ID:          uuid.NewString(),
		StudentID:   student.ID,
		StudentName: student.Name, // snapshot, survives renames and deletion
		Type:        typ,
		Amount:      amount,
		Date:        time.Now(),
		Note:        note,
	}

	l.transactions = append([]Transaction{tx}, l.transactions...)
	student.Balance = student.Balance.Add(tx.Delta())
	l.mu.Unlock()

	l.notify()
	return tx, nil
}

// TotalStudents returns the roster size.
func (l *Ledger) TotalStudents() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.students)
}

// TotalBalance returns the sum of all student balances.
func (l *Ledger) TotalBalance() Money {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var total Money
	for _, s := range l.students {
		total = total.Add(s.Balance)
	}
	return total
}

// Student returns a copy of the student with that id.
func (l *Ledger) Student(id string) (Student, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	i, ok := l.index[id]
	if !ok {
		return Student{}, false
	}
	return l.students[i], true
}

// FindStudent returns the first student whose name matches, case-insensitively.
// Convenience for the command layer, which lets users refer to students by name.
func (l *Ledger) FindStudent(name string) (Student, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, s := range l.students {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Student{}, false
}

// AcceptAllStudents accepts every student.
func AcceptAllStudents(Student) bool { return true }

// AcceptAllTransactions accepts every transaction.
func AcceptAllTransactions(Transaction) bool { return true }

// Students returns an iterator over a snapshot of the roster in admission
// order. A student is yielded when any filter accepts it.
func (l *Ledger) Students(filters ...func(Student) bool) iter.Seq2[int, Student] {
	l.mu.RLock()
	snapshot := make([]Student, len(l.students))
	copy(snapshot, l.students)
	l.mu.RUnlock()

	return func(yield func(int, Student) bool) {
		for i, s := range snapshot {
			accept := false
			for _, filter := range filters {
				if filter(s) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, s) {
				return
			}
		}
	}
}

// Transactions returns an iterator over a snapshot of the history in its
// in-memory (most-recent-first) order. A transaction is yielded when any
// filter accepts it.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	l.mu.RLock()
	snapshot := make([]Transaction, len(l.transactions))
	copy(snapshot, l.transactions)
	l.mu.RUnlock()

	return func(yield func(int, Transaction) bool) {
		for i, tx := range snapshot {
			accept := false
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// OnDay returns a predicate accepting transactions dated on that calendar day,
// in the day's own location.
func OnDay(day time.Time) func(Transaction) bool {
	y, m, d := day.Date()
	return func(tx Transaction) bool {
		ty, tm, td := tx.Date.In(day.Location()).Date()
		return ty == y && tm == m && td == d
	}
}

// ByStudent returns a predicate accepting transactions referencing that
// student id.
func ByStudent(id string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.StudentID == id }
}

// RecentTransactions returns up to n transactions, newest first. It sorts by
// date explicitly rather than trusting the in-memory order.
func (l *Ledger) RecentTransactions(n int) []Transaction {
	l.mu.RLock()
	snapshot := make([]Transaction, len(l.transactions))
	copy(snapshot, l.transactions)
	l.mu.RUnlock()

	sort.SliceStable(snapshot, func(i, j int) bool {
		return snapshot[i].Date.After(snapshot[j].Date)
	})
	if n < len(snapshot) {
		snapshot = snapshot[:n]
	}
	return snapshot
}

// Snapshot returns copies of the roster and the history, suitable for
// persistence or comparison. The two slices are taken under the same read
// lock, so they are mutually consistent.
func (l *Ledger) Snapshot() (students []Student, transactions []Transaction) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	students = make([]Student, len(l.students))
	copy(students, l.students)
	transactions = make([]Transaction, len(l.transactions))
	copy(transactions, l.transactions)
	return students, transactions
}
