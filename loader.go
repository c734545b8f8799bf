package tabunganku

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// State lives in a directory holding one file per collection. The two files
// are written independently, last write wins; there is no storage engine and
// no fsync guarantee, which is acceptable for a single-writer process.
const (
	studentsFile     = "students.json"
	transactionsFile = "transactions.json"
)

// LoadLedger rebuilds a ledger from the state directory.
//
// Missing files are not an error: the corresponding collection starts empty
// and the caller decides whether to seed. A corrupt or unsupported file is
// treated the same way, except that a non-nil ErrPersistence-wrapped error is
// returned alongside the (usable) ledger so the caller can warn about it.
func LoadLedger(dir string) (*Ledger, error) {
	var warns []error

	students, err := loadStudents(filepath.Join(dir, studentsFile))
	if err != nil {
		warns = append(warns, err)
		students = nil
	}
	transactions, err := loadTransactions(filepath.Join(dir, transactionsFile))
	if err != nil {
		warns = append(warns, err)
		transactions = nil
	}

	return RestoreLedger(students, transactions), errors.Join(warns...)
}

func loadStudents(path string) ([]Student, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: could not open %q: %v", ErrPersistence, path, err)
	}
	defer f.Close()
	students, err := DecodeStudents(f)
	if err != nil {
		return nil, fmt.Errorf("in %q: %w", path, err)
	}
	return students, nil
}

func loadTransactions(path string) ([]Transaction, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: could not open %q: %v", ErrPersistence, path, err)
	}
	defer f.Close()
	transactions, err := DecodeTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("in %q: %w", path, err)
	}
	return transactions, nil
}

// SaveLedger writes both collections of the ledger into the state directory,
// creating it if needed.
func SaveLedger(dir string, l *Ledger) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: could not create state directory %q: %v", ErrPersistence, dir, err)
	}

	students, transactions := l.Snapshot()

	if err := saveFile(filepath.Join(dir, studentsFile), func(f *os.File) error {
		return EncodeStudents(f, students)
	}); err != nil {
		return err
	}
	return saveFile(filepath.Join(dir, transactionsFile), func(f *os.File) error {
		return EncodeTransactions(f, transactions)
	})
}

func saveFile(path string, encode func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: could not write %q: %v", ErrPersistence, path, err)
	}
	defer f.Close()
	if err := encode(f); err != nil {
		return fmt.Errorf("%w: could not write %q: %v", ErrPersistence, path, err)
	}
	return nil
}
