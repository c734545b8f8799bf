package tabunganku

import (
	"encoding/json"
	"fmt"
	"io"
)

// The roster and the history are persisted as two independent JSON documents,
// each a versioned wrapper around the entity array. The original data had no
// version field, so a document without one is read as version 1.

// StateVersion is the current persisted-state schema version.
const StateVersion = 1

type studentsDoc struct {
	Version  int       `json:"version"`
	Students []Student `json:"students"`
}

type transactionsDoc struct {
	Version      int           `json:"version"`
	Transactions []Transaction `json:"transactions"`
}

// EncodeStudents writes the roster to w as an indented, versioned JSON document.
func EncodeStudents(w io.Writer, students []Student) error {
	return encodeDoc(w, studentsDoc{Version: StateVersion, Students: students})
}

// EncodeTransactions writes the history to w as an indented, versioned JSON document.
func EncodeTransactions(w io.Writer, transactions []Transaction) error {
	return encodeDoc(w, transactionsDoc{Version: StateVersion, Transactions: transactions})
}

func encodeDoc(w io.Writer, doc any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("could not encode state: %w", err)
	}
	return nil
}

// DecodeStudents reads a roster document from r.
func DecodeStudents(r io.Reader) ([]Student, error) {
	var doc studentsDoc
	if err := decodeDoc(r, &doc); err != nil {
		return nil, err
	}
	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}
	return doc.Students, nil
}

// DecodeTransactions reads a history document from r.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	var doc transactionsDoc
	if err := decodeDoc(r, &doc); err != nil {
		return nil, err
	}
	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}
	return doc.Transactions, nil
}

func decodeDoc(r io.Reader, doc any) error {
	if err := json.NewDecoder(r).Decode(doc); err != nil {
		return fmt.Errorf("%w: could not decode state: %v", ErrPersistence, err)
	}
	return nil
}

func checkVersion(v int) error {
	// 0 means the field is absent: data written before versioning existed.
	if v == 0 || v == StateVersion {
		return nil
	}
	return fmt.Errorf("%w: unsupported state version %d (latest known is %d)", ErrPersistence, v, StateVersion)
}
