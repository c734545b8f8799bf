package tabunganku

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestEncodeDecodeStudents_roundTrip(t *testing.T) {
	students, _ := SeedLedger().Snapshot()

	var buf bytes.Buffer
	if err := EncodeStudents(&buf, students); err != nil {
		t.Fatalf("EncodeStudents() error = %v", err)
	}
	got, err := DecodeStudents(&buf)
	if err != nil {
		t.Fatalf("DecodeStudents() error = %v", err)
	}
	if !reflect.DeepEqual(got, students) {
		t.Errorf("round trip changed the roster:\n got %v\nwant %v", got, students)
	}
}

func TestEncodeDecodeTransactions_roundTrip(t *testing.T) {
	_, transactions := SeedLedger().Snapshot()

	var buf bytes.Buffer
	if err := EncodeTransactions(&buf, transactions); err != nil {
		t.Fatalf("EncodeTransactions() error = %v", err)
	}
	got, err := DecodeTransactions(&buf)
	if err != nil {
		t.Fatalf("DecodeTransactions() error = %v", err)
	}
	if !reflect.DeepEqual(got, transactions) {
		t.Errorf("round trip changed the history:\n got %v\nwant %v", got, transactions)
	}
}

func TestDecodeStudents_versions(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "current version",
			input: `{"version":1,"students":[]}`,
		},
		{
			name: "legacy document without a version field",
			// Data persisted before versioning existed.
			input: `{"students":[{"id":"1","name":"Ahmad","className":"10A","balance":0,"joinDate":"2023-01-15T00:00:00Z"}]}`,
		},
		{
			name:    "unknown future version",
			input:   `{"version":99,"students":[]}`,
			wantErr: true,
		},
		{
			name:    "not json at all",
			input:   `these are not the students you are looking for`,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeStudents(strings.NewReader(tc.input))
			if tc.wantErr {
				if !errors.Is(err, ErrPersistence) {
					t.Fatalf("DecodeStudents() error = %v, want ErrPersistence", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeStudents() error = %v", err)
			}
		})
	}
}

func TestDecodeTransactions_corrupt(t *testing.T) {
	_, err := DecodeTransactions(strings.NewReader(`{"version":1,"transactions":`))
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("DecodeTransactions() error = %v, want ErrPersistence", err)
	}
}
