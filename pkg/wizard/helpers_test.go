package wizard

import (
	"context"
	"errors"

	"github.com/goliatone/go-stepform/pkg/record"
)

type recordingNotifier struct {
	acks        []string
	diagnostics []string
	ackErr      error
}

func (n *recordingNotifier) Acknowledge(_ context.Context, message string) error {
	n.acks = append(n.acks, message)
	return n.ackErr
}

func (n *recordingNotifier) Record(_ context.Context, message string) error {
	n.diagnostics = append(n.diagnostics, message)
	return nil
}

var errDiskFull = errors.New("disk full")

type failingStore struct {
	sets int
}

func (s *failingStore) Set(context.Context, string, []byte) error {
	s.sets++
	return errDiskFull
}

func (s *failingStore) Get(context.Context, string) ([]byte, error) { return nil, errDiskFull }
func (s *failingStore) Delete(context.Context, string) error        { return errDiskFull }
func (s *failingStore) Close() error                                { return nil }

func validUserInfoPatch() record.Patch {
	return record.Patch{
		record.FieldName:  "Jane Doe",
		record.FieldEmail: "jane@example.com",
		record.FieldPhone: "555-1234",
	}
}

func validAccountPatch() record.Patch {
	return record.Patch{
		record.FieldUsername:        "jane_d",
		record.FieldPassword:        "secret1",
		record.FieldConfirmPassword: "secret1",
	}
}
