package mocks

import (
	"errors"
	"testing"

	"github.com/nersc/fgr/internal/routetable"
	"github.com/nersc/fgr/pkg/writer"
)

func TestMockInterfaceSatisfiesContractAndRecordsCalls(t *testing.T) {
	var _ writer.Interface = (*Interface)(nil)

	m := &Interface{}
	table := routetable.Table{1000: {{LNET: 201, RouterNID: 11000}}}

	m.On("WriteFGRFile", "route.fgr", table).Return(nil)
	m.On("WriteIORShell", "ior.sh", writer.IORShellInput{RunID: "run-1"}).Return(errors.New("disk full"))

	if err := m.WriteFGRFile("route.fgr", table); err != nil {
		t.Fatalf("WriteFGRFile() returned %v, want nil", err)
	}
	if err := m.WriteIORShell("ior.sh", writer.IORShellInput{RunID: "run-1"}); err == nil {
		t.Fatal("WriteIORShell() returned nil, want the stubbed error")
	}

	m.AssertExpectations(t)
}
